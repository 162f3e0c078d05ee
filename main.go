package main

import "instreg/cmd"

func main() {
	cmd.Execute()
}
