package cmd

import (
	"github.com/spf13/cobra"

	"instreg/internal/browse"
	"instreg/internal/util"
	"instreg/pkg/registry"
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "在终端界面中浏览注册表",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		util.Debug("正在启动注册表浏览界面...")
		return browse.Run(registry.GetRegistry())
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
