package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"instreg/internal/clients"
	"instreg/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "配置管理",
	Long:  "查看 instreg 的配置文件和设置",
}

// configShowCmd represents the show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "显示当前配置",
	Run: func(cmd *cobra.Command, args []string) {
		showConfig(cmd)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
}

// showConfig 显示配置信息
func showConfig(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	cfg := config.Config

	fmt.Fprintln(out, "当前配置:")
	fmt.Fprintf(out, "  配置文件: %s\n", configPath)
	fmt.Fprintf(out, "  日志级别: %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "  默认类型标签: %s\n", cfg.Registry.FallbackType)
	fmt.Fprintf(out, "  实例数量: %d\n", len(cfg.Instances))

	if verbose {
		fmt.Fprintf(out, "  日志格式: %s\n", cfg.Logging.Format)
		fmt.Fprintf(out, "  日志输出: %s\n", cfg.Logging.Output)
		fmt.Fprintf(out, "  支持的种类: %v\n", clients.Kinds())
		for _, inst := range cfg.Instances {
			fmt.Fprintf(out, "  - %s (kind=%s, type=%s)\n", inst.Name, inst.Kind, inst.Type)
		}
	}
}
