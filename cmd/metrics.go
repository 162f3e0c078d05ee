package cmd

import (
	"github.com/spf13/cobra"

	"instreg/internal/metrics"
	"instreg/pkg/registry"
)

// metricsCmd represents the metrics command
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "以 Prometheus 文本格式输出注册表指标",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return metrics.WriteText(cmd.OutOrStdout(), registry.GetRegistry())
	},
}

func init() {
	rootCmd.AddCommand(metricsCmd)
}
