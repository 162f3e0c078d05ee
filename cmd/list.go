package cmd

import (
	"github.com/spf13/cobra"

	"instreg/internal/common/errors"
	"instreg/internal/render"
	"instreg/pkg/registry"
)

var (
	listType   string
	listOutput string
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "列出已注册的实例",
	Long:  "按注册顺序列出实例名称和类型标签，可按类型过滤",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return errors.Guard(func() error {
			reg := registry.GetRegistry()

			items := reg.List()
			if listType != "" {
				items = reg.ListByType(listType)
			}
			return render.Write(cmd.OutOrStdout(), listOutput, items)
		})
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listType, "type", "t", "", "只列出指定类型标签的实例")
	listCmd.Flags().StringVarP(&listOutput, "output", "o", render.FormatTable, "输出格式 (table, json, yaml)")
}
