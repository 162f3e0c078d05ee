package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"instreg/internal/common/errors"
	"instreg/internal/render"
	"instreg/pkg/registry"
)

var inspectStyle string

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect [name]",
	Short: "查看实例的元数据",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return errors.Guard(func() error {
			entry, ok := registry.GetRegistry().GetEntry(args[0])
			if !ok {
				return errors.NewInstanceNotFoundError(args[0])
			}

			renderer, err := render.NewMarkdownRenderer(inspectStyle, 100)
			if err != nil {
				return errors.WrapSystemError("初始化渲染器失败", err)
			}

			out, err := render.Entry(renderer, entry)
			if err != nil {
				return errors.WrapSystemError("渲染实例失败", err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		})
	},
}

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get [name]",
	Short: "打印实例本身",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		instance, err := registry.GetRegistry().Get(args[0])
		if err != nil {
			return err
		}

		if s, ok := instance.(fmt.Stringer); ok {
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s.String())
		} else {
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%+v\n", instance)
		}
		return err
	},
}

// hasCmd represents the has command
var hasCmd = &cobra.Command{
	Use:   "has [name]",
	Short: "检查名称是否已注册，未注册时以非零状态退出",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exists := registry.GetRegistry().Has(args[0])
		fmt.Fprintln(cmd.OutOrStdout(), exists)
		if !exists {
			return errors.NewInstanceNotFoundError(args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(hasCmd)

	inspectCmd.Flags().StringVar(&inspectStyle, "style", "", "glamour 样式 (dark, light, notty)，默认自动检测")
}
