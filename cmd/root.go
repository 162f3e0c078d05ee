package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"instreg/internal/clients"
	"instreg/internal/common/errors"
	"instreg/internal/config"
	"instreg/internal/util"
	"instreg/pkg/registry"
)

var (
	// configPath 是配置文件的路径
	configPath string
	// verbose 标志用于启用详细输出
	verbose bool
)

// rootCmd 代表没有调用子命令时的基础命令
var rootCmd = &cobra.Command{
	Use:   "instreg",
	Short: "进程级命名实例注册表",
	Long: `instreg 演示进程级命名实例注册表：
启动时按配置构建实例并注册，随后可以列出、查看和浏览注册表内容。`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeApp(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		showStatus(cmd)
		return nil
	},
}

// Execute 将所有子命令添加到根命令并适当设置标志。
// 这是由 main.main() 调用的。它只需要对 rootCmd 调用一次。
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "命令执行失败: %v\n", err)
		if hint := errors.GetUserFriendlyMessage(err); hint != "" {
			fmt.Fprintf(os.Stderr, "提示: %s\n", hint)
		}
		os.Exit(1)
	}
}

func init() {
	// 全局标志
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "配置文件路径 (默认: $INSTREG_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "详细输出")
}

// initializeApp 初始化应用
func initializeApp(cmd *cobra.Command) error {
	// 1. 处理配置文件路径
	if configPath == "" {
		configPath = os.Getenv("INSTREG_CONFIG")
	}

	// 2. 加载配置文件
	if err := config.LoadConfig(configPath); err != nil {
		return errors.WrapError(errors.ErrCodeConfigInvalid, "配置加载失败", err)
	}

	// 3. 根据verbose标志调整日志级别
	logLevel := config.Config.Logging.Level
	if verbose {
		logLevel = "debug"
	}

	// 4. 初始化日志系统
	logging := config.Config.Logging
	if err := util.InitLogger(logLevel, logging.Format, logging.Output, logging.File); err != nil {
		return errors.WrapError(errors.ErrCodeConfigInvalid, "日志系统初始化失败", err)
	}

	util.Debugw("配置详情", map[string]any{
		"log_level":   logLevel,
		"config_path": configPath,
		"instances":   len(config.Config.Instances),
	})

	// 5. 初始化进程级注册表并注册配置中的实例
	if err := initializeRegistry(cmd); err != nil {
		return errors.WrapError(errors.ErrCodeInitializationFailed, "注册表初始化失败", err)
	}

	return nil
}

// initializeRegistry 初始化进程级注册表
func initializeRegistry(cmd *cobra.Command) error {
	reg := registry.InitRegistry(
		registry.WithLogger(util.Zerolog()),
		registry.WithFallbackType(config.Config.Registry.FallbackType),
	)

	if err := clients.RegisterAll(cmd.Context(), reg, config.Config.Instances); err != nil {
		return err
	}

	util.Debugw("注册表状态", map[string]any{
		"registered": reg.Len(),
	})
	return nil
}

// showStatus 显示应用状态
func showStatus(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	reg := registry.GetRegistry()

	fmt.Fprintln(out, "instreg 初始化完成")
	fmt.Fprintf(out, "已注册实例: %d\n", reg.Len())
	fmt.Fprintf(out, "日志级别: %s\n", config.Config.Logging.Level)
	fmt.Fprintln(out, "\n使用 'instreg --help' 查看可用命令")
}
