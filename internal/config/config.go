package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"instreg/internal/common/errors"
	"instreg/internal/util"
)

// 全局配置实例
var Config *AppConfig

// 应用配置结构
type AppConfig struct {
	Logging   LoggingConfig    `toml:"logging"`
	Registry  RegistryConfig   `toml:"registry"`
	Instances []InstanceConfig `toml:"instances"`
}

// 日志配置
type LoggingConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // json, text
	Output string `toml:"output"` // stdout, stderr, file
	File   string `toml:"file"`   // 日志文件路径
}

// 注册表配置
type RegistryConfig struct {
	FallbackType string `toml:"fallback_type"` // 无法推断类型名时使用的标签
}

// 启动时注册到进程级注册表的实例
type InstanceConfig struct {
	Name     string   `toml:"name"`
	Kind     string   `toml:"kind"` // redis, kafka, sqs, process, host, memory
	Type     string   `toml:"type"` // 可选，为空时由注册表推断
	Addr     string   `toml:"addr"`
	DB       int      `toml:"db"`
	Brokers  []string `toml:"brokers"`
	Topic    string   `toml:"topic"`
	QueueURL string   `toml:"queue_url"`
	Region   string   `toml:"region"`
}

// 加载配置文件
func LoadConfig(configPath string) error {
	// 如果没有指定配置文件路径，使用默认路径
	if configPath == "" {
		configPath = getDefaultConfigPath()
	}

	// 检查配置文件是否存在
	if !util.FileExists(configPath) {
		if err := util.WriteFileWithDirs(configPath, []byte(DefaultConfigContent)); err != nil {
			return errors.WrapError(errors.ErrCodeConfigLoadFailed, "创建默认配置文件失败", err)
		}
		fmt.Fprintf(os.Stderr, "已创建默认配置文件: %s\n", configPath)
	}

	// 解析TOML配置文件
	cfg := defaultConfig()
	if _, err := toml.DecodeFile(configPath, cfg); err != nil {
		return errors.WrapErrorWithDetails(errors.ErrCodeConfigParseFailed, "解析配置文件失败", err,
			fmt.Sprintf("配置文件路径: %s, 原因: %v", configPath, err))
	}

	// 使用环境变量覆盖配置
	overrideWithEnv(cfg)

	// 验证配置
	if err := validateConfig(cfg); err != nil {
		return err
	}

	// 设置全局配置
	Config = cfg
	return nil
}

// defaultConfig 返回未被配置文件覆盖时的默认值
func defaultConfig() *AppConfig {
	return &AppConfig{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stdout",
		},
	}
}

// 获取默认配置文件路径
func getDefaultConfigPath() string {
	if util.FileExists("config.toml") {
		return "config.toml"
	}

	// 使用用户主目录下的配置文件
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}

	return filepath.Join(homeDir, ".instreg", "config.toml")
}

// DefaultConfigContent 默认配置文件内容
const DefaultConfigContent = `# instreg 配置文件

[logging]
level = "info"
format = "text"
output = "stderr"
file = ""

[registry]
fallback_type = "Unknown"

[[instances]]
name = "redis"
kind = "redis"
type = "Redis"
addr = "localhost:6379"

[[instances]]
name = "kafka"
kind = "kafka"
type = "Kafka"
brokers = ["localhost:9092"]
topic = "events"

[[instances]]
name = "sqs"
kind = "sqs"
type = "SQS"
queue_url = "https://sqs.us-east-1.amazonaws.com/000000000000/jobs"
region = "us-east-1"

[[instances]]
name = "self"
kind = "process"
`

// 使用环境变量覆盖配置
func overrideWithEnv(cfg *AppConfig) {
	for i, inst := range cfg.Instances {
		if addr := getEnvForInstance(inst.Name, "ADDR"); addr != "" {
			cfg.Instances[i].Addr = addr
		}
	}

	// 日志配置
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
	if level := os.Getenv("INSTREG_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
}

// 获取实例相关的环境变量
func getEnvForInstance(name, suffix string) string {
	key := strings.ToUpper(strings.NewReplacer("-", "_", ".", "_").Replace(name))

	// 尝试多种环境变量命名格式
	envNames := []string{
		fmt.Sprintf("INSTREG_%s_%s", key, suffix),
		fmt.Sprintf("%s_%s", key, suffix),
	}

	for _, envName := range envNames {
		if value := os.Getenv(envName); value != "" {
			return value
		}
	}

	return ""
}

// 验证配置
func validateConfig(cfg *AppConfig) error {
	// 验证日志级别
	validLevels := []string{"debug", "info", "warn", "error"}
	levelValid := false
	for _, level := range validLevels {
		if cfg.Logging.Level == level {
			levelValid = true
			break
		}
	}
	if !levelValid {
		return errors.NewConfigErrorWithDetails("无效的日志级别", cfg.Logging.Level)
	}

	for i, inst := range cfg.Instances {
		if inst.Name == "" {
			return errors.NewConfigErrorWithDetails("实例缺少名称", fmt.Sprintf("instances[%d]", i))
		}
		if inst.Kind == "" {
			return errors.NewConfigErrorWithDetails("实例缺少种类", fmt.Sprintf("实例: %s", inst.Name))
		}
	}

	return nil
}

// 获取当前配置
func GetConfig() *AppConfig {
	return Config
}

// 获取指定实例的配置
func GetInstanceConfig(name string) (InstanceConfig, error) {
	if Config == nil {
		return InstanceConfig{}, errors.NewError(errors.ErrCodeInitializationFailed, "配置未初始化")
	}

	for _, inst := range Config.Instances {
		if inst.Name == name {
			return inst, nil
		}
	}

	return InstanceConfig{}, errors.NewErrorWithDetails(errors.ErrCodeConfigNotFound, "实例未配置",
		fmt.Sprintf("实例: %s", name))
}
