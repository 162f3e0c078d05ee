package registry

import "github.com/rs/zerolog"

type options struct {
	classifier   Classifier
	fallbackType string
	logger       zerolog.Logger
}

func defaultOptions() options {
	return options{
		fallbackType: UnknownType,
		logger:       zerolog.Nop(),
	}
}

// Option 配置注册表
type Option func(*options)

// WithClassifier 替换默认的类型推断步骤
func WithClassifier(c Classifier) Option {
	return func(o *options) {
		o.classifier = c
	}
}

// WithFallbackType 设置默认分类器无法推断类型名时使用的标签，空字符串会被忽略
func WithFallbackType(label string) Option {
	return func(o *options) {
		if label != "" {
			o.fallbackType = label
		}
	}
}

// WithLogger 设置注册表的调试日志输出，默认不输出任何日志
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
