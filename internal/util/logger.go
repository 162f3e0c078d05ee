package util

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"instreg/internal/common/errors"
)

// 日志级别
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// 日志级别到 zerolog 级别的映射
var zerologLevels = map[LogLevel]zerolog.Level{
	LogLevelDebug: zerolog.DebugLevel,
	LogLevelInfo:  zerolog.InfoLevel,
	LogLevelWarn:  zerolog.WarnLevel,
	LogLevelError: zerolog.ErrorLevel,
}

const timeFormat = "2006-01-02 15:04:05"

// 日志器结构
type Logger struct {
	level  LogLevel
	format string // "json" 或 "text"
	output io.Writer
	zl     zerolog.Logger
}

// 全局日志器实例
var DefaultLogger *Logger

// 初始化默认日志器
func init() {
	DefaultLogger = NewLogger(LogLevelInfo, "text", os.Stdout, true)
}

// 创建新的日志器
func NewLogger(level LogLevel, format string, output io.Writer, enableColor bool) *Logger {
	var writer io.Writer = output
	if format != "json" {
		writer = zerolog.ConsoleWriter{
			Out:        output,
			NoColor:    !enableColor,
			TimeFormat: timeFormat,
		}
	}

	zl := zerolog.New(writer).
		Level(zerologLevels[level]).
		With().
		Timestamp().
		Logger()

	return &Logger{
		level:  level,
		format: format,
		output: output,
		zl:     zl,
	}
}

// 从字符串解析日志级别
func ParseLogLevel(levelStr string) LogLevel {
	switch strings.ToLower(levelStr) {
	case "debug":
		return LogLevelDebug
	case "info":
		return LogLevelInfo
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// 设置日志级别
func (l *Logger) SetLevel(level LogLevel) {
	l.level = level
	l.zl = l.zl.Level(zerologLevels[level])
}

// Level 返回当前日志级别
func (l *Logger) Level() LogLevel {
	return l.level
}

// Zerolog 返回底层的 zerolog 日志器，供需要结构化日志的组件使用
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}

// 记录日志
func (l *Logger) log(level LogLevel, message string, fields map[string]interface{}) {
	var event *zerolog.Event
	switch level {
	case LogLevelDebug:
		event = l.zl.Debug()
	case LogLevelWarn:
		event = l.zl.Warn()
	case LogLevelError:
		event = l.zl.Error()
	default:
		event = l.zl.Info()
	}

	if len(fields) > 0 {
		event = event.Fields(fields)
	}
	event.Msg(message)
}

// Debug级别日志
func (l *Logger) Debug(message string) {
	l.log(LogLevelDebug, message, nil)
}

// Debug级别日志（带字段）
func (l *Logger) Debugw(message string, fields map[string]interface{}) {
	l.log(LogLevelDebug, message, fields)
}

// Info级别日志
func (l *Logger) Info(message string) {
	l.log(LogLevelInfo, message, nil)
}

// Info级别日志（带字段）
func (l *Logger) Infow(message string, fields map[string]interface{}) {
	l.log(LogLevelInfo, message, fields)
}

// Warn级别日志
func (l *Logger) Warn(message string) {
	l.log(LogLevelWarn, message, nil)
}

// Warn级别日志（带字段）
func (l *Logger) Warnw(message string, fields map[string]interface{}) {
	l.log(LogLevelWarn, message, fields)
}

// Error级别日志
func (l *Logger) Error(message string) {
	l.log(LogLevelError, message, nil)
}

// Error级别日志（带字段）
func (l *Logger) Errorw(message string, fields map[string]interface{}) {
	l.log(LogLevelError, message, fields)
}

// 记录错误对象
func (l *Logger) LogError(err error, context string) {
	l.LogErrorWithFields(err, context, nil)
}

// 记录错误对象（带额外字段）
func (l *Logger) LogErrorWithFields(err error, context string, extraFields map[string]interface{}) {
	if err == nil {
		return
	}

	fields := map[string]interface{}{
		"context": context,
		"error":   err.Error(),
	}

	for key, value := range extraFields {
		fields[key] = value
	}

	if appErr, ok := errors.AsAppError(err); ok {
		fields["error_code"] = appErr.Code
		if appErr.Details != "" {
			fields["details"] = appErr.Details
		}
	}

	l.log(LogLevelError, "发生错误", fields)
}

// 全局日志函数（使用默认日志器）
func Debug(message string) {
	DefaultLogger.Debug(message)
}

func Debugw(message string, fields map[string]interface{}) {
	DefaultLogger.Debugw(message, fields)
}

func Info(message string) {
	DefaultLogger.Info(message)
}

func Infow(message string, fields map[string]interface{}) {
	DefaultLogger.Infow(message, fields)
}

func Warn(message string) {
	DefaultLogger.Warn(message)
}

func Warnw(message string, fields map[string]interface{}) {
	DefaultLogger.Warnw(message, fields)
}

func Error(message string) {
	DefaultLogger.Error(message)
}

func Errorw(message string, fields map[string]interface{}) {
	DefaultLogger.Errorw(message, fields)
}

func LogError(err error, context string) {
	DefaultLogger.LogError(err, context)
}

func LogErrorWithFields(err error, context string, extraFields map[string]interface{}) {
	DefaultLogger.LogErrorWithFields(err, context, extraFields)
}

// Zerolog 返回默认日志器的 zerolog 实例
func Zerolog() zerolog.Logger {
	return DefaultLogger.Zerolog()
}

// 初始化日志器（根据配置）
func InitLogger(level, format, output, file string) error {
	logLevel := ParseLogLevel(level)

	var writer io.Writer
	var enableColor bool

	switch output {
	case "stdout":
		writer = os.Stdout
		enableColor = true
	case "stderr":
		writer = os.Stderr
		enableColor = true
	case "file":
		if file == "" {
			return errors.NewError(errors.ErrCodeConfigInvalid, "日志输出为文件时必须指定文件路径")
		}
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return errors.WrapError(errors.ErrCodeConfigInvalid, "无法打开日志文件", err)
		}
		writer = f
		enableColor = false
	default:
		writer = os.Stdout
		enableColor = true
	}

	zerolog.TimeFieldFormat = time.RFC3339
	DefaultLogger = NewLogger(logLevel, format, writer, enableColor)
	return nil
}
