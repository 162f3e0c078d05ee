package errors

import "fmt"

// NewError 创建新的错误
func NewError(code, message string) *AppError {
	err := &AppError{
		Code:    code,
		Message: message,
	}
	return err.WithStack()
}

// NewErrorWithDetails 创建带详情的错误
func NewErrorWithDetails(code, message, details string) *AppError {
	err := &AppError{
		Code:    code,
		Message: message,
		Details: details,
	}
	return err.WithStack()
}

// WrapError 包装现有错误
func WrapError(code, message string, cause error) *AppError {
	details := ""
	if cause != nil {
		details = cause.Error()
	}

	err := &AppError{
		Code:    code,
		Message: message,
		Details: details,
		Cause:   cause,
	}
	return err.WithStack()
}

// WrapErrorWithDetails 包装现有错误并添加详情
func WrapErrorWithDetails(code, message string, cause error, details string) *AppError {
	err := &AppError{
		Code:    code,
		Message: message,
		Details: details,
		Cause:   cause,
	}
	return err.WithStack()
}

// 预定义错误创建函数

// 系统错误
func NewSystemError(message string) *AppError {
	return NewError(ErrCodeSystemError, message)
}

func WrapSystemError(message string, cause error) *AppError {
	return WrapError(ErrCodeSystemError, message, cause)
}

// 配置错误
func NewConfigError(message string) *AppError {
	return NewError(ErrCodeConfigInvalid, message)
}

func NewConfigErrorWithDetails(message, details string) *AppError {
	return NewErrorWithDetails(ErrCodeConfigInvalid, message, details)
}

func WrapConfigError(message string, cause error) *AppError {
	return WrapError(ErrCodeConfigInvalid, message, cause)
}

// 注册表错误

// NewDuplicateNameError 创建名称重复错误
func NewDuplicateNameError(name string) *AppError {
	return NewErrorWithDetails(ErrCodeDuplicateName, "实例名称已被注册",
		fmt.Sprintf("名称: %s", name))
}

// NewInstanceNotFoundError 创建实例未找到错误
func NewInstanceNotFoundError(name string) *AppError {
	return NewErrorWithDetails(ErrCodeInstanceNotFound, "实例未注册",
		fmt.Sprintf("名称: %s", name))
}

// NewTypeMismatchError 创建类型不匹配错误
func NewTypeMismatchError(name, want, got string) *AppError {
	return NewErrorWithDetails(ErrCodeTypeMismatch, "实例类型不匹配",
		fmt.Sprintf("名称: %s, 期望: %s, 实际: %s", name, want, got))
}

// 实例构建错误

func NewUnsupportedKindError(kind string) *AppError {
	return NewErrorWithDetails(ErrCodeUnsupportedKind, "不支持的实例种类",
		fmt.Sprintf("种类: %s", kind))
}

func WrapProbeError(message string, cause error) *AppError {
	return WrapError(ErrCodeProbeFailed, message, cause)
}
