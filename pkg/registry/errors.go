package registry

import "instreg/internal/common/errors"

// Error 是注册表返回的错误类型
type Error = errors.AppError

// 哨兵错误，配合 errors.Is 使用。AppError 按错误代码比较，详情不参与匹配。
var (
	ErrDuplicateName = &Error{Code: errors.ErrCodeDuplicateName, Message: "实例名称已被注册"}
	ErrNotFound      = &Error{Code: errors.ErrCodeInstanceNotFound, Message: "实例未注册"}
	ErrTypeMismatch  = &Error{Code: errors.ErrCodeTypeMismatch, Message: "实例类型不匹配"}
)
