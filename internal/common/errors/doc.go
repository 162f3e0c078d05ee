// Package errors 提供统一的错误处理系统
//
// 这个包实现了一个简化的错误处理框架，包括：
// - 统一的错误代码定义
// - 基本的错误创建方法
// - 用户友好的错误消息
// - panic 到错误的转换
//
// 基本用法：
//
//  1. 创建错误：
//     err := errors.NewError(errors.ErrCodeConfigNotFound, "配置文件未找到")
//     wrappedErr := errors.WrapError(errors.ErrCodeConfigInvalid, "配置文件无效", originalErr)
//
//  2. 使用预定义错误创建函数：
//     dupErr := errors.NewDuplicateNameError("redis")
//     missErr := errors.NewInstanceNotFoundError("kafka")
//
//  3. 检查错误类型：
//     if errors.IsErrorCode(err, errors.ErrCodeDuplicateName) {
//     // 处理名称重复
//     }
//     // AppError 之间按代码比较，也可以使用标准库 errors.Is
//
//  4. 捕获 panic：
//     err := errors.Guard(func() error { ... })
package errors
