package errors

// DefaultErrorHandler 默认错误处理器实现
type DefaultErrorHandler struct{}

// GetUserFriendlyMessage 获取用户友好的错误消息
func (h *DefaultErrorHandler) GetUserFriendlyMessage(err error) string {
	if err == nil {
		return ""
	}

	appErr, ok := AsAppError(err)
	if !ok {
		return "发生未知错误"
	}

	switch appErr.Code {
	// 系统错误
	case ErrCodeSystemError, ErrCodeInternalErr:
		return "系统错误，请联系技术支持"
	case ErrCodeInitializationFailed:
		return "应用程序初始化失败，请检查配置"
	case ErrCodeInvalidParam:
		return "参数无效，请检查输入"

	// 配置错误
	case ErrCodeConfigNotFound:
		return "配置文件未找到，请检查配置文件路径"
	case ErrCodeConfigInvalid, ErrCodeConfigLoadFailed, ErrCodeConfigParseFailed:
		return "配置文件错误，请检查配置文件"

	// 注册表错误
	case ErrCodeDuplicateName:
		return "该名称已被注册，请换一个名称或直接使用已有实例"
	case ErrCodeInstanceNotFound:
		return "实例未注册，请先注册再获取"
	case ErrCodeTypeMismatch:
		return "实例类型与期望不符，请检查类型断言"

	// 实例构建错误
	case ErrCodeUnsupportedKind:
		return "配置中的实例种类不受支持，请检查 kind 字段"
	case ErrCodeProbeFailed:
		return "主机信息探测失败，请检查运行环境"

	default:
		return appErr.Message
	}
}

// 默认错误处理器实例
var DefaultHandler = &DefaultErrorHandler{}

// GetUserFriendlyMessage 获取用户友好的错误消息
func GetUserFriendlyMessage(err error) string {
	return DefaultHandler.GetUserFriendlyMessage(err)
}
