package errors

import "fmt"

// Guard 执行 fn，并把其中发生的 panic 转换为 AppError 返回
func Guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			switch e := r.(type) {
			case *AppError:
				err = e
			case error:
				err = WrapError(ErrCodeSystemError, "系统发生panic", e)
			default:
				err = NewErrorWithDetails(ErrCodeSystemError, "系统发生panic", fmt.Sprint(e))
			}
		}
	}()

	return fn()
}
