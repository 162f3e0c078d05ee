package registry

import (
	"fmt"
	"reflect"

	"instreg/internal/common/errors"
)

// GetAs 获取实例并在调用方断言为 T
func GetAs[T any](r Registry, name string) (T, error) {
	var zero T

	instance, err := r.Get(name)
	if err != nil {
		return zero, err
	}

	typed, ok := instance.(T)
	if !ok {
		want := reflect.TypeOf((*T)(nil)).Elem().String()
		return zero, errors.NewTypeMismatchError(name, want, fmt.Sprintf("%T", instance))
	}
	return typed, nil
}

// MustGet 与 GetAs 相同，但在失败时 panic，适合在启动阶段快速失败
func MustGet[T any](r Registry, name string) T {
	typed, err := GetAs[T](r, name)
	if err != nil {
		panic(err)
	}
	return typed
}
