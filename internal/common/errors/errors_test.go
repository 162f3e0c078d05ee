package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewError(t *testing.T) {
	err := NewError(ErrCodeInvalidParam, "测试错误")

	assert.Equal(t, ErrCodeInvalidParam, err.Code)
	assert.Equal(t, "测试错误", err.Message)
	assert.Equal(t, "[INVALID_PARAM] 测试错误", err.Error())
	assert.NotEmpty(t, err.Stack)
}

func TestWrapError(t *testing.T) {
	originalErr := stderrors.New("原始错误")
	wrappedErr := WrapError(ErrCodeConfigParseFailed, "解析失败", originalErr)

	assert.Equal(t, ErrCodeConfigParseFailed, wrappedErr.Code)
	assert.Equal(t, "原始错误", wrappedErr.Details)
	assert.Same(t, originalErr, wrappedErr.Unwrap())
	assert.ErrorIs(t, wrappedErr, originalErr)
}

func TestIsErrorCode(t *testing.T) {
	appErr := NewError(ErrCodeConfigInvalid, "配置无效")
	normalErr := stderrors.New("普通错误")

	assert.True(t, IsErrorCode(appErr, ErrCodeConfigInvalid))
	assert.False(t, IsErrorCode(normalErr, ErrCodeConfigInvalid))
	assert.False(t, IsErrorCode(appErr, ErrCodeDuplicateName))

	// 被 fmt.Errorf 包装后仍能识别
	assert.True(t, IsErrorCode(fmt.Errorf("外层: %w", appErr), ErrCodeConfigInvalid))
}

func TestAppErrorIsComparesCode(t *testing.T) {
	sentinel := &AppError{Code: ErrCodeDuplicateName}

	assert.ErrorIs(t, NewDuplicateNameError("redis"), sentinel)
	assert.NotErrorIs(t, NewInstanceNotFoundError("redis"), sentinel)
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrCodeInstanceNotFound, GetErrorCode(NewInstanceNotFoundError("x")))
	assert.Equal(t, ErrCodeInternalErr, GetErrorCode(stderrors.New("plain")))
	assert.Equal(t, "名称: x", GetErrorDetails(NewInstanceNotFoundError("x")))
}

func TestGetUserFriendlyMessage(t *testing.T) {
	testCases := []struct {
		err      error
		expected string
	}{
		{NewError(ErrCodeConfigNotFound, "配置文件未找到"), "配置文件未找到，请检查配置文件路径"},
		{NewDuplicateNameError("redis"), "该名称已被注册，请换一个名称或直接使用已有实例"},
		{NewInstanceNotFoundError("redis"), "实例未注册，请先注册再获取"},
		{NewError("CUSTOM", "自定义消息"), "自定义消息"},
		{stderrors.New("普通错误"), "发生未知错误"},
		{nil, ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, GetUserFriendlyMessage(tc.err))
	}
}

func TestGuard(t *testing.T) {
	t.Run("returns fn error", func(t *testing.T) {
		want := NewError(ErrCodeInvalidParam, "bad")
		assert.Same(t, want, Guard(func() error { return want }))
	})

	t.Run("app error panic", func(t *testing.T) {
		want := NewInstanceNotFoundError("kafka")
		err := Guard(func() error { panic(want) })
		assert.Same(t, want, err)
	})

	t.Run("plain error panic", func(t *testing.T) {
		cause := stderrors.New("boom")
		err := Guard(func() error { panic(cause) })
		require.Error(t, err)
		assert.True(t, IsErrorCode(err, ErrCodeSystemError))
		assert.ErrorIs(t, err, cause)
	})

	t.Run("non error panic", func(t *testing.T) {
		err := Guard(func() error { panic("oops") })
		assert.True(t, IsErrorCode(err, ErrCodeSystemError))
		assert.Equal(t, "oops", GetErrorDetails(err))
	})
}
