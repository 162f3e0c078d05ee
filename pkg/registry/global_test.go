package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRegistry_SameInstance(t *testing.T) {
	first := GetRegistry()
	t.Cleanup(first.Clear)

	second := GetRegistry()
	assert.Same(t, first, second)

	// 在首次访问之后再初始化不会替换实例
	assert.Same(t, first, InitRegistry(WithFallbackType("Ignored")))
}

func TestGetRegistry_SharedMutations(t *testing.T) {
	reg := GetRegistry()
	t.Cleanup(reg.Clear)
	reg.Clear()

	shared := &TestClass{value: 1}
	require.NoError(t, reg.Register("shared", shared))

	other := GetRegistry()
	assert.True(t, other.Has("shared"))

	got, err := other.Get("shared")
	require.NoError(t, err)
	assert.Same(t, shared, got)

	other.Clear()
	assert.False(t, reg.Has("shared"))
	assert.Empty(t, reg.List())
}
