package registry

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "instreg/internal/common/errors"
)

type TestClass struct {
	value int
}

type fakeClient struct {
	addr string
}

func TestNewBaseRegistry(t *testing.T) {
	reg := NewBaseRegistry()

	require.NotNil(t, reg)
	assert.Zero(t, reg.Len())
	assert.NotNil(t, reg.List())
	assert.Empty(t, reg.List())
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := NewBaseRegistry()
	instance := &TestClass{value: 42}

	assert.False(t, reg.Has("test"))
	require.NoError(t, reg.Register("test", instance))
	assert.True(t, reg.Has("test"))

	got, err := reg.Get("test")
	require.NoError(t, err)
	assert.Same(t, instance, got)

	// 重复获取返回同一个引用
	again, err := reg.Get("test")
	require.NoError(t, err)
	assert.Same(t, got, again)
}

func TestRegistry_RegisterDuplicate(t *testing.T) {
	reg := NewBaseRegistry()
	original := &fakeClient{addr: "a"}
	replacement := &fakeClient{addr: "b"}

	require.NoError(t, reg.RegisterAs("redis", "Redis", original))

	err := reg.RegisterAs("redis", "Other", replacement)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.True(t, apperrors.IsErrorCode(err, apperrors.ErrCodeDuplicateName))

	err = reg.Register("redis", replacement)
	assert.ErrorIs(t, err, ErrDuplicateName)

	// 原条目保持不变
	got, err := reg.Get("redis")
	require.NoError(t, err)
	assert.Same(t, original, got)

	entry, ok := reg.GetEntry("redis")
	require.True(t, ok)
	assert.Equal(t, "Redis", entry.Type)
	assert.Equal(t, 1, reg.Len())
}

func TestRegistry_GetNotFound(t *testing.T) {
	reg := NewBaseRegistry()

	got, err := reg.Get("missing")
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrNotFound)

	var appErr *Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "名称: missing", appErr.Details)
}

func TestRegistry_GetEntry(t *testing.T) {
	reg := NewBaseRegistry()
	instance := &TestClass{}

	require.NoError(t, reg.Register("tc", instance))

	entry, ok := reg.GetEntry("tc")
	require.True(t, ok)
	assert.Equal(t, "tc", entry.Name)
	assert.Same(t, instance, entry.Instance)
	assert.Equal(t, "TestClass", entry.Type)
	assert.Equal(t, reflect.TypeOf(instance), entry.TypeHandle)

	_, ok = reg.GetEntry("missing")
	assert.False(t, ok)
}

func TestRegistry_RegisterAsEmptyLabelInfers(t *testing.T) {
	reg := NewBaseRegistry()

	require.NoError(t, reg.RegisterAs("tc", "", &TestClass{}))

	entry, _ := reg.GetEntry("tc")
	assert.Equal(t, "TestClass", entry.Type)
}

func TestRegistry_NilInstance(t *testing.T) {
	reg := NewBaseRegistry()

	require.NoError(t, reg.Register("nothing", nil))
	assert.True(t, reg.Has("nothing"))

	got, err := reg.Get("nothing")
	require.NoError(t, err)
	assert.Nil(t, got)

	entry, ok := reg.GetEntry("nothing")
	require.True(t, ok)
	assert.Equal(t, UnknownType, entry.Type)
	assert.Nil(t, entry.TypeHandle)
}

func TestRegistry_List(t *testing.T) {
	reg := NewBaseRegistry()

	require.NoError(t, reg.RegisterAs("redis", "Redis", &fakeClient{}))
	require.NoError(t, reg.RegisterAs("kafka", "Kafka", &fakeClient{}))
	require.NoError(t, reg.RegisterAs("sqs", "SQS", &fakeClient{}))

	list := reg.List()
	assert.Len(t, list, 3)
	assert.ElementsMatch(t, []Summary{
		{Name: "redis", Type: "Redis"},
		{Name: "kafka", Type: "Kafka"},
		{Name: "sqs", Type: "SQS"},
	}, list)
	assert.Equal(t, 3, reg.Len())

	// 同一组注册的枚举结果是稳定的
	assert.Equal(t, list, reg.List())
}

func TestRegistry_ListByType(t *testing.T) {
	reg := NewBaseRegistry()
	clients := map[string]*fakeClient{
		"redis-cache":   {addr: "cache"},
		"redis-session": {addr: "session"},
		"redis-queue":   {addr: "queue"},
	}

	for name, client := range clients {
		require.NoError(t, reg.RegisterAs(name, "Redis", client))
	}
	require.NoError(t, reg.RegisterAs("kafka", "Kafka", &fakeClient{}))

	for name, client := range clients {
		got, err := reg.Get(name)
		require.NoError(t, err)
		assert.Same(t, client, got)
	}

	redis := reg.ListByType("Redis")
	assert.ElementsMatch(t, []Summary{
		{Name: "redis-cache", Type: "Redis"},
		{Name: "redis-session", Type: "Redis"},
		{Name: "redis-queue", Type: "Redis"},
	}, redis)

	assert.NotNil(t, reg.ListByType("Nope"))
	assert.Empty(t, reg.ListByType("Nope"))
}

func TestRegistry_Clear(t *testing.T) {
	reg := NewBaseRegistry()
	names := []string{"redis", "kafka", "sqs"}
	for _, name := range names {
		require.NoError(t, reg.Register(name, &fakeClient{}))
	}

	reg.Clear()

	for _, name := range names {
		assert.False(t, reg.Has(name))
	}
	assert.Empty(t, reg.List())
	assert.Zero(t, reg.Len())

	// 空注册表上再次清空是无操作
	reg.Clear()
	assert.Empty(t, reg.List())

	// 清空后可以继续使用，原名称可以重新注册
	require.NoError(t, reg.Register("redis", &fakeClient{}))
	assert.Equal(t, []Summary{{Name: "redis", Type: "fakeClient"}}, reg.List())
}

func TestRegistry_WithClassifier(t *testing.T) {
	reg := NewBaseRegistry(WithClassifier(func(instance any) string {
		return fmt.Sprintf("kind:%T", instance)
	}))

	require.NoError(t, reg.Register("n", 7))

	entry, _ := reg.GetEntry("n")
	assert.Equal(t, "kind:int", entry.Type)
}

func TestRegistry_WithFallbackType(t *testing.T) {
	reg := NewBaseRegistry(WithFallbackType("Anonymous"))

	require.NoError(t, reg.Register("fn", func() {}))
	require.NoError(t, reg.Register("tc", &TestClass{}))

	fn, _ := reg.GetEntry("fn")
	tc, _ := reg.GetEntry("tc")
	assert.Equal(t, "Anonymous", fn.Type)
	assert.Equal(t, "TestClass", tc.Type)
}

func TestRegistry_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	reg := NewBaseRegistry(WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))

	require.NoError(t, reg.RegisterAs("redis", "Redis", &fakeClient{}))
	assert.Contains(t, buf.String(), `"name":"redis"`)
	assert.Contains(t, buf.String(), `"type":"Redis"`)

	buf.Reset()
	reg.Clear()
	assert.Contains(t, buf.String(), `"removed":1`)
}

func TestRegistry_ConcurrentRegisterSameName(t *testing.T) {
	reg := NewBaseRegistry()
	const workers = 64

	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		successes  int
		duplicates int
		winner     *fakeClient
	)

	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			client := &fakeClient{addr: fmt.Sprintf("worker-%d", i)}
			<-start

			err := reg.Register("shared", client)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
				winner = client
			case errors.Is(err, ErrDuplicateName):
				duplicates++
			}
		}(i)
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, duplicates)

	got, err := reg.Get("shared")
	require.NoError(t, err)
	assert.Same(t, winner, got)
	assert.Equal(t, 1, reg.Len())
}

func TestRegistry_ConcurrentMixedOperations(t *testing.T) {
	reg := NewBaseRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("svc-%d", i)
			assert.NoError(t, reg.Register(name, &fakeClient{}))
			assert.True(t, reg.Has(name))
			_, err := reg.Get(name)
			assert.NoError(t, err)
			_ = reg.List()
			_ = reg.ListByType("fakeClient")
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 16, reg.Len())
	assert.Len(t, reg.ListByType("fakeClient"), 16)
}
