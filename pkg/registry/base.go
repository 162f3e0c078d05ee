package registry

import (
	"reflect"
	"sync"

	"github.com/rs/zerolog"

	"instreg/internal/common/errors"
)

// BaseRegistry 是注册表的基础实现，所有操作都由同一把读写锁保护
type BaseRegistry struct {
	mu       sync.RWMutex
	entries  map[string]Entry
	order    []string
	classify Classifier
	logger   zerolog.Logger
}

// NewBaseRegistry 创建一个新的基础注册表实例
func NewBaseRegistry(opts ...Option) *BaseRegistry {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	classify := o.classifier
	if classify == nil {
		classify = TypeNameClassifier(o.fallbackType)
	}

	return &BaseRegistry{
		entries:  make(map[string]Entry),
		classify: classify,
		logger:   o.logger,
	}
}

// Register 注册一个新的实例，类型标签由分类器推断
func (r *BaseRegistry) Register(name string, instance any) error {
	return r.RegisterAs(name, "", instance)
}

// RegisterAs 以指定类型标签注册一个新的实例
func (r *BaseRegistry) RegisterAs(name, typeLabel string, instance any) error {
	if typeLabel == "" {
		typeLabel = r.classify(instance)
	}

	entry := Entry{
		Name:       name,
		Instance:   instance,
		Type:       typeLabel,
		TypeHandle: reflect.TypeOf(instance),
	}

	if err := r.insert(entry); err != nil {
		r.logger.Debug().Str("name", name).Msg("拒绝重复注册")
		return err
	}

	r.logger.Debug().Str("name", name).Str("type", typeLabel).Msg("实例注册成功")
	return nil
}

// insert 在写锁内完成存在性检查和插入
func (r *BaseRegistry) insert(entry Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[entry.Name]; exists {
		return errors.NewDuplicateNameError(entry.Name)
	}

	r.entries[entry.Name] = entry
	r.order = append(r.order, entry.Name)
	return nil
}

// Get 根据名称获取实例
func (r *BaseRegistry) Get(name string) (any, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.entries[name]
	if !exists {
		return nil, errors.NewInstanceNotFoundError(name)
	}
	return entry.Instance, nil
}

// Has 检查注册表中是否存在指定名称
func (r *BaseRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.entries[name]
	return exists
}

// GetEntry 获取条目元数据
func (r *BaseRegistry) GetEntry(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.entries[name]
	return entry, exists
}

// List 列出注册表中的所有条目摘要
func (r *BaseRegistry) List() []Summary {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]Summary, 0, len(r.order))
	for _, name := range r.order {
		items = append(items, r.entries[name].Summary())
	}
	return items
}

// ListByType 根据类型标签列出条目摘要
func (r *BaseRegistry) ListByType(typeLabel string) []Summary {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]Summary, 0)
	for _, name := range r.order {
		if entry := r.entries[name]; entry.Type == typeLabel {
			items = append(items, entry.Summary())
		}
	}
	return items
}

// Len 返回条目数量
func (r *BaseRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// Clear 清空注册表中的所有条目
func (r *BaseRegistry) Clear() {
	r.mu.Lock()
	removed := len(r.entries)
	r.entries = make(map[string]Entry)
	r.order = nil
	r.mu.Unlock()

	r.logger.Debug().Int("removed", removed).Msg("注册表已清空")
}
