package registry

import "reflect"

// Entry 是一个已注册实例的完整记录
type Entry struct {
	// Name 实例的唯一名称，注册后不可变
	Name string
	// Instance 注册的实例本身，注册表只保存引用，不复制也不检查其内容
	Instance any
	// Type 人类可读的类型标签，由调用方提供或在注册时推断
	Type string
	// TypeHandle 实例的运行时类型，仅用于调试和内省；实例为 nil 时为 nil
	TypeHandle reflect.Type
}

// Summary 是 List 返回的条目摘要，不包含实例和类型句柄
type Summary struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// Summary 返回条目的摘要
func (e Entry) Summary() Summary {
	return Summary{Name: e.Name, Type: e.Type}
}

// Registry 定义按名称保存共享实例的注册表接口
type Registry interface {
	// Register 以推断的类型标签注册实例，名称已存在时返回 ErrDuplicateName
	Register(name string, instance any) error
	// RegisterAs 以指定的类型标签注册实例，typeLabel 为空时等同于 Register
	RegisterAs(name, typeLabel string, instance any) error
	// Get 返回注册时的同一个实例引用，名称不存在时返回 ErrNotFound
	Get(name string) (any, error)
	// Has 检查名称是否已注册
	Has(name string) bool
	// GetEntry 返回条目的完整元数据，名称不存在时第二个返回值为 false
	GetEntry(name string) (Entry, bool)
	// List 按注册顺序列出所有条目的摘要
	List() []Summary
	// ListByType 列出指定类型标签的条目摘要
	ListByType(typeLabel string) []Summary
	// Len 返回已注册的条目数量
	Len() int
	// Clear 清空注册表中的所有条目
	Clear()
}
