package registry

import "sync"

// 进程级注册表实例：首次访问时创建，进程结束前一直存在，只能通过 Clear 重置内容
var (
	globalRegistry Registry
	globalOnce     sync.Once
)

// GetRegistry 获取进程内唯一的注册表实例
func GetRegistry() Registry {
	return InitRegistry()
}

// InitRegistry 以给定选项创建进程级注册表并返回它。
// 只有在第一次调用 GetRegistry 或 InitRegistry 之前调用才会生效。
func InitRegistry(opts ...Option) Registry {
	globalOnce.Do(func() {
		globalRegistry = NewRegistry(opts...)
	})
	return globalRegistry
}
