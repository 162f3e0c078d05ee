package registry

// NewRegistry 创建一个新的注册表
func NewRegistry(opts ...Option) Registry {
	return NewBaseRegistry(opts...)
}
