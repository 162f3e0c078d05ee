// Package registry 提供进程级的命名实例注册表
//
// 这个包让应用中互不相关的部分按名称取得同一个共享实例，而不必通过构造参数层层传递，支持：
// - 注册、获取、存在性检查、元数据查询、列表和清空操作
// - 名称唯一，重复注册返回 ErrDuplicateName，不会覆盖已有条目
// - 类型标签可显式提供，也可由可替换的分类器根据运行时类型推断
// - 线程安全的并发访问
//
// 注册表只保存引用，不管理实例的生命周期（连接、关闭、健康检查均由调用方负责），也不做依赖注入。
//
// 基本用法：
//
//  1. 获取进程级注册表：
//     reg := registry.GetRegistry()
//
//  2. 注册实例：
//     err := reg.RegisterAs("redis", "Redis", redisClient)
//     err = reg.Register("cache", cache) // 类型标签推断为 "Cache"
//
//  3. 获取实例：
//     instance, err := reg.Get("redis")
//     client, err := registry.GetAs[*RedisClient](reg, "redis")
//
//  4. 探测与内省：
//     if reg.Has("redis") { ... }
//     if entry, ok := reg.GetEntry("redis"); ok { fmt.Println(entry.Type) }
//
//  5. 列出条目：
//     for _, s := range reg.List() { fmt.Println(s.Name, s.Type) }
//     redisOnly := reg.ListByType("Redis")
//
//  6. 清空注册表（通常用于测试隔离）：
//     reg.Clear()
package registry
