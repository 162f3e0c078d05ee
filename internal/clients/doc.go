// Package clients 构建可注册到进程级注册表的示例实例
//
// 每种实例都对应一个 kind：
// 1. redis、kafka、sqs 构建只保存连接参数的客户端描述，不会建立任何连接
// 2. process、host、memory 通过 gopsutil 探测当前主机
//
// 注册表不管理这些实例的生命周期，连接和关闭由使用方负责。
package clients
