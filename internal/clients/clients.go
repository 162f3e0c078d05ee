package clients

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"instreg/internal/common/errors"
	"instreg/internal/config"
	"instreg/internal/util"
)

// Factory 根据实例配置构建一个实例
type Factory func(ctx context.Context, cfg config.InstanceConfig) (any, error)

var (
	factories = map[string]Factory{
		"redis":   NewRedisClient,
		"kafka":   NewKafkaProducer,
		"sqs":     NewSQSQueue,
		"process": NewProcessProbe,
		"host":    NewHostProbe,
		"memory":  NewMemoryProbe,
	}
	factoriesMu sync.RWMutex
)

// RegisterFactory 注册或替换指定种类的工厂函数
func RegisterFactory(kind string, factory Factory) {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()

	factories[kind] = factory
	util.Debugw("实例工厂已注册", map[string]any{"kind": kind})
}

// Kinds 列出所有支持的实例种类
func Kinds() []string {
	factoriesMu.RLock()
	defer factoriesMu.RUnlock()

	kinds := make([]string, 0, len(factories))
	for kind := range factories {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// Build 按配置中的 kind 构建实例
func Build(ctx context.Context, cfg config.InstanceConfig) (any, error) {
	factoriesMu.RLock()
	factory, exists := factories[cfg.Kind]
	factoriesMu.RUnlock()

	if !exists {
		return nil, errors.NewUnsupportedKindError(cfg.Kind).
			WithDetails(fmt.Sprintf("种类: %s, 可用: %s", cfg.Kind, strings.Join(Kinds(), ", ")))
	}
	return factory(ctx, cfg)
}

// RedisClient Redis 连接描述
type RedisClient struct {
	ID   uuid.UUID
	Addr string
	DB   int
}

// NewRedisClient 创建 Redis 客户端描述
func NewRedisClient(_ context.Context, cfg config.InstanceConfig) (any, error) {
	if cfg.Addr == "" {
		return nil, errors.NewErrorWithDetails(errors.ErrCodeInvalidParam, "Redis 实例缺少 addr",
			fmt.Sprintf("实例: %s", cfg.Name))
	}
	return &RedisClient{ID: uuid.New(), Addr: cfg.Addr, DB: cfg.DB}, nil
}

func (c *RedisClient) String() string {
	return fmt.Sprintf("redis://%s/%d", c.Addr, c.DB)
}

// KafkaProducer Kafka 生产者描述
type KafkaProducer struct {
	ID      uuid.UUID
	Brokers []string
	Topic   string
}

// NewKafkaProducer 创建 Kafka 生产者描述
func NewKafkaProducer(_ context.Context, cfg config.InstanceConfig) (any, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.NewErrorWithDetails(errors.ErrCodeInvalidParam, "Kafka 实例缺少 brokers",
			fmt.Sprintf("实例: %s", cfg.Name))
	}
	brokers := append([]string(nil), cfg.Brokers...)
	return &KafkaProducer{ID: uuid.New(), Brokers: brokers, Topic: cfg.Topic}, nil
}

func (p *KafkaProducer) String() string {
	return fmt.Sprintf("kafka://%s/%s", strings.Join(p.Brokers, ","), p.Topic)
}

// SQSQueue SQS 队列描述
type SQSQueue struct {
	ID       uuid.UUID
	QueueURL string
	Region   string
}

// NewSQSQueue 创建 SQS 队列描述
func NewSQSQueue(_ context.Context, cfg config.InstanceConfig) (any, error) {
	if cfg.QueueURL == "" {
		return nil, errors.NewErrorWithDetails(errors.ErrCodeInvalidParam, "SQS 实例缺少 queue_url",
			fmt.Sprintf("实例: %s", cfg.Name))
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	return &SQSQueue{ID: uuid.New(), QueueURL: cfg.QueueURL, Region: region}, nil
}

func (q *SQSQueue) String() string {
	return q.QueueURL
}
