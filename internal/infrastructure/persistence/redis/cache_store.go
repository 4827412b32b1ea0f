package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/xiebiao/storecatalog/internal/application/cache"
	"github.com/xiebiao/storecatalog/pkg/metrics"
)

// BreakerSettings 熔断参数
type BreakerSettings struct {
	// Failures 连续失败次数达到该值后熔断
	Failures uint32
	// OpenTimeout 熔断持续时间，到期后放行一个探测请求
	OpenTimeout time.Duration
}

// CacheStore 基于Redis的缓存
// 设计说明:
// 1. 值以JSON存储，key统一加prefix便于多服务共用一个Redis
// 2. 全部Redis调用经过熔断器：Redis故障时快速跳过，不拖慢读接口
// 3. 熔断期间Get按未命中处理，Set/DeletePrefix直接返回ErrOpenState
type CacheStore struct {
	client  redis.UniversalClient
	prefix  string
	breaker *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

var _ cache.Cache = (*CacheStore)(nil)

// NewCacheStore 创建缓存
func NewCacheStore(client redis.UniversalClient, prefix string, settings BreakerSettings, logger *zap.Logger) *CacheStore {
	name := "redis-cache"
	metrics.SetGaugeVec(metrics.CircuitBreakerState, map[string]string{"name": name}, float64(gobreaker.StateClosed))

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     settings.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= settings.Failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("缓存熔断器状态变化",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
			metrics.SetGaugeVec(metrics.CircuitBreakerState, map[string]string{"name": name}, float64(to))
		},
		// 未命中不算失败
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, redis.Nil)
		},
	})

	return &CacheStore{
		client:  client,
		prefix:  prefix,
		breaker: breaker,
		logger:  logger,
	}
}

func (c *CacheStore) key(k string) string {
	return c.prefix + ":" + k
}

// Get 读取缓存
func (c *CacheStore) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := c.breaker.Execute(func() (interface{}, error) {
		return c.client.Get(ctx, c.key(key)).Bytes()
	})

	switch {
	case err == nil:
	case errors.Is(err, redis.Nil):
		recordCache("miss")
		return false, nil
	case isBreakerRejection(err):
		recordCache("skipped")
		return false, nil
	default:
		recordCache("error")
		return false, fmt.Errorf("获取缓存失败: %w", err)
	}

	if err := json.Unmarshal(raw.([]byte), dest); err != nil {
		// 结构变更后的旧数据按未命中处理，稍后被新值覆盖
		recordCache("miss")
		c.logger.Warn("缓存反序列化失败", zap.String("key", key), zap.Error(err))
		return false, nil
	}
	recordCache("hit")
	return true, nil
}

// Set 写入缓存
func (c *CacheStore) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	val, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("序列化失败: %w", err)
	}

	_, err = c.breaker.Execute(func() (interface{}, error) {
		return nil, c.client.Set(ctx, c.key(key), val, ttl).Err()
	})
	if err != nil {
		return fmt.Errorf("设置缓存失败: %w", err)
	}
	return nil
}

// DeletePrefix SCAN出前缀匹配的key后UNLINK（异步删除，不阻塞Redis）
func (c *CacheStore) DeletePrefix(ctx context.Context, prefix string) error {
	_, err := c.breaker.Execute(func() (interface{}, error) {
		pattern := c.key(prefix) + "*"
		iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()

		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			return nil, fmt.Errorf("扫描缓存key失败: %w", err)
		}

		if len(keys) > 0 {
			if err := c.client.Unlink(ctx, keys...).Err(); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("删除缓存失败: %w", err)
	}
	return nil
}

// State 熔断器当前状态
func (c *CacheStore) State() gobreaker.State {
	return c.breaker.State()
}

func isBreakerRejection(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

func recordCache(result string) {
	metrics.IncCounterVec(metrics.CacheRequestsTotal, map[string]string{"result": result})
}
