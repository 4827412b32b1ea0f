package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// HealthChecker Redis连通性检查
type HealthChecker struct {
	client redis.UniversalClient
}

// NewHealthChecker 创建Redis健康检查
func NewHealthChecker(client redis.UniversalClient) *HealthChecker {
	return &HealthChecker{client: client}
}

func (h *HealthChecker) Name() string { return "redis" }

// Check 执行PING
func (h *HealthChecker) Check(ctx context.Context) error {
	return h.client.Ping(ctx).Err()
}
