// Package shared 应用服务共用的收尾动作：记录排序指标、失效缓存、发布事件
//
// 这些动作都发生在数据库事务提交之后，失败只记日志不影响返回值
package shared

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/storecatalog/internal/application/cache"
	"github.com/xiebiao/storecatalog/internal/domain/catalog"
	"github.com/xiebiao/storecatalog/internal/domain/ordering"
	apperrors "github.com/xiebiao/storecatalog/pkg/errors"
	"github.com/xiebiao/storecatalog/pkg/logger"
	"github.com/xiebiao/storecatalog/pkg/metrics"
)

// 排序操作
const (
	OpAppend   = "append"
	OpRemove   = "remove"
	OpMove     = "move"
	OpTransfer = "transfer"
)

// ObserveReorder 记录一次兄弟组操作的结果
func ObserveReorder(group, op string, err error) {
	metrics.IncCounterVec(metrics.ReorderOperationsTotal, map[string]string{
		"group":  group,
		"op":     op,
		"result": ReorderResult(err),
	})
}

// ReorderResult 错误归类为指标标签
func ReorderResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ordering.ErrConcurrencyConflict):
		return "conflict"
	case errors.Is(err, ordering.ErrInvalidPosition):
		return "invalid"
	}
	switch apperrors.KindOf(err) {
	case apperrors.KindNotFound:
		return "not_found"
	case apperrors.KindInvalidArgument, apperrors.KindAlreadyExists:
		return "invalid"
	default:
		return "error"
	}
}

// Invalidate 按前缀失效缓存
func Invalidate(ctx context.Context, c cache.Cache, log *zap.Logger, prefixes ...string) {
	for _, prefix := range prefixes {
		if err := c.DeletePrefix(ctx, prefix); err != nil {
			logger.FromContext(ctx, log).Warn("缓存失效失败",
				zap.String("prefix", prefix),
				zap.Error(err))
		}
	}
}

// Publish 发布领域事件
func Publish(ctx context.Context, p catalog.EventPublisher, log *zap.Logger, events ...catalog.Event) {
	for _, event := range events {
		if err := p.Publish(ctx, event); err != nil {
			logger.FromContext(ctx, log).Error("事件发布失败",
				zap.String("type", string(event.Type)),
				zap.String("aggregate_id", event.AggregateID),
				zap.Error(err))
		}
	}
}

// Cached 缓存旁路读取：命中直接返回，未命中调用load并回填
// 缓存读写失败按未命中处理
func Cached[T any](ctx context.Context, c cache.Cache, log *zap.Logger, key string, ttl time.Duration, load func(ctx context.Context) (T, error)) (T, error) {
	var cached T
	hit, err := c.Get(ctx, key, &cached)
	if err != nil {
		logger.FromContext(ctx, log).Warn("读取缓存失败", zap.String("key", key), zap.Error(err))
	}
	if hit {
		return cached, nil
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if err := c.Set(ctx, key, value, ttl); err != nil {
		logger.FromContext(ctx, log).Warn("写入缓存失败", zap.String("key", key), zap.Error(err))
	}
	return value, nil
}
