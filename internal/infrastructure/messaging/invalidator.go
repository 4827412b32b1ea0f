package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/xiebiao/storecatalog/internal/application/cache"
	"github.com/xiebiao/storecatalog/internal/domain/catalog"
	"github.com/xiebiao/storecatalog/pkg/mq"
)

// InvalidationKeys 本服务发布、且会影响缓存的事件
var InvalidationKeys = []string{"catalog.#"}

// Invalidator 消费目录事件并再次失效缓存
// 写接口提交后同步失效一次，但那次失败只记日志（例如缓存熔断中）；
// 这里异步补一次，失败时消息重新入队，直到缓存恢复
type Invalidator struct {
	cache  cache.Cache
	logger *zap.Logger
}

// NewInvalidator 创建缓存失效消费者
func NewInvalidator(c cache.Cache, logger *zap.Logger) *Invalidator {
	return &Invalidator{cache: c, logger: logger}
}

// Handle 实现mq.Handler
func (i *Invalidator) Handle(ctx context.Context, routingKey string, body []byte) error {
	var event catalog.Event
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("%w: %v", mq.ErrPoison, err)
	}
	if event.Type == "" {
		event.Type = catalog.EventType(routingKey)
	}

	prefixes := Prefixes(event)
	if len(prefixes) == 0 {
		i.logger.Debug("忽略事件", zap.String("routing_key", routingKey))
		return nil
	}

	for _, prefix := range prefixes {
		if err := i.cache.DeletePrefix(ctx, prefix); err != nil {
			return fmt.Errorf("失效缓存%s失败: %w", prefix, err)
		}
	}
	return nil
}

// Prefixes 事件影响的缓存前缀
func Prefixes(event catalog.Event) []string {
	switch {
	case strings.HasPrefix(string(event.Type), "catalog.category."):
		prefixes := []string{cache.CategoryListPrefix()}
		if event.Type == catalog.EventCategoryDeleted {
			prefixes = append(prefixes, cache.ItemListPrefix(event.AggregateID), cache.AllItemDetailsPrefix())
		}
		return prefixes

	case strings.HasPrefix(string(event.Type), "catalog.attribute."):
		return []string{cache.ItemListPrefix(event.ParentID), cache.AllItemDetailsPrefix()}

	case strings.HasPrefix(string(event.Type), "catalog.item."):
		prefixes := []string{cache.ItemDetailPrefix(event.AggregateID)}
		if event.ParentID != "" {
			prefixes = append(prefixes, cache.ItemListPrefix(event.ParentID))
		} else {
			prefixes = append(prefixes, cache.AllItemListsPrefix())
		}
		for _, p := range event.Positions {
			prefixes = append(prefixes, cache.ItemDetailPrefix(p.ID))
		}
		return prefixes

	case event.Type == catalog.EventImageReordered:
		// 图片事件只带商品ID，不知道分类
		return []string{cache.ItemDetailPrefix(event.ParentID), cache.AllItemListsPrefix()}
	}
	return nil
}

var _ mq.Handler = (&Invalidator{}).Handle
