package catalog

import (
	"context"
	"time"

	"github.com/xiebiao/storecatalog/internal/domain/ordering"
)

// EventType 领域事件类型，同时作为消息队列的routing key
type EventType string

const (
	EventCategoryChanged   EventType = "catalog.category.changed"
	EventCategoryDeleted   EventType = "catalog.category.deleted"
	EventCategoryReordered EventType = "catalog.category.reordered"

	EventAttributeChanged   EventType = "catalog.attribute.changed"
	EventAttributeDeleted   EventType = "catalog.attribute.deleted"
	EventAttributeReordered EventType = "catalog.attribute.reordered"

	EventItemChanged   EventType = "catalog.item.changed"
	EventItemDeleted   EventType = "catalog.item.deleted"
	EventItemReordered EventType = "catalog.item.reordered"

	EventImageReordered EventType = "catalog.image.reordered"
)

// Event 目录变更事件
// ParentID是受影响兄弟组的父节点（分类组为空串）
type Event struct {
	Type        EventType         `json:"type"`
	AggregateID string            `json:"aggregate_id"`
	ParentID    string            `json:"parent_id,omitempty"`
	Positions   []ordering.Update `json:"positions,omitempty"`
	OccurredAt  time.Time         `json:"occurred_at"`
}

// NewEvent 创建事件
func NewEvent(eventType EventType, aggregateID, parentID string) Event {
	return Event{
		Type:        eventType,
		AggregateID: aggregateID,
		ParentID:    parentID,
		OccurredAt:  time.Now(),
	}
}

// WithPositions 附带位置变更
func (e Event) WithPositions(updates []ordering.Update) Event {
	e.Positions = updates
	return e
}

// EventPublisher 事件发布接口
// 发布失败不影响已提交的数据库事务，调用方只记录日志
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// NopPublisher 未启用消息队列时使用
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, event Event) error { return nil }
