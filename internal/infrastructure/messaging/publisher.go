// Package messaging 目录事件与RabbitMQ的对接
package messaging

import (
	"context"

	"github.com/xiebiao/storecatalog/internal/domain/catalog"
)

// sender mq.Publisher的最小依赖
type sender interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// EventPublisher 事件类型即routing key，下游可按catalog.item.*等模式订阅
type EventPublisher struct {
	sender sender
}

var _ catalog.EventPublisher = (*EventPublisher)(nil)

// NewEventPublisher 创建事件发布器
func NewEventPublisher(s sender) *EventPublisher {
	return &EventPublisher{sender: s}
}

func (p *EventPublisher) Publish(ctx context.Context, event catalog.Event) error {
	return p.sender.Publish(ctx, string(event.Type), event)
}
