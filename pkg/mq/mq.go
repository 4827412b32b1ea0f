// Package mq 封装RabbitMQ的发布与消费
//
// 目录服务把变更事件发布到topic类型的Exchange，路由键即事件类型：
//
//	catalog.category.reordered
//	catalog.item.changed
//
// 其他实例（或下游服务）按通配符绑定队列订阅，例如"catalog.#"
//
// # 消费确认
//
// 使用手动确认：处理成功Ack；处理失败等待一段时间后Nack并重新入队，
// 连续失败时等待时间指数增长，上限retryMaxDelay；
// 处理函数返回ErrPoison包装的错误时Nack且不重新入队，避免坏消息无限循环
package mq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/xiebiao/storecatalog/pkg/metrics"
)

// ErrPoison 标记无法处理的消息（格式错误等），不再重新入队
var ErrPoison = errors.New("无法处理的消息")

const (
	retryBaseDelay = 200 * time.Millisecond
	retryMaxDelay  = 10 * time.Second
)

// newRetryBackOff 重新入队前的等待策略：指数增长、不抖动、不限总时长
func newRetryBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = retryBaseDelay
	b.MaxInterval = retryMaxDelay
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

// channel 发布所需的amqp.Channel子集
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher 消息发布者
// amqp.Channel不是并发安全的，Publish串行化
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	channel  channel
	exchange string
	logger   *zap.Logger
}

// NewPublisher 连接RabbitMQ并声明Exchange
func NewPublisher(url, exchange, exchangeType string, logger *zap.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("连接RabbitMQ失败: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("创建Channel失败: %w", err)
	}

	if err := declareExchange(ch, exchange, exchangeType); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logger.Info("消息发布者已创建",
		zap.String("exchange", exchange),
		zap.String("type", exchangeType))

	return &Publisher{
		conn:     conn,
		channel:  ch,
		exchange: exchange,
		logger:   logger,
	}, nil
}

func declareExchange(ch *amqp.Channel, exchange, exchangeType string) error {
	err := ch.ExchangeDeclare(
		exchange,
		exchangeType,
		true,  // Durable
		false, // AutoDelete
		false, // Internal
		false, // NoWait
		nil,
	)
	if err != nil {
		return fmt.Errorf("声明Exchange失败: %w", err)
	}
	return nil
}

// Publish 以JSON发布消息
func (p *Publisher) Publish(ctx context.Context, routingKey string, message interface{}) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("消息序列化失败: %w", err)
	}

	p.mu.Lock()
	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,
		routingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
	p.mu.Unlock()

	result := "success"
	if err != nil {
		result = "failure"
	}
	metrics.IncCounterVec(metrics.MessagesPublishedTotal, map[string]string{
		"routing_key": routingKey,
		"result":      result,
	})

	if err != nil {
		return fmt.Errorf("发布消息失败: %w", err)
	}

	p.logger.Debug("消息已发布",
		zap.String("routing_key", routingKey),
		zap.Int("bytes", len(body)))
	return nil
}

// Close 关闭Channel和连接
func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}

// Handler 消息处理函数
type Handler func(ctx context.Context, routingKey string, body []byte) error

// Consumer 消息消费者
type Consumer struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	logger  *zap.Logger
}

// NewConsumer 声明Exchange、Queue并按routingKeys绑定
func NewConsumer(url, exchange, exchangeType, queue string, routingKeys []string, logger *zap.Logger) (*Consumer, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("连接RabbitMQ失败: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("创建Channel失败: %w", err)
	}

	fail := func(err error) (*Consumer, error) {
		ch.Close()
		conn.Close()
		return nil, err
	}

	if err := declareExchange(ch, exchange, exchangeType); err != nil {
		return fail(err)
	}

	q, err := ch.QueueDeclare(
		queue,
		true,  // Durable
		false, // AutoDelete
		false, // Exclusive
		false, // NoWait
		nil,
	)
	if err != nil {
		return fail(fmt.Errorf("声明Queue失败: %w", err))
	}

	for _, routingKey := range routingKeys {
		if err := ch.QueueBind(q.Name, routingKey, exchange, false, nil); err != nil {
			return fail(fmt.Errorf("绑定Queue失败: %w", err))
		}
	}

	logger.Info("消息消费者已创建",
		zap.String("queue", q.Name),
		zap.Strings("routing_keys", routingKeys))

	return &Consumer{
		conn:    conn,
		channel: ch,
		queue:   q.Name,
		logger:  logger,
	}, nil
}

// Consume 阻塞消费直到ctx取消或连接断开
func (c *Consumer) Consume(ctx context.Context, handler Handler) error {
	if err := c.channel.Qos(1, 0, false); err != nil {
		return fmt.Errorf("设置Qos失败: %w", err)
	}

	msgs, err := c.channel.Consume(
		c.queue,
		"",    // Consumer标签（自动生成）
		false, // AutoAck
		false, // Exclusive
		false, // NoLocal
		false, // NoWait
		nil,
	)
	if err != nil {
		return fmt.Errorf("开始消费失败: %w", err)
	}

	c.logger.Info("开始消费消息", zap.String("queue", c.queue))

	retry := newRetryBackOff()
	for {
		select {
		case <-ctx.Done():
			c.logger.Info("消费者退出", zap.String("queue", c.queue))
			return nil

		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("消息Channel已关闭")
			}
			handleDelivery(ctx, c.queue, msg, handler, retry, c.logger)
		}
	}
}

// handleDelivery 处理单条消息并确认
// 临时失败按retry等待后重新入队，成功后retry归零；Qos为1，等待期间不会收到新消息
func handleDelivery(ctx context.Context, queue string, msg amqp.Delivery, handler Handler, retry backoff.BackOff, logger *zap.Logger) {
	err := handler(ctx, msg.RoutingKey, msg.Body)

	result := "success"
	switch {
	case err == nil:
		retry.Reset()
		_ = msg.Ack(false)
	case errors.Is(err, ErrPoison):
		result = "failure"
		logger.Error("丢弃无法处理的消息",
			zap.String("routing_key", msg.RoutingKey),
			zap.ByteString("body", msg.Body),
			zap.Error(err))
		_ = msg.Nack(false, false)
	default:
		result = "failure"
		delay := retry.NextBackOff()
		if delay == backoff.Stop {
			delay = retryMaxDelay
		}
		logger.Warn("消息处理失败，稍后重新入队",
			zap.String("routing_key", msg.RoutingKey),
			zap.Duration("delay", delay),
			zap.Error(err))

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
		case <-timer.C:
		}
		timer.Stop()
		_ = msg.Nack(false, true)
	}

	metrics.IncCounterVec(metrics.MessagesConsumedTotal, map[string]string{
		"queue":  queue,
		"result": result,
	})
}

// Close 关闭Channel和连接
func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
