package mq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeChannel struct {
	published []amqp.Publishing
	keys      []string
	err       error
}

func (f *fakeChannel) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.keys = append(f.keys, key)
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeChannel) Close() error { return nil }

// fakeAck 记录Ack/Nack调用
type fakeAck struct {
	acked   bool
	nacked  bool
	requeue bool
}

func (a *fakeAck) Ack(uint64, bool) error { a.acked = true; return nil }
func (a *fakeAck) Nack(_ uint64, _ bool, requeue bool) error {
	a.nacked = true
	a.requeue = requeue
	return nil
}
func (a *fakeAck) Reject(_ uint64, requeue bool) error { return a.Nack(0, false, requeue) }

type testEvent struct {
	Type        string `json:"type"`
	AggregateID string `json:"aggregate_id"`
}

func TestPublisher_Publish(t *testing.T) {
	t.Run("JSON持久化消息", func(t *testing.T) {
		ch := &fakeChannel{}
		p := &Publisher{channel: ch, exchange: "catalog.events", logger: zap.NewNop()}

		err := p.Publish(context.Background(), "catalog.item.reordered", testEvent{Type: "catalog.item.reordered", AggregateID: "i-1"})
		require.NoError(t, err)

		require.Len(t, ch.published, 1)
		assert.Equal(t, []string{"catalog.item.reordered"}, ch.keys)
		msg := ch.published[0]
		assert.Equal(t, "application/json", msg.ContentType)
		assert.Equal(t, amqp.Persistent, msg.DeliveryMode)

		var got testEvent
		require.NoError(t, json.Unmarshal(msg.Body, &got))
		assert.Equal(t, "i-1", got.AggregateID)
	})

	t.Run("发布失败返回错误", func(t *testing.T) {
		p := &Publisher{channel: &fakeChannel{err: errors.New("channel closed")}, logger: zap.NewNop()}
		err := p.Publish(context.Background(), "k", testEvent{})
		assert.ErrorContains(t, err, "发布消息失败")
	})

	t.Run("无法序列化", func(t *testing.T) {
		p := &Publisher{channel: &fakeChannel{}, logger: zap.NewNop()}
		err := p.Publish(context.Background(), "k", make(chan int))
		assert.ErrorContains(t, err, "消息序列化失败")
	})
}

func TestHandleDelivery(t *testing.T) {
	tests := []struct {
		name       string
		handlerErr error
		wantAck    bool
		wantNack   bool
		requeue    bool
	}{
		{name: "处理成功Ack", wantAck: true},
		{name: "临时失败重新入队", handlerErr: errors.New("redis down"), wantNack: true, requeue: true},
		{name: "坏消息直接丢弃", handlerErr: fmt.Errorf("%w: bad json", ErrPoison), wantNack: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ack := &fakeAck{}
			msg := amqp.Delivery{Acknowledger: ack, RoutingKey: "catalog.category.changed", Body: []byte(`{}`)}

			var gotKey string
			handleDelivery(context.Background(), "q", msg, func(_ context.Context, key string, _ []byte) error {
				gotKey = key
				return tt.handlerErr
			}, &backoff.ZeroBackOff{}, zap.NewNop())

			assert.Equal(t, "catalog.category.changed", gotKey)
			assert.Equal(t, tt.wantAck, ack.acked)
			assert.Equal(t, tt.wantNack, ack.nacked)
			assert.Equal(t, tt.requeue, ack.requeue)
		})
	}

	failing := func(context.Context, string, []byte) error { return errors.New("circuit breaker is open") }

	t.Run("重新入队前等待", func(t *testing.T) {
		ack := &fakeAck{}
		start := time.Now()
		handleDelivery(context.Background(), "q", amqp.Delivery{Acknowledger: ack}, failing,
			backoff.NewConstantBackOff(50*time.Millisecond), zap.NewNop())

		assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
		assert.True(t, ack.requeue)
	})

	t.Run("退出时不再等待", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		ack := &fakeAck{}
		start := time.Now()
		handleDelivery(ctx, "q", amqp.Delivery{Acknowledger: ack}, failing,
			backoff.NewConstantBackOff(time.Minute), zap.NewNop())

		assert.Less(t, time.Since(start), time.Second)
		assert.True(t, ack.requeue)
	})

	t.Run("连续失败等待变长，成功后归零", func(t *testing.T) {
		retry := newRetryBackOff()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		for i := 0; i < 3; i++ {
			handleDelivery(ctx, "q", amqp.Delivery{Acknowledger: &fakeAck{}}, failing, retry, zap.NewNop())
		}
		assert.Equal(t, 8*retryBaseDelay, retry.NextBackOff())

		ok := func(context.Context, string, []byte) error { return nil }
		handleDelivery(ctx, "q", amqp.Delivery{Acknowledger: &fakeAck{}}, ok, retry, zap.NewNop())
		assert.Equal(t, retryBaseDelay, retry.NextBackOff())
	})
}

func TestRetryBackOff(t *testing.T) {
	retry := newRetryBackOff()
	var got []time.Duration
	for i := 0; i < 8; i++ {
		got = append(got, retry.NextBackOff())
	}
	assert.Equal(t, []time.Duration{
		200 * time.Millisecond,
		400 * time.Millisecond,
		800 * time.Millisecond,
		1600 * time.Millisecond,
		3200 * time.Millisecond,
		6400 * time.Millisecond,
		retryMaxDelay,
		retryMaxDelay,
	}, got)
}

// TestPublishConsume_RabbitMQ 需要真实RabbitMQ，设置CATALOG_TEST_AMQP_URL后运行
func TestPublishConsume_RabbitMQ(t *testing.T) {
	url := os.Getenv("CATALOG_TEST_AMQP_URL")
	if url == "" {
		t.Skip("未设置CATALOG_TEST_AMQP_URL")
	}
	logger := zap.NewNop()

	consumer, err := NewConsumer(url, "catalog.test.events", "topic", "catalog.test.queue", []string{"catalog.#"}, logger)
	require.NoError(t, err)
	defer consumer.Close()

	publisher, err := NewPublisher(url, "catalog.test.events", "topic", logger)
	require.NoError(t, err)
	defer publisher.Close()

	require.NoError(t, publisher.Publish(context.Background(), "catalog.item.changed", testEvent{Type: "catalog.item.changed", AggregateID: "i-9"}))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	received := make(chan testEvent, 1)
	go func() {
		_ = consumer.Consume(ctx, func(_ context.Context, _ string, body []byte) error {
			var e testEvent
			if err := json.Unmarshal(body, &e); err != nil {
				return fmt.Errorf("%w: %v", ErrPoison, err)
			}
			received <- e
			return nil
		})
	}()

	select {
	case e := <-received:
		assert.Equal(t, "i-9", e.AggregateID)
	case <-ctx.Done():
		t.Fatal("超时未收到消息")
	}
}
