package health

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type checkerFunc struct {
	name string
	fn   func(ctx context.Context) error
}

func (c checkerFunc) Name() string                    { return c.name }
func (c checkerFunc) Check(ctx context.Context) error { return c.fn(ctx) }

func TestService_Connections(t *testing.T) {
	ok := checkerFunc{name: "mysql", fn: func(ctx context.Context) error { return nil }}
	down := checkerFunc{name: "redis", fn: func(ctx context.Context) error { return errors.New("connection refused") }}
	slow := checkerFunc{name: "slow", fn: func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}}

	t.Run("全部正常", func(t *testing.T) {
		svc := NewService(time.Second, zap.NewNop(), ok)
		healthy, conns := svc.Healthy(context.Background())
		assert.True(t, healthy)
		require.Len(t, conns, 1)
		assert.Equal(t, "mysql", conns[0].Name)
		assert.Equal(t, "ok", conns[0].Message)
	})

	t.Run("单项失败", func(t *testing.T) {
		svc := NewService(time.Second, zap.NewNop(), ok, down)
		healthy, conns := svc.Healthy(context.Background())
		assert.False(t, healthy)
		require.Len(t, conns, 2)
		assert.True(t, conns[0].Healthy)
		assert.False(t, conns[1].Healthy)
		assert.Equal(t, "connection refused", conns[1].Message)
	})

	t.Run("超时", func(t *testing.T) {
		svc := NewService(20*time.Millisecond, zap.NewNop(), slow)
		conns := svc.Connections(context.Background())
		require.Len(t, conns, 1)
		assert.False(t, conns[0].Healthy)
		assert.Contains(t, conns[0].Message, "deadline exceeded")
	})

	t.Run("进程状态", func(t *testing.T) {
		svc := NewService(0, zap.NewNop())
		assert.True(t, svc.App(context.Background()).Serving)
		assert.Empty(t, svc.Connections(context.Background()))
	})
}
