package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// withRecorder 安装内存SpanRecorder作为全局Provider
func withRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	prev := otel.GetTracerProvider()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(prev)
	})
	return recorder
}

func TestInitTracer(t *testing.T) {
	t.Run("成功初始化Tracer", func(t *testing.T) {
		prev := otel.GetTracerProvider()
		defer otel.SetTracerProvider(prev)

		// exporter惰性连接，没有Collector也能初始化
		shutdown, err := InitTracer(Config{
			ServiceName: "test-service",
			Endpoint:    "localhost:4317",
			SampleRatio: 1,
		})
		require.NoError(t, err)
		require.NotNil(t, shutdown)

		_, span := StartSpan(context.Background(), "test", "Op")
		assert.True(t, span.SpanContext().IsValid())
		span.End()

		// 关闭时导出失败不影响测试结论
		_ = shutdown(context.Background())
	})
}

func TestSampler(t *testing.T) {
	assert.Equal(t, sdktrace.AlwaysSample().Description(), sampler(1).Description())
	assert.Equal(t, sdktrace.NeverSample().Description(), sampler(0).Description())
	assert.Equal(t, sdktrace.TraceIDRatioBased(0.25).Description(), sampler(0.25).Description())
}

func TestStartSpan(t *testing.T) {
	recorder := withRecorder(t)

	t.Run("子Span继承TraceID", func(t *testing.T) {
		ctx, root := StartSpan(context.Background(), "test", "Root")
		_, child := StartSpan(ctx, "test", "Child")
		child.End()
		root.End()

		assert.Equal(t, root.SpanContext().TraceID(), child.SpanContext().TraceID())
		assert.NotEqual(t, root.SpanContext().SpanID(), child.SpanContext().SpanID())
		assert.Equal(t, root.SpanContext().TraceID().String(), ExtractTraceID(ctx))
		assert.Equal(t, root.SpanContext().SpanID().String(), ExtractSpanID(ctx))
	})

	t.Run("EndSpan记录错误", func(t *testing.T) {
		_, span := StartSpan(context.Background(), "test", "Failing")
		EndSpan(span, errors.New("boom"))

		ended := recorder.Ended()
		last := ended[len(ended)-1]
		assert.Equal(t, "Failing", last.Name())
		assert.Equal(t, codes.Error, last.Status().Code)
		assert.Len(t, last.Events(), 1)
	})
}

func TestExtractWithoutSpan(t *testing.T) {
	assert.Empty(t, ExtractTraceID(context.Background()))
	assert.Empty(t, ExtractSpanID(context.Background()))
}
