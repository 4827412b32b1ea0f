package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInitMetrics 测试指标初始化
func TestInitMetrics(t *testing.T) {
	InitMetrics()
	InitMetrics() // 重复调用不应panic

	assert.NotNil(t, GRPCRequestsTotal)
	assert.NotNil(t, GRPCRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, ReorderOperationsTotal)
	assert.NotNil(t, ReorderBatchSize)
	assert.NotNil(t, CacheRequestsTotal)
	assert.NotNil(t, CircuitBreakerState)
	assert.NotNil(t, MessagesPublishedTotal)
	assert.NotNil(t, MessagesConsumedTotal)
}

func TestCounterVec(t *testing.T) {
	InitMetrics()

	labels := map[string]string{"group": "image", "op": "move", "result": "ok"}
	before := getCounterVecValue(t, ReorderOperationsTotal, labels)

	IncCounterVec(ReorderOperationsTotal, labels)
	IncCounterVec(ReorderOperationsTotal, labels)
	IncCounterVec(ReorderOperationsTotal, map[string]string{"group": "image", "op": "move", "result": "conflict"})

	assert.Equal(t, before+2, getCounterVecValue(t, ReorderOperationsTotal, labels))
}

func TestGaugeVec(t *testing.T) {
	InitMetrics()

	labels := map[string]string{"name": "redis-cache"}
	SetGaugeVec(CircuitBreakerState, labels, 2)
	assert.Equal(t, float64(2), getGaugeVecValue(t, CircuitBreakerState, labels))

	SetGaugeVec(CircuitBreakerState, labels, 0)
	assert.Equal(t, float64(0), getGaugeVecValue(t, CircuitBreakerState, labels))
}

func TestHistogramVec(t *testing.T) {
	InitMetrics()

	labels := map[string]string{"group": "category"}
	before := getHistogramVecCount(t, ReorderBatchSize, labels)

	ObserveHistogramVec(ReorderBatchSize, labels, 4)
	ObserveHistogramVec(ReorderBatchSize, labels, 1)

	assert.Equal(t, before+2, getHistogramVecCount(t, ReorderBatchSize, labels))
}

func TestNilSafe(t *testing.T) {
	// 未初始化的指标不应导致panic
	IncCounterVec(nil, nil)
	SetGaugeVec(nil, nil, 1)
	ObserveHistogramVec(nil, nil, 1)
}

// 辅助函数：获取CounterVec值
func getCounterVecValue(t *testing.T, counterVec *prometheus.CounterVec, labels map[string]string) float64 {
	var metric dto.Metric
	require.NoError(t, counterVec.With(labels).Write(&metric))
	return metric.Counter.GetValue()
}

// 辅助函数：获取GaugeVec值
func getGaugeVecValue(t *testing.T, gaugeVec *prometheus.GaugeVec, labels map[string]string) float64 {
	var metric dto.Metric
	require.NoError(t, gaugeVec.With(labels).Write(&metric))
	return metric.Gauge.GetValue()
}

// 辅助函数：获取HistogramVec观测次数
func getHistogramVecCount(t *testing.T, histogramVec *prometheus.HistogramVec, labels map[string]string) uint64 {
	var metric dto.Metric
	histogram := histogramVec.With(labels)
	require.NoError(t, histogram.(prometheus.Histogram).Write(&metric))
	return metric.Histogram.GetSampleCount()
}
