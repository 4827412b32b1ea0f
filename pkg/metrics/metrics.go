// Package metrics 提供基于Prometheus的指标收集
//
// # 指标分组
//
//   - RPC/HTTP：请求数与耗时，由拦截器和中间件记录
//   - 排序引擎：每次兄弟组操作的结果、批量更新行数、并发冲突次数
//   - 缓存：命中/未命中/错误，熔断器状态
//   - 消息队列：事件发布与消费结果
//
// # 使用示例
//
//	metrics.InitMetrics()
//	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
//	metrics.IncCounterVec(metrics.ReorderOperationsTotal, map[string]string{
//	    "group": "category", "op": "move", "result": "ok",
//	})
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// initOnce 防止重复注册（promauto重复注册会panic）
	initOnce sync.Once

	// RPC指标

	// GRPCRequestsTotal gRPC请求总数
	// 标签：method（完整方法名）、code（gRPC状态码）
	GRPCRequestsTotal *prometheus.CounterVec

	// GRPCRequestDuration gRPC请求耗时
	GRPCRequestDuration *prometheus.HistogramVec

	// HTTP指标

	// HTTPRequestsTotal HTTP请求总数
	// 标签：method、path（路由模板）、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时
	HTTPRequestDuration *prometheus.HistogramVec

	// 排序引擎指标

	// ReorderOperationsTotal 兄弟组操作总数
	// 标签：group（category/attribute/item/image）、op（append/remove/move/transfer）、result（ok/invalid/not_found/conflict/error）
	ReorderOperationsTotal *prometheus.CounterVec

	// ReorderBatchSize 单次批量UPDATE涉及的行数
	ReorderBatchSize *prometheus.HistogramVec

	// 缓存指标

	// CacheRequestsTotal 缓存访问总数
	// 标签：result（hit/miss/error/skipped）
	CacheRequestsTotal *prometheus.CounterVec

	// CircuitBreakerState 熔断器状态（0=CLOSED, 1=HALF_OPEN, 2=OPEN）
	CircuitBreakerState *prometheus.GaugeVec

	// 消息队列指标

	// MessagesPublishedTotal 事件发布总数
	// 标签：routing_key、result（success/failure）
	MessagesPublishedTotal *prometheus.CounterVec

	// MessagesConsumedTotal 事件消费总数
	// 标签：queue、result（success/failure）
	MessagesConsumedTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有指标（可重复调用）
func InitMetrics() {
	initOnce.Do(func() {
		GRPCRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "grpc_server_requests_total",
				Help: "gRPC请求总数",
			},
			[]string{"method", "code"},
		)

		GRPCRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "grpc_server_request_duration_seconds",
				Help: "gRPC请求耗时（秒）",
				// 1ms到5s，目录接口大多在几十毫秒内
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"method"},
		)

		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP请求耗时（秒）",
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"method", "path"},
		)

		ReorderOperationsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_reorder_operations_total",
				Help: "兄弟组排序操作总数",
			},
			[]string{"group", "op", "result"},
		)

		ReorderBatchSize = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "catalog_reorder_batch_size",
				Help: "单次批量更新sort_order的行数",
				// 兄弟组通常只有几十个成员
				Buckets: []float64{1, 2, 5, 10, 20, 50, 100, 500},
			},
			[]string{"group"},
		)

		CacheRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_cache_requests_total",
				Help: "缓存访问总数",
			},
			[]string{"result"},
		)

		CircuitBreakerState = promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "熔断器状态（0=CLOSED, 1=HALF_OPEN, 2=OPEN）",
			},
			[]string{"name"},
		)

		MessagesPublishedTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mq_messages_published_total",
				Help: "事件发布总数",
			},
			[]string{"routing_key", "result"},
		)

		MessagesConsumedTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mq_messages_consumed_total",
				Help: "事件消费总数",
			},
			[]string{"queue", "result"},
		)
	})
}

// IncCounterVec 递增带标签的Counter
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	if counter == nil {
		return
	}
	counter.With(labels).Inc()
}

// SetGaugeVec 设置带标签的Gauge
func SetGaugeVec(gauge *prometheus.GaugeVec, labels map[string]string, value float64) {
	if gauge == nil {
		return
	}
	gauge.With(labels).Set(value)
}

// ObserveHistogramVec 记录带标签的Histogram观测值
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	if histogram == nil {
		return
	}
	histogram.With(labels).Observe(value)
}
