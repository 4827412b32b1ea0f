package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xiebiao/storecatalog/pkg/logger"
	"github.com/xiebiao/storecatalog/pkg/tracing"
)

// RequestIDHeader 请求ID头，上游已带则沿用
const RequestIDHeader = "X-Request-ID"

// slowRequest 超过该耗时记warn
const slowRequest = 3 * time.Second

// Logger 请求日志中间件
// 为每个请求生成带request_id的logger放进Request.Context，Handler和下游都从这里取
func Logger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)

		ctx := c.Request.Context()
		fields := []zap.Field{zap.String("request_id", requestID)}
		if traceID := tracing.ExtractTraceID(ctx); traceID != "" {
			fields = append(fields,
				zap.String("trace_id", traceID),
				zap.String("span_id", tracing.ExtractSpanID(ctx)))
		}
		reqLog := log.With(fields...)
		c.Request = c.Request.WithContext(logger.WithContext(ctx, reqLog))

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		result := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			result = append(result, zap.String("errors", c.Errors.String()))
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			reqLog.Error("HTTP请求失败", result...)
		case status >= 400:
			reqLog.Warn("HTTP请求被拒绝", result...)
		case latency > slowRequest:
			reqLog.Warn("慢请求", result...)
		default:
			reqLog.Debug("HTTP请求完成", result...)
		}
	}
}
