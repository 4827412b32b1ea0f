// Package interceptor gRPC一元拦截器
//
// 推荐顺序（由外到内）：
//
//	Recovery → Tracing → Logging → Metrics → Errors → Auth
//
// Errors之外的拦截器看到的都是gRPC状态错误，Auth返回的AppError也会被转换
package interceptor

import (
	"context"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/xiebiao/storecatalog/api/catalogv1"
	apperrors "github.com/xiebiao/storecatalog/pkg/errors"
	"github.com/xiebiao/storecatalog/pkg/jwt"
	"github.com/xiebiao/storecatalog/pkg/logger"
	"github.com/xiebiao/storecatalog/pkg/metrics"
	"github.com/xiebiao/storecatalog/pkg/tracing"
)

// RequestIDKey 请求ID的metadata键
const RequestIDKey = "x-request-id"

// Recovery 捕获panic并返回Internal
func Recovery(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.FromContext(ctx, log).Error("gRPC处理panic",
					zap.String("method", info.FullMethod),
					zap.Any("panic", r),
					zap.ByteString("stack", debug.Stack()))
				err = status.Error(codes.Internal, apperrors.ErrInternal.Message)
			}
		}()
		return handler(ctx, req)
	}
}

// Tracing 从metadata提取上游trace上下文并为每个请求创建Span
func Tracing() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			ctx = otel.GetTextMapPropagator().Extract(ctx, metadataCarrier(md))
		}

		ctx, span := tracing.StartSpan(ctx, "catalog.grpc", info.FullMethod)
		span.SetAttributes(attribute.String("rpc.system", "grpc"), attribute.String("rpc.method", info.FullMethod))

		resp, err := handler(ctx, req)
		span.SetAttributes(attribute.String("rpc.grpc.status_code", status.Code(err).String()))
		tracing.EndSpan(span, err)
		return resp, err
	}
}

// Logging 为请求生成带request_id/trace_id的logger并记录结果
// OK记debug，客户端错误记warn，服务端错误记error
func Logging(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		requestID := incomingValue(ctx, RequestIDKey)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("request_id", requestID),
		}
		if traceID := tracing.ExtractTraceID(ctx); traceID != "" {
			fields = append(fields,
				zap.String("trace_id", traceID),
				zap.String("span_id", tracing.ExtractSpanID(ctx)))
		}
		reqLog := log.With(fields...)
		ctx = logger.WithContext(ctx, reqLog)
		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDKey, requestID))

		start := time.Now()
		resp, err := handler(ctx, req)
		code := status.Code(err)
		result := []zap.Field{
			zap.String("code", code.String()),
			zap.Duration("duration", time.Since(start)),
		}

		switch {
		case err == nil:
			reqLog.Debug("gRPC请求完成", result...)
		case isServerError(code):
			reqLog.Error("gRPC请求失败", append(result, zap.Error(err))...)
		default:
			reqLog.Warn("gRPC请求被拒绝", append(result, zap.String("message", status.Convert(err).Message()))...)
		}
		return resp, err
	}
}

// Metrics 记录请求数与耗时
func Metrics() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		metrics.IncCounterVec(metrics.GRPCRequestsTotal, map[string]string{
			"method": info.FullMethod,
			"code":   status.Code(err).String(),
		})
		metrics.ObserveHistogramVec(metrics.GRPCRequestDuration, map[string]string{
			"method": info.FullMethod,
		}, time.Since(start).Seconds())
		return resp, err
	}
}

// Errors 把领域错误转换为gRPC状态
// 内部错误的原始信息只出现在日志里
func Errors(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		s := apperrors.ToGRPCStatus(err)
		if s.Code() == codes.Internal {
			logger.FromContext(ctx, log).Error("内部错误",
				zap.String("method", info.FullMethod),
				zap.Error(err))
		}
		return nil, s.Err()
	}
}

type claimsKey struct{}

// Auth 写方法要求Bearer Token且角色可写，manager为nil时不校验
func Auth(manager *jwt.Manager) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if manager == nil || catalogv1.IsReadOnly(info.FullMethod) {
			return handler(ctx, req)
		}

		header := incomingValue(ctx, "authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return nil, apperrors.ErrUnauthorized
		}

		claims, err := manager.ParseToken(token)
		if err != nil {
			return nil, err
		}
		if !claims.CanWrite() {
			return nil, apperrors.ErrForbidden
		}

		log := logger.FromContext(ctx, zap.NewNop()).With(zap.String("operator", claims.Subject))
		ctx = logger.WithContext(ctx, log)
		return handler(context.WithValue(ctx, claimsKey{}, claims), req)
	}
}

// ClaimsFromContext 取出已校验的Token载荷
func ClaimsFromContext(ctx context.Context) (*jwt.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*jwt.Claims)
	return claims, ok
}

func incomingValue(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}

func isServerError(code codes.Code) bool {
	switch code {
	case codes.Internal, codes.Unknown, codes.Unavailable, codes.DataLoss, codes.Unimplemented:
		return true
	}
	return false
}

// metadataCarrier 让otel传播器读写gRPC metadata
type metadataCarrier metadata.MD

func (c metadataCarrier) Get(key string) string {
	values := metadata.MD(c).Get(key)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func (c metadataCarrier) Set(key, value string) {
	metadata.MD(c).Set(key, value)
}

func (c metadataCarrier) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	return keys
}
