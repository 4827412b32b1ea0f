package handler

import (
	"context"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/xiebiao/storecatalog/api/catalogv1"
	"github.com/xiebiao/storecatalog/internal/infrastructure/config"
	"github.com/xiebiao/storecatalog/internal/interface/grpc/interceptor"
	"github.com/xiebiao/storecatalog/pkg/jwt"
)

// defaultMaxMsgSize 未配置时收发消息上限10MB
const defaultMaxMsgSize = 10 * 1024 * 1024

// Server gRPC服务器及标准健康检查
type Server struct {
	grpc   *grpc.Server
	health *health.Server
	logger *zap.Logger
}

// NewServer 创建gRPC服务器并注册全部服务
// manager为nil时写接口不鉴权
func NewServer(
	cfg config.ServerConfig,
	categories *CategoryHandler,
	attributes *AttributeHandler,
	items *ItemHandler,
	healthHandler *HealthHandler,
	manager *jwt.Manager,
	logger *zap.Logger,
) *Server {
	maxMsgSize := cfg.MaxMsgSize
	if maxMsgSize <= 0 {
		maxMsgSize = defaultMaxMsgSize
	}

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			interceptor.Recovery(logger),
			interceptor.Tracing(),
			interceptor.Logging(logger),
			interceptor.Metrics(),
			interceptor.Errors(logger),
			interceptor.Auth(manager),
		),
		grpc.MaxRecvMsgSize(maxMsgSize),
		grpc.MaxSendMsgSize(maxMsgSize),
	)

	catalogv1.RegisterCategoryServiceServer(s, categories)
	catalogv1.RegisterAttributeServiceServer(s, attributes)
	catalogv1.RegisterItemServiceServer(s, items)
	catalogv1.RegisterHealthServiceServer(s, healthHandler)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	for _, name := range []string{
		"",
		catalogv1.CategoryServiceName,
		catalogv1.AttributeServiceName,
		catalogv1.ItemServiceName,
	} {
		hs.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}

	// 生产环境可关闭反射
	if cfg.Reflection {
		reflection.Register(s)
	}

	return &Server{grpc: s, health: hs, logger: logger}
}

// Serve 阻塞直到Stop
func (s *Server) Serve(lis net.Listener) error {
	s.logger.Info("gRPC服务启动", zap.String("addr", lis.Addr().String()))
	return s.grpc.Serve(lis)
}

// Stop 先把健康状态置为NOT_SERVING，再等待进行中的请求
// ctx到期仍未结束则强制关闭
func (s *Server) Stop(ctx context.Context) {
	s.health.Shutdown()

	done := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.logger.Warn("gRPC优雅关闭超时，强制关闭")
		s.grpc.Stop()
	}
}
