package health

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/storecatalog/pkg/logger"
)

// DefaultTimeout 单个依赖检查的超时
const DefaultTimeout = 3 * time.Second

// Checker 依赖检查
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// Status 应用自身状态
type Status struct {
	Serving bool   `json:"serving"`
	Message string `json:"message"`
}

// Connection 单个依赖的检查结果
type Connection struct {
	Name      string `json:"name"`
	Healthy   bool   `json:"healthy"`
	Message   string `json:"message"`
	LatencyMs int64  `json:"latency_ms"`
}

// Service 健康检查服务
type Service struct {
	checkers []Checker
	timeout  time.Duration
	logger   *zap.Logger
}

// NewService 创建健康检查服务
func NewService(timeout time.Duration, logger *zap.Logger, checkers ...Checker) *Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Service{
		checkers: checkers,
		timeout:  timeout,
		logger:   logger,
	}
}

// App 进程存活即可服务
func (s *Service) App(ctx context.Context) Status {
	return Status{Serving: true, Message: "catalog service is running"}
}

// Connections 依次检查每个依赖，每项单独计时和超时
func (s *Service) Connections(ctx context.Context) []Connection {
	result := make([]Connection, 0, len(s.checkers))
	for _, c := range s.checkers {
		result = append(result, s.check(ctx, c))
	}
	return result
}

// Healthy 全部依赖正常
func (s *Service) Healthy(ctx context.Context) (bool, []Connection) {
	conns := s.Connections(ctx)
	for _, c := range conns {
		if !c.Healthy {
			return false, conns
		}
	}
	return true, conns
}

func (s *Service) check(ctx context.Context, c Checker) Connection {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	err := c.Check(ctx)
	conn := Connection{
		Name:      c.Name(),
		Healthy:   err == nil,
		Message:   "ok",
		LatencyMs: time.Since(start).Milliseconds(),
	}
	if err != nil {
		conn.Message = err.Error()
		logger.FromContext(ctx, s.logger).Warn("依赖检查失败",
			zap.String("name", conn.Name),
			zap.Int64("latency_ms", conn.LatencyMs),
			zap.Error(err))
	}
	return conn
}
