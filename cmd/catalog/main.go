package main

// @title           Store Catalog API
// @version         1.0
// @description     店铺目录服务：分类、属性、商品的查询与排序
// @host            localhost:8080
// @BasePath        /
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/storecatalog/internal/infrastructure/config"
	"github.com/xiebiao/storecatalog/internal/infrastructure/messaging"
	"github.com/xiebiao/storecatalog/pkg/logger"
	"github.com/xiebiao/storecatalog/pkg/metrics"
	"github.com/xiebiao/storecatalog/pkg/mq"
	"github.com/xiebiao/storecatalog/pkg/tracing"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径，默认在./config和当前目录查找config.yaml")
	flag.Parse()

	// 1. 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 初始化日志
	zapLogger, err := logger.New(logger.Config{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	})
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer zapLogger.Sync()

	if err := run(cfg, zapLogger); err != nil {
		zapLogger.Fatal("服务异常退出", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. 指标与追踪
	metrics.InitMetrics()
	if cfg.Tracing.Enabled {
		shutdown, err := tracing.InitTracer(tracing.Config{
			ServiceName: cfg.Server.Name,
			Endpoint:    cfg.Tracing.Endpoint,
			SampleRatio: cfg.Tracing.SampleRatio,
		})
		if err != nil {
			return fmt.Errorf("初始化追踪失败: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(shutdownCtx); err != nil {
				log.Warn("关闭追踪失败", zap.Error(err))
			}
		}()
	}

	// 4. 依赖注入
	app, cleanup, err := InitializeApp(cfg, log)
	if err != nil {
		return fmt.Errorf("初始化应用失败: %w", err)
	}
	defer cleanup()

	// 5. 缓存失效消费者
	if cfg.MQ.Enabled && cfg.MQ.Queue != "" {
		consumer, err := mq.NewConsumer(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType,
			cfg.MQ.Queue, messaging.InvalidationKeys, log)
		if err != nil {
			return fmt.Errorf("创建消息消费者失败: %w", err)
		}
		defer consumer.Close()

		go func() {
			if err := consumer.Consume(ctx, app.Invalidator.Handle); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("缓存失效消费者退出", zap.Error(err))
			}
		}()
	}

	// 6. 启动gRPC
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.GRPCPort))
	if err != nil {
		return fmt.Errorf("监听gRPC端口失败: %w", err)
	}

	errCh := make(chan error, 2)
	go func() {
		log.Info("gRPC服务启动", zap.Int("port", cfg.Server.GRPCPort))
		if err := app.GRPC.Serve(lis); err != nil {
			errCh <- fmt.Errorf("gRPC服务异常: %w", err)
		}
	}()

	// 7. 启动HTTP
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:           app.HTTP,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info("HTTP服务启动",
			zap.Int("port", cfg.Server.HTTPPort),
			zap.String("swagger", fmt.Sprintf("http://localhost:%d/swagger/index.html", cfg.Server.HTTPPort)))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP服务异常: %w", err)
		}
	}()

	// 8. 等待退出信号
	var runErr error
	select {
	case <-ctx.Done():
		log.Info("收到退出信号，开始优雅关闭")
	case runErr = <-errCh:
		log.Error("服务异常，开始关闭", zap.Error(runErr))
	}

	timeout := cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("HTTP服务关闭超时", zap.Error(err))
	}
	app.GRPC.Stop(shutdownCtx)

	log.Info("服务已停止")
	return runErr
}
