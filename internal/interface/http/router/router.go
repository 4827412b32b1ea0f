// Package router HTTP路由：健康检查、Prometheus指标、Swagger文档和目录REST接口
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/xiebiao/storecatalog/docs"
	"github.com/xiebiao/storecatalog/internal/infrastructure/config"
	"github.com/xiebiao/storecatalog/internal/interface/http/handler"
	"github.com/xiebiao/storecatalog/internal/interface/http/middleware"
)

// New 创建并配置Gin引擎
func New(
	cfg config.ServerConfig,
	catalogHandler *handler.CatalogHandler,
	healthHandler *handler.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
	logger *zap.Logger,
) *gin.Engine {
	switch cfg.Mode {
	case gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Mode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(logger), middleware.Metrics())

	r.GET("/ping", healthHandler.Ping)
	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 访问 /swagger/index.html 查看API文档，生产环境可在网关层屏蔽
	if cfg.Mode != gin.ReleaseMode {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := r.Group("/api/v1")
	{
		// 公开读接口
		v1.GET("/categories", catalogHandler.ListCategories)
		v1.GET("/categories/:id", catalogHandler.GetCategory)
		v1.GET("/categories/:id/attributes", catalogHandler.ListAttributes)
		v1.GET("/categories/:id/items", catalogHandler.ListItems)
		v1.GET("/items/:id", catalogHandler.GetItem)

		// 排序需要写权限
		admin := v1.Group("")
		admin.Use(authMiddleware.RequireWriter())
		{
			admin.PUT("/categories/:id/position", catalogHandler.ChangeCategoryPosition)
			admin.PUT("/attributes/:id/position", catalogHandler.ChangeAttributePosition)
			admin.PUT("/items/:id/position", catalogHandler.ChangeItemPosition)
			admin.PUT("/images/:id/position", catalogHandler.ChangeImagePosition)
		}
	}

	return r
}
