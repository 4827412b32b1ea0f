package main

import (
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/xiebiao/storecatalog/internal/application/cache"
	apphealth "github.com/xiebiao/storecatalog/internal/application/health"
	"github.com/xiebiao/storecatalog/internal/domain/attribute"
	"github.com/xiebiao/storecatalog/internal/domain/catalog"
	"github.com/xiebiao/storecatalog/internal/domain/category"
	"github.com/xiebiao/storecatalog/internal/domain/item"
	"github.com/xiebiao/storecatalog/internal/domain/ordering"
	"github.com/xiebiao/storecatalog/internal/infrastructure/config"
	"github.com/xiebiao/storecatalog/internal/infrastructure/messaging"
	"github.com/xiebiao/storecatalog/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/storecatalog/internal/infrastructure/persistence/redis"
	grpchandler "github.com/xiebiao/storecatalog/internal/interface/grpc/handler"
	"github.com/xiebiao/storecatalog/pkg/jwt"
	"github.com/xiebiao/storecatalog/pkg/mq"
)

// App 进程内需要启动的组件
type App struct {
	GRPC        *grpchandler.Server
	HTTP        *gin.Engine
	Invalidator *messaging.Invalidator
}

func newApp(grpcServer *grpchandler.Server, httpEngine *gin.Engine, invalidator *messaging.Invalidator) *App {
	return &App{GRPC: grpcServer, HTTP: httpEngine, Invalidator: invalidator}
}

// ========================================
// Custom Providers
// ========================================
// 四个兄弟组各有自己的SiblingStore和Reorderer，
// Wire按类型注入无法区分，所以在Provider里显式组装

func provideDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, func(), error) {
	db, err := mysql.NewDB(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	return db, cleanup, nil
}

// provideRedis 未启用Redis时返回nil客户端
func provideRedis(cfg *config.Config, log *zap.Logger) (*goredis.Client, func(), error) {
	if !cfg.Redis.Enabled {
		log.Info("未启用Redis，读接口不缓存")
		return nil, func() {}, nil
	}
	client, err := redis.NewClient(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return client, func() { client.Close() }, nil
}

func provideCache(client *goredis.Client, cfg *config.Config, log *zap.Logger) cache.Cache {
	if client == nil {
		return cache.Nop{}
	}
	return redis.NewCacheStore(client, cfg.Cache.KeyPrefix, redis.BreakerSettings{
		Failures:    cfg.Cache.BreakerFailures,
		OpenTimeout: cfg.Cache.BreakerOpenTimeout,
	}, log)
}

func provideCacheTTL(cfg *config.Config) cache.TTL {
	return cache.TTL{List: cfg.Cache.GetListTTL(), Detail: cfg.Cache.GetDetailTTL()}
}

// provideEventPublisher 未启用消息队列时事件直接丢弃
func provideEventPublisher(cfg *config.Config, log *zap.Logger) (catalog.EventPublisher, func(), error) {
	if !cfg.MQ.Enabled {
		return catalog.NopPublisher{}, func() {}, nil
	}
	publisher, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType, log)
	if err != nil {
		return nil, nil, err
	}
	return messaging.NewEventPublisher(publisher), func() { publisher.Close() }, nil
}

// provideJWTManager 未配置密钥时返回nil，写接口不鉴权
func provideJWTManager(cfg *config.Config, log *zap.Logger) *jwt.Manager {
	if !cfg.Auth.Enabled() {
		log.Warn("未配置auth.secret，写接口不校验Token")
		return nil
	}
	return jwt.NewManager(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.TokenExpire)
}

func provideServerConfig(cfg *config.Config) config.ServerConfig {
	return cfg.Server
}

func provideTransactor(tx *mysql.TxManager) ordering.Transactor {
	return tx
}

func provideCategoryService(db *gorm.DB, repo category.Repository, tx ordering.Transactor) category.Service {
	return category.NewService(repo, ordering.NewReorderer(mysql.NewCategorySiblingStore(db), tx))
}

func provideAttributeService(db *gorm.DB, repo attribute.Repository, tx ordering.Transactor) attribute.Service {
	return attribute.NewService(repo, ordering.NewReorderer(mysql.NewAttributeSiblingStore(db), tx))
}

func provideItemService(db *gorm.DB, repo item.Repository, tx ordering.Transactor) item.Service {
	return item.NewService(repo, ordering.NewReorderer(mysql.NewItemSiblingStore(db), tx), tx)
}

func provideMediaService(db *gorm.DB, images item.ImageRepository, tx ordering.Transactor) item.MediaService {
	return item.NewMediaService(images, ordering.NewReorderer(mysql.NewImageSiblingStore(db), tx))
}

// provideHealthService MySQL必检，Redis启用时才检查
func provideHealthService(db *gorm.DB, client *goredis.Client, log *zap.Logger) *apphealth.Service {
	checkers := []apphealth.Checker{mysql.NewHealthChecker(db)}
	if client != nil {
		checkers = append(checkers, redis.NewHealthChecker(client))
	}
	return apphealth.NewService(apphealth.DefaultTimeout, log, checkers...)
}
