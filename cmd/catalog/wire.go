//go:build wireinject
// +build wireinject

// Wire依赖注入配置
// 修改Provider后运行 `wire gen ./cmd/catalog` 重新生成wire_gen.go

package main

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	appattribute "github.com/xiebiao/storecatalog/internal/application/attribute"
	appcategory "github.com/xiebiao/storecatalog/internal/application/category"
	appitem "github.com/xiebiao/storecatalog/internal/application/item"
	"github.com/xiebiao/storecatalog/internal/domain/item"
	"github.com/xiebiao/storecatalog/internal/infrastructure/config"
	"github.com/xiebiao/storecatalog/internal/infrastructure/messaging"
	"github.com/xiebiao/storecatalog/internal/infrastructure/persistence/mysql"
	grpchandler "github.com/xiebiao/storecatalog/internal/interface/grpc/handler"
	httphandler "github.com/xiebiao/storecatalog/internal/interface/http/handler"
	"github.com/xiebiao/storecatalog/internal/interface/http/middleware"
	"github.com/xiebiao/storecatalog/internal/interface/http/router"
)

// infrastructureSet 数据库、缓存、消息队列、鉴权
var infrastructureSet = wire.NewSet(
	provideDB,
	provideRedis,
	provideCache,
	provideCacheTTL,
	provideEventPublisher,
	provideJWTManager,
	provideServerConfig,
	mysql.NewTxManager,
	provideTransactor,
)

// repositorySet 仓储
var repositorySet = wire.NewSet(
	mysql.NewCategoryRepository,
	mysql.NewAttributeRepository,
	mysql.NewItemRepository,
	mysql.NewImageRepository,
	mysql.NewVariantRepository,
	mysql.NewPriceRepository,
)

// domainSet 领域服务，各自持有对应兄弟组的Reorderer
var domainSet = wire.NewSet(
	provideCategoryService,
	provideAttributeService,
	provideItemService,
	provideMediaService,
	item.NewPricingService,
)

// applicationSet 应用服务
var applicationSet = wire.NewSet(
	appcategory.NewService,
	appattribute.NewService,
	appitem.NewService,
	provideHealthService,
	messaging.NewInvalidator,
)

// grpcSet gRPC处理器与服务器
var grpcSet = wire.NewSet(
	grpchandler.NewCategoryHandler,
	grpchandler.NewAttributeHandler,
	grpchandler.NewItemHandler,
	grpchandler.NewHealthHandler,
	grpchandler.NewServer,
)

// httpSet HTTP处理器与路由
var httpSet = wire.NewSet(
	httphandler.NewCatalogHandler,
	httphandler.NewHealthHandler,
	middleware.NewAuthMiddleware,
	router.New,
)

// InitializeApp 组装整个应用，cleanup按创建的逆序释放连接
func InitializeApp(cfg *config.Config, log *zap.Logger) (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		grpcSet,
		httpSet,
		newApp,
	)
	return nil, nil, nil
}
