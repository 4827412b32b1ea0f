package handler

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/xiebiao/storecatalog/api/catalogv1"
	appattribute "github.com/xiebiao/storecatalog/internal/application/attribute"
	"github.com/xiebiao/storecatalog/internal/application/cache"
	appcategory "github.com/xiebiao/storecatalog/internal/application/category"
	apphealth "github.com/xiebiao/storecatalog/internal/application/health"
	appitem "github.com/xiebiao/storecatalog/internal/application/item"
	"github.com/xiebiao/storecatalog/internal/application/shared/sharedtest"
	"github.com/xiebiao/storecatalog/internal/domain/catalog"
	"github.com/xiebiao/storecatalog/internal/domain/category"
	"github.com/xiebiao/storecatalog/internal/domain/ordering"
	"github.com/xiebiao/storecatalog/internal/infrastructure/config"
	"github.com/xiebiao/storecatalog/pkg/jwt"
)

// stubCategories 只实现用到的方法，其余方法调用会panic
type stubCategories struct {
	mock.Mock
	category.Service
}

func (m *stubCategories) List(ctx context.Context) ([]*category.Category, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*category.Category)
	return list, args.Error(1)
}

func (m *stubCategories) ChangePosition(ctx context.Context, id string, position int) (*category.Category, []ordering.Update, error) {
	args := m.Called(ctx, id, position)
	c, _ := args.Get(0).(*category.Category)
	updates, _ := args.Get(1).([]ordering.Update)
	return c, updates, args.Error(2)
}

type fakeChecker struct {
	name string
	err  error
}

func (c fakeChecker) Name() string { return c.name }
func (c fakeChecker) Check(ctx context.Context) error { return c.err }

type testServer struct {
	conn       *grpc.ClientConn
	categories *stubCategories
	events     *sharedtest.Publisher
	manager    *jwt.Manager
}

func startServer(t *testing.T) *testServer {
	t.Helper()
	log := zap.NewNop()
	ts := &testServer{
		categories: &stubCategories{},
		events:     &sharedtest.Publisher{},
		manager:    jwt.NewManager("secret", "store-catalog", time.Hour),
	}

	ttl := cache.TTL{List: time.Minute, Detail: time.Minute}
	categorySvc := appcategory.NewService(ts.categories, cache.Nop{}, ttl, ts.events, log)
	healthSvc := apphealth.NewService(time.Second, log,
		fakeChecker{name: "mysql"},
		fakeChecker{name: "redis", err: errors.New("connection refused")})

	// 属性与商品服务在这些用例里不会走到应用层
	srv := NewServer(
		config.ServerConfig{Name: "store-catalog"},
		NewCategoryHandler(categorySvc, log),
		NewAttributeHandler((*appattribute.Service)(nil), log),
		NewItemHandler((*appitem.Service)(nil), log),
		NewHealthHandler(healthSvc),
		ts.manager,
		log,
	)

	lis := bufconn.Listen(1024 * 1024)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Stop(ctx)
	})

	conn, err := grpc.DialContext(context.Background(), "bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	ts.conn = conn
	return ts
}

func (ts *testServer) editorContext(t *testing.T) context.Context {
	token, err := ts.manager.GenerateToken("editor-1", jwt.RoleEditor)
	require.NoError(t, err)
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+token)
}

func sampleCategory(id string, pos int) *category.Category {
	return &category.Category{
		ID:          id,
		Slug:        "slug-" + id,
		IsAvailable: true,
		SortOrder:   pos,
		Translations: []category.Translation{
			{ID: "t-" + id, CategoryID: id, Language: catalog.LanguageEN, Title: "EN " + id},
		},
	}
}

func TestCategoryService(t *testing.T) {
	ts := startServer(t)
	client := catalogv1.NewCategoryServiceClient(ts.conn)

	t.Run("读接口无需Token", func(t *testing.T) {
		ts.categories.On("List", mock.Anything).
			Return([]*category.Category{sampleCategory("a", 1), sampleCategory("b", 2)}, nil).Once()

		resp, err := client.ListCategories(context.Background(), &catalogv1.ListCategoriesRequest{
			Language: catalog.LanguageUA.Code(),
		})
		require.NoError(t, err)
		require.Len(t, resp.Categories, 2)
		assert.Equal(t, "EN a", resp.Categories[0].Title)
		assert.Equal(t, catalog.LanguageEN.Code(), resp.Categories[0].Language)
		assert.Equal(t, int32(2), resp.Categories[1].SortOrder)
	})

	t.Run("写接口缺少Token", func(t *testing.T) {
		_, err := client.ChangeCategoryPosition(context.Background(), &catalogv1.ChangePositionRequest{Id: "a", SortOrder: 2})
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("位置越界返回InvalidArgument", func(t *testing.T) {
		ts.categories.On("ChangePosition", mock.Anything, "a", 5).
			Return(nil, nil, ordering.NewInvalidPositionError(2)).Once()

		_, err := client.ChangeCategoryPosition(ts.editorContext(t), &catalogv1.ChangePositionRequest{Id: "a", SortOrder: 5})
		s := status.Convert(err)
		assert.Equal(t, codes.InvalidArgument, s.Code())
		assert.Equal(t, "排序位置必须在1到2之间", s.Message())
	})

	t.Run("移动成功", func(t *testing.T) {
		ts.categories.On("ChangePosition", mock.Anything, "a", 2).
			Return(sampleCategory("a", 2), []ordering.Update{{ID: "b", Position: 1}, {ID: "a", Position: 2}}, nil).Once()

		c, err := client.ChangeCategoryPosition(ts.editorContext(t), &catalogv1.ChangePositionRequest{Id: "a", SortOrder: 2})
		require.NoError(t, err)
		assert.Equal(t, int32(2), c.SortOrder)
		assert.Equal(t, []catalog.EventType{catalog.EventCategoryReordered}, ts.events.Types())
	})

	t.Run("并发冲突返回Aborted", func(t *testing.T) {
		ts.categories.On("ChangePosition", mock.Anything, "b", 1).
			Return(nil, nil, ordering.ErrConcurrencyConflict).Once()

		_, err := client.ChangeCategoryPosition(ts.editorContext(t), &catalogv1.ChangePositionRequest{Id: "b", SortOrder: 1})
		assert.Equal(t, codes.Aborted, status.Code(err))
	})

	t.Run("空ID", func(t *testing.T) {
		_, err := client.GetCategory(context.Background(), &catalogv1.IDRequest{})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	ts.categories.AssertExpectations(t)
}

func TestItemService_Validation(t *testing.T) {
	ts := startServer(t)
	client := catalogv1.NewItemServiceClient(ts.conn)

	t.Run("价格格式错误", func(t *testing.T) {
		_, err := client.AddBasePrice(ts.editorContext(t), &catalogv1.AddBasePriceRequest{
			ItemId: "i1",
			Type:   catalog.PriceTypeRegular.Code(),
			Value:  "12,50",
		})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("不支持的币种", func(t *testing.T) {
		_, err := client.AddVariantPrice(ts.editorContext(t), &catalogv1.AddVariantPriceRequest{
			VariantId: "v1",
			Type:      catalog.PriceTypeRegular.Code(),
			Value:     "10",
			Currency:  9,
		})
		s := status.Convert(err)
		assert.Equal(t, codes.InvalidArgument, s.Code())
		assert.Equal(t, "不支持的币种", s.Message())
	})

	t.Run("列表缺少分类", func(t *testing.T) {
		_, err := client.ListItems(context.Background(), &catalogv1.ListItemsRequest{})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}

func TestHealthService(t *testing.T) {
	ts := startServer(t)

	t.Run("标准健康检查", func(t *testing.T) {
		resp, err := healthpb.NewHealthClient(ts.conn).Check(context.Background(), &healthpb.HealthCheckRequest{
			Service: catalogv1.ItemServiceName,
		})
		require.NoError(t, err)
		assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)
	})

	t.Run("依赖明细", func(t *testing.T) {
		client := catalogv1.NewHealthServiceClient(ts.conn)

		app, err := client.CheckAppHealth(context.Background(), &catalogv1.Empty{})
		require.NoError(t, err)
		assert.True(t, app.Serving)

		resp, err := client.CheckAppConnections(context.Background(), &catalogv1.Empty{})
		require.NoError(t, err)
		require.Len(t, resp.Connections, 2)
		assert.True(t, resp.Connections[0].Healthy)
		assert.False(t, resp.Connections[1].Healthy)
		assert.Equal(t, "connection refused", resp.Connections[1].Message)
	})
}
