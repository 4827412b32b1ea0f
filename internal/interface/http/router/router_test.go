package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

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
	"github.com/xiebiao/storecatalog/internal/interface/http/handler"
	"github.com/xiebiao/storecatalog/internal/interface/http/middleware"
	"github.com/xiebiao/storecatalog/pkg/jwt"
	"github.com/xiebiao/storecatalog/pkg/response"
)

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

type fixture struct {
	engine     *gin.Engine
	categories *stubCategories
	manager    *jwt.Manager
}

func newFixture(checkers ...apphealth.Checker) *fixture {
	log := zap.NewNop()
	f := &fixture{
		categories: &stubCategories{},
		manager:    jwt.NewManager("secret", "store-catalog", time.Hour),
	}

	ttl := cache.TTL{List: time.Minute, Detail: time.Minute}
	categorySvc := appcategory.NewService(f.categories, cache.Nop{}, ttl, &sharedtest.Publisher{}, log)
	catalogHandler := handler.NewCatalogHandler(categorySvc, (*appattribute.Service)(nil), (*appitem.Service)(nil))
	healthHandler := handler.NewHealthHandler(apphealth.NewService(time.Second, log, checkers...))

	f.engine = New(config.ServerConfig{Mode: gin.TestMode}, catalogHandler, healthHandler,
		middleware.NewAuthMiddleware(f.manager), log)
	return f
}

func (f *fixture) do(t *testing.T, method, path, body, role string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if role != "" {
		token, err := f.manager.GenerateToken("operator-1", role)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)

	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestHealthRoutes(t *testing.T) {
	t.Run("ping", func(t *testing.T) {
		f := newFixture()
		w, resp := f.do(t, http.MethodGet, "/ping", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 0, resp.Code)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("依赖异常返回503", func(t *testing.T) {
		f := newFixture(fakeChecker{name: "mysql"}, fakeChecker{name: "redis", err: errors.New("timeout")})
		w, _ := f.do(t, http.MethodGet, "/health", "", "")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"redis"`)
	})

	t.Run("依赖正常", func(t *testing.T) {
		f := newFixture(fakeChecker{name: "mysql"})
		w, _ := f.do(t, http.MethodGet, "/health", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("metrics", func(t *testing.T) {
		f := newFixture()
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		w := httptest.NewRecorder()
		f.engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestCategoryRoutes(t *testing.T) {
	t.Run("按语言列出分类", func(t *testing.T) {
		f := newFixture()
		f.categories.On("List", mock.Anything).Return([]*category.Category{{
			ID:        "c1",
			Slug:      "shoes",
			SortOrder: 1,
			Translations: []category.Translation{
				{ID: "t1", CategoryID: "c1", Language: catalog.LanguageUA, Title: "Взуття"},
			},
		}}, nil).Once()

		w, resp := f.do(t, http.MethodGet, "/api/v1/categories?lang=ua", "", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 0, resp.Code)
		assert.Contains(t, w.Body.String(), "Взуття")
		f.categories.AssertExpectations(t)
	})

	t.Run("不支持的语言", func(t *testing.T) {
		f := newFixture()
		w, _ := f.do(t, http.MethodGet, "/api/v1/categories?lang=xx", "", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("空目录返回404", func(t *testing.T) {
		f := newFixture()
		f.categories.On("List", mock.Anything).Return([]*category.Category{}, nil).Once()
		w, _ := f.do(t, http.MethodGet, "/api/v1/categories", "", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestChangePosition(t *testing.T) {
	t.Run("缺少Token", func(t *testing.T) {
		f := newFixture()
		w, resp := f.do(t, http.MethodPut, "/api/v1/categories/c1/position", `{"sort_order":2}`, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, 40100, resp.Code)
	})

	t.Run("只读角色", func(t *testing.T) {
		f := newFixture()
		w, _ := f.do(t, http.MethodPut, "/api/v1/categories/c1/position", `{"sort_order":2}`, jwt.RoleViewer)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("缺少sort_order", func(t *testing.T) {
		f := newFixture()
		w, resp := f.do(t, http.MethodPut, "/api/v1/categories/c1/position", `{}`, jwt.RoleEditor)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 40901, resp.Code)
	})

	t.Run("位置越界", func(t *testing.T) {
		f := newFixture()
		f.categories.On("ChangePosition", mock.Anything, "c1", 0).
			Return(nil, nil, ordering.NewInvalidPositionError(3)).Once()

		w, resp := f.do(t, http.MethodPut, "/api/v1/categories/c1/position", `{"sort_order":0}`, jwt.RoleEditor)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "排序位置必须在1到3之间", resp.Message)
	})

	t.Run("并发冲突返回409", func(t *testing.T) {
		f := newFixture()
		f.categories.On("ChangePosition", mock.Anything, "c1", 2).
			Return(nil, nil, ordering.ErrConcurrencyConflict).Once()

		w, _ := f.do(t, http.MethodPut, "/api/v1/categories/c1/position", `{"sort_order":2}`, jwt.RoleAdmin)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("成功", func(t *testing.T) {
		f := newFixture()
		f.categories.On("ChangePosition", mock.Anything, "c1", 2).
			Return(&category.Category{ID: "c1", Slug: "shoes", SortOrder: 2}, []ordering.Update{{ID: "c1", Position: 2}}, nil).Once()

		w, resp := f.do(t, http.MethodPut, "/api/v1/categories/c1/position", `{"sort_order":2}`, jwt.RoleEditor)
		require.Equal(t, http.StatusOK, w.Code)
		data, ok := resp.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, float64(2), data["sort_order"])
	})
}
