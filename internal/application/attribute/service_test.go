package attribute

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xiebiao/storecatalog/internal/application/cache"
	"github.com/xiebiao/storecatalog/internal/application/shared/sharedtest"
	"github.com/xiebiao/storecatalog/internal/domain/attribute"
	"github.com/xiebiao/storecatalog/internal/domain/catalog"
	"github.com/xiebiao/storecatalog/internal/domain/category"
	"github.com/xiebiao/storecatalog/internal/domain/ordering"
)

type mockAttributes struct {
	mock.Mock
}

func (m *mockAttributes) Create(ctx context.Context, categoryID, slug string) (*attribute.Attribute, error) {
	args := m.Called(ctx, categoryID, slug)
	a, _ := args.Get(0).(*attribute.Attribute)
	return a, args.Error(1)
}

func (m *mockAttributes) Get(ctx context.Context, id string) (*attribute.Attribute, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*attribute.Attribute)
	return a, args.Error(1)
}

func (m *mockAttributes) ListByCategory(ctx context.Context, categoryID string) ([]*attribute.Attribute, error) {
	args := m.Called(ctx, categoryID)
	list, _ := args.Get(0).([]*attribute.Attribute)
	return list, args.Error(1)
}

func (m *mockAttributes) Rename(ctx context.Context, id, slug string) (*attribute.Attribute, error) {
	args := m.Called(ctx, id, slug)
	a, _ := args.Get(0).(*attribute.Attribute)
	return a, args.Error(1)
}

func (m *mockAttributes) Delete(ctx context.Context, id string) (*attribute.Attribute, []ordering.Update, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*attribute.Attribute)
	updates, _ := args.Get(1).([]ordering.Update)
	return a, updates, args.Error(2)
}

func (m *mockAttributes) ChangePosition(ctx context.Context, id string, position int) (*attribute.Attribute, []ordering.Update, error) {
	args := m.Called(ctx, id, position)
	a, _ := args.Get(0).(*attribute.Attribute)
	updates, _ := args.Get(1).([]ordering.Update)
	return a, updates, args.Error(2)
}

func (m *mockAttributes) UpsertTranslation(ctx context.Context, attributeID string, lang catalog.Language, name string) error {
	return m.Called(ctx, attributeID, lang, name).Error(0)
}

func (m *mockAttributes) DeleteTranslation(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func TestService(t *testing.T) {
	ctx := context.Background()
	color := &attribute.Attribute{ID: "color", CategoryID: "phones", Slug: "color", SortOrder: 2}

	newService := func() (*Service, *mockAttributes, *sharedtest.MemoryCache, *sharedtest.Publisher) {
		m := &mockAttributes{}
		c := sharedtest.NewMemoryCache()
		p := &sharedtest.Publisher{}
		return NewService(m, c, p, zap.NewNop()), m, c, p
	}

	t.Run("创建失效所属分类的商品缓存", func(t *testing.T) {
		svc, m, c, p := newService()
		m.On("Create", mock.Anything, "phones", "color").Return(color, nil)

		dto, err := svc.Create(ctx, "phones", "color")
		require.NoError(t, err)
		assert.Equal(t, 2, dto.SortOrder)
		assert.Equal(t, []string{cache.ItemListPrefix("phones"), cache.AllItemDetailsPrefix()}, c.Deleted)
		require.Len(t, p.Events, 1)
		assert.Equal(t, "phones", p.Events[0].ParentID)
	})

	t.Run("分类不存在", func(t *testing.T) {
		svc, m, c, p := newService()
		m.On("Create", mock.Anything, "missing", "color").Return(nil, category.ErrCategoryNotFound)

		_, err := svc.Create(ctx, "missing", "color")
		assert.ErrorIs(t, err, category.ErrCategoryNotFound)
		assert.Empty(t, c.Deleted)
		assert.Empty(t, p.Events)
	})

	t.Run("删除发布位置变更", func(t *testing.T) {
		svc, m, _, p := newService()
		updates := []ordering.Update{{ID: "size", Position: 2}}
		m.On("Delete", mock.Anything, "color").Return(color, updates, nil)

		require.NoError(t, svc.Delete(ctx, "color"))
		require.Len(t, p.Events, 1)
		assert.Equal(t, catalog.EventAttributeDeleted, p.Events[0].Type)
		assert.Equal(t, updates, p.Events[0].Positions)
	})

	t.Run("翻译更新后按所属分类失效", func(t *testing.T) {
		svc, m, c, _ := newService()
		m.On("UpsertTranslation", mock.Anything, "color", catalog.LanguageUA, "Колір").Return(nil)
		m.On("Get", mock.Anything, "color").Return(color, nil)

		id, err := svc.UpsertTranslation(ctx, "color", catalog.LanguageUA, "Колір")
		require.NoError(t, err)
		assert.Equal(t, "color", id)
		assert.Contains(t, c.Deleted, cache.ItemListPrefix("phones"))
		m.AssertExpectations(t)
	})

	t.Run("列表保持顺序", func(t *testing.T) {
		svc, m, _, _ := newService()
		size := &attribute.Attribute{ID: "size", CategoryID: "phones", Slug: "size", SortOrder: 1}
		m.On("ListByCategory", mock.Anything, "phones").Return([]*attribute.Attribute{size, color}, nil)

		list, err := svc.ListByCategory(ctx, "phones")
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "size", list[0].ID)
		assert.Equal(t, "color", list[1].ID)
	})
}
