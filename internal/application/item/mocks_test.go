package item

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/xiebiao/storecatalog/internal/domain/catalog"
	"github.com/xiebiao/storecatalog/internal/domain/category"
	"github.com/xiebiao/storecatalog/internal/domain/item"
	"github.com/xiebiao/storecatalog/internal/domain/ordering"
)

type mockItems struct {
	mock.Mock
}

func (m *mockItems) Create(ctx context.Context, params item.CreateParams) (*item.Item, error) {
	args := m.Called(ctx, params)
	it, _ := args.Get(0).(*item.Item)
	return it, args.Error(1)
}

func (m *mockItems) Get(ctx context.Context, id string) (*item.Item, error) {
	args := m.Called(ctx, id)
	it, _ := args.Get(0).(*item.Item)
	return it, args.Error(1)
}

func (m *mockItems) ListByCategory(ctx context.Context, categoryID string) ([]*item.Item, error) {
	args := m.Called(ctx, categoryID)
	list, _ := args.Get(0).([]*item.Item)
	return list, args.Error(1)
}

func (m *mockItems) Update(ctx context.Context, id string, params item.UpdateParams) (*item.Item, string, []ordering.Update, error) {
	args := m.Called(ctx, id, params)
	it, _ := args.Get(0).(*item.Item)
	shifted, _ := args.Get(2).([]ordering.Update)
	return it, args.String(1), shifted, args.Error(3)
}

func (m *mockItems) Delete(ctx context.Context, id string) (*item.Item, []ordering.Update, error) {
	args := m.Called(ctx, id)
	it, _ := args.Get(0).(*item.Item)
	updates, _ := args.Get(1).([]ordering.Update)
	return it, updates, args.Error(2)
}

func (m *mockItems) ChangePosition(ctx context.Context, id string, position int) (*item.Item, []ordering.Update, error) {
	args := m.Called(ctx, id, position)
	it, _ := args.Get(0).(*item.Item)
	updates, _ := args.Get(1).([]ordering.Update)
	return it, updates, args.Error(2)
}

func (m *mockItems) UpsertTranslation(ctx context.Context, params item.TranslationParams) error {
	return m.Called(ctx, params).Error(0)
}

func (m *mockItems) DeleteTranslation(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockMedia struct {
	mock.Mock
}

func (m *mockMedia) AddImage(ctx context.Context, itemID, url string, alt *string) (*item.Image, error) {
	args := m.Called(ctx, itemID, url, alt)
	img, _ := args.Get(0).(*item.Image)
	return img, args.Error(1)
}

func (m *mockMedia) RemoveImage(ctx context.Context, imageID string) (*item.Image, []ordering.Update, error) {
	args := m.Called(ctx, imageID)
	img, _ := args.Get(0).(*item.Image)
	updates, _ := args.Get(1).([]ordering.Update)
	return img, updates, args.Error(2)
}

func (m *mockMedia) ChangeImagePosition(ctx context.Context, imageID string, position int) (*item.Image, []ordering.Update, error) {
	args := m.Called(ctx, imageID, position)
	img, _ := args.Get(0).(*item.Image)
	updates, _ := args.Get(1).([]ordering.Update)
	return img, updates, args.Error(2)
}

type mockPricing struct {
	mock.Mock
}

func (m *mockPricing) AddVariant(ctx context.Context, params item.VariantParams) (*item.Variant, error) {
	args := m.Called(ctx, params)
	v, _ := args.Get(0).(*item.Variant)
	return v, args.Error(1)
}

func (m *mockPricing) RemoveVariant(ctx context.Context, variantID string) (*item.Variant, error) {
	args := m.Called(ctx, variantID)
	v, _ := args.Get(0).(*item.Variant)
	return v, args.Error(1)
}

func (m *mockPricing) UpsertVariantTranslation(ctx context.Context, variantID string, lang catalog.Language, value string) (*item.Variant, error) {
	args := m.Called(ctx, variantID, lang, value)
	v, _ := args.Get(0).(*item.Variant)
	return v, args.Error(1)
}

func (m *mockPricing) AddVariantPrice(ctx context.Context, variantID string, params item.PriceParams) (*item.Price, error) {
	args := m.Called(ctx, variantID, params)
	p, _ := args.Get(0).(*item.Price)
	return p, args.Error(1)
}

func (m *mockPricing) RemoveVariantPrice(ctx context.Context, priceID string) (*item.Price, error) {
	args := m.Called(ctx, priceID)
	p, _ := args.Get(0).(*item.Price)
	return p, args.Error(1)
}

func (m *mockPricing) AddBasePrice(ctx context.Context, itemID string, params item.PriceParams) (*item.Price, error) {
	args := m.Called(ctx, itemID, params)
	p, _ := args.Get(0).(*item.Price)
	return p, args.Error(1)
}

func (m *mockPricing) RemoveBasePrice(ctx context.Context, priceID string) (*item.Price, error) {
	args := m.Called(ctx, priceID)
	p, _ := args.Get(0).(*item.Price)
	return p, args.Error(1)
}

// mockCategories 只有GetBySlug会被商品服务调用
type mockCategories struct {
	mock.Mock
	category.Service
}

func (m *mockCategories) GetBySlug(ctx context.Context, slug string) (*category.Category, error) {
	args := m.Called(ctx, slug)
	c, _ := args.Get(0).(*category.Category)
	return c, args.Error(1)
}
