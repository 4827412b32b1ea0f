package item

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/storecatalog/internal/domain/attribute"
	"github.com/xiebiao/storecatalog/internal/domain/catalog"
	"github.com/xiebiao/storecatalog/internal/domain/category"
	"github.com/xiebiao/storecatalog/internal/domain/ordering"
	"github.com/xiebiao/storecatalog/internal/domain/ordering/orderingtest"
)

type fixture struct {
	repo    *memRepo
	items   Service
	media   MediaService
	pricing PricingService
}

func newFixture(categoryIDs ...string) *fixture {
	repo := newMemRepo(categoryIDs...)
	tx := &orderingtest.Tx{}
	return &fixture{
		repo:    repo,
		items:   NewService(repo, ordering.NewReorderer(itemSiblings{repo}, tx), tx),
		media:   NewMediaService(imageRepo{repo}, ordering.NewReorderer(imageRepo{repo}, tx)),
		pricing: NewPricingService(repo, variantRepo{repo}, priceRepo{repo}, attrRepo{r: repo}),
	}
}

func (f *fixture) mustCreate(t *testing.T, categoryID, slug string) *Item {
	t.Helper()
	it, err := f.items.Create(context.Background(), CreateParams{CategoryID: categoryID, Slug: slug, IsAvailable: true})
	require.NoError(t, err)
	return it
}

func (f *fixture) positions(t *testing.T, categoryID string) map[string]int {
	t.Helper()
	list, err := f.items.ListByCategory(context.Background(), categoryID)
	require.NoError(t, err)
	out := map[string]int{}
	for _, it := range list {
		out[it.Slug] = it.SortOrder
	}
	return out
}

func TestService_CreateAndMove(t *testing.T) {
	f := newFixture("phones")
	ctx := context.Background()

	ids := map[string]string{}
	for _, slug := range []string{"a", "b", "c", "d", "e"} {
		ids[slug] = f.mustCreate(t, "phones", slug).ID
	}
	assert.Equal(t, map[string]int{"a": 1, "b": 2, "c": 3, "d": 4, "e": 5}, f.positions(t, "phones"))

	t.Run("E前移到2", func(t *testing.T) {
		moved, updates, err := f.items.ChangePosition(ctx, ids["e"], 2)
		require.NoError(t, err)
		assert.Equal(t, 2, moved.SortOrder)
		assert.Len(t, updates, 4)
		assert.Equal(t, map[string]int{"a": 1, "e": 2, "b": 3, "c": 4, "d": 5}, f.positions(t, "phones"))
	})

	t.Run("slug重复", func(t *testing.T) {
		_, err := f.items.Create(ctx, CreateParams{CategoryID: "phones", Slug: "a"})
		assert.ErrorIs(t, err, ErrSlugDuplicate)
	})

	t.Run("分类不存在", func(t *testing.T) {
		_, err := f.items.Create(ctx, CreateParams{CategoryID: "ghost", Slug: "x"})
		assert.ErrorIs(t, err, category.ErrCategoryNotFound)
	})

	t.Run("商品不存在", func(t *testing.T) {
		_, _, err := f.items.ChangePosition(ctx, "ghost", 1)
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	f := newFixture("phones")
	ctx := context.Background()

	f.mustCreate(t, "phones", "a")
	mid := f.mustCreate(t, "phones", "b")
	last := f.mustCreate(t, "phones", "c")

	deleted, updates, err := f.items.Delete(ctx, mid.ID)
	require.NoError(t, err)
	assert.Equal(t, "phones", deleted.CategoryID)
	assert.Equal(t, []ordering.Update{{ID: last.ID, Position: 2}}, updates)
	assert.Equal(t, map[string]int{"a": 1, "c": 2}, f.positions(t, "phones"))
}

func TestService_UpdateMovesBetweenCategories(t *testing.T) {
	f := newFixture("phones", "tablets")
	ctx := context.Background()

	first := f.mustCreate(t, "phones", "p1")
	second := f.mustCreate(t, "phones", "p2")
	third := f.mustCreate(t, "phones", "p3")
	f.mustCreate(t, "tablets", "t1")

	target := "tablets"
	brand := "Acme"
	f.repo.trace = nil
	updated, previous, shifted, err := f.items.Update(ctx, first.ID, UpdateParams{CategoryID: &target, Brand: &brand})
	require.NoError(t, err)

	assert.Equal(t, "phones", previous)
	assert.Equal(t, "tablets", updated.CategoryID)
	assert.Equal(t, 2, updated.SortOrder)
	assert.Equal(t, "Acme", *updated.Brand)
	assert.Equal(t, map[string]int{"p2": 1, "p3": 2}, f.positions(t, "phones"))
	assert.Equal(t, map[string]int{"t1": 1, "p1": 2}, f.positions(t, "tablets"))
	assert.Equal(t, []ordering.Update{{ID: second.ID, Position: 1}, {ID: third.ID, Position: 2}}, shifted,
		"返回原分类收拢的变更")
	assert.Equal(t, []string{"lock:phones", "lock:tablets", "update:" + first.ID}, f.repo.trace,
		"先锁两个分类组再写商品行")

	t.Run("不换分类时没有收拢", func(t *testing.T) {
		available := false
		_, previous, shifted, err := f.items.Update(ctx, first.ID, UpdateParams{IsAvailable: &available})
		require.NoError(t, err)
		assert.Equal(t, "tablets", previous)
		assert.Empty(t, shifted)
	})

	t.Run("目标分类不存在", func(t *testing.T) {
		ghost := "ghost"
		_, _, _, err := f.items.Update(ctx, first.ID, UpdateParams{CategoryID: &ghost})
		assert.ErrorIs(t, err, category.ErrCategoryNotFound)
	})

	t.Run("slug非法", func(t *testing.T) {
		bad := "Not Valid"
		_, _, _, err := f.items.Update(ctx, first.ID, UpdateParams{Slug: &bad})
		assert.ErrorIs(t, err, ErrInvalidSlug)
	})
}

func TestMediaService(t *testing.T) {
	f := newFixture("phones")
	ctx := context.Background()
	it := f.mustCreate(t, "phones", "p1")

	var ids []string
	for _, url := range []string{"1.jpg", "2.jpg", "3.jpg"} {
		img, err := f.media.AddImage(ctx, it.ID, url, nil)
		require.NoError(t, err)
		ids = append(ids, img.ID)
	}

	moved, updates, err := f.media.ChangeImagePosition(ctx, ids[2], 1)
	require.NoError(t, err)
	assert.Equal(t, 1, moved.SortOrder)
	assert.Len(t, updates, 3)

	_, _, err = f.media.RemoveImage(ctx, ids[0])
	require.NoError(t, err)

	full, err := f.items.Get(ctx, it.ID)
	require.NoError(t, err)
	group := make([]ordering.Sibling, 0, len(full.Images))
	for _, img := range full.Images {
		group = append(group, ordering.Sibling{ID: img.ID, SortOrder: img.SortOrder})
	}
	assert.True(t, ordering.IsDense(group))

	t.Run("商品不存在", func(t *testing.T) {
		_, err := f.media.AddImage(ctx, "ghost", "x.jpg", nil)
		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("越界", func(t *testing.T) {
		_, _, err := f.media.ChangeImagePosition(ctx, ids[1], 3)
		assert.ErrorIs(t, err, ordering.ErrInvalidPosition)
	})

	t.Run("地址为空", func(t *testing.T) {
		_, err := f.media.AddImage(ctx, it.ID, " ", nil)
		assert.ErrorIs(t, err, ErrEmptyImageURL)
	})
}

func TestPricingService(t *testing.T) {
	f := newFixture("phones", "tablets")
	ctx := context.Background()
	it := f.mustCreate(t, "phones", "p1")

	f.repo.attrs["memory"] = &attribute.Attribute{ID: "memory", CategoryID: "phones", Slug: "memory", SortOrder: 1}
	f.repo.attrs["screen"] = &attribute.Attribute{ID: "screen", CategoryID: "tablets", Slug: "screen", SortOrder: 1}

	v, err := f.pricing.AddVariant(ctx, VariantParams{ItemID: it.ID, AttributeID: "memory", Language: catalog.LanguageEN, Value: "128GB"})
	require.NoError(t, err)

	t.Run("属性不属于商品分类", func(t *testing.T) {
		_, err := f.pricing.AddVariant(ctx, VariantParams{ItemID: it.ID, AttributeID: "screen", Language: catalog.LanguageEN, Value: "10"})
		assert.ErrorIs(t, err, ErrAttributeScope)
	})

	t.Run("规格价格", func(t *testing.T) {
		p, err := f.pricing.AddVariantPrice(ctx, v.ID, PriceParams{Type: catalog.PriceTypeRegular, Value: decimal.RequireFromString("999.999")})
		require.NoError(t, err)
		assert.Equal(t, "1000", p.Value.String())
		assert.Equal(t, catalog.CurrencyUAH, p.Currency)

		_, err = f.pricing.AddVariantPrice(ctx, v.ID, PriceParams{Type: catalog.PriceTypeRegular, Value: decimal.NewFromInt(1)})
		assert.ErrorIs(t, err, ErrPriceDuplicate)

		_, err = f.pricing.RemoveBasePrice(ctx, p.ID)
		assert.ErrorIs(t, err, ErrPriceNotFound, "规格价格不能通过基础价格接口删除")

		_, err = f.pricing.RemoveVariantPrice(ctx, p.ID)
		assert.NoError(t, err)
	})

	t.Run("基础价格", func(t *testing.T) {
		p, err := f.pricing.AddBasePrice(ctx, it.ID, PriceParams{Type: catalog.PriceTypeWholesale, Value: decimal.NewFromFloat(10.5), Currency: catalog.CurrencyUSD})
		require.NoError(t, err)
		assert.Nil(t, p.VariantID)

		_, err = f.pricing.AddBasePrice(ctx, it.ID, PriceParams{Type: catalog.PriceTypeWholesale, Value: decimal.NewFromInt(3)})
		assert.ErrorIs(t, err, ErrPriceDuplicate)

		_, err = f.pricing.AddBasePrice(ctx, it.ID, PriceParams{Type: catalog.PriceTypeRegular, Value: decimal.Zero})
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("属性值翻译", func(t *testing.T) {
		_, err := f.pricing.UpsertVariantTranslation(ctx, v.ID, catalog.LanguageUA, "128 ГБ")
		require.NoError(t, err)

		got, err := f.pricing.RemoveVariant(ctx, v.ID)
		require.NoError(t, err)
		value, ok := got.Localized(catalog.LanguageUA)
		assert.True(t, ok)
		assert.Equal(t, "128 ГБ", value)
	})
}
