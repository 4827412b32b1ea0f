package item

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/storecatalog/internal/domain/attribute"
	"github.com/xiebiao/storecatalog/internal/domain/catalog"
)

func price(t catalog.PriceType, v string, c catalog.Currency) Price {
	return Price{Type: t, Value: decimal.RequireFromString(v), Currency: c}
}

func TestBuildView(t *testing.T) {
	memory := &attribute.Attribute{ID: "a-mem", Slug: "memory", SortOrder: 2, Translations: []attribute.Translation{
		{Language: catalog.LanguageEN, Name: "Memory"},
	}}
	weight := &attribute.Attribute{ID: "a-weight", Slug: "weight", SortOrder: 3}
	screen := &attribute.Attribute{ID: "a-screen", Slug: "screen", SortOrder: 1, Translations: []attribute.Translation{
		{Language: catalog.LanguageUA, Name: "Екран"},
	}}

	desc := "Опис"
	it := &Item{
		ID:         "item-1",
		CategoryID: "phones",
		Slug:       "p1",
		SortOrder:  3,
		Translations: []Translation{
			{Language: catalog.LanguageEN, Title: "Phone"},
			{Language: catalog.LanguageUA, Title: "Телефон", Description: &desc},
		},
		Images: []Image{{ID: "i2", SortOrder: 2}, {ID: "i1", SortOrder: 1}},
		Variants: []Variant{
			{ID: "v256", Attribute: memory, Translations: []VariantTranslation{{Language: catalog.LanguageEN, Value: "256GB"}},
				Prices: []Price{price(catalog.PriceTypeRegular, "1200", catalog.CurrencyUSD)}},
			{ID: "v128", Attribute: memory, Translations: []VariantTranslation{{Language: catalog.LanguageEN, Value: "128GB"}},
				Prices: []Price{price(catalog.PriceTypeRegular, "900", catalog.CurrencyUSD), price(catalog.PriceTypeDiscount, "850", catalog.CurrencyUSD)}},
			{ID: "vdisc", Attribute: memory, Translations: []VariantTranslation{{Language: catalog.LanguageEN, Value: "64GB"}},
				Prices: []Price{price(catalog.PriceTypeDiscount, "500", catalog.CurrencyEUR)}},
			{ID: "info-w", Attribute: weight, Translations: []VariantTranslation{{Language: catalog.LanguageEN, Value: "180g"}}},
			{ID: "info-s", Attribute: screen, Translations: []VariantTranslation{{Language: catalog.LanguageUA, Value: "6.1"}}},
		},
	}

	t.Run("目标语言", func(t *testing.T) {
		v := BuildView(it, catalog.LanguageUA)

		assert.Equal(t, "Телефон", v.Title)
		require.NotNil(t, v.Description)
		assert.Equal(t, "Опис", *v.Description)
		assert.Equal(t, "i1", v.Images[0].ID, "图片按位置排序")

		require.Len(t, v.Variants, 3)
		assert.Equal(t, "vdisc", v.Variants[0].ID, "无常规价按0排序")
		assert.Equal(t, catalog.CurrencyEUR, v.Variants[0].Currency, "常规价缺失时取折扣价币种")
		assert.Equal(t, "v128", v.Variants[1].ID)
		assert.Equal(t, "850", v.Variants[1].DiscountPrice.String())
		assert.Equal(t, "v256", v.Variants[2].ID)
		assert.Equal(t, "Memory", v.Variants[2].AttributeName, "属性名回退到默认语言")

		require.Len(t, v.Infos, 2)
		assert.Equal(t, "Екран", v.Infos[0].AttributeName, "参数按属性sort_order排序")
		assert.Equal(t, "6.1", v.Infos[0].Value)
		assert.Equal(t, "weight", v.Infos[1].AttributeName, "无翻译时使用slug")
	})

	t.Run("缺失语言回退到默认语言", func(t *testing.T) {
		v := BuildView(it, catalog.LanguageFR)
		assert.Equal(t, "Phone", v.Title)
		assert.Nil(t, v.Description)
	})

	t.Run("空集合不为nil", func(t *testing.T) {
		v := BuildView(&Item{ID: "empty"}, catalog.LanguageEN)
		assert.NotNil(t, v.Variants)
		assert.NotNil(t, v.Infos)
		assert.NotNil(t, v.Prices)
		assert.Equal(t, "", v.Title)
	})
}
