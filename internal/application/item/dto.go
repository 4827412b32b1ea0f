package item

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/storecatalog/internal/domain/catalog"
	"github.com/xiebiao/storecatalog/internal/domain/item"
)

// CreateItemRequest 创建商品请求
type CreateItemRequest struct {
	CategoryID   string
	Slug         string
	Brand        *string
	IsAvailable  bool
	ExpectedDate *time.Time
}

// UpdateItemRequest 修改商品请求，nil字段不修改
type UpdateItemRequest struct {
	ID           string
	Slug         *string
	Brand        *string
	IsAvailable  *bool
	ExpectedDate *time.Time
	CategoryID   *string
}

// TranslationRequest 商品翻译请求
type TranslationRequest struct {
	ItemID              string
	Language            catalog.Language
	Title               string
	Description         *string
	DetailedDescription *string
}

// PriceRequest 价格请求
type PriceRequest struct {
	Type     catalog.PriceType
	Value    decimal.Decimal
	Currency catalog.Currency
}

// ItemView 商品在某个语言下的展示
type ItemView struct {
	ID                  string        `json:"id"`
	CategoryID          string        `json:"category_id"`
	Slug                string        `json:"slug"`
	Brand               *string       `json:"brand,omitempty"`
	IsAvailable         bool          `json:"is_available"`
	ExpectedDate        *time.Time    `json:"expected_date,omitempty"`
	SortOrder           int           `json:"sort_order"`
	Title               string        `json:"title"`
	Description         *string       `json:"description,omitempty"`
	DetailedDescription *string       `json:"detailed_description,omitempty"`
	Images              []ImageDTO    `json:"images"`
	Variants            []VariantView `json:"variants"`
	Infos               []InfoView    `json:"infos"`
	Prices              []PriceDTO    `json:"prices"`
}

// ImageDTO 商品图片
type ImageDTO struct {
	ID        string  `json:"id"`
	ItemID    string  `json:"item_id"`
	URL       string  `json:"url"`
	Alt       *string `json:"alt,omitempty"`
	SortOrder int     `json:"sort_order"`
}

// VariantView 可选规格
type VariantView struct {
	ID             string           `json:"id"`
	AttributeSlug  string           `json:"attribute_slug"`
	AttributeName  string           `json:"attribute_name"`
	Value          string           `json:"value"`
	RegularPrice   *decimal.Decimal `json:"regular_price,omitempty"`
	DiscountPrice  *decimal.Decimal `json:"discount_price,omitempty"`
	WholesalePrice *decimal.Decimal `json:"wholesale_price,omitempty"`
	Currency       catalog.Currency `json:"currency"`
}

// InfoView 参数信息
type InfoView struct {
	AttributeSlug string `json:"attribute_slug"`
	AttributeName string `json:"attribute_name"`
	Value         string `json:"value"`
}

// PriceDTO 价格
type PriceDTO struct {
	ID        string            `json:"id"`
	ItemID    string            `json:"item_id"`
	VariantID *string           `json:"variant_id,omitempty"`
	Type      catalog.PriceType `json:"type"`
	Value     decimal.Decimal   `json:"value"`
	Currency  catalog.Currency  `json:"currency"`
}

// VariantDTO 商品属性值
type VariantDTO struct {
	ID           string                  `json:"id"`
	ItemID       string                  `json:"item_id"`
	AttributeID  string                  `json:"attribute_id"`
	Translations []VariantTranslationDTO `json:"translations"`
}

// VariantTranslationDTO 属性值翻译
type VariantTranslationDTO struct {
	ID       string           `json:"id"`
	Language catalog.Language `json:"language"`
	Value    string           `json:"value"`
}

func toItemView(it *item.Item, lang catalog.Language) *ItemView {
	v := item.BuildView(it, lang)

	images := make([]ImageDTO, len(v.Images))
	for i := range v.Images {
		images[i] = toImageDTO(&v.Images[i])
	}

	variants := make([]VariantView, len(v.Variants))
	for i, vv := range v.Variants {
		variants[i] = VariantView{
			ID:             vv.ID,
			AttributeSlug:  vv.AttributeSlug,
			AttributeName:  vv.AttributeName,
			Value:          vv.Value,
			RegularPrice:   vv.RegularPrice,
			DiscountPrice:  vv.DiscountPrice,
			WholesalePrice: vv.WholesalePrice,
			Currency:       vv.Currency,
		}
	}

	infos := make([]InfoView, len(v.Infos))
	for i, info := range v.Infos {
		infos[i] = InfoView{
			AttributeSlug: info.AttributeSlug,
			AttributeName: info.AttributeName,
			Value:         info.Value,
		}
	}

	prices := make([]PriceDTO, len(v.Prices))
	for i := range v.Prices {
		prices[i] = toPriceDTO(&v.Prices[i])
	}

	return &ItemView{
		ID:                  v.ID,
		CategoryID:          v.CategoryID,
		Slug:                v.Slug,
		Brand:               v.Brand,
		IsAvailable:         v.IsAvailable,
		ExpectedDate:        v.ExpectedDate,
		SortOrder:           v.SortOrder,
		Title:               v.Title,
		Description:         v.Description,
		DetailedDescription: v.DetailedDescription,
		Images:              images,
		Variants:            variants,
		Infos:               infos,
		Prices:              prices,
	}
}

func toImageDTO(img *item.Image) ImageDTO {
	return ImageDTO{
		ID:        img.ID,
		ItemID:    img.ItemID,
		URL:       img.URL,
		Alt:       img.Alt,
		SortOrder: img.SortOrder,
	}
}

func toPriceDTO(p *item.Price) PriceDTO {
	return PriceDTO{
		ID:        p.ID,
		ItemID:    p.ItemID,
		VariantID: p.VariantID,
		Type:      p.Type,
		Value:     p.Value,
		Currency:  p.Currency,
	}
}

func toVariantDTO(v *item.Variant) *VariantDTO {
	translations := make([]VariantTranslationDTO, len(v.Translations))
	for i, t := range v.Translations {
		translations[i] = VariantTranslationDTO{ID: t.ID, Language: t.Language, Value: t.Value}
	}
	return &VariantDTO{
		ID:           v.ID,
		ItemID:       v.ItemID,
		AttributeID:  v.AttributeID,
		Translations: translations,
	}
}
