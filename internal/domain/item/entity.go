package item

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xiebiao/storecatalog/internal/domain/attribute"
	"github.com/xiebiao/storecatalog/internal/domain/catalog"
	"github.com/xiebiao/storecatalog/internal/domain/category"
)

// Item 商品(聚合根)
// 设计说明:
// 1. 同一分类下的商品构成一个兄弟组，(CategoryID, Slug)唯一
// 2. 图片是商品下的兄弟组，按SortOrder展示
// 3. Variants是商品与属性的关联值；有价格的作为可选规格，无价格的作为参数信息
// 4. Prices只包含商品级基础价格（不挂在规格上的价格）
type Item struct {
	ID           string
	CategoryID   string
	Slug         string
	Brand        *string
	IsAvailable  bool
	ExpectedDate *time.Time
	SortOrder    int
	Translations []Translation
	Images       []Image
	Variants     []Variant
	Prices       []Price
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Translation 商品多语言文案
type Translation struct {
	ID                  string
	ItemID              string
	Language            catalog.Language
	Title               string
	Description         *string
	DetailedDescription *string
}

// Image 商品图片
type Image struct {
	ID        string
	ItemID    string
	URL       string
	Alt       *string
	SortOrder int
}

func (i Image) PositionID() string { return i.ID }
func (i Image) Position() int      { return i.SortOrder }

// Variant 商品的一个属性值（item_attribute）
type Variant struct {
	ID           string
	ItemID       string
	AttributeID  string
	Attribute    *attribute.Attribute // 只读：名称与排序，来自属性定义
	Translations []VariantTranslation
	Prices       []Price
}

// VariantTranslation 属性值的多语言文案
type VariantTranslation struct {
	ID        string
	VariantID string
	Language  catalog.Language
	Value     string
}

// Price 价格，VariantID为空表示商品基础价格
type Price struct {
	ID        string
	ItemID    string
	VariantID *string
	Type      catalog.PriceType
	Value     decimal.Decimal
	Currency  catalog.Currency
}

// NewItem 创建商品(工厂方法)
func NewItem(categoryID, slug string, brand *string, isAvailable bool, expectedDate *time.Time) (*Item, error) {
	if !category.ValidSlug(slug) {
		return nil, ErrInvalidSlug
	}

	now := time.Now()
	return &Item{
		ID:           uuid.NewString(),
		CategoryID:   categoryID,
		Slug:         slug,
		Brand:        normalizeOptional(brand),
		IsAvailable:  isAvailable,
		ExpectedDate: expectedDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// NewImage 创建图片
func NewImage(itemID, url string, alt *string) (*Image, error) {
	if strings.TrimSpace(url) == "" {
		return nil, ErrEmptyImageURL
	}
	return &Image{
		ID:     uuid.NewString(),
		ItemID: itemID,
		URL:    url,
		Alt:    normalizeOptional(alt),
	}, nil
}

// NewPrice 创建价格，金额保留两位小数
func NewPrice(itemID string, variantID *string, priceType catalog.PriceType, value decimal.Decimal, currency catalog.Currency) (*Price, error) {
	if !value.IsPositive() {
		return nil, ErrInvalidPrice
	}
	if currency == "" {
		currency = catalog.DefaultCurrency
	}
	return &Price{
		ID:        uuid.NewString(),
		ItemID:    itemID,
		VariantID: variantID,
		Type:      priceType,
		Value:     value.Round(2),
		Currency:  currency,
	}, nil
}

func (it *Item) PositionID() string { return it.ID }
func (it *Item) Position() int      { return it.SortOrder }

// Localized 取指定语言的翻译，缺失时回退到默认语言
func (it *Item) Localized(lang catalog.Language) (Translation, bool) {
	var fallback *Translation
	for i := range it.Translations {
		t := &it.Translations[i]
		if t.Language == lang {
			return *t, true
		}
		if t.Language == catalog.DefaultLanguage {
			fallback = t
		}
	}
	if fallback != nil {
		return *fallback, true
	}
	return Translation{}, false
}

// BasePrice 查找指定类型的基础价格
func (it *Item) BasePrice(priceType catalog.PriceType) (Price, bool) {
	for _, p := range it.Prices {
		if p.Type == priceType {
			return p, true
		}
	}
	return Price{}, false
}

// Variant 查找规格
func (it *Item) Variant(id string) (*Variant, bool) {
	for i := range it.Variants {
		if it.Variants[i].ID == id {
			return &it.Variants[i], true
		}
	}
	return nil, false
}

// Localized 取属性值的翻译，缺失时回退到默认语言
func (v *Variant) Localized(lang catalog.Language) (string, bool) {
	fallback, found := "", false
	for _, t := range v.Translations {
		if t.Language == lang {
			return t.Value, true
		}
		if t.Language == catalog.DefaultLanguage {
			fallback, found = t.Value, true
		}
	}
	return fallback, found
}

// Price 查找规格上指定类型的价格
func (v *Variant) Price(priceType catalog.PriceType) (Price, bool) {
	for _, p := range v.Prices {
		if p.Type == priceType {
			return p, true
		}
	}
	return Price{}, false
}

func normalizeOptional(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
