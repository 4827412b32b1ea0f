package item

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/storecatalog/internal/domain/catalog"
)

// View 商品在某个语言下的展示视图
// 规则:
//   - 文案取目标语言，缺失时回退到默认语言
//   - Variants为有价格的属性值，按常规价升序（无常规价视为0）
//   - Infos为无价格的属性值，按属性定义的sort_order升序
//   - Prices为商品级基础价格
type View struct {
	ID                  string
	CategoryID          string
	Slug                string
	Brand               *string
	IsAvailable         bool
	ExpectedDate        *time.Time
	SortOrder           int
	Title               string
	Description         *string
	DetailedDescription *string
	Images              []Image
	Variants            []VariantView
	Infos               []InfoView
	Prices              []Price
}

// VariantView 可选规格
type VariantView struct {
	ID             string
	AttributeSlug  string
	AttributeName  string
	Value          string
	RegularPrice   *decimal.Decimal
	DiscountPrice  *decimal.Decimal
	WholesalePrice *decimal.Decimal
	Currency       catalog.Currency
}

// InfoView 参数信息
type InfoView struct {
	AttributeSlug string
	AttributeName string
	Value         string
}

// BuildView 组装展示视图
func BuildView(it *Item, lang catalog.Language) View {
	v := View{
		ID:           it.ID,
		CategoryID:   it.CategoryID,
		Slug:         it.Slug,
		Brand:        it.Brand,
		IsAvailable:  it.IsAvailable,
		ExpectedDate: it.ExpectedDate,
		SortOrder:    it.SortOrder,
		Images:       sortedImages(it.Images),
		Variants:     []VariantView{},
		Infos:        []InfoView{},
		Prices:       it.Prices,
	}
	if v.Prices == nil {
		v.Prices = []Price{}
	}

	if t, ok := it.Localized(lang); ok {
		v.Title = t.Title
		v.Description = t.Description
		v.DetailedDescription = t.DetailedDescription
	}

	var infos []Variant
	for i := range it.Variants {
		variant := &it.Variants[i]
		if len(variant.Prices) == 0 {
			infos = append(infos, *variant)
			continue
		}
		v.Variants = append(v.Variants, buildVariantView(variant, lang))
	}

	sort.SliceStable(v.Variants, func(i, j int) bool {
		return priceOrZero(v.Variants[i].RegularPrice).LessThan(priceOrZero(v.Variants[j].RegularPrice))
	})

	sort.SliceStable(infos, func(i, j int) bool {
		return attributeOrder(&infos[i]) < attributeOrder(&infos[j])
	})
	for i := range infos {
		value, _ := infos[i].Localized(lang)
		v.Infos = append(v.Infos, InfoView{
			AttributeSlug: attributeSlug(&infos[i]),
			AttributeName: attributeName(&infos[i], lang),
			Value:         value,
		})
	}

	return v
}

func buildVariantView(variant *Variant, lang catalog.Language) VariantView {
	value, _ := variant.Localized(lang)
	vv := VariantView{
		ID:            variant.ID,
		AttributeSlug: attributeSlug(variant),
		AttributeName: attributeName(variant, lang),
		Value:         value,
	}

	// 币种依次取常规价、折扣价、批发价上的币种
	var currencies []catalog.Currency
	if p, ok := variant.Price(catalog.PriceTypeRegular); ok {
		vv.RegularPrice = &p.Value
		currencies = append(currencies, p.Currency)
	}
	if p, ok := variant.Price(catalog.PriceTypeDiscount); ok {
		vv.DiscountPrice = &p.Value
		currencies = append(currencies, p.Currency)
	}
	if p, ok := variant.Price(catalog.PriceTypeWholesale); ok {
		vv.WholesalePrice = &p.Value
		currencies = append(currencies, p.Currency)
	}

	vv.Currency = catalog.DefaultCurrency
	if len(currencies) > 0 {
		vv.Currency = currencies[0]
	}
	return vv
}

func sortedImages(images []Image) []Image {
	out := make([]Image, len(images))
	copy(out, images)
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out
}

func priceOrZero(p *decimal.Decimal) decimal.Decimal {
	if p == nil {
		return decimal.Zero
	}
	return *p
}

func attributeOrder(v *Variant) int {
	if v.Attribute == nil {
		return 0
	}
	return v.Attribute.SortOrder
}

func attributeSlug(v *Variant) string {
	if v.Attribute == nil {
		return ""
	}
	return v.Attribute.Slug
}

// attributeName 属性名称，无翻译时使用slug
func attributeName(v *Variant, lang catalog.Language) string {
	if v.Attribute == nil {
		return ""
	}
	if t, ok := v.Attribute.Localized(lang); ok {
		return t.Name
	}
	return v.Attribute.Slug
}
