package handler

import (
	"github.com/shopspring/decimal"

	"github.com/xiebiao/storecatalog/api/catalogv1"
	appattribute "github.com/xiebiao/storecatalog/internal/application/attribute"
	appcategory "github.com/xiebiao/storecatalog/internal/application/category"
	appitem "github.com/xiebiao/storecatalog/internal/application/item"
	"github.com/xiebiao/storecatalog/internal/domain/catalog"
	apperrors "github.com/xiebiao/storecatalog/pkg/errors"
)

var (
	errEmptyID       = apperrors.New(apperrors.ErrCodeInvalidParams, "ID不能为空")
	errInvalidPrice  = apperrors.New(apperrors.ErrCodeInvalidParams, "价格格式错误")
	errNegativePrice = apperrors.New(apperrors.ErrCodeInvalidParams, "价格不能为负数")
)

func requireID(id string) error {
	if id == "" {
		return errEmptyID
	}
	return nil
}

func orTrue(b *bool) bool {
	return b == nil || *b
}

func okResponse() *catalogv1.StatusResponse {
	return &catalogv1.StatusResponse{Success: true}
}

// toPriceRequest 枚举值与十进制字符串转为价格请求
func toPriceRequest(typ int32, value string, currency int32) (appitem.PriceRequest, error) {
	priceType, err := catalog.PriceTypeFromCode(typ)
	if err != nil {
		return appitem.PriceRequest{}, err
	}
	cur, err := catalog.CurrencyFromCode(currency)
	if err != nil {
		return appitem.PriceRequest{}, err
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return appitem.PriceRequest{}, errInvalidPrice.WithCause(err)
	}
	if amount.IsNegative() {
		return appitem.PriceRequest{}, errNegativePrice
	}
	return appitem.PriceRequest{Type: priceType, Value: amount, Currency: cur}, nil
}

func toCategoryMessage(c *appcategory.CategoryDTO) *catalogv1.Category {
	translations := make([]catalogv1.CategoryTranslation, len(c.Translations))
	for i, t := range c.Translations {
		translations[i] = catalogv1.CategoryTranslation{
			Id:          t.ID,
			Language:    t.Language.Code(),
			Title:       t.Title,
			Description: t.Description,
		}
	}
	return &catalogv1.Category{
		Id:           c.ID,
		Slug:         c.Slug,
		IsAvailable:  c.IsAvailable,
		SortOrder:    int32(c.SortOrder),
		Translations: translations,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func toLocalizedCategory(v appcategory.CategoryView) catalogv1.LocalizedCategory {
	return catalogv1.LocalizedCategory{
		Id:          v.ID,
		Slug:        v.Slug,
		IsAvailable: v.IsAvailable,
		SortOrder:   int32(v.SortOrder),
		Language:    v.Language.Code(),
		Title:       v.Title,
		Description: v.Description,
	}
}

func toAttributeMessage(a *appattribute.AttributeDTO) *catalogv1.Attribute {
	translations := make([]catalogv1.AttributeTranslation, len(a.Translations))
	for i, t := range a.Translations {
		translations[i] = catalogv1.AttributeTranslation{
			Id:       t.ID,
			Language: t.Language.Code(),
			Name:     t.Name,
		}
	}
	return &catalogv1.Attribute{
		Id:           a.ID,
		CategoryId:   a.CategoryID,
		Slug:         a.Slug,
		SortOrder:    int32(a.SortOrder),
		Translations: translations,
	}
}

func toItemMessage(v *appitem.ItemView) *catalogv1.Item {
	images := make([]catalogv1.Image, len(v.Images))
	for i := range v.Images {
		images[i] = *toImageMessage(&v.Images[i])
	}

	variants := make([]catalogv1.ItemVariant, len(v.Variants))
	for i, vv := range v.Variants {
		variants[i] = catalogv1.ItemVariant{
			Id:             vv.ID,
			AttributeSlug:  vv.AttributeSlug,
			AttributeName:  vv.AttributeName,
			Value:          vv.Value,
			RegularPrice:   decimalString(vv.RegularPrice),
			DiscountPrice:  decimalString(vv.DiscountPrice),
			WholesalePrice: decimalString(vv.WholesalePrice),
			Currency:       vv.Currency.Code(),
		}
	}

	infos := make([]catalogv1.ItemInfo, len(v.Infos))
	for i, info := range v.Infos {
		infos[i] = catalogv1.ItemInfo{
			AttributeSlug: info.AttributeSlug,
			AttributeName: info.AttributeName,
			Value:         info.Value,
		}
	}

	prices := make([]catalogv1.Price, len(v.Prices))
	for i := range v.Prices {
		prices[i] = *toPriceMessage(&v.Prices[i])
	}

	return &catalogv1.Item{
		Id:                  v.ID,
		CategoryId:          v.CategoryID,
		Slug:                v.Slug,
		Brand:               v.Brand,
		IsAvailable:         v.IsAvailable,
		ExpectedDate:        v.ExpectedDate,
		SortOrder:           int32(v.SortOrder),
		Title:               v.Title,
		Description:         v.Description,
		DetailedDescription: v.DetailedDescription,
		Images:              images,
		Variants:            variants,
		Infos:               infos,
		Prices:              prices,
	}
}

func toImageMessage(img *appitem.ImageDTO) *catalogv1.Image {
	return &catalogv1.Image{
		Id:        img.ID,
		ItemId:    img.ItemID,
		Url:       img.URL,
		Alt:       img.Alt,
		SortOrder: int32(img.SortOrder),
	}
}

func toPriceMessage(p *appitem.PriceDTO) *catalogv1.Price {
	return &catalogv1.Price{
		Id:        p.ID,
		ItemId:    p.ItemID,
		VariantId: p.VariantID,
		Type:      p.Type.Code(),
		Value:     p.Value.String(),
		Currency:  p.Currency.Code(),
	}
}

func toVariantMessage(v *appitem.VariantDTO) *catalogv1.Variant {
	translations := make([]catalogv1.VariantTranslation, len(v.Translations))
	for i, t := range v.Translations {
		translations[i] = catalogv1.VariantTranslation{
			Id:       t.ID,
			Language: t.Language.Code(),
			Value:    t.Value,
		}
	}
	return &catalogv1.Variant{
		Id:           v.ID,
		ItemId:       v.ItemID,
		AttributeId:  v.AttributeID,
		Translations: translations,
	}
}

func decimalString(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}
