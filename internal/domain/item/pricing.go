package item

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xiebiao/storecatalog/internal/domain/attribute"
	"github.com/xiebiao/storecatalog/internal/domain/catalog"
)

// PricingService 商品属性值与价格服务
type PricingService interface {
	// AddVariant 为商品关联一个属性并写入首条属性值翻译
	// 属性必须属于商品所在分类
	AddVariant(ctx context.Context, params VariantParams) (*Variant, error)
	RemoveVariant(ctx context.Context, variantID string) (*Variant, error)
	UpsertVariantTranslation(ctx context.Context, variantID string, lang catalog.Language, value string) (*Variant, error)

	AddVariantPrice(ctx context.Context, variantID string, params PriceParams) (*Price, error)
	RemoveVariantPrice(ctx context.Context, priceID string) (*Price, error)

	AddBasePrice(ctx context.Context, itemID string, params PriceParams) (*Price, error)
	RemoveBasePrice(ctx context.Context, priceID string) (*Price, error)
}

// VariantParams 新增属性值参数
type VariantParams struct {
	ItemID      string
	AttributeID string
	Language    catalog.Language
	Value       string
}

// PriceParams 价格参数
type PriceParams struct {
	Type     catalog.PriceType
	Value    decimal.Decimal
	Currency catalog.Currency
}

type pricingService struct {
	items      Repository
	variants   VariantRepository
	prices     PriceRepository
	attributes attribute.Repository
}

// NewPricingService 创建价格服务
func NewPricingService(items Repository, variants VariantRepository, prices PriceRepository, attributes attribute.Repository) PricingService {
	return &pricingService{items: items, variants: variants, prices: prices, attributes: attributes}
}

func (s *pricingService) AddVariant(ctx context.Context, params VariantParams) (*Variant, error) {
	if strings.TrimSpace(params.Value) == "" {
		return nil, ErrEmptyValue
	}

	it, err := s.items.FindByID(ctx, params.ItemID)
	if err != nil {
		return nil, err
	}
	attr, err := s.attributes.FindByID(ctx, params.AttributeID)
	if err != nil {
		return nil, err
	}
	if attr.CategoryID != it.CategoryID {
		return nil, ErrAttributeScope
	}

	variantID := uuid.NewString()
	v := &Variant{
		ID:          variantID,
		ItemID:      it.ID,
		AttributeID: attr.ID,
		Attribute:   attr,
		Translations: []VariantTranslation{{
			ID:        uuid.NewString(),
			VariantID: variantID,
			Language:  params.Language,
			Value:     params.Value,
		}},
	}
	if err := s.variants.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *pricingService) RemoveVariant(ctx context.Context, variantID string) (*Variant, error) {
	v, err := s.variants.FindByID(ctx, variantID)
	if err != nil {
		return nil, err
	}
	if err := s.variants.Delete(ctx, variantID); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *pricingService) UpsertVariantTranslation(ctx context.Context, variantID string, lang catalog.Language, value string) (*Variant, error) {
	if strings.TrimSpace(value) == "" {
		return nil, ErrEmptyValue
	}

	v, err := s.variants.FindByID(ctx, variantID)
	if err != nil {
		return nil, err
	}

	err = s.variants.UpsertTranslation(ctx, &VariantTranslation{
		ID:        uuid.NewString(),
		VariantID: variantID,
		Language:  lang,
		Value:     value,
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (s *pricingService) AddVariantPrice(ctx context.Context, variantID string, params PriceParams) (*Price, error) {
	v, err := s.variants.FindByID(ctx, variantID)
	if err != nil {
		return nil, err
	}
	if _, exists := v.Price(params.Type); exists {
		return nil, ErrPriceDuplicate
	}

	p, err := NewPrice(v.ItemID, &v.ID, params.Type, params.Value, params.Currency)
	if err != nil {
		return nil, err
	}
	if err := s.prices.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *pricingService) RemoveVariantPrice(ctx context.Context, priceID string) (*Price, error) {
	p, err := s.prices.FindByID(ctx, priceID)
	if err != nil {
		return nil, err
	}
	if p.VariantID == nil {
		return nil, ErrPriceNotFound
	}
	if err := s.prices.Delete(ctx, priceID); err != nil {
		return nil, err
	}
	return p, nil
}

// AddBasePrice 新增商品级价格
// 基础价格的item_attribute_id为NULL，唯一索引不生效，重复检查在这里做
func (s *pricingService) AddBasePrice(ctx context.Context, itemID string, params PriceParams) (*Price, error) {
	it, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if _, exists := it.BasePrice(params.Type); exists {
		return nil, ErrPriceDuplicate
	}

	p, err := NewPrice(itemID, nil, params.Type, params.Value, params.Currency)
	if err != nil {
		return nil, err
	}
	if err := s.prices.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *pricingService) RemoveBasePrice(ctx context.Context, priceID string) (*Price, error) {
	p, err := s.prices.FindByID(ctx, priceID)
	if err != nil {
		return nil, err
	}
	if p.VariantID != nil {
		return nil, ErrPriceNotFound
	}
	if err := s.prices.Delete(ctx, priceID); err != nil {
		return nil, err
	}
	return p, nil
}
