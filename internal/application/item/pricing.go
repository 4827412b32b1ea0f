package item

import (
	"context"

	"github.com/xiebiao/storecatalog/internal/domain/catalog"
	"github.com/xiebiao/storecatalog/internal/domain/item"
)

// AddVariant 为商品关联属性值
func (s *Service) AddVariant(ctx context.Context, itemID, attributeID string, lang catalog.Language, value string) (*VariantDTO, error) {
	v, err := s.pricing.AddVariant(ctx, item.VariantParams{
		ItemID:      itemID,
		AttributeID: attributeID,
		Language:    lang,
		Value:       value,
	})
	if err != nil {
		return nil, err
	}
	s.refresh(ctx, v.ItemID, catalog.EventItemChanged)
	return toVariantDTO(v), nil
}

// RemoveVariant 删除属性值，挂在其上的价格一并删除
func (s *Service) RemoveVariant(ctx context.Context, variantID string) error {
	v, err := s.pricing.RemoveVariant(ctx, variantID)
	if err != nil {
		return err
	}
	s.refresh(ctx, v.ItemID, catalog.EventItemChanged)
	return nil
}

// UpsertVariantTranslation 新增或覆盖属性值翻译，返回属性值ID
func (s *Service) UpsertVariantTranslation(ctx context.Context, variantID string, lang catalog.Language, value string) (string, error) {
	v, err := s.pricing.UpsertVariantTranslation(ctx, variantID, lang, value)
	if err != nil {
		return "", err
	}
	s.refresh(ctx, v.ItemID, catalog.EventItemChanged)
	return v.ID, nil
}

// AddVariantPrice 为属性值新增价格
func (s *Service) AddVariantPrice(ctx context.Context, variantID string, req PriceRequest) (*PriceDTO, error) {
	p, err := s.pricing.AddVariantPrice(ctx, variantID, toPriceParams(req))
	if err != nil {
		return nil, err
	}
	s.refresh(ctx, p.ItemID, catalog.EventItemChanged)
	dto := toPriceDTO(p)
	return &dto, nil
}

// RemoveVariantPrice 删除属性值价格
func (s *Service) RemoveVariantPrice(ctx context.Context, priceID string) error {
	p, err := s.pricing.RemoveVariantPrice(ctx, priceID)
	if err != nil {
		return err
	}
	s.refresh(ctx, p.ItemID, catalog.EventItemChanged)
	return nil
}

// AddBasePrice 新增商品级价格
func (s *Service) AddBasePrice(ctx context.Context, itemID string, req PriceRequest) (*PriceDTO, error) {
	p, err := s.pricing.AddBasePrice(ctx, itemID, toPriceParams(req))
	if err != nil {
		return nil, err
	}
	s.refresh(ctx, p.ItemID, catalog.EventItemChanged)
	dto := toPriceDTO(p)
	return &dto, nil
}

// RemoveBasePrice 删除商品级价格
func (s *Service) RemoveBasePrice(ctx context.Context, priceID string) error {
	p, err := s.pricing.RemoveBasePrice(ctx, priceID)
	if err != nil {
		return err
	}
	s.refresh(ctx, p.ItemID, catalog.EventItemChanged)
	return nil
}

func toPriceParams(req PriceRequest) item.PriceParams {
	return item.PriceParams{
		Type:     req.Type,
		Value:    req.Value,
		Currency: req.Currency,
	}
}
