package item

import (
	"context"
)

// Repository 商品仓储接口
// FindByID/ListByCategory返回完整聚合（翻译、图片、规格及其价格、基础价格）
type Repository interface {
	Create(ctx context.Context, it *Item) error
	FindByID(ctx context.Context, id string) (*Item, error)

	// ListByCategory 按sort_order升序返回分类下的商品
	ListByCategory(ctx context.Context, categoryID string) ([]*Item, error)

	// Update 更新基础字段（不修改CategoryID与SortOrder）
	Update(ctx context.Context, it *Item) error

	// Relocate 改写商品所属分类与位置，仅供跨分类移动使用
	Relocate(ctx context.Context, id, categoryID string, position int) error

	Delete(ctx context.Context, id string) error

	UpsertTranslation(ctx context.Context, t *Translation) error
	DeleteTranslation(ctx context.Context, id string) error
}

// ImageRepository 商品图片仓储
type ImageRepository interface {
	Create(ctx context.Context, img *Image) error
	FindByID(ctx context.Context, id string) (*Image, error)
	Delete(ctx context.Context, id string) error
}

// VariantRepository 商品属性值仓储
type VariantRepository interface {
	// Create 创建属性值及其首条翻译
	Create(ctx context.Context, v *Variant) error
	FindByID(ctx context.Context, id string) (*Variant, error)
	Delete(ctx context.Context, id string) error
	UpsertTranslation(ctx context.Context, t *VariantTranslation) error
}

// PriceRepository 价格仓储
type PriceRepository interface {
	Create(ctx context.Context, p *Price) error
	FindByID(ctx context.Context, id string) (*Price, error)
	Delete(ctx context.Context, id string) error
}
