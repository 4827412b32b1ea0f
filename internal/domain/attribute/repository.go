package attribute

import (
	"context"
)

// Repository 属性仓储接口
type Repository interface {
	Create(ctx context.Context, a *Attribute) error
	FindByID(ctx context.Context, id string) (*Attribute, error)

	// ListByCategory 按sort_order升序返回分类下的属性（含翻译）
	ListByCategory(ctx context.Context, categoryID string) ([]*Attribute, error)

	Update(ctx context.Context, a *Attribute) error
	Delete(ctx context.Context, id string) error

	// UpsertTranslation 按(AttributeID, Language)插入或覆盖
	UpsertTranslation(ctx context.Context, t *Translation) error
	DeleteTranslation(ctx context.Context, id string) error
}
