package category

import (
	"context"
)

// Repository 分类仓储接口
// 由domain层定义接口，infrastructure层实现
type Repository interface {
	// Create 创建分类（SortOrder由调用方预先填好）
	Create(ctx context.Context, c *Category) error

	// FindByID 根据ID查找分类（含全部翻译）
	FindByID(ctx context.Context, id string) (*Category, error)

	// FindBySlug 根据slug查找分类（含全部翻译）
	FindBySlug(ctx context.Context, slug string) (*Category, error)

	// List 按sort_order升序返回全部分类（含全部翻译）
	List(ctx context.Context) ([]*Category, error)

	// Update 更新slug与上下架状态（不修改SortOrder）
	Update(ctx context.Context, c *Category) error

	// Delete 删除分类，关联的翻译、属性、商品级联删除
	Delete(ctx context.Context, id string) error

	// UpsertTranslation 按(CategoryID, Language)插入或覆盖翻译
	UpsertTranslation(ctx context.Context, t *Translation) error

	// DeleteTranslation 删除翻译，不存在时返回ErrTranslationNotFound
	DeleteTranslation(ctx context.Context, id string) error
}
