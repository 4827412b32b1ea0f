package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/storecatalog/internal/domain/catalog"
	"github.com/xiebiao/storecatalog/internal/domain/category"
)

// categoryRepository 分类仓储实现(MySQL)
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository 创建分类仓储
func NewCategoryRepository(db *gorm.DB) category.Repository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, c *category.Category) error {
	model := toCategoryModel(c)
	if err := getDB(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return category.ErrSlugDuplicate
		}
		return wrapDBError(err, "创建分类失败")
	}
	c.CreatedAt = model.CreatedAt
	c.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id string) (*category.Category, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *categoryRepository) FindBySlug(ctx context.Context, slug string) (*category.Category, error) {
	return r.findOne(ctx, "slug = ?", slug)
}

func (r *categoryRepository) findOne(ctx context.Context, query string, arg interface{}) (*category.Category, error) {
	var model CategoryModel
	err := getDB(ctx, r.db).Preload("Translations").Where(query, arg).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, category.ErrCategoryNotFound
		}
		return nil, wrapDBError(err, "查询分类失败")
	}
	return toCategoryEntity(&model), nil
}

func (r *categoryRepository) List(ctx context.Context) ([]*category.Category, error) {
	var models []CategoryModel
	err := getDB(ctx, r.db).Preload("Translations").
		Order("sort_order").Order("id").
		Find(&models).Error
	if err != nil {
		return nil, wrapDBError(err, "查询分类列表失败")
	}

	categories := make([]*category.Category, len(models))
	for i := range models {
		categories[i] = toCategoryEntity(&models[i])
	}
	return categories, nil
}

// Update 只更新slug和上下架状态，sort_order由排序引擎维护
func (r *categoryRepository) Update(ctx context.Context, c *category.Category) error {
	result := getDB(ctx, r.db).Model(&CategoryModel{}).Where("id = ?", c.ID).Updates(map[string]interface{}{
		"slug":         c.Slug,
		"is_available": c.IsAvailable,
		"updated_at":   c.UpdatedAt,
	})
	if result.Error != nil {
		if isDuplicateError(result.Error) {
			return category.ErrSlugDuplicate
		}
		return wrapDBError(result.Error, "更新分类失败")
	}
	if result.RowsAffected == 0 {
		return category.ErrCategoryNotFound
	}
	return nil
}

// Delete 删除分类，翻译/属性/商品由外键级联删除
func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	result := getDB(ctx, r.db).Where("id = ?", id).Delete(&CategoryModel{})
	if result.Error != nil {
		return wrapDBError(result.Error, "删除分类失败")
	}
	if result.RowsAffected == 0 {
		return category.ErrCategoryNotFound
	}
	return nil
}

// UpsertTranslation 按(category_id, language)插入或覆盖
// 覆盖时保留原记录ID，并回填到t.ID
func (r *categoryRepository) UpsertTranslation(ctx context.Context, t *category.Translation) error {
	db := getDB(ctx, r.db)
	model := &CategoryTranslationModel{
		ID:          t.ID,
		CategoryID:  t.CategoryID,
		Language:    string(t.Language),
		Title:       t.Title,
		Description: t.Description,
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category_id"}, {Name: "language"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "description"}),
	}).Create(model).Error
	if err != nil {
		if isForeignKeyError(err) {
			return category.ErrCategoryNotFound
		}
		return wrapDBError(err, "保存分类翻译失败")
	}

	var saved CategoryTranslationModel
	err = db.Select("id").Where("category_id = ? AND language = ?", t.CategoryID, string(t.Language)).Take(&saved).Error
	if err != nil {
		return wrapDBError(err, "查询分类翻译失败")
	}
	t.ID = saved.ID
	return nil
}

func (r *categoryRepository) DeleteTranslation(ctx context.Context, id string) error {
	result := getDB(ctx, r.db).Where("id = ?", id).Delete(&CategoryTranslationModel{})
	if result.Error != nil {
		return wrapDBError(result.Error, "删除分类翻译失败")
	}
	if result.RowsAffected == 0 {
		return category.ErrTranslationNotFound
	}
	return nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

func toCategoryModel(c *category.Category) *CategoryModel {
	return &CategoryModel{
		ID:          c.ID,
		Slug:        c.Slug,
		IsAvailable: c.IsAvailable,
		SortOrder:   c.SortOrder,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toCategoryEntity(model *CategoryModel) *category.Category {
	translations := make([]category.Translation, len(model.Translations))
	for i, t := range model.Translations {
		translations[i] = category.Translation{
			ID:          t.ID,
			CategoryID:  t.CategoryID,
			Language:    catalog.Language(t.Language),
			Title:       t.Title,
			Description: t.Description,
		}
	}

	return &category.Category{
		ID:           model.ID,
		Slug:         model.Slug,
		IsAvailable:  model.IsAvailable,
		SortOrder:    model.SortOrder,
		Translations: translations,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}
