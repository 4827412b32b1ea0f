package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/storecatalog/internal/domain/attribute"
	"github.com/xiebiao/storecatalog/internal/domain/catalog"
	"github.com/xiebiao/storecatalog/internal/domain/category"
)

// attributeRepository 属性仓储实现(MySQL)
type attributeRepository struct {
	db *gorm.DB
}

// NewAttributeRepository 创建属性仓储
func NewAttributeRepository(db *gorm.DB) attribute.Repository {
	return &attributeRepository{db: db}
}

func (r *attributeRepository) Create(ctx context.Context, a *attribute.Attribute) error {
	model := &AttributeModel{
		ID:         a.ID,
		CategoryID: a.CategoryID,
		Slug:       a.Slug,
		SortOrder:  a.SortOrder,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
	if err := getDB(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		switch {
		case isDuplicateError(err):
			return attribute.ErrSlugDuplicate
		case isForeignKeyError(err):
			return category.ErrCategoryNotFound
		}
		return wrapDBError(err, "创建属性失败")
	}
	return nil
}

func (r *attributeRepository) FindByID(ctx context.Context, id string) (*attribute.Attribute, error) {
	var model AttributeModel
	err := getDB(ctx, r.db).Preload("Translations").Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, attribute.ErrAttributeNotFound
		}
		return nil, wrapDBError(err, "查询属性失败")
	}
	return toAttributeEntity(&model), nil
}

func (r *attributeRepository) ListByCategory(ctx context.Context, categoryID string) ([]*attribute.Attribute, error) {
	var models []AttributeModel
	err := getDB(ctx, r.db).Preload("Translations").
		Where("category_id = ?", categoryID).
		Order("sort_order").Order("id").
		Find(&models).Error
	if err != nil {
		return nil, wrapDBError(err, "查询属性列表失败")
	}

	attrs := make([]*attribute.Attribute, len(models))
	for i := range models {
		attrs[i] = toAttributeEntity(&models[i])
	}
	return attrs, nil
}

func (r *attributeRepository) Update(ctx context.Context, a *attribute.Attribute) error {
	result := getDB(ctx, r.db).Model(&AttributeModel{}).Where("id = ?", a.ID).Updates(map[string]interface{}{
		"slug":       a.Slug,
		"updated_at": a.UpdatedAt,
	})
	if result.Error != nil {
		if isDuplicateError(result.Error) {
			return attribute.ErrSlugDuplicate
		}
		return wrapDBError(result.Error, "更新属性失败")
	}
	if result.RowsAffected == 0 {
		return attribute.ErrAttributeNotFound
	}
	return nil
}

func (r *attributeRepository) Delete(ctx context.Context, id string) error {
	result := getDB(ctx, r.db).Where("id = ?", id).Delete(&AttributeModel{})
	if result.Error != nil {
		return wrapDBError(result.Error, "删除属性失败")
	}
	if result.RowsAffected == 0 {
		return attribute.ErrAttributeNotFound
	}
	return nil
}

func (r *attributeRepository) UpsertTranslation(ctx context.Context, t *attribute.Translation) error {
	db := getDB(ctx, r.db)
	model := &AttributeTranslationModel{
		ID:          t.ID,
		AttributeID: t.AttributeID,
		Language:    string(t.Language),
		Name:        t.Name,
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "attribute_id"}, {Name: "language"}},
		DoUpdates: clause.AssignmentColumns([]string{"name"}),
	}).Create(model).Error
	if err != nil {
		if isForeignKeyError(err) {
			return attribute.ErrAttributeNotFound
		}
		return wrapDBError(err, "保存属性翻译失败")
	}

	var saved AttributeTranslationModel
	err = db.Select("id").Where("attribute_id = ? AND language = ?", t.AttributeID, string(t.Language)).Take(&saved).Error
	if err != nil {
		return wrapDBError(err, "查询属性翻译失败")
	}
	t.ID = saved.ID
	return nil
}

func (r *attributeRepository) DeleteTranslation(ctx context.Context, id string) error {
	result := getDB(ctx, r.db).Where("id = ?", id).Delete(&AttributeTranslationModel{})
	if result.Error != nil {
		return wrapDBError(result.Error, "删除属性翻译失败")
	}
	if result.RowsAffected == 0 {
		return attribute.ErrTranslationNotFound
	}
	return nil
}

func toAttributeEntity(model *AttributeModel) *attribute.Attribute {
	translations := make([]attribute.Translation, len(model.Translations))
	for i, t := range model.Translations {
		translations[i] = attribute.Translation{
			ID:          t.ID,
			AttributeID: t.AttributeID,
			Language:    catalog.Language(t.Language),
			Name:        t.Name,
		}
	}

	return &attribute.Attribute{
		ID:           model.ID,
		CategoryID:   model.CategoryID,
		Slug:         model.Slug,
		SortOrder:    model.SortOrder,
		Translations: translations,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}
