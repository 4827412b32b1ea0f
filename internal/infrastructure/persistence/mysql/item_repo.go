package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/storecatalog/internal/domain/catalog"
	"github.com/xiebiao/storecatalog/internal/domain/category"
	"github.com/xiebiao/storecatalog/internal/domain/item"
)

// itemRepository 商品仓储实现(MySQL)
// 设计说明:
// 1. 查询返回完整聚合：翻译、图片、属性值（含属性定义、翻译、价格）、商品级价格
// 2. 写操作只触碰item表本身，子表由各自的仓储维护
type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository 创建商品仓储
func NewItemRepository(db *gorm.DB) item.Repository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, it *item.Item) error {
	model := &ItemModel{
		ID:           it.ID,
		CategoryID:   it.CategoryID,
		Slug:         it.Slug,
		Brand:        it.Brand,
		IsAvailable:  it.IsAvailable,
		ExpectedDate: it.ExpectedDate,
		SortOrder:    it.SortOrder,
		CreatedAt:    it.CreatedAt,
		UpdatedAt:    it.UpdatedAt,
	}
	if err := getDB(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		switch {
		case isDuplicateError(err):
			return item.ErrSlugDuplicate
		case isForeignKeyError(err):
			return category.ErrCategoryNotFound
		}
		return wrapDBError(err, "创建商品失败")
	}
	return nil
}

// withAggregate 预加载完整聚合
func withAggregate(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Translations").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order").Order("id")
		}).
		Preload("Variants.Attribute.Translations").
		Preload("Variants.Translations").
		Preload("Variants.Prices").
		Preload("Prices", "item_attribute_id IS NULL")
}

func (r *itemRepository) FindByID(ctx context.Context, id string) (*item.Item, error) {
	var model ItemModel
	err := withAggregate(getDB(ctx, r.db)).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, item.ErrItemNotFound
		}
		return nil, wrapDBError(err, "查询商品失败")
	}
	return toItemEntity(&model), nil
}

func (r *itemRepository) ListByCategory(ctx context.Context, categoryID string) ([]*item.Item, error) {
	var models []ItemModel
	err := withAggregate(getDB(ctx, r.db)).
		Where("category_id = ?", categoryID).
		Order("sort_order").Order("id").
		Find(&models).Error
	if err != nil {
		return nil, wrapDBError(err, "查询商品列表失败")
	}

	items := make([]*item.Item, len(models))
	for i := range models {
		items[i] = toItemEntity(&models[i])
	}
	return items, nil
}

func (r *itemRepository) Update(ctx context.Context, it *item.Item) error {
	result := getDB(ctx, r.db).Model(&ItemModel{}).Where("id = ?", it.ID).Updates(map[string]interface{}{
		"slug":          it.Slug,
		"brand":         it.Brand,
		"is_available":  it.IsAvailable,
		"expected_date": it.ExpectedDate,
		"updated_at":    it.UpdatedAt,
	})
	if result.Error != nil {
		if isDuplicateError(result.Error) {
			return item.ErrSlugDuplicate
		}
		return wrapDBError(result.Error, "更新商品失败")
	}
	if result.RowsAffected == 0 {
		return item.ErrItemNotFound
	}
	return nil
}

// Relocate 改写分类与位置，调用方已锁定新旧两个兄弟组
func (r *itemRepository) Relocate(ctx context.Context, id, categoryID string, position int) error {
	result := getDB(ctx, r.db).Model(&ItemModel{}).Where("id = ?", id).Updates(map[string]interface{}{
		"category_id": categoryID,
		"sort_order":  position,
	})
	if result.Error != nil {
		switch {
		case isDuplicateError(result.Error):
			return item.ErrSlugDuplicate
		case isForeignKeyError(result.Error):
			return category.ErrCategoryNotFound
		}
		return wrapDBError(result.Error, "移动商品失败")
	}
	if result.RowsAffected == 0 {
		return item.ErrItemNotFound
	}
	return nil
}

func (r *itemRepository) Delete(ctx context.Context, id string) error {
	result := getDB(ctx, r.db).Where("id = ?", id).Delete(&ItemModel{})
	if result.Error != nil {
		return wrapDBError(result.Error, "删除商品失败")
	}
	if result.RowsAffected == 0 {
		return item.ErrItemNotFound
	}
	return nil
}

func (r *itemRepository) UpsertTranslation(ctx context.Context, t *item.Translation) error {
	db := getDB(ctx, r.db)
	model := &ItemTranslationModel{
		ID:                  t.ID,
		ItemID:              t.ItemID,
		Language:            string(t.Language),
		Title:               t.Title,
		Description:         t.Description,
		DetailedDescription: t.DetailedDescription,
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "item_id"}, {Name: "language"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "description", "detailed_description"}),
	}).Create(model).Error
	if err != nil {
		if isForeignKeyError(err) {
			return item.ErrItemNotFound
		}
		return wrapDBError(err, "保存商品翻译失败")
	}

	var saved ItemTranslationModel
	err = db.Select("id").Where("item_id = ? AND language = ?", t.ItemID, string(t.Language)).Take(&saved).Error
	if err != nil {
		return wrapDBError(err, "查询商品翻译失败")
	}
	t.ID = saved.ID
	return nil
}

func (r *itemRepository) DeleteTranslation(ctx context.Context, id string) error {
	result := getDB(ctx, r.db).Where("id = ?", id).Delete(&ItemTranslationModel{})
	if result.Error != nil {
		return wrapDBError(result.Error, "删除商品翻译失败")
	}
	if result.RowsAffected == 0 {
		return item.ErrTranslationNotFound
	}
	return nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

func toItemEntity(model *ItemModel) *item.Item {
	translations := make([]item.Translation, len(model.Translations))
	for i, t := range model.Translations {
		translations[i] = item.Translation{
			ID:                  t.ID,
			ItemID:              t.ItemID,
			Language:            catalog.Language(t.Language),
			Title:               t.Title,
			Description:         t.Description,
			DetailedDescription: t.DetailedDescription,
		}
	}

	images := make([]item.Image, len(model.Images))
	for i := range model.Images {
		images[i] = toImageEntity(&model.Images[i])
	}

	variants := make([]item.Variant, len(model.Variants))
	for i := range model.Variants {
		variants[i] = *toVariantEntity(&model.Variants[i])
	}

	prices := make([]item.Price, len(model.Prices))
	for i := range model.Prices {
		prices[i] = toPriceEntity(&model.Prices[i])
	}

	return &item.Item{
		ID:           model.ID,
		CategoryID:   model.CategoryID,
		Slug:         model.Slug,
		Brand:        model.Brand,
		IsAvailable:  model.IsAvailable,
		ExpectedDate: model.ExpectedDate,
		SortOrder:    model.SortOrder,
		Translations: translations,
		Images:       images,
		Variants:     variants,
		Prices:       prices,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}
