package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/storecatalog/internal/domain/catalog"
	"github.com/xiebiao/storecatalog/internal/domain/item"
)

// =========================================
// 图片
// =========================================

type imageRepository struct {
	db *gorm.DB
}

// NewImageRepository 创建图片仓储
func NewImageRepository(db *gorm.DB) item.ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) Create(ctx context.Context, img *item.Image) error {
	model := &ImageModel{
		ID:        img.ID,
		ItemID:    img.ItemID,
		URL:       img.URL,
		Alt:       img.Alt,
		SortOrder: img.SortOrder,
	}
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isForeignKeyError(err) {
			return item.ErrItemNotFound
		}
		return wrapDBError(err, "创建图片失败")
	}
	return nil
}

func (r *imageRepository) FindByID(ctx context.Context, id string) (*item.Image, error) {
	var model ImageModel
	if err := getDB(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, item.ErrImageNotFound
		}
		return nil, wrapDBError(err, "查询图片失败")
	}
	img := toImageEntity(&model)
	return &img, nil
}

func (r *imageRepository) Delete(ctx context.Context, id string) error {
	result := getDB(ctx, r.db).Where("id = ?", id).Delete(&ImageModel{})
	if result.Error != nil {
		return wrapDBError(result.Error, "删除图片失败")
	}
	if result.RowsAffected == 0 {
		return item.ErrImageNotFound
	}
	return nil
}

func toImageEntity(model *ImageModel) item.Image {
	return item.Image{
		ID:        model.ID,
		ItemID:    model.ItemID,
		URL:       model.URL,
		Alt:       model.Alt,
		SortOrder: model.SortOrder,
	}
}

// =========================================
// 属性值（规格/参数）
// =========================================

type variantRepository struct {
	db *gorm.DB
}

// NewVariantRepository 创建属性值仓储
func NewVariantRepository(db *gorm.DB) item.VariantRepository {
	return &variantRepository{db: db}
}

// Create 创建属性值，Translations一并写入
func (r *variantRepository) Create(ctx context.Context, v *item.Variant) error {
	translations := make([]ItemAttributeTranslationModel, len(v.Translations))
	for i, t := range v.Translations {
		translations[i] = ItemAttributeTranslationModel{
			ID:              t.ID,
			ItemAttributeID: v.ID,
			Language:        string(t.Language),
			Value:           t.Value,
		}
	}
	model := &ItemAttributeModel{
		ID:           v.ID,
		ItemID:       v.ItemID,
		AttributeID:  v.AttributeID,
		Translations: translations,
	}

	if err := getDB(ctx, r.db).Omit("Attribute", "Prices").Create(model).Error; err != nil {
		switch {
		case isDuplicateError(err):
			return item.ErrVariantDuplicate
		case isForeignKeyError(err):
			return item.ErrItemNotFound
		}
		return wrapDBError(err, "创建商品属性值失败")
	}
	return nil
}

func (r *variantRepository) FindByID(ctx context.Context, id string) (*item.Variant, error) {
	var model ItemAttributeModel
	err := getDB(ctx, r.db).
		Preload("Attribute.Translations").
		Preload("Translations").
		Preload("Prices").
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, item.ErrVariantNotFound
		}
		return nil, wrapDBError(err, "查询商品属性值失败")
	}
	return toVariantEntity(&model), nil
}

// Delete 删除属性值，翻译与价格由外键级联删除
func (r *variantRepository) Delete(ctx context.Context, id string) error {
	result := getDB(ctx, r.db).Where("id = ?", id).Delete(&ItemAttributeModel{})
	if result.Error != nil {
		return wrapDBError(result.Error, "删除商品属性值失败")
	}
	if result.RowsAffected == 0 {
		return item.ErrVariantNotFound
	}
	return nil
}

func (r *variantRepository) UpsertTranslation(ctx context.Context, t *item.VariantTranslation) error {
	db := getDB(ctx, r.db)
	model := &ItemAttributeTranslationModel{
		ID:              t.ID,
		ItemAttributeID: t.VariantID,
		Language:        string(t.Language),
		Value:           t.Value,
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "item_attribute_id"}, {Name: "language"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(model).Error
	if err != nil {
		if isForeignKeyError(err) {
			return item.ErrVariantNotFound
		}
		return wrapDBError(err, "保存属性值翻译失败")
	}
	return nil
}

func toVariantEntity(model *ItemAttributeModel) *item.Variant {
	translations := make([]item.VariantTranslation, len(model.Translations))
	for i, t := range model.Translations {
		translations[i] = item.VariantTranslation{
			ID:        t.ID,
			VariantID: t.ItemAttributeID,
			Language:  catalog.Language(t.Language),
			Value:     t.Value,
		}
	}

	prices := make([]item.Price, len(model.Prices))
	for i := range model.Prices {
		prices[i] = toPriceEntity(&model.Prices[i])
	}

	v := &item.Variant{
		ID:           model.ID,
		ItemID:       model.ItemID,
		AttributeID:  model.AttributeID,
		Translations: translations,
		Prices:       prices,
	}
	if model.Attribute != nil {
		v.Attribute = toAttributeEntity(model.Attribute)
	}
	return v
}

// =========================================
// 价格
// =========================================

type priceRepository struct {
	db *gorm.DB
}

// NewPriceRepository 创建价格仓储
func NewPriceRepository(db *gorm.DB) item.PriceRepository {
	return &priceRepository{db: db}
}

func (r *priceRepository) Create(ctx context.Context, p *item.Price) error {
	model := &ItemPriceModel{
		ID:              p.ID,
		ItemID:          p.ItemID,
		ItemAttributeID: p.VariantID,
		PriceType:       string(p.Type),
		Value:           p.Value,
		Currency:        string(p.Currency),
	}
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		switch {
		case isDuplicateError(err):
			return item.ErrPriceDuplicate
		case isForeignKeyError(err):
			return item.ErrItemNotFound
		}
		return wrapDBError(err, "创建价格失败")
	}
	return nil
}

func (r *priceRepository) FindByID(ctx context.Context, id string) (*item.Price, error) {
	var model ItemPriceModel
	if err := getDB(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, item.ErrPriceNotFound
		}
		return nil, wrapDBError(err, "查询价格失败")
	}
	p := toPriceEntity(&model)
	return &p, nil
}

func (r *priceRepository) Delete(ctx context.Context, id string) error {
	result := getDB(ctx, r.db).Where("id = ?", id).Delete(&ItemPriceModel{})
	if result.Error != nil {
		return wrapDBError(result.Error, "删除价格失败")
	}
	if result.RowsAffected == 0 {
		return item.ErrPriceNotFound
	}
	return nil
}

func toPriceEntity(model *ItemPriceModel) item.Price {
	return item.Price{
		ID:        model.ID,
		ItemID:    model.ItemID,
		VariantID: model.ItemAttributeID,
		Type:      catalog.PriceType(model.PriceType),
		Value:     model.Value,
		Currency:  catalog.Currency(model.Currency),
	}
}
