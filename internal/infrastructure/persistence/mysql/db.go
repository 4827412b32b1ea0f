package mysql

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/storecatalog/internal/infrastructure/config"
)

// NewDB 初始化数据库连接
// 设计说明:
// 1. 连接池参数来自配置，排序事务持有行锁的时间很短，池不需要很大
// 2. SQL日志通过zap输出，debug模式打印全部SQL，其余只记录慢查询和错误
// 3. 时间统一使用UTC
func NewDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := logger.Warn
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: NewGormLogger(log, cfg.Database.SlowThreshold).LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Info("数据库连接成功",
		zap.String("host", cfg.Database.Host),
		zap.String("dbname", cfg.Database.DBName))

	if cfg.Database.AutoMigrate {
		if err := AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("数据库迁移失败: %w", err)
		}
	}

	return db, nil
}

// AutoMigrate 建表，父表在前
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&CategoryModel{},
		&CategoryTranslationModel{},
		&AttributeModel{},
		&AttributeTranslationModel{},
		&ItemModel{},
		&ItemTranslationModel{},
		&ImageModel{},
		&ItemAttributeModel{},
		&ItemAttributeTranslationModel{},
		&ItemPriceModel{},
	)
}

// =========================================
// GORM模型定义
// =========================================
// 主键统一为UUID字符串，由领域层生成
// 兄弟组成员都有sort_order列，(父字段, sort_order)建普通索引：
// 排序过程中组内会短暂出现重复值，不能建唯一索引

// CategoryModel 分类表
// 全部分类构成一个兄弟组（店铺根分组）
type CategoryModel struct {
	ID           string                     `gorm:"primaryKey;size:36"`
	Slug         string                     `gorm:"uniqueIndex;size:255;not null;comment:URL标识"`
	IsAvailable  bool                       `gorm:"not null;default:true;comment:是否上架"`
	SortOrder    int                        `gorm:"index;not null;comment:组内位置(1..N)"`
	Translations []CategoryTranslationModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time                  `gorm:"comment:创建时间"`
	UpdatedAt    time.Time                  `gorm:"comment:更新时间"`
}

func (CategoryModel) TableName() string {
	return "category"
}

// CategoryTranslationModel 分类翻译表，(category_id, language)唯一
type CategoryTranslationModel struct {
	ID          string `gorm:"primaryKey;size:36"`
	CategoryID  string `gorm:"uniqueIndex:uk_category_language;size:36;not null"`
	Language    string `gorm:"uniqueIndex:uk_category_language;size:8;not null;comment:语言"`
	Title       string `gorm:"size:255;not null;comment:标题"`
	Description string `gorm:"type:text;comment:描述"`
}

func (CategoryTranslationModel) TableName() string {
	return "category_translation"
}

// AttributeModel 属性表，同一分类下的属性构成一个兄弟组
type AttributeModel struct {
	ID           string                      `gorm:"primaryKey;size:36"`
	CategoryID   string                      `gorm:"uniqueIndex:uk_attribute_slug;index:idx_attribute_order,priority:1;size:36;not null"`
	Category     *CategoryModel              `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	Slug         string                      `gorm:"uniqueIndex:uk_attribute_slug;size:255;not null"`
	SortOrder    int                         `gorm:"index:idx_attribute_order,priority:2;not null"`
	Translations []AttributeTranslationModel `gorm:"foreignKey:AttributeID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (AttributeModel) TableName() string {
	return "attribute"
}

// AttributeTranslationModel 属性名称翻译表
type AttributeTranslationModel struct {
	ID          string `gorm:"primaryKey;size:36"`
	AttributeID string `gorm:"uniqueIndex:uk_attribute_language;size:36;not null"`
	Language    string `gorm:"uniqueIndex:uk_attribute_language;size:8;not null"`
	Name        string `gorm:"size:255;not null"`
}

func (AttributeTranslationModel) TableName() string {
	return "attribute_translation"
}

// ItemModel 商品表，同一分类下的商品构成一个兄弟组
type ItemModel struct {
	ID           string                 `gorm:"primaryKey;size:36"`
	CategoryID   string                 `gorm:"uniqueIndex:uk_item_slug;index:idx_item_order,priority:1;size:36;not null"`
	Category     *CategoryModel         `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	Slug         string                 `gorm:"uniqueIndex:uk_item_slug;size:255;not null"`
	Brand        *string                `gorm:"size:255;comment:品牌"`
	IsAvailable  bool                   `gorm:"not null;default:true"`
	ExpectedDate *time.Time             `gorm:"comment:预计到货日期"`
	SortOrder    int                    `gorm:"index:idx_item_order,priority:2;not null"`
	Translations []ItemTranslationModel `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
	Images       []ImageModel           `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
	Variants     []ItemAttributeModel   `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
	// Prices 仅预加载商品级价格（item_attribute_id IS NULL）
	Prices    []ItemPriceModel `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ItemModel) TableName() string {
	return "item"
}

// ItemTranslationModel 商品翻译表
type ItemTranslationModel struct {
	ID                  string  `gorm:"primaryKey;size:36"`
	ItemID              string  `gorm:"uniqueIndex:uk_item_language;size:36;not null"`
	Language            string  `gorm:"uniqueIndex:uk_item_language;size:8;not null"`
	Title               string  `gorm:"size:255;not null"`
	Description         *string `gorm:"type:text"`
	DetailedDescription *string `gorm:"type:text"`
}

func (ItemTranslationModel) TableName() string {
	return "item_translation"
}

// ImageModel 商品图片表，同一商品下的图片构成一个兄弟组
type ImageModel struct {
	ID        string  `gorm:"primaryKey;size:36"`
	ItemID    string  `gorm:"index:idx_image_order,priority:1;size:36;not null"`
	URL       string  `gorm:"size:1024;not null"`
	Alt       *string `gorm:"size:255"`
	SortOrder int     `gorm:"index:idx_image_order,priority:2;not null"`
	CreatedAt time.Time
}

func (ImageModel) TableName() string {
	return "image"
}

// ItemAttributeModel 商品属性值表，(item_id, attribute_id)唯一
type ItemAttributeModel struct {
	ID           string                          `gorm:"primaryKey;size:36"`
	ItemID       string                          `gorm:"uniqueIndex:uk_item_attribute;size:36;not null"`
	AttributeID  string                          `gorm:"uniqueIndex:uk_item_attribute;size:36;not null"`
	Attribute    *AttributeModel                 `gorm:"foreignKey:AttributeID;constraint:OnDelete:CASCADE"`
	Translations []ItemAttributeTranslationModel `gorm:"foreignKey:ItemAttributeID;constraint:OnDelete:CASCADE"`
	Prices       []ItemPriceModel                `gorm:"foreignKey:ItemAttributeID;constraint:OnDelete:CASCADE"`
}

func (ItemAttributeModel) TableName() string {
	return "item_attribute"
}

// ItemAttributeTranslationModel 属性值翻译表
type ItemAttributeTranslationModel struct {
	ID              string `gorm:"primaryKey;size:36"`
	ItemAttributeID string `gorm:"uniqueIndex:uk_item_attribute_language;size:36;not null"`
	Language        string `gorm:"uniqueIndex:uk_item_attribute_language;size:8;not null"`
	Value           string `gorm:"size:255;not null"`
}

func (ItemAttributeTranslationModel) TableName() string {
	return "item_attribute_translation"
}

// ItemPriceModel 价格表
// 规格价格由(item_attribute_id, price_type)唯一约束；
// 商品级价格的item_attribute_id为NULL，唯一索引不生效，由服务层校验
type ItemPriceModel struct {
	ID              string          `gorm:"primaryKey;size:36"`
	ItemID          string          `gorm:"index;size:36;not null"`
	ItemAttributeID *string         `gorm:"uniqueIndex:uk_price_type;size:36"`
	PriceType       string          `gorm:"uniqueIndex:uk_price_type;size:16;not null;comment:regular|discount|wholesale"`
	Value           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Currency        string          `gorm:"size:3;not null;default:UAH"`
}

func (ItemPriceModel) TableName() string {
	return "item_price"
}
