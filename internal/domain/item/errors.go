package item

import (
	apperrors "github.com/xiebiao/storecatalog/pkg/errors"
)

// 商品领域错误定义
var (
	ErrItemNotFound        = apperrors.New(apperrors.ErrCodeItemNotFound, "商品不存在")
	ErrImageNotFound       = apperrors.New(apperrors.ErrCodeImageNotFound, "图片不存在")
	ErrVariantNotFound     = apperrors.New(apperrors.ErrCodeVariantNotFound, "商品规格不存在")
	ErrPriceNotFound       = apperrors.New(apperrors.ErrCodePriceNotFound, "价格不存在")
	ErrTranslationNotFound = apperrors.New(apperrors.ErrCodeTranslationNotFound, "商品翻译不存在")

	// ErrSlugDuplicate 同一分类下slug重复
	ErrSlugDuplicate = apperrors.New(apperrors.ErrCodeDuplicateEntry, "该分类下商品slug已存在")

	// ErrVariantDuplicate 商品已关联该属性
	ErrVariantDuplicate = apperrors.New(apperrors.ErrCodeDuplicateEntry, "商品已存在该属性")

	// ErrPriceDuplicate 同类型价格已存在
	ErrPriceDuplicate = apperrors.New(apperrors.ErrCodeDuplicateEntry, "同类型价格已存在")

	ErrInvalidSlug    = apperrors.New(apperrors.ErrCodeInvalidParams, "slug格式不正确")
	ErrEmptyTitle     = apperrors.New(apperrors.ErrCodeInvalidParams, "标题不能为空")
	ErrEmptyImageURL  = apperrors.New(apperrors.ErrCodeInvalidParams, "图片地址不能为空")
	ErrEmptyValue     = apperrors.New(apperrors.ErrCodeInvalidParams, "属性值不能为空")
	ErrInvalidPrice   = apperrors.New(apperrors.ErrCodeInvalidParams, "价格必须大于0")
	ErrAttributeScope = apperrors.New(apperrors.ErrCodeInvalidParams, "属性不属于商品所在分类")
)
