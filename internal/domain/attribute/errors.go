package attribute

import (
	apperrors "github.com/xiebiao/storecatalog/pkg/errors"
)

var (
	ErrAttributeNotFound   = apperrors.New(apperrors.ErrCodeAttributeNotFound, "属性不存在")
	ErrTranslationNotFound = apperrors.New(apperrors.ErrCodeTranslationNotFound, "属性翻译不存在")
	ErrSlugDuplicate       = apperrors.New(apperrors.ErrCodeDuplicateEntry, "该分类下属性slug已存在")
	ErrInvalidSlug         = apperrors.New(apperrors.ErrCodeInvalidParams, "slug格式不正确")
	ErrEmptyName           = apperrors.New(apperrors.ErrCodeInvalidParams, "属性名称不能为空")
)
