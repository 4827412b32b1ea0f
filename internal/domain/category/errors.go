package category

import (
	apperrors "github.com/xiebiao/storecatalog/pkg/errors"
)

// 分类领域错误定义
var (
	// ErrCategoryNotFound 分类不存在
	ErrCategoryNotFound = apperrors.New(apperrors.ErrCodeCategoryNotFound, "分类不存在")

	// ErrCatalogEmpty 店铺还没有任何分类
	ErrCatalogEmpty = apperrors.New(apperrors.ErrCodeCategoryNotFound, "店铺暂无分类")

	// ErrTranslationNotFound 翻译不存在
	ErrTranslationNotFound = apperrors.New(apperrors.ErrCodeTranslationNotFound, "分类翻译不存在")

	// ErrSlugDuplicate slug已被占用
	ErrSlugDuplicate = apperrors.New(apperrors.ErrCodeDuplicateEntry, "分类slug已存在")

	// ErrInvalidSlug slug格式不正确
	ErrInvalidSlug = apperrors.New(apperrors.ErrCodeInvalidParams, "slug格式不正确")

	// ErrEmptyTitle 标题为空
	ErrEmptyTitle = apperrors.New(apperrors.ErrCodeInvalidParams, "标题不能为空")
)
