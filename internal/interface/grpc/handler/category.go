// Package handler gRPC服务实现
//
// Handler只做协议转换和参数校验，业务规则在应用层和领域层，
// 领域错误由Errors拦截器统一转换为gRPC状态码
package handler

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/storecatalog/api/catalogv1"
	appcategory "github.com/xiebiao/storecatalog/internal/application/category"
	"github.com/xiebiao/storecatalog/internal/domain/catalog"
	"github.com/xiebiao/storecatalog/pkg/logger"
)

// CategoryHandler 分类服务gRPC实现
type CategoryHandler struct {
	catalogv1.UnimplementedCategoryServiceServer
	categories *appcategory.Service
	logger     *zap.Logger
}

// NewCategoryHandler 创建分类Handler
func NewCategoryHandler(categories *appcategory.Service, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{categories: categories, logger: logger}
}

func (h *CategoryHandler) GetCategory(ctx context.Context, req *catalogv1.IDRequest) (*catalogv1.Category, error) {
	if err := requireID(req.Id); err != nil {
		return nil, err
	}
	c, err := h.categories.GetByID(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return toCategoryMessage(c), nil
}

// ListCategories 目录为空时返回NotFound
func (h *CategoryHandler) ListCategories(ctx context.Context, req *catalogv1.ListCategoriesRequest) (*catalogv1.ListCategoriesResponse, error) {
	views, err := h.categories.ListByLanguage(ctx, catalog.LanguageFromCode(req.Language))
	if err != nil {
		return nil, err
	}

	resp := &catalogv1.ListCategoriesResponse{Categories: make([]catalogv1.LocalizedCategory, len(views))}
	for i, v := range views {
		resp.Categories[i] = toLocalizedCategory(v)
	}
	return resp, nil
}

func (h *CategoryHandler) CreateCategory(ctx context.Context, req *catalogv1.CreateCategoryRequest) (*catalogv1.IDResponse, error) {
	c, err := h.categories.Create(ctx, appcategory.CreateCategoryRequest{
		Slug:        req.Slug,
		IsAvailable: orTrue(req.IsAvailable),
	})
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx, h.logger).Debug("分类已创建", zap.String("category_id", c.ID), zap.Int("sort_order", c.SortOrder))
	return &catalogv1.IDResponse{Id: c.ID}, nil
}

func (h *CategoryHandler) UpdateCategory(ctx context.Context, req *catalogv1.UpdateCategoryRequest) (*catalogv1.IDResponse, error) {
	if err := requireID(req.Id); err != nil {
		return nil, err
	}
	c, err := h.categories.Update(ctx, appcategory.UpdateCategoryRequest{
		ID:          req.Id,
		Slug:        req.Slug,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		return nil, err
	}
	return &catalogv1.IDResponse{Id: c.ID}, nil
}

func (h *CategoryHandler) DeleteCategory(ctx context.Context, req *catalogv1.IDRequest) (*catalogv1.StatusResponse, error) {
	if err := requireID(req.Id); err != nil {
		return nil, err
	}
	if err := h.categories.Delete(ctx, req.Id); err != nil {
		return nil, err
	}
	logger.FromContext(ctx, h.logger).Debug("分类已删除", zap.String("category_id", req.Id))
	return okResponse(), nil
}

func (h *CategoryHandler) ChangeCategoryPosition(ctx context.Context, req *catalogv1.ChangePositionRequest) (*catalogv1.Category, error) {
	if err := requireID(req.Id); err != nil {
		return nil, err
	}
	c, err := h.categories.ChangePosition(ctx, req.Id, int(req.SortOrder))
	if err != nil {
		return nil, err
	}
	return toCategoryMessage(c), nil
}

func (h *CategoryHandler) UpsertCategoryTranslation(ctx context.Context, req *catalogv1.UpsertCategoryTranslationRequest) (*catalogv1.IDResponse, error) {
	if err := requireID(req.CategoryId); err != nil {
		return nil, err
	}
	id, err := h.categories.UpsertTranslation(ctx, appcategory.TranslationRequest{
		CategoryID:  req.CategoryId,
		Language:    catalog.LanguageFromCode(req.Language),
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return nil, err
	}
	return &catalogv1.IDResponse{Id: id}, nil
}

func (h *CategoryHandler) DeleteCategoryTranslation(ctx context.Context, req *catalogv1.IDRequest) (*catalogv1.StatusResponse, error) {
	if err := requireID(req.Id); err != nil {
		return nil, err
	}
	if err := h.categories.DeleteTranslation(ctx, req.Id); err != nil {
		return nil, err
	}
	return okResponse(), nil
}
