package category

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/storecatalog/internal/application/cache"
	"github.com/xiebiao/storecatalog/internal/application/shared"
	"github.com/xiebiao/storecatalog/internal/domain/catalog"
	"github.com/xiebiao/storecatalog/internal/domain/category"
	"github.com/xiebiao/storecatalog/pkg/logger"
)

const group = "category"

// Service 分类应用服务
// 职责:
// 1. 编排领域服务，转换DTO
// 2. 读接口缓存旁路（按语言缓存分类列表）
// 3. 写成功后失效缓存并发布事件
type Service struct {
	categories category.Service
	cache      cache.Cache
	ttl        cache.TTL
	events     catalog.EventPublisher
	logger     *zap.Logger
}

// NewService 创建分类应用服务
func NewService(categories category.Service, c cache.Cache, ttl cache.TTL, events catalog.EventPublisher, logger *zap.Logger) *Service {
	return &Service{
		categories: categories,
		cache:      c,
		ttl:        ttl,
		events:     events,
		logger:     logger,
	}
}

// GetByID 获取分类（含全部翻译）
func (s *Service) GetByID(ctx context.Context, id string) (*CategoryDTO, error) {
	c, err := s.categories.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCategoryDTO(c), nil
}

// ListByLanguage 按位置返回指定语言的分类列表
// 店铺没有任何分类时返回ErrCatalogEmpty
func (s *Service) ListByLanguage(ctx context.Context, lang catalog.Language) ([]CategoryView, error) {
	views, err := shared.Cached(ctx, s.cache, s.logger, cache.CategoryListKey(lang), s.ttl.List,
		func(ctx context.Context) ([]CategoryView, error) {
			categories, err := s.categories.List(ctx)
			if err != nil {
				return nil, err
			}
			if len(categories) == 0 {
				return nil, category.ErrCatalogEmpty
			}
			views := make([]CategoryView, len(categories))
			for i, c := range categories {
				views[i] = toCategoryView(c, lang)
			}
			return views, nil
		})
	if err != nil {
		return nil, err
	}
	return views, nil
}

// Create 创建分类，追加到末尾
func (s *Service) Create(ctx context.Context, req CreateCategoryRequest) (*CategoryDTO, error) {
	c, err := s.categories.Create(ctx, req.Slug, req.IsAvailable)
	shared.ObserveReorder(group, shared.OpAppend, err)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx, s.logger).Info("分类已创建",
		zap.String("category_id", c.ID),
		zap.String("slug", c.Slug),
		zap.Int("sort_order", c.SortOrder))

	s.changed(ctx, catalog.NewEvent(catalog.EventCategoryChanged, c.ID, category.RootGroup))
	return toCategoryDTO(c), nil
}

// Update 修改slug或上下架状态
func (s *Service) Update(ctx context.Context, req UpdateCategoryRequest) (*CategoryDTO, error) {
	c, err := s.categories.Update(ctx, req.ID, category.UpdateParams{
		Slug:        req.Slug,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		return nil, err
	}

	s.changed(ctx, catalog.NewEvent(catalog.EventCategoryChanged, c.ID, category.RootGroup))
	return toCategoryDTO(c), nil
}

// Delete 删除分类，其后的分类前移一位
func (s *Service) Delete(ctx context.Context, id string) error {
	updates, err := s.categories.Delete(ctx, id)
	shared.ObserveReorder(group, shared.OpRemove, err)
	if err != nil {
		return err
	}

	logger.FromContext(ctx, s.logger).Info("分类已删除",
		zap.String("category_id", id),
		zap.Int("shifted", len(updates)))

	// 分类下的商品随分类级联删除；详情缓存只按商品ID区分，所以全部失效
	shared.Invalidate(ctx, s.cache, s.logger, cache.ItemListPrefix(id), cache.AllItemDetailsPrefix())
	s.changed(ctx, catalog.NewEvent(catalog.EventCategoryDeleted, id, category.RootGroup).WithPositions(updates))
	return nil
}

// ChangePosition 移动分类到指定位置
func (s *Service) ChangePosition(ctx context.Context, id string, position int) (*CategoryDTO, error) {
	c, updates, err := s.categories.ChangePosition(ctx, id, position)
	shared.ObserveReorder(group, shared.OpMove, err)
	if err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		logger.FromContext(ctx, s.logger).Info("分类位置已变更",
			zap.String("category_id", id),
			zap.Int("position", position),
			zap.Int("updates", len(updates)))
		s.changed(ctx, catalog.NewEvent(catalog.EventCategoryReordered, id, category.RootGroup).WithPositions(updates))
	}
	return toCategoryDTO(c), nil
}

// UpsertTranslation 新增或覆盖翻译，返回分类ID
func (s *Service) UpsertTranslation(ctx context.Context, req TranslationRequest) (string, error) {
	if err := s.categories.UpsertTranslation(ctx, req.CategoryID, req.Language, req.Title, req.Description); err != nil {
		return "", err
	}
	s.changed(ctx, catalog.NewEvent(catalog.EventCategoryChanged, req.CategoryID, category.RootGroup))
	return req.CategoryID, nil
}

// DeleteTranslation 删除翻译
func (s *Service) DeleteTranslation(ctx context.Context, id string) error {
	if err := s.categories.DeleteTranslation(ctx, id); err != nil {
		return err
	}
	shared.Invalidate(ctx, s.cache, s.logger, cache.CategoryListPrefix())
	return nil
}

// changed 失效分类列表缓存并发布事件
func (s *Service) changed(ctx context.Context, event catalog.Event) {
	shared.Invalidate(ctx, s.cache, s.logger, cache.CategoryListPrefix())
	shared.Publish(ctx, s.events, s.logger, event)
}

// =========================================
// DTO
// =========================================

// CreateCategoryRequest 创建分类请求
type CreateCategoryRequest struct {
	Slug        string
	IsAvailable bool
}

// UpdateCategoryRequest 修改分类请求，nil字段不修改
type UpdateCategoryRequest struct {
	ID          string
	Slug        *string
	IsAvailable *bool
}

// TranslationRequest 分类翻译请求
type TranslationRequest struct {
	CategoryID  string
	Language    catalog.Language
	Title       string
	Description string
}

// CategoryDTO 分类详情
type CategoryDTO struct {
	ID           string           `json:"id"`
	Slug         string           `json:"slug"`
	IsAvailable  bool             `json:"is_available"`
	SortOrder    int              `json:"sort_order"`
	Translations []TranslationDTO `json:"translations"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// TranslationDTO 分类翻译
type TranslationDTO struct {
	ID          string           `json:"id"`
	Language    catalog.Language `json:"language"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
}

// CategoryView 指定语言下的分类
type CategoryView struct {
	ID          string           `json:"id"`
	Slug        string           `json:"slug"`
	IsAvailable bool             `json:"is_available"`
	SortOrder   int              `json:"sort_order"`
	Language    catalog.Language `json:"language"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
}

func toCategoryDTO(c *category.Category) *CategoryDTO {
	translations := make([]TranslationDTO, len(c.Translations))
	for i, t := range c.Translations {
		translations[i] = TranslationDTO{
			ID:          t.ID,
			Language:    t.Language,
			Title:       t.Title,
			Description: t.Description,
		}
	}
	return &CategoryDTO{
		ID:           c.ID,
		Slug:         c.Slug,
		IsAvailable:  c.IsAvailable,
		SortOrder:    c.SortOrder,
		Translations: translations,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// toCategoryView 没有任何翻译时标题为空，语言字段为实际使用的语言
func toCategoryView(c *category.Category, lang catalog.Language) CategoryView {
	view := CategoryView{
		ID:          c.ID,
		Slug:        c.Slug,
		IsAvailable: c.IsAvailable,
		SortOrder:   c.SortOrder,
		Language:    lang,
	}
	if t, ok := c.Localized(lang); ok {
		view.Language = t.Language
		view.Title = t.Title
		view.Description = t.Description
	}
	return view
}
