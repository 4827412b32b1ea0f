package item

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/storecatalog/internal/application/cache"
	"github.com/xiebiao/storecatalog/internal/application/shared"
	"github.com/xiebiao/storecatalog/internal/domain/catalog"
	"github.com/xiebiao/storecatalog/internal/domain/category"
	"github.com/xiebiao/storecatalog/internal/domain/item"
	"github.com/xiebiao/storecatalog/pkg/logger"
)

const (
	itemGroup  = "item"
	imageGroup = "image"
)

// Service 商品应用服务
// 职责:
// 1. 商品、图片、规格与价格的用例编排
// 2. 商品列表与详情按语言缓存
// 3. 任何写操作成功后失效所属分类的列表缓存与商品详情缓存
type Service struct {
	items      item.Service
	media      item.MediaService
	pricing    item.PricingService
	categories category.Service
	cache      cache.Cache
	ttl        cache.TTL
	events     catalog.EventPublisher
	logger     *zap.Logger
}

// NewService 创建商品应用服务
func NewService(
	items item.Service,
	media item.MediaService,
	pricing item.PricingService,
	categories category.Service,
	c cache.Cache,
	ttl cache.TTL,
	events catalog.EventPublisher,
	logger *zap.Logger,
) *Service {
	return &Service{
		items:      items,
		media:      media,
		pricing:    pricing,
		categories: categories,
		cache:      c,
		ttl:        ttl,
		events:     events,
		logger:     logger,
	}
}

// GetByID 获取商品视图
func (s *Service) GetByID(ctx context.Context, id string, lang catalog.Language) (*ItemView, error) {
	return shared.Cached(ctx, s.cache, s.logger, cache.ItemDetailKey(id, lang), s.ttl.Detail,
		func(ctx context.Context) (*ItemView, error) {
			it, err := s.items.Get(ctx, id)
			if err != nil {
				return nil, err
			}
			return toItemView(it, lang), nil
		})
}

// ListByCategoryID 按位置返回分类下的商品视图，空分类返回空列表
func (s *Service) ListByCategoryID(ctx context.Context, categoryID string, lang catalog.Language) ([]*ItemView, error) {
	return shared.Cached(ctx, s.cache, s.logger, cache.ItemListKey(categoryID, lang), s.ttl.List,
		func(ctx context.Context) ([]*ItemView, error) {
			items, err := s.items.ListByCategory(ctx, categoryID)
			if err != nil {
				return nil, err
			}
			views := make([]*ItemView, len(items))
			for i, it := range items {
				views[i] = toItemView(it, lang)
			}
			return views, nil
		})
}

// ListByCategorySlug 按分类slug返回商品视图，分类不存在返回NotFound
func (s *Service) ListByCategorySlug(ctx context.Context, slug string, lang catalog.Language) ([]*ItemView, error) {
	c, err := s.categories.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.ListByCategoryID(ctx, c.ID, lang)
}

// Create 创建商品并追加到分类末尾
func (s *Service) Create(ctx context.Context, req CreateItemRequest) (*ItemView, error) {
	it, err := s.items.Create(ctx, item.CreateParams{
		CategoryID:   req.CategoryID,
		Slug:         req.Slug,
		Brand:        req.Brand,
		IsAvailable:  req.IsAvailable,
		ExpectedDate: req.ExpectedDate,
	})
	shared.ObserveReorder(itemGroup, shared.OpAppend, err)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx, s.logger).Info("商品已创建",
		zap.String("item_id", it.ID),
		zap.String("category_id", it.CategoryID),
		zap.Int("sort_order", it.SortOrder))

	s.itemChanged(ctx, it.ID, it.CategoryID,
		catalog.NewEvent(catalog.EventItemChanged, it.ID, it.CategoryID))
	return toItemView(it, catalog.DefaultLanguage), nil
}

// Update 修改商品；换分类时两个分类的列表缓存都失效
func (s *Service) Update(ctx context.Context, req UpdateItemRequest) (*ItemView, error) {
	it, previous, shifted, err := s.items.Update(ctx, req.ID, item.UpdateParams{
		Slug:         req.Slug,
		Brand:        req.Brand,
		IsAvailable:  req.IsAvailable,
		ExpectedDate: req.ExpectedDate,
		CategoryID:   req.CategoryID,
	})
	transferred := req.CategoryID != nil && (err != nil || previous != it.CategoryID)
	if transferred {
		shared.ObserveReorder(itemGroup, shared.OpTransfer, err)
	}
	if err != nil {
		return nil, err
	}

	event := catalog.NewEvent(catalog.EventItemChanged, it.ID, it.CategoryID)
	if previous != it.CategoryID {
		logger.FromContext(ctx, s.logger).Info("商品已转移分类",
			zap.String("item_id", it.ID),
			zap.String("from", previous),
			zap.String("to", it.CategoryID),
			zap.Int("sort_order", it.SortOrder),
			zap.Int("shifted", len(shifted)))

		// 原分类里被前移的兄弟详情里的sort_order也变了
		prefixes := []string{cache.ItemListPrefix(previous)}
		for _, u := range shifted {
			prefixes = append(prefixes, cache.ItemDetailPrefix(u.ID))
		}
		shared.Invalidate(ctx, s.cache, s.logger, prefixes...)
		event = event.WithPositions(shifted)
	}

	s.itemChanged(ctx, it.ID, it.CategoryID, event)
	return toItemView(it, catalog.DefaultLanguage), nil
}

// Delete 删除商品并收拢分类
func (s *Service) Delete(ctx context.Context, id string) error {
	it, updates, err := s.items.Delete(ctx, id)
	shared.ObserveReorder(itemGroup, shared.OpRemove, err)
	if err != nil {
		return err
	}

	logger.FromContext(ctx, s.logger).Info("商品已删除",
		zap.String("item_id", id),
		zap.String("category_id", it.CategoryID),
		zap.Int("shifted", len(updates)))

	// 被前移的兄弟详情里的sort_order也变了
	prefixes := []string{cache.ItemListPrefix(it.CategoryID), cache.ItemDetailPrefix(id)}
	for _, u := range updates {
		prefixes = append(prefixes, cache.ItemDetailPrefix(u.ID))
	}
	shared.Invalidate(ctx, s.cache, s.logger, prefixes...)
	shared.Publish(ctx, s.events, s.logger,
		catalog.NewEvent(catalog.EventItemDeleted, id, it.CategoryID).WithPositions(updates))
	return nil
}

// ChangePosition 移动商品并返回指定语言的视图
func (s *Service) ChangePosition(ctx context.Context, id string, position int, lang catalog.Language) (*ItemView, error) {
	it, updates, err := s.items.ChangePosition(ctx, id, position)
	shared.ObserveReorder(itemGroup, shared.OpMove, err)
	if err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		prefixes := []string{cache.ItemListPrefix(it.CategoryID)}
		for _, u := range updates {
			prefixes = append(prefixes, cache.ItemDetailPrefix(u.ID))
		}
		shared.Invalidate(ctx, s.cache, s.logger, prefixes...)
		shared.Publish(ctx, s.events, s.logger,
			catalog.NewEvent(catalog.EventItemReordered, id, it.CategoryID).WithPositions(updates))
	}
	return toItemView(it, lang), nil
}

// UpsertTranslation 新增或覆盖商品翻译，返回商品ID
func (s *Service) UpsertTranslation(ctx context.Context, req TranslationRequest) (string, error) {
	err := s.items.UpsertTranslation(ctx, item.TranslationParams{
		ItemID:              req.ItemID,
		Language:            req.Language,
		Title:               req.Title,
		Description:         req.Description,
		DetailedDescription: req.DetailedDescription,
	})
	if err != nil {
		return "", err
	}

	s.refresh(ctx, req.ItemID, catalog.EventItemChanged)
	return req.ItemID, nil
}

// DeleteTranslation 删除翻译
// 只知道翻译ID，所以失效全部商品缓存
func (s *Service) DeleteTranslation(ctx context.Context, id string) error {
	if err := s.items.DeleteTranslation(ctx, id); err != nil {
		return err
	}
	shared.Invalidate(ctx, s.cache, s.logger, cache.AllItemListsPrefix(), cache.AllItemDetailsPrefix())
	return nil
}

// itemChanged 失效商品所在分类的列表和商品详情，并发布事件
func (s *Service) itemChanged(ctx context.Context, itemID, categoryID string, events ...catalog.Event) {
	shared.Invalidate(ctx, s.cache, s.logger,
		cache.ItemListPrefix(categoryID),
		cache.ItemDetailPrefix(itemID))
	shared.Publish(ctx, s.events, s.logger, events...)
}

// refresh 只知道商品ID时先查出所属分类再失效
// 查询失败时退化为失效全部商品列表
func (s *Service) refresh(ctx context.Context, itemID string, eventType catalog.EventType) {
	it, err := s.items.Get(ctx, itemID)
	if err != nil {
		logger.FromContext(ctx, s.logger).Warn("查询商品所属分类失败",
			zap.String("item_id", itemID),
			zap.Error(err))
		shared.Invalidate(ctx, s.cache, s.logger, cache.AllItemListsPrefix(), cache.ItemDetailPrefix(itemID))
		shared.Publish(ctx, s.events, s.logger, catalog.NewEvent(eventType, itemID, ""))
		return
	}
	s.itemChanged(ctx, itemID, it.CategoryID, catalog.NewEvent(eventType, itemID, it.CategoryID))
}
