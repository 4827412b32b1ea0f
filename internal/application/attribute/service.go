package attribute

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/storecatalog/internal/application/cache"
	"github.com/xiebiao/storecatalog/internal/application/shared"
	"github.com/xiebiao/storecatalog/internal/domain/attribute"
	"github.com/xiebiao/storecatalog/internal/domain/catalog"
	"github.com/xiebiao/storecatalog/pkg/logger"
)

const group = "attribute"

// Service 属性应用服务
// 属性名称出现在商品的规格与参数中，属性变更会失效所属分类的商品列表和全部商品详情
type Service struct {
	attributes attribute.Service
	cache      cache.Cache
	events     catalog.EventPublisher
	logger     *zap.Logger
}

// NewService 创建属性应用服务
func NewService(attributes attribute.Service, c cache.Cache, events catalog.EventPublisher, logger *zap.Logger) *Service {
	return &Service{
		attributes: attributes,
		cache:      c,
		events:     events,
		logger:     logger,
	}
}

// GetByID 获取属性
func (s *Service) GetByID(ctx context.Context, id string) (*AttributeDTO, error) {
	a, err := s.attributes.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toAttributeDTO(a), nil
}

// ListByCategory 按位置返回分类下的属性
func (s *Service) ListByCategory(ctx context.Context, categoryID string) ([]*AttributeDTO, error) {
	list, err := s.attributes.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	dtos := make([]*AttributeDTO, len(list))
	for i, a := range list {
		dtos[i] = toAttributeDTO(a)
	}
	return dtos, nil
}

// Create 在分类末尾追加属性
func (s *Service) Create(ctx context.Context, categoryID, slug string) (*AttributeDTO, error) {
	a, err := s.attributes.Create(ctx, categoryID, slug)
	shared.ObserveReorder(group, shared.OpAppend, err)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx, s.logger).Info("属性已创建",
		zap.String("attribute_id", a.ID),
		zap.String("category_id", categoryID),
		zap.Int("sort_order", a.SortOrder))

	s.changed(ctx, catalog.NewEvent(catalog.EventAttributeChanged, a.ID, a.CategoryID))
	return toAttributeDTO(a), nil
}

// Update 修改slug
func (s *Service) Update(ctx context.Context, id, slug string) (*AttributeDTO, error) {
	a, err := s.attributes.Rename(ctx, id, slug)
	if err != nil {
		return nil, err
	}

	s.changed(ctx, catalog.NewEvent(catalog.EventAttributeChanged, a.ID, a.CategoryID))
	return toAttributeDTO(a), nil
}

// Delete 删除属性并收拢位置
func (s *Service) Delete(ctx context.Context, id string) error {
	a, updates, err := s.attributes.Delete(ctx, id)
	shared.ObserveReorder(group, shared.OpRemove, err)
	if err != nil {
		return err
	}

	logger.FromContext(ctx, s.logger).Info("属性已删除",
		zap.String("attribute_id", id),
		zap.String("category_id", a.CategoryID),
		zap.Int("shifted", len(updates)))

	s.changed(ctx, catalog.NewEvent(catalog.EventAttributeDeleted, id, a.CategoryID).WithPositions(updates))
	return nil
}

// ChangePosition 移动属性
func (s *Service) ChangePosition(ctx context.Context, id string, position int) (*AttributeDTO, error) {
	a, updates, err := s.attributes.ChangePosition(ctx, id, position)
	shared.ObserveReorder(group, shared.OpMove, err)
	if err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		s.changed(ctx, catalog.NewEvent(catalog.EventAttributeReordered, id, a.CategoryID).WithPositions(updates))
	}
	return toAttributeDTO(a), nil
}

// UpsertTranslation 新增或覆盖属性名称翻译，返回属性ID
func (s *Service) UpsertTranslation(ctx context.Context, attributeID string, lang catalog.Language, name string) (string, error) {
	if err := s.attributes.UpsertTranslation(ctx, attributeID, lang, name); err != nil {
		return "", err
	}

	a, err := s.attributes.Get(ctx, attributeID)
	if err != nil {
		return "", err
	}
	s.changed(ctx, catalog.NewEvent(catalog.EventAttributeChanged, a.ID, a.CategoryID))
	return attributeID, nil
}

// DeleteTranslation 删除翻译
func (s *Service) DeleteTranslation(ctx context.Context, id string) error {
	if err := s.attributes.DeleteTranslation(ctx, id); err != nil {
		return err
	}
	shared.Invalidate(ctx, s.cache, s.logger, cache.AllItemDetailsPrefix())
	return nil
}

func (s *Service) changed(ctx context.Context, event catalog.Event) {
	shared.Invalidate(ctx, s.cache, s.logger,
		cache.ItemListPrefix(event.ParentID),
		cache.AllItemDetailsPrefix())
	shared.Publish(ctx, s.events, s.logger, event)
}

// AttributeDTO 属性
type AttributeDTO struct {
	ID           string           `json:"id"`
	CategoryID   string           `json:"category_id"`
	Slug         string           `json:"slug"`
	SortOrder    int              `json:"sort_order"`
	Translations []TranslationDTO `json:"translations"`
}

// TranslationDTO 属性名称翻译
type TranslationDTO struct {
	ID       string           `json:"id"`
	Language catalog.Language `json:"language"`
	Name     string           `json:"name"`
}

func toAttributeDTO(a *attribute.Attribute) *AttributeDTO {
	translations := make([]TranslationDTO, len(a.Translations))
	for i, t := range a.Translations {
		translations[i] = TranslationDTO{ID: t.ID, Language: t.Language, Name: t.Name}
	}
	return &AttributeDTO{
		ID:           a.ID,
		CategoryID:   a.CategoryID,
		Slug:         a.Slug,
		SortOrder:    a.SortOrder,
		Translations: translations,
	}
}
