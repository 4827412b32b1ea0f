package item

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/storecatalog/internal/application/cache"
	"github.com/xiebiao/storecatalog/internal/application/shared"
	"github.com/xiebiao/storecatalog/internal/domain/catalog"
	"github.com/xiebiao/storecatalog/internal/domain/ordering"
	"github.com/xiebiao/storecatalog/pkg/logger"
)

// AddImage 追加图片到商品末尾
func (s *Service) AddImage(ctx context.Context, itemID, url string, alt *string) (*ImageDTO, error) {
	img, err := s.media.AddImage(ctx, itemID, url, alt)
	shared.ObserveReorder(imageGroup, shared.OpAppend, err)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx, s.logger).Debug("图片已添加",
		zap.String("image_id", img.ID),
		zap.String("item_id", itemID),
		zap.Int("sort_order", img.SortOrder))

	s.refresh(ctx, itemID, catalog.EventItemChanged)
	dto := toImageDTO(img)
	return &dto, nil
}

// RemoveImage 删除图片并收拢位置
func (s *Service) RemoveImage(ctx context.Context, imageID string) error {
	img, updates, err := s.media.RemoveImage(ctx, imageID)
	shared.ObserveReorder(imageGroup, shared.OpRemove, err)
	if err != nil {
		return err
	}

	s.imagesReordered(ctx, img.ItemID, imageID, updates)
	return nil
}

// ChangeImagePosition 移动图片
func (s *Service) ChangeImagePosition(ctx context.Context, imageID string, position int) (*ImageDTO, error) {
	img, updates, err := s.media.ChangeImagePosition(ctx, imageID, position)
	shared.ObserveReorder(imageGroup, shared.OpMove, err)
	if err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		s.imagesReordered(ctx, img.ItemID, imageID, updates)
	}
	dto := toImageDTO(img)
	return &dto, nil
}

// imagesReordered 图片随商品出现在列表与详情中，两者都要失效
func (s *Service) imagesReordered(ctx context.Context, itemID, imageID string, updates []ordering.Update) {
	prefixes := []string{cache.ItemDetailPrefix(itemID)}
	if it, err := s.items.Get(ctx, itemID); err == nil {
		prefixes = append(prefixes, cache.ItemListPrefix(it.CategoryID))
	} else {
		prefixes = append(prefixes, cache.AllItemListsPrefix())
	}
	shared.Invalidate(ctx, s.cache, s.logger, prefixes...)
	shared.Publish(ctx, s.events, s.logger,
		catalog.NewEvent(catalog.EventImageReordered, imageID, itemID).WithPositions(updates))
}
