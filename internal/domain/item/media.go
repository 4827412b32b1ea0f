package item

import (
	"context"
	"errors"

	"github.com/xiebiao/storecatalog/internal/domain/ordering"
)

// MediaService 商品图片服务
// 图片兄弟组的父键是ItemID
type MediaService interface {
	AddImage(ctx context.Context, itemID, url string, alt *string) (*Image, error)
	RemoveImage(ctx context.Context, imageID string) (*Image, []ordering.Update, error)
	ChangeImagePosition(ctx context.Context, imageID string, position int) (*Image, []ordering.Update, error)
}

type mediaService struct {
	images    ImageRepository
	reorderer *ordering.Reorderer
}

// NewMediaService 创建图片服务
func NewMediaService(images ImageRepository, reorderer *ordering.Reorderer) MediaService {
	return &mediaService{images: images, reorderer: reorderer}
}

func (s *mediaService) AddImage(ctx context.Context, itemID, url string, alt *string) (*Image, error) {
	img, err := NewImage(itemID, url, alt)
	if err != nil {
		return nil, err
	}

	_, err = s.reorderer.Append(ctx, itemID, func(ctx context.Context, position int) error {
		img.SortOrder = position
		return s.images.Create(ctx, img)
	})
	if err != nil {
		return nil, mapImageErr(err)
	}
	return img, nil
}

func (s *mediaService) RemoveImage(ctx context.Context, imageID string) (*Image, []ordering.Update, error) {
	img, err := s.images.FindByID(ctx, imageID)
	if err != nil {
		return nil, nil, err
	}

	updates, err := s.reorderer.Remove(ctx, img.ItemID, imageID, func(ctx context.Context) error {
		return s.images.Delete(ctx, imageID)
	})
	if err != nil {
		return nil, nil, mapImageErr(err)
	}
	return img, updates, nil
}

func (s *mediaService) ChangeImagePosition(ctx context.Context, imageID string, position int) (*Image, []ordering.Update, error) {
	img, err := s.images.FindByID(ctx, imageID)
	if err != nil {
		return nil, nil, err
	}

	updates, err := s.reorderer.Move(ctx, img.ItemID, imageID, position)
	if err != nil {
		return nil, nil, mapImageErr(err)
	}

	img.SortOrder = position
	return img, updates, nil
}

// mapImageErr 图片兄弟组的父节点是商品
func mapImageErr(err error) error {
	switch {
	case errors.Is(err, ordering.ErrParentNotFound):
		return ErrItemNotFound
	case errors.Is(err, ordering.ErrNotFound):
		return ErrImageNotFound
	default:
		return err
	}
}
