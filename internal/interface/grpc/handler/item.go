package handler

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/storecatalog/api/catalogv1"
	appitem "github.com/xiebiao/storecatalog/internal/application/item"
	"github.com/xiebiao/storecatalog/internal/domain/catalog"
	apperrors "github.com/xiebiao/storecatalog/pkg/errors"
	"github.com/xiebiao/storecatalog/pkg/logger"
)

var errMissingCategory = apperrors.New(apperrors.ErrCodeInvalidParams, "category_id与category_slug不能同时为空")

// ItemHandler 商品服务gRPC实现，包括图片、规格和价格
type ItemHandler struct {
	catalogv1.UnimplementedItemServiceServer
	items  *appitem.Service
	logger *zap.Logger
}

// NewItemHandler 创建商品Handler
func NewItemHandler(items *appitem.Service, logger *zap.Logger) *ItemHandler {
	return &ItemHandler{items: items, logger: logger}
}

func (h *ItemHandler) GetItem(ctx context.Context, req *catalogv1.GetItemRequest) (*catalogv1.Item, error) {
	if err := requireID(req.Id); err != nil {
		return nil, err
	}
	v, err := h.items.GetByID(ctx, req.Id, catalog.LanguageFromCode(req.Language))
	if err != nil {
		return nil, err
	}
	return toItemMessage(v), nil
}

// ListItems 按分类ID或slug列出商品，ID优先
func (h *ItemHandler) ListItems(ctx context.Context, req *catalogv1.ListItemsRequest) (*catalogv1.ListItemsResponse, error) {
	lang := catalog.LanguageFromCode(req.Language)

	var (
		views []*appitem.ItemView
		err   error
	)
	switch {
	case req.CategoryId != "":
		views, err = h.items.ListByCategoryID(ctx, req.CategoryId, lang)
	case req.CategorySlug != "":
		views, err = h.items.ListByCategorySlug(ctx, req.CategorySlug, lang)
	default:
		return nil, errMissingCategory
	}
	if err != nil {
		return nil, err
	}

	resp := &catalogv1.ListItemsResponse{Items: make([]catalogv1.Item, len(views))}
	for i, v := range views {
		resp.Items[i] = *toItemMessage(v)
	}
	return resp, nil
}

func (h *ItemHandler) CreateItem(ctx context.Context, req *catalogv1.CreateItemRequest) (*catalogv1.IDResponse, error) {
	if err := requireID(req.CategoryId); err != nil {
		return nil, err
	}
	v, err := h.items.Create(ctx, appitem.CreateItemRequest{
		CategoryID:   req.CategoryId,
		Slug:         req.Slug,
		Brand:        req.Brand,
		IsAvailable:  orTrue(req.IsAvailable),
		ExpectedDate: req.ExpectedDate,
	})
	if err != nil {
		return nil, err
	}
	return &catalogv1.IDResponse{Id: v.ID}, nil
}

func (h *ItemHandler) UpdateItem(ctx context.Context, req *catalogv1.UpdateItemRequest) (*catalogv1.IDResponse, error) {
	if err := requireID(req.Id); err != nil {
		return nil, err
	}
	v, err := h.items.Update(ctx, appitem.UpdateItemRequest{
		ID:           req.Id,
		Slug:         req.Slug,
		Brand:        req.Brand,
		IsAvailable:  req.IsAvailable,
		ExpectedDate: req.ExpectedDate,
		CategoryID:   req.CategoryId,
	})
	if err != nil {
		return nil, err
	}
	return &catalogv1.IDResponse{Id: v.ID}, nil
}

func (h *ItemHandler) DeleteItem(ctx context.Context, req *catalogv1.IDRequest) (*catalogv1.StatusResponse, error) {
	if err := requireID(req.Id); err != nil {
		return nil, err
	}
	if err := h.items.Delete(ctx, req.Id); err != nil {
		return nil, err
	}
	return okResponse(), nil
}

func (h *ItemHandler) ChangeItemPosition(ctx context.Context, req *catalogv1.ChangePositionRequest) (*catalogv1.Item, error) {
	if err := requireID(req.Id); err != nil {
		return nil, err
	}
	v, err := h.items.ChangePosition(ctx, req.Id, int(req.SortOrder), catalog.LanguageFromCode(req.Language))
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx, h.logger).Debug("商品已移动",
		zap.String("item_id", v.ID),
		zap.Int32("target", req.SortOrder),
		zap.Int("sort_order", v.SortOrder))
	return toItemMessage(v), nil
}

func (h *ItemHandler) UpsertItemTranslation(ctx context.Context, req *catalogv1.UpsertItemTranslationRequest) (*catalogv1.IDResponse, error) {
	if err := requireID(req.ItemId); err != nil {
		return nil, err
	}
	id, err := h.items.UpsertTranslation(ctx, appitem.TranslationRequest{
		ItemID:              req.ItemId,
		Language:            catalog.LanguageFromCode(req.Language),
		Title:               req.Title,
		Description:         req.Description,
		DetailedDescription: req.DetailedDescription,
	})
	if err != nil {
		return nil, err
	}
	return &catalogv1.IDResponse{Id: id}, nil
}

func (h *ItemHandler) DeleteItemTranslation(ctx context.Context, req *catalogv1.IDRequest) (*catalogv1.StatusResponse, error) {
	if err := requireID(req.Id); err != nil {
		return nil, err
	}
	if err := h.items.DeleteTranslation(ctx, req.Id); err != nil {
		return nil, err
	}
	return okResponse(), nil
}

// =========================================
// 图片
// =========================================

func (h *ItemHandler) AddImage(ctx context.Context, req *catalogv1.AddImageRequest) (*catalogv1.Image, error) {
	if err := requireID(req.ItemId); err != nil {
		return nil, err
	}
	img, err := h.items.AddImage(ctx, req.ItemId, req.Url, req.Alt)
	if err != nil {
		return nil, err
	}
	return toImageMessage(img), nil
}

func (h *ItemHandler) RemoveImage(ctx context.Context, req *catalogv1.IDRequest) (*catalogv1.StatusResponse, error) {
	if err := requireID(req.Id); err != nil {
		return nil, err
	}
	if err := h.items.RemoveImage(ctx, req.Id); err != nil {
		return nil, err
	}
	return okResponse(), nil
}

func (h *ItemHandler) ChangeImagePosition(ctx context.Context, req *catalogv1.ChangePositionRequest) (*catalogv1.Image, error) {
	if err := requireID(req.Id); err != nil {
		return nil, err
	}
	img, err := h.items.ChangeImagePosition(ctx, req.Id, int(req.SortOrder))
	if err != nil {
		return nil, err
	}
	return toImageMessage(img), nil
}

// =========================================
// 规格与价格
// =========================================

func (h *ItemHandler) AddVariant(ctx context.Context, req *catalogv1.AddVariantRequest) (*catalogv1.Variant, error) {
	if err := requireID(req.ItemId); err != nil {
		return nil, err
	}
	if err := requireID(req.AttributeId); err != nil {
		return nil, err
	}
	v, err := h.items.AddVariant(ctx, req.ItemId, req.AttributeId, catalog.LanguageFromCode(req.Language), req.Value)
	if err != nil {
		return nil, err
	}
	return toVariantMessage(v), nil
}

func (h *ItemHandler) RemoveVariant(ctx context.Context, req *catalogv1.IDRequest) (*catalogv1.StatusResponse, error) {
	if err := requireID(req.Id); err != nil {
		return nil, err
	}
	if err := h.items.RemoveVariant(ctx, req.Id); err != nil {
		return nil, err
	}
	return okResponse(), nil
}

func (h *ItemHandler) UpsertVariantTranslation(ctx context.Context, req *catalogv1.UpsertVariantTranslationRequest) (*catalogv1.IDResponse, error) {
	if err := requireID(req.VariantId); err != nil {
		return nil, err
	}
	id, err := h.items.UpsertVariantTranslation(ctx, req.VariantId, catalog.LanguageFromCode(req.Language), req.Value)
	if err != nil {
		return nil, err
	}
	return &catalogv1.IDResponse{Id: id}, nil
}

func (h *ItemHandler) AddVariantPrice(ctx context.Context, req *catalogv1.AddVariantPriceRequest) (*catalogv1.Price, error) {
	if err := requireID(req.VariantId); err != nil {
		return nil, err
	}
	price, err := toPriceRequest(req.Type, req.Value, req.Currency)
	if err != nil {
		return nil, err
	}
	p, err := h.items.AddVariantPrice(ctx, req.VariantId, price)
	if err != nil {
		return nil, err
	}
	return toPriceMessage(p), nil
}

func (h *ItemHandler) RemoveVariantPrice(ctx context.Context, req *catalogv1.IDRequest) (*catalogv1.StatusResponse, error) {
	if err := requireID(req.Id); err != nil {
		return nil, err
	}
	if err := h.items.RemoveVariantPrice(ctx, req.Id); err != nil {
		return nil, err
	}
	return okResponse(), nil
}

func (h *ItemHandler) AddBasePrice(ctx context.Context, req *catalogv1.AddBasePriceRequest) (*catalogv1.Price, error) {
	if err := requireID(req.ItemId); err != nil {
		return nil, err
	}
	price, err := toPriceRequest(req.Type, req.Value, req.Currency)
	if err != nil {
		return nil, err
	}
	p, err := h.items.AddBasePrice(ctx, req.ItemId, price)
	if err != nil {
		return nil, err
	}
	return toPriceMessage(p), nil
}

func (h *ItemHandler) RemoveBasePrice(ctx context.Context, req *catalogv1.IDRequest) (*catalogv1.StatusResponse, error) {
	if err := requireID(req.Id); err != nil {
		return nil, err
	}
	if err := h.items.RemoveBasePrice(ctx, req.Id); err != nil {
		return nil, err
	}
	return okResponse(), nil
}
