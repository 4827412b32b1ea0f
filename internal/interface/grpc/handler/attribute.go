package handler

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/storecatalog/api/catalogv1"
	appattribute "github.com/xiebiao/storecatalog/internal/application/attribute"
	"github.com/xiebiao/storecatalog/internal/domain/catalog"
	"github.com/xiebiao/storecatalog/pkg/logger"
)

// AttributeHandler 属性服务gRPC实现
type AttributeHandler struct {
	catalogv1.UnimplementedAttributeServiceServer
	attributes *appattribute.Service
	logger     *zap.Logger
}

// NewAttributeHandler 创建属性Handler
func NewAttributeHandler(attributes *appattribute.Service, logger *zap.Logger) *AttributeHandler {
	return &AttributeHandler{attributes: attributes, logger: logger}
}

func (h *AttributeHandler) GetAttribute(ctx context.Context, req *catalogv1.IDRequest) (*catalogv1.Attribute, error) {
	if err := requireID(req.Id); err != nil {
		return nil, err
	}
	a, err := h.attributes.GetByID(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return toAttributeMessage(a), nil
}

func (h *AttributeHandler) ListAttributes(ctx context.Context, req *catalogv1.ListAttributesRequest) (*catalogv1.ListAttributesResponse, error) {
	if err := requireID(req.CategoryId); err != nil {
		return nil, err
	}
	attrs, err := h.attributes.ListByCategory(ctx, req.CategoryId)
	if err != nil {
		return nil, err
	}

	resp := &catalogv1.ListAttributesResponse{Attributes: make([]catalogv1.Attribute, len(attrs))}
	for i, a := range attrs {
		resp.Attributes[i] = *toAttributeMessage(a)
	}
	return resp, nil
}

func (h *AttributeHandler) CreateAttribute(ctx context.Context, req *catalogv1.CreateAttributeRequest) (*catalogv1.IDResponse, error) {
	if err := requireID(req.CategoryId); err != nil {
		return nil, err
	}
	a, err := h.attributes.Create(ctx, req.CategoryId, req.Slug)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx, h.logger).Debug("属性已创建",
		zap.String("attribute_id", a.ID),
		zap.String("category_id", a.CategoryID),
		zap.Int("sort_order", a.SortOrder))
	return &catalogv1.IDResponse{Id: a.ID}, nil
}

func (h *AttributeHandler) UpdateAttribute(ctx context.Context, req *catalogv1.UpdateAttributeRequest) (*catalogv1.IDResponse, error) {
	if err := requireID(req.Id); err != nil {
		return nil, err
	}
	a, err := h.attributes.Update(ctx, req.Id, req.Slug)
	if err != nil {
		return nil, err
	}
	return &catalogv1.IDResponse{Id: a.ID}, nil
}

func (h *AttributeHandler) DeleteAttribute(ctx context.Context, req *catalogv1.IDRequest) (*catalogv1.StatusResponse, error) {
	if err := requireID(req.Id); err != nil {
		return nil, err
	}
	if err := h.attributes.Delete(ctx, req.Id); err != nil {
		return nil, err
	}
	return okResponse(), nil
}

func (h *AttributeHandler) ChangeAttributePosition(ctx context.Context, req *catalogv1.ChangePositionRequest) (*catalogv1.Attribute, error) {
	if err := requireID(req.Id); err != nil {
		return nil, err
	}
	a, err := h.attributes.ChangePosition(ctx, req.Id, int(req.SortOrder))
	if err != nil {
		return nil, err
	}
	return toAttributeMessage(a), nil
}

func (h *AttributeHandler) UpsertAttributeTranslation(ctx context.Context, req *catalogv1.UpsertAttributeTranslationRequest) (*catalogv1.IDResponse, error) {
	if err := requireID(req.AttributeId); err != nil {
		return nil, err
	}
	id, err := h.attributes.UpsertTranslation(ctx, req.AttributeId, catalog.LanguageFromCode(req.Language), req.Name)
	if err != nil {
		return nil, err
	}
	return &catalogv1.IDResponse{Id: id}, nil
}

func (h *AttributeHandler) DeleteAttributeTranslation(ctx context.Context, req *catalogv1.IDRequest) (*catalogv1.StatusResponse, error) {
	if err := requireID(req.Id); err != nil {
		return nil, err
	}
	if err := h.attributes.DeleteTranslation(ctx, req.Id); err != nil {
		return nil, err
	}
	return okResponse(), nil
}
