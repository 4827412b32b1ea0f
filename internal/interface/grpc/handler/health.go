package handler

import (
	"context"

	"github.com/xiebiao/storecatalog/api/catalogv1"
	apphealth "github.com/xiebiao/storecatalog/internal/application/health"
)

// HealthHandler 应用和依赖的健康明细
type HealthHandler struct {
	catalogv1.UnimplementedHealthServiceServer
	health *apphealth.Service
}

// NewHealthHandler 创建健康检查Handler
func NewHealthHandler(health *apphealth.Service) *HealthHandler {
	return &HealthHandler{health: health}
}

func (h *HealthHandler) CheckAppHealth(ctx context.Context, _ *catalogv1.Empty) (*catalogv1.AppHealthResponse, error) {
	s := h.health.App(ctx)
	return &catalogv1.AppHealthResponse{Serving: s.Serving, Message: s.Message}, nil
}

// CheckAppConnections 依赖不健康也返回OK，由调用方看明细
func (h *HealthHandler) CheckAppConnections(ctx context.Context, _ *catalogv1.Empty) (*catalogv1.ConnectionsResponse, error) {
	conns := h.health.Connections(ctx)
	resp := &catalogv1.ConnectionsResponse{Connections: make([]catalogv1.Connection, len(conns))}
	for i, c := range conns {
		resp.Connections[i] = catalogv1.Connection{
			Name:      c.Name,
			Healthy:   c.Healthy,
			Message:   c.Message,
			LatencyMs: c.LatencyMs,
		}
	}
	return resp, nil
}
