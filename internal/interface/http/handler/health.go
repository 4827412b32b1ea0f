package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apphealth "github.com/xiebiao/storecatalog/internal/application/health"
	"github.com/xiebiao/storecatalog/internal/interface/http/dto"
	"github.com/xiebiao/storecatalog/pkg/response"
)

// HealthHandler 存活与依赖检查
type HealthHandler struct {
	health *apphealth.Service
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(health *apphealth.Service) *HealthHandler {
	return &HealthHandler{health: health}
}

// Ping 存活检查
// @Summary      存活检查
// @Tags         健康检查
// @Produce      json
// @Success      200 {object} response.Response{data=dto.PingResponse}
// @Router       /ping [get]
func (h *HealthHandler) Ping(c *gin.Context) {
	response.Success(c, dto.PingResponse{Message: "pong", Status: "healthy"})
}

// Health 依赖检查，任一依赖异常返回503
// @Summary      依赖检查
// @Tags         健康检查
// @Produce      json
// @Success      200 {object} response.Response{data=dto.HealthResponse}
// @Failure      503 {object} response.Response{data=dto.HealthResponse}
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()
	app := h.health.App(ctx)
	healthy, conns := h.health.Healthy(ctx)

	resp := dto.HealthResponse{
		Serving:     app.Serving,
		Message:     app.Message,
		Connections: make([]dto.Connection, len(conns)),
	}
	for i, conn := range conns {
		resp.Connections[i] = dto.Connection{
			Name:      conn.Name,
			Healthy:   conn.Healthy,
			Message:   conn.Message,
			LatencyMs: conn.LatencyMs,
		}
	}

	if !healthy {
		c.JSON(http.StatusServiceUnavailable, response.Response{
			Code:    http.StatusServiceUnavailable,
			Message: "依赖不可用",
			Data:    resp,
		})
		return
	}
	response.Success(c, resp)
}
