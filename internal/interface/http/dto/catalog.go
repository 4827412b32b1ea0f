package dto

// ChangePositionRequest 调整排序请求
// sort_order为目标位置(1..N)，越界由排序引擎返回"排序位置必须在1到N之间"
type ChangePositionRequest struct {
	SortOrder *int `json:"sort_order" binding:"required" example:"2"`
}

// PingResponse 存活检查
type PingResponse struct {
	Message string `json:"message" example:"pong"`
	Status  string `json:"status" example:"healthy"`
}

// HealthResponse 依赖检查结果
type HealthResponse struct {
	Serving     bool         `json:"serving"`
	Message     string       `json:"message"`
	Connections []Connection `json:"connections"`
}

// Connection 单个依赖
type Connection struct {
	Name      string `json:"name" example:"mysql"`
	Healthy   bool   `json:"healthy"`
	Message   string `json:"message" example:"ok"`
	LatencyMs int64  `json:"latency_ms" example:"2"`
}
