package mysql

import (
	"context"

	"gorm.io/gorm"
)

// HealthChecker 数据库连通性检查
type HealthChecker struct {
	db *gorm.DB
}

// NewHealthChecker 创建数据库健康检查
func NewHealthChecker(db *gorm.DB) *HealthChecker {
	return &HealthChecker{db: db}
}

func (h *HealthChecker) Name() string { return "mysql" }

// Check 执行SELECT 1
func (h *HealthChecker) Check(ctx context.Context) error {
	var one int
	return h.db.WithContext(ctx).Raw("SELECT 1").Scan(&one).Error
}
