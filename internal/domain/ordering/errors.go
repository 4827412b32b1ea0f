package ordering

import (
	apperrors "github.com/xiebiao/storecatalog/pkg/errors"
)

// 排序引擎错误定义
var (
	// ErrNotFound 组内不存在该成员
	ErrNotFound = apperrors.New(apperrors.ErrCodeNotFound, "排序对象不存在")

	// ErrParentNotFound 兄弟组的父节点不存在（加锁时发现）
	ErrParentNotFound = apperrors.New(apperrors.ErrCodeParentNotFound, "父节点不存在")

	// ErrInvalidPosition 目标位置越界
	// 具体错误由NewInvalidPositionError生成，带上组大小
	ErrInvalidPosition = apperrors.New(apperrors.ErrCodeInvalidPosition, "排序位置越界")

	// ErrConcurrencyConflict 存储层检测到死锁或锁等待超时
	// 引擎不做重试，由调用方决定
	ErrConcurrencyConflict = apperrors.ErrConcurrencyConflict

	// ErrSameGroup Transfer的源组和目标组相同
	ErrSameGroup = apperrors.New(apperrors.ErrCodeInvalidParams, "源分组与目标分组相同")
)

// NewInvalidPositionError 生成"位置必须在1到N之间"的错误
func NewInvalidPositionError(n int) error {
	return apperrors.Newf(apperrors.ErrCodeInvalidPosition, "排序位置必须在1到%d之间", n)
}
