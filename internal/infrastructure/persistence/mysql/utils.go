package mysql

import (
	"errors"
	"strings"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/xiebiao/storecatalog/internal/domain/ordering"
	apperrors "github.com/xiebiao/storecatalog/pkg/errors"
)

// MySQL错误码
const (
	errDuplicateEntry  = 1062
	errLockWaitTimeout = 1205
	errDeadlock        = 1213
	errRowIsReferenced = 1451
	errNoReferencedRow = 1452
)

// isDuplicateError 判断是否为唯一索引冲突
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysqldriver.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == errDuplicateEntry
	}
	return strings.Contains(err.Error(), "Duplicate entry")
}

// isConcurrencyConflict 判断是否为死锁或锁等待超时
func isConcurrencyConflict(err error) bool {
	var myErr *mysqldriver.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == errDeadlock || myErr.Number == errLockWaitTimeout
	}
	return false
}

// isForeignKeyError 判断是否为外键约束失败（引用的父行不存在）
func isForeignKeyError(err error) bool {
	var myErr *mysqldriver.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == errNoReferencedRow || myErr.Number == errRowIsReferenced
	}
	return false
}

// wrapDBError 把数据库错误转换为业务错误
// 并发冲突统一映射为ordering.ErrConcurrencyConflict，调用方可重试
func wrapDBError(err error, message string) error {
	if isConcurrencyConflict(err) {
		return ordering.ErrConcurrencyConflict.WithCause(err)
	}
	return apperrors.ErrDatabaseError.WithMessage(message).WithCause(err)
}
