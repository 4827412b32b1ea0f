package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	applog "github.com/xiebiao/storecatalog/pkg/logger"
)

// gormLogger 把GORM日志转到zap
// 请求级logger（带request_id）从context取出，没有时使用构造时传入的logger
type gormLogger struct {
	log           *zap.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

// NewGormLogger 创建GORM日志适配器
func NewGormLogger(log *zap.Logger, slowThreshold time.Duration) logger.Interface {
	return &gormLogger{
		log:           log.WithOptions(zap.AddCallerSkip(3)),
		level:         logger.Warn,
		slowThreshold: slowThreshold,
	}
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *gormLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= logger.Info {
		l.from(ctx).Info(fmt.Sprintf(msg, args...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= logger.Warn {
		l.from(ctx).Warn(fmt.Sprintf(msg, args...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= logger.Error {
		l.from(ctx).Error(fmt.Sprintf(msg, args...))
	}
}

// Trace 每条SQL执行后调用
// 记录未找到不算错误；死锁和锁等待超时按警告记录，由上层映射为并发冲突
func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := []zap.Field{
		zap.Duration("elapsed", elapsed),
		zap.Int64("rows", rows),
		zap.String("sql", sql),
	}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= logger.Error:
		if isConcurrencyConflict(err) {
			l.from(ctx).Warn("SQL并发冲突", append(fields, zap.Error(err))...)
			return
		}
		l.from(ctx).Error("SQL执行失败", append(fields, zap.Error(err))...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		l.from(ctx).Warn("慢查询", append(fields, zap.Duration("threshold", l.slowThreshold))...)
	case l.level >= logger.Info:
		l.from(ctx).Debug("SQL", fields...)
	}
}

func (l *gormLogger) from(ctx context.Context) *zap.Logger {
	return applog.FromContext(ctx, l.log)
}
