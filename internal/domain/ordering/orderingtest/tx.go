// Package orderingtest 排序引擎的测试替身
package orderingtest

import (
	"context"
	"sync"
)

type txKey struct{}

// Tx 串行执行事务函数的Transactor，不做回滚
// 嵌套调用直接复用外层事务，与mysql.TxManager行为一致
type Tx struct {
	mu    sync.Mutex
	Calls int
}

func (t *Tx) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.Calls++
	return fn(context.WithValue(ctx, txKey{}, true))
}
