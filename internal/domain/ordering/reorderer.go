package ordering

import (
	"context"
	"sort"
)

// SiblingStore 兄弟组的持久化接口
// 由infrastructure层实现，一个实现对应一种兄弟组（表 + 父字段）
type SiblingStore interface {
	// LoadSiblingGroup 在当前事务内锁定并读取parentID下的全部成员
	// 锁的范围是整个组：同一父节点下的并发操作会在这里串行化
	LoadSiblingGroup(ctx context.Context, parentID string) ([]Sibling, error)

	// ApplyPositionUpdates 批量写入位置变更（一条UPDATE语句）
	ApplyPositionUpdates(ctx context.Context, updates []Update) error
}

// Transactor 事务执行器
// mysql.TxManager实现了该接口
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Reorderer 兄弟组操作编排器
// 所有操作都是"加锁读组 → 计算 → 批量写"，且在同一个事务中完成
// 遇到并发冲突直接返回ErrConcurrencyConflict，不做重试
type Reorderer struct {
	store SiblingStore
	tx    Transactor
}

// NewReorderer 创建编排器
func NewReorderer(store SiblingStore, tx Transactor) *Reorderer {
	return &Reorderer{store: store, tx: tx}
}

// Append 在组末尾插入新成员
// insert在同一事务中执行，收到的position为max+1
func (r *Reorderer) Append(ctx context.Context, parentID string, insert func(ctx context.Context, position int) error) (int, error) {
	var position int
	err := r.tx.Transaction(ctx, func(ctx context.Context) error {
		group, err := r.store.LoadSiblingGroup(ctx, parentID)
		if err != nil {
			return err
		}

		position = NextPosition(group)
		return insert(ctx, position)
	})
	if err != nil {
		return 0, err
	}
	return position, nil
}

// Remove 删除成员并前移其后的兄弟
// remove负责删除行本身，在同一事务中执行
func (r *Reorderer) Remove(ctx context.Context, parentID, id string, remove func(ctx context.Context) error) ([]Update, error) {
	var updates []Update
	err := r.tx.Transaction(ctx, func(ctx context.Context) error {
		group, err := r.store.LoadSiblingGroup(ctx, parentID)
		if err != nil {
			return err
		}

		updates, err = PlanDeletion(group, id)
		if err != nil {
			return err
		}

		if err := remove(ctx); err != nil {
			return err
		}
		return r.apply(ctx, updates)
	})
	if err != nil {
		return nil, err
	}
	return updates, nil
}

// Move 把成员移动到target位置
// target等于当前位置时不写库，返回空列表
func (r *Reorderer) Move(ctx context.Context, parentID, id string, target int) ([]Update, error) {
	var updates []Update
	err := r.tx.Transaction(ctx, func(ctx context.Context) error {
		group, err := r.store.LoadSiblingGroup(ctx, parentID)
		if err != nil {
			return err
		}

		updates, err = PlanMove(group, id, target)
		if err != nil {
			return err
		}
		return r.apply(ctx, updates)
	})
	if err != nil {
		return nil, err
	}
	return updates, nil
}

// Transfer 把成员从fromParent组移到toParent组末尾
//
// 两个组按parentID字典序加锁，避免两个反向的Transfer互相等待。
// relink负责改写成员的父字段和位置，收到的position是目标组的max+1。
// 原组中位于成员之后的兄弟各前移一位，这些变更作为closing返回。
func (r *Reorderer) Transfer(ctx context.Context, fromParent, toParent, id string, relink func(ctx context.Context, position int) error) (int, []Update, error) {
	if fromParent == toParent {
		return 0, nil, ErrSameGroup
	}

	var (
		position int
		closing  []Update
	)
	err := r.tx.Transaction(ctx, func(ctx context.Context) error {
		groups := make(map[string][]Sibling, 2)
		parents := []string{fromParent, toParent}
		sort.Strings(parents)
		for _, parentID := range parents {
			group, err := r.store.LoadSiblingGroup(ctx, parentID)
			if err != nil {
				return err
			}
			groups[parentID] = group
		}

		var err error
		closing, err = PlanDeletion(groups[fromParent], id)
		if err != nil {
			return err
		}

		position = NextPosition(groups[toParent])
		if err := relink(ctx, position); err != nil {
			return err
		}
		return r.apply(ctx, closing)
	})
	if err != nil {
		return 0, nil, err
	}
	return position, closing, nil
}

func (r *Reorderer) apply(ctx context.Context, updates []Update) error {
	if len(updates) == 0 {
		return nil
	}
	return r.store.ApplyPositionUpdates(ctx, updates)
}
