// Package ordering 维护同级实体的稠密排序
//
// 一个"兄弟组"是共享同一父节点的实体集合（店铺下的分类、分类下的属性、
// 分类下的商品、商品下的图片）。组内每个实体的sort_order都是1..N的一个排列，
// 任何创建、删除、移动操作完成后依然保持这一点。
//
// 本文件只包含纯函数：输入组快照，输出需要落库的(id, 新位置)列表。
// 加锁、事务与写库由Reorderer和SiblingStore负责。
package ordering

import (
	"sort"
)

// Positioned 可排序实体
type Positioned interface {
	PositionID() string
	Position() int
}

// Sibling 兄弟组快照中的一行
type Sibling struct {
	ID        string
	SortOrder int
}

func (s Sibling) PositionID() string { return s.ID }
func (s Sibling) Position() int      { return s.SortOrder }

// Update 一条位置变更
type Update struct {
	ID       string `json:"id"`
	Position int    `json:"position"`
}

// NextPosition 新成员追加到末尾时应获得的位置
// 基于当前最大值而不是数量，组内若出现空洞也不会产生重复位置
func NextPosition[T Positioned](group []T) int {
	maxPos := 0
	for _, e := range group {
		if e.Position() > maxPos {
			maxPos = e.Position()
		}
	}
	return maxPos + 1
}

// PlanDeletion 计算删除某个成员后需要前移的兄弟
// 位置大于被删成员的兄弟各自减1，其余不变
func PlanDeletion[T Positioned](group []T, removedID string) ([]Update, error) {
	removed, ok := find(group, removedID)
	if !ok {
		return nil, ErrNotFound
	}

	p := removed.Position()
	updates := make([]Update, 0, len(group))
	for _, e := range group {
		if e.PositionID() == removedID {
			continue
		}
		if e.Position() > p {
			updates = append(updates, Update{ID: e.PositionID(), Position: e.Position() - 1})
		}
	}
	return sortUpdates(updates), nil
}

// PlanMove 计算把成员移动到target位置所需的全部变更
//
// 规则：
//   - target必须在[1, N]内，否则返回ErrInvalidPosition
//   - 成员不在组内返回ErrNotFound
//   - target等于当前位置时返回空列表
//   - 后移（current < target）：(current, target]区间的兄弟各减1
//   - 前移（target < current）：[target, current)区间的兄弟各加1
//   - 被移动成员设为target，位置未变的成员不出现在结果中
func PlanMove[T Positioned](group []T, movedID string, target int) ([]Update, error) {
	n := len(group)
	if target < 1 || target > n {
		return nil, NewInvalidPositionError(n)
	}

	moved, ok := find(group, movedID)
	if !ok {
		return nil, ErrNotFound
	}

	current := moved.Position()
	if current == target {
		return []Update{}, nil
	}

	updates := make([]Update, 0, n)
	for _, e := range group {
		id, pos := e.PositionID(), e.Position()
		if id == movedID {
			continue
		}

		next := pos
		if current < target && pos > current && pos <= target {
			next = pos - 1
		} else if target < current && pos >= target && pos < current {
			next = pos + 1
		}

		if next != pos {
			updates = append(updates, Update{ID: id, Position: next})
		}
	}
	updates = append(updates, Update{ID: movedID, Position: target})

	return sortUpdates(updates), nil
}

// Apply 将变更应用到组快照上，返回新的快照（按位置排序）
// 不在updates中的成员保持原位置
func Apply[T Positioned](group []T, updates []Update) []Sibling {
	next := make(map[string]int, len(updates))
	for _, u := range updates {
		next[u.ID] = u.Position
	}

	out := make([]Sibling, 0, len(group))
	for _, e := range group {
		pos := e.Position()
		if p, ok := next[e.PositionID()]; ok {
			pos = p
		}
		out = append(out, Sibling{ID: e.PositionID(), SortOrder: pos})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out
}

// Without 返回去掉某个成员后的快照
func Without[T Positioned](group []T, id string) []Sibling {
	out := make([]Sibling, 0, len(group))
	for _, e := range group {
		if e.PositionID() != id {
			out = append(out, Sibling{ID: e.PositionID(), SortOrder: e.Position()})
		}
	}
	return out
}

// IsDense 判断位置集合是否恰好是1..N的排列
func IsDense[T Positioned](group []T) bool {
	seen := make([]bool, len(group)+1)
	for _, e := range group {
		p := e.Position()
		if p < 1 || p > len(group) || seen[p] {
			return false
		}
		seen[p] = true
	}
	return true
}

func find[T Positioned](group []T, id string) (T, bool) {
	for _, e := range group {
		if e.PositionID() == id {
			return e, true
		}
	}
	var zero T
	return zero, false
}

// sortUpdates 按新位置排序，便于日志阅读和测试断言
func sortUpdates(updates []Update) []Update {
	sort.Slice(updates, func(i, j int) bool {
		if updates[i].Position != updates[j].Position {
			return updates[i].Position < updates[j].Position
		}
		return updates[i].ID < updates[j].ID
	})
	return updates
}
