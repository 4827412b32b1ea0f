package mysql

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/storecatalog/internal/domain/ordering"
	"github.com/xiebiao/storecatalog/pkg/metrics"
)

// siblingStore ordering.SiblingStore的MySQL实现
// 一个实例对应一种兄弟组：table中parentColumn相同的行构成一组
//
// 加锁方式:
// 1. 有父表时先对父行加排他锁：组为空时也能互斥，父行不存在即ErrParentNotFound
// 2. 再对组内全部行加排他锁读取
// 3. 根分组（分类）没有父行，锁定整表扫描，InnoDB的next-key锁同时挡住并发插入
type siblingStore struct {
	db           *gorm.DB
	group        string // 指标标签
	table        string
	parentColumn string
	parentTable  string
}

// NewCategorySiblingStore 店铺根分组（全部分类）
func NewCategorySiblingStore(db *gorm.DB) ordering.SiblingStore {
	return &siblingStore{db: db, group: "category", table: "category"}
}

// NewAttributeSiblingStore 分类下的属性
func NewAttributeSiblingStore(db *gorm.DB) ordering.SiblingStore {
	return &siblingStore{db: db, group: "attribute", table: "attribute", parentColumn: "category_id", parentTable: "category"}
}

// NewItemSiblingStore 分类下的商品
func NewItemSiblingStore(db *gorm.DB) ordering.SiblingStore {
	return &siblingStore{db: db, group: "item", table: "item", parentColumn: "category_id", parentTable: "category"}
}

// NewImageSiblingStore 商品下的图片
func NewImageSiblingStore(db *gorm.DB) ordering.SiblingStore {
	return &siblingStore{db: db, group: "image", table: "image", parentColumn: "item_id", parentTable: "item"}
}

type siblingRow struct {
	ID        string
	SortOrder int
}

// LoadSiblingGroup 锁定并读取兄弟组，必须在事务中调用
func (s *siblingStore) LoadSiblingGroup(ctx context.Context, parentID string) ([]ordering.Sibling, error) {
	db := getDB(ctx, s.db)

	if s.parentTable != "" {
		var parents []string
		err := db.Table(s.parentTable).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", parentID).
			Pluck("id", &parents).Error
		if err != nil {
			return nil, wrapDBError(err, "锁定父节点失败")
		}
		if len(parents) == 0 {
			return nil, ordering.ErrParentNotFound
		}
	}

	query := db.Table(s.table).Select("id", "sort_order")
	if s.parentColumn != "" {
		query = query.Where(s.parentColumn+" = ?", parentID)
	}

	var rows []siblingRow
	err := query.Order("sort_order").Order("id").
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Find(&rows).Error
	if err != nil {
		return nil, wrapDBError(err, "读取兄弟组失败")
	}

	group := make([]ordering.Sibling, len(rows))
	for i, row := range rows {
		group[i] = ordering.Sibling{ID: row.ID, SortOrder: row.SortOrder}
	}
	return group, nil
}

// ApplyPositionUpdates 一条UPDATE写入全部位置变更
//
//	UPDATE item SET sort_order = CASE id WHEN ? THEN ? WHEN ? THEN ? END WHERE id IN (?, ?)
func (s *siblingStore) ApplyPositionUpdates(ctx context.Context, updates []ordering.Update) error {
	if len(updates) == 0 {
		return nil
	}

	var caseSQL strings.Builder
	caseSQL.WriteString("CASE id")
	args := make([]interface{}, 0, len(updates)*2)
	ids := make([]string, len(updates))
	for i, u := range updates {
		caseSQL.WriteString(" WHEN ? THEN ?")
		args = append(args, u.ID, u.Position)
		ids[i] = u.ID
	}
	caseSQL.WriteString(" END")

	err := getDB(ctx, s.db).Table(s.table).
		Where("id IN ?", ids).
		Update("sort_order", gorm.Expr(caseSQL.String(), args...)).Error
	if err != nil {
		return wrapDBError(err, "更新排序失败")
	}

	metrics.ObserveHistogramVec(metrics.ReorderBatchSize, map[string]string{"group": s.group}, float64(len(updates)))
	return nil
}
