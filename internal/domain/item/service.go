package item

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/xiebiao/storecatalog/internal/domain/catalog"
	"github.com/xiebiao/storecatalog/internal/domain/category"
	"github.com/xiebiao/storecatalog/internal/domain/ordering"
)

// Service 商品领域服务接口
// 兄弟组的父键是CategoryID
type Service interface {
	// Create 创建商品并追加到分类末尾
	Create(ctx context.Context, params CreateParams) (*Item, error)

	// Get 获取完整商品聚合
	Get(ctx context.Context, id string) (*Item, error)

	// ListByCategory 按位置返回分类下的商品
	ListByCategory(ctx context.Context, categoryID string) ([]*Item, error)

	// Update 修改商品字段；CategoryID变化时把商品移到新分类末尾并收拢原分类
	// 返回值中的previousCategoryID在未换分类时等于当前分类，shifted为原分类里前移的兄弟
	Update(ctx context.Context, id string, params UpdateParams) (it *Item, previousCategoryID string, shifted []ordering.Update, err error)

	// Delete 删除商品并收拢分类
	Delete(ctx context.Context, id string) (*Item, []ordering.Update, error)

	// ChangePosition 移动商品到分类内指定位置
	ChangePosition(ctx context.Context, id string, position int) (*Item, []ordering.Update, error)

	UpsertTranslation(ctx context.Context, params TranslationParams) error
	DeleteTranslation(ctx context.Context, id string) error
}

// CreateParams 创建参数
type CreateParams struct {
	CategoryID   string
	Slug         string
	Brand        *string
	IsAvailable  bool
	ExpectedDate *time.Time
}

// UpdateParams 可选更新字段，nil表示不修改
type UpdateParams struct {
	Slug         *string
	Brand        *string
	IsAvailable  *bool
	ExpectedDate *time.Time
	CategoryID   *string
}

// TranslationParams 翻译参数
type TranslationParams struct {
	ItemID              string
	Language            catalog.Language
	Title               string
	Description         *string
	DetailedDescription *string
}

type service struct {
	repo      Repository
	reorderer *ordering.Reorderer
	tx        ordering.Transactor
}

// NewService 创建商品领域服务
func NewService(repo Repository, reorderer *ordering.Reorderer, tx ordering.Transactor) Service {
	return &service{repo: repo, reorderer: reorderer, tx: tx}
}

func (s *service) Create(ctx context.Context, params CreateParams) (*Item, error) {
	it, err := NewItem(params.CategoryID, params.Slug, params.Brand, params.IsAvailable, params.ExpectedDate)
	if err != nil {
		return nil, err
	}

	_, err = s.reorderer.Append(ctx, params.CategoryID, func(ctx context.Context, position int) error {
		it.SortOrder = position
		return s.repo.Create(ctx, it)
	})
	if err != nil {
		return nil, mapErr(err)
	}
	return it, nil
}

func (s *service) Get(ctx context.Context, id string) (*Item, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) ListByCategory(ctx context.Context, categoryID string) ([]*Item, error) {
	return s.repo.ListByCategory(ctx, categoryID)
}

func (s *service) Update(ctx context.Context, id string, params UpdateParams) (*Item, string, []ordering.Update, error) {
	var (
		previous string
		shifted  []ordering.Update
	)
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		it, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		previous = it.CategoryID

		if params.Slug != nil {
			if !category.ValidSlug(*params.Slug) {
				return ErrInvalidSlug
			}
			it.Slug = *params.Slug
		}
		if params.Brand != nil {
			it.Brand = normalizeOptional(params.Brand)
		}
		if params.IsAvailable != nil {
			it.IsAvailable = *params.IsAvailable
		}
		if params.ExpectedDate != nil {
			it.ExpectedDate = params.ExpectedDate
		}
		it.UpdatedAt = time.Now()

		// 先锁分类组再写商品行，与Move的加锁顺序一致
		if params.CategoryID != nil && *params.CategoryID != it.CategoryID {
			target := *params.CategoryID
			_, shifted, err = s.reorderer.Transfer(ctx, it.CategoryID, target, id, func(ctx context.Context, position int) error {
				return s.repo.Relocate(ctx, id, target, position)
			})
			if err != nil {
				return err
			}
		}
		return s.repo.Update(ctx, it)
	})
	if err != nil {
		return nil, "", nil, mapErr(err)
	}

	it, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, "", nil, err
	}
	return it, previous, shifted, nil
}

func (s *service) Delete(ctx context.Context, id string) (*Item, []ordering.Update, error) {
	it, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	updates, err := s.reorderer.Remove(ctx, it.CategoryID, id, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
	if err != nil {
		return nil, nil, mapErr(err)
	}
	return it, updates, nil
}

func (s *service) ChangePosition(ctx context.Context, id string, position int) (*Item, []ordering.Update, error) {
	it, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	updates, err := s.reorderer.Move(ctx, it.CategoryID, id, position)
	if err != nil {
		return nil, nil, mapErr(err)
	}

	moved, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return moved, updates, nil
}

func (s *service) UpsertTranslation(ctx context.Context, params TranslationParams) error {
	if params.Title == "" {
		return ErrEmptyTitle
	}
	if _, err := s.repo.FindByID(ctx, params.ItemID); err != nil {
		return err
	}

	return s.repo.UpsertTranslation(ctx, &Translation{
		ID:                  uuid.NewString(),
		ItemID:              params.ItemID,
		Language:            params.Language,
		Title:               params.Title,
		Description:         normalizeOptional(params.Description),
		DetailedDescription: normalizeOptional(params.DetailedDescription),
	})
}

func (s *service) DeleteTranslation(ctx context.Context, id string) error {
	return s.repo.DeleteTranslation(ctx, id)
}

// mapErr 商品兄弟组的父节点是分类
func mapErr(err error) error {
	switch {
	case errors.Is(err, ordering.ErrParentNotFound):
		return category.ErrCategoryNotFound
	case errors.Is(err, ordering.ErrNotFound):
		return ErrItemNotFound
	default:
		return err
	}
}
