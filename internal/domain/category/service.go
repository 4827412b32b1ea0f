package category

import (
	"context"
	"errors"

	"github.com/xiebiao/storecatalog/internal/domain/catalog"
	"github.com/xiebiao/storecatalog/internal/domain/ordering"
)

// RootGroup 店铺根分组的父键（分类没有父实体）
const RootGroup = ""

// Service 分类领域服务接口
// 设计说明:
// 1. 所有影响sort_order的操作都经过ordering.Reorderer
// 2. 位置变更列表原样返回，应用层据此发布事件
type Service interface {
	// Create 创建分类并追加到末尾
	Create(ctx context.Context, slug string, isAvailable bool) (*Category, error)

	// Get 根据ID获取分类
	Get(ctx context.Context, id string) (*Category, error)

	// GetBySlug 根据slug获取分类
	GetBySlug(ctx context.Context, slug string) (*Category, error)

	// List 按位置返回全部分类
	List(ctx context.Context) ([]*Category, error)

	// Update 修改slug或上下架状态
	Update(ctx context.Context, id string, params UpdateParams) (*Category, error)

	// Delete 删除分类并收拢其后的兄弟
	Delete(ctx context.Context, id string) ([]ordering.Update, error)

	// ChangePosition 移动分类到指定位置(1..N)
	ChangePosition(ctx context.Context, id string, position int) (*Category, []ordering.Update, error)

	// UpsertTranslation 新增或覆盖某语言的翻译
	UpsertTranslation(ctx context.Context, categoryID string, lang catalog.Language, title, description string) error

	// DeleteTranslation 删除翻译
	DeleteTranslation(ctx context.Context, id string) error
}

// UpdateParams 可选更新字段，nil表示不修改
type UpdateParams struct {
	Slug        *string
	IsAvailable *bool
}

type service struct {
	repo      Repository
	reorderer *ordering.Reorderer
}

// NewService 创建分类领域服务
func NewService(repo Repository, reorderer *ordering.Reorderer) Service {
	return &service{repo: repo, reorderer: reorderer}
}

func (s *service) Create(ctx context.Context, slug string, isAvailable bool) (*Category, error) {
	c, err := NewCategory(slug, isAvailable)
	if err != nil {
		return nil, err
	}

	_, err = s.reorderer.Append(ctx, RootGroup, func(ctx context.Context, position int) error {
		c.SortOrder = position
		return s.repo.Create(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Get(ctx context.Context, id string) (*Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*Category, error) {
	return s.repo.FindBySlug(ctx, slug)
}

func (s *service) List(ctx context.Context) ([]*Category, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, id string, params UpdateParams) (*Category, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Slug != nil {
		if err := c.Rename(*params.Slug); err != nil {
			return nil, err
		}
	}
	if params.IsAvailable != nil {
		c.SetAvailable(*params.IsAvailable)
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, id string) ([]ordering.Update, error) {
	updates, err := s.reorderer.Remove(ctx, RootGroup, id, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
	if err != nil {
		return nil, notFound(err)
	}
	return updates, nil
}

func (s *service) ChangePosition(ctx context.Context, id string, position int) (*Category, []ordering.Update, error) {
	updates, err := s.reorderer.Move(ctx, RootGroup, id, position)
	if err != nil {
		return nil, nil, notFound(err)
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return c, updates, nil
}

func (s *service) UpsertTranslation(ctx context.Context, categoryID string, lang catalog.Language, title, description string) error {
	if _, err := s.repo.FindByID(ctx, categoryID); err != nil {
		return err
	}

	t, err := NewTranslation(categoryID, lang, title, description)
	if err != nil {
		return err
	}
	return s.repo.UpsertTranslation(ctx, t)
}

func (s *service) DeleteTranslation(ctx context.Context, id string) error {
	return s.repo.DeleteTranslation(ctx, id)
}

// notFound 将排序引擎的"成员不存在"转换为分类不存在
func notFound(err error) error {
	if errors.Is(err, ordering.ErrNotFound) {
		return ErrCategoryNotFound
	}
	return err
}
