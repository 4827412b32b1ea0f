package attribute

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/xiebiao/storecatalog/internal/domain/catalog"
	"github.com/xiebiao/storecatalog/internal/domain/category"
	"github.com/xiebiao/storecatalog/internal/domain/ordering"
)

// Service 属性领域服务
// 兄弟组的父键是CategoryID
type Service interface {
	Create(ctx context.Context, categoryID, slug string) (*Attribute, error)
	Get(ctx context.Context, id string) (*Attribute, error)
	ListByCategory(ctx context.Context, categoryID string) ([]*Attribute, error)
	Rename(ctx context.Context, id, slug string) (*Attribute, error)
	Delete(ctx context.Context, id string) (*Attribute, []ordering.Update, error)
	ChangePosition(ctx context.Context, id string, position int) (*Attribute, []ordering.Update, error)
	UpsertTranslation(ctx context.Context, attributeID string, lang catalog.Language, name string) error
	DeleteTranslation(ctx context.Context, id string) error
}

type service struct {
	repo      Repository
	reorderer *ordering.Reorderer
}

// NewService 创建属性领域服务
func NewService(repo Repository, reorderer *ordering.Reorderer) Service {
	return &service{repo: repo, reorderer: reorderer}
}

func (s *service) Create(ctx context.Context, categoryID, slug string) (*Attribute, error) {
	a, err := NewAttribute(categoryID, slug)
	if err != nil {
		return nil, err
	}

	_, err = s.reorderer.Append(ctx, categoryID, func(ctx context.Context, position int) error {
		a.SortOrder = position
		return s.repo.Create(ctx, a)
	})
	if err != nil {
		return nil, mapErr(err)
	}
	return a, nil
}

func (s *service) Get(ctx context.Context, id string) (*Attribute, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) ListByCategory(ctx context.Context, categoryID string) ([]*Attribute, error) {
	return s.repo.ListByCategory(ctx, categoryID)
}

func (s *service) Rename(ctx context.Context, id, slug string) (*Attribute, error) {
	if !category.ValidSlug(slug) {
		return nil, ErrInvalidSlug
	}

	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	a.Slug = slug
	a.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) Delete(ctx context.Context, id string) (*Attribute, []ordering.Update, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	updates, err := s.reorderer.Remove(ctx, a.CategoryID, id, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
	if err != nil {
		return nil, nil, mapErr(err)
	}
	return a, updates, nil
}

func (s *service) ChangePosition(ctx context.Context, id string, position int) (*Attribute, []ordering.Update, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	updates, err := s.reorderer.Move(ctx, a.CategoryID, id, position)
	if err != nil {
		return nil, nil, mapErr(err)
	}

	moved, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return moved, updates, nil
}

func (s *service) UpsertTranslation(ctx context.Context, attributeID string, lang catalog.Language, name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if _, err := s.repo.FindByID(ctx, attributeID); err != nil {
		return err
	}

	return s.repo.UpsertTranslation(ctx, &Translation{
		ID:          uuid.NewString(),
		AttributeID: attributeID,
		Language:    lang,
		Name:        name,
	})
}

func (s *service) DeleteTranslation(ctx context.Context, id string) error {
	return s.repo.DeleteTranslation(ctx, id)
}

// mapErr 把排序引擎错误转换为属性领域错误
// 父节点不存在即分类不存在；读到属性之后被并发删除则视为属性不存在
func mapErr(err error) error {
	switch {
	case errors.Is(err, ordering.ErrParentNotFound):
		return category.ErrCategoryNotFound
	case errors.Is(err, ordering.ErrNotFound):
		return ErrAttributeNotFound
	default:
		return err
	}
}
