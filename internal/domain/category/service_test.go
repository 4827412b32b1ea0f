package category

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/storecatalog/internal/domain/catalog"
	"github.com/xiebiao/storecatalog/internal/domain/ordering"
	"github.com/xiebiao/storecatalog/internal/domain/ordering/orderingtest"
)

// fakeRepo 内存仓储，同时充当分类兄弟组的SiblingStore
type fakeRepo struct {
	items map[string]*Category
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: map[string]*Category{}}
}

func (r *fakeRepo) Create(ctx context.Context, c *Category) error {
	for _, existing := range r.items {
		if existing.Slug == c.Slug {
			return ErrSlugDuplicate
		}
	}
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeRepo) FindByID(ctx context.Context, id string) (*Category, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, ErrCategoryNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeRepo) FindBySlug(ctx context.Context, slug string) (*Category, error) {
	for _, c := range r.items {
		if c.Slug == slug {
			cp := *c
			return &cp, nil
		}
	}
	return nil, ErrCategoryNotFound
}

func (r *fakeRepo) List(ctx context.Context) ([]*Category, error) {
	out := make([]*Category, 0, len(r.items))
	for _, c := range r.items {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (r *fakeRepo) Update(ctx context.Context, c *Category) error {
	existing, ok := r.items[c.ID]
	if !ok {
		return ErrCategoryNotFound
	}
	existing.Slug = c.Slug
	existing.IsAvailable = c.IsAvailable
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeRepo) UpsertTranslation(ctx context.Context, t *Translation) error {
	c := r.items[t.CategoryID]
	for i := range c.Translations {
		if c.Translations[i].Language == t.Language {
			c.Translations[i].Title = t.Title
			c.Translations[i].Description = t.Description
			return nil
		}
	}
	c.Translations = append(c.Translations, *t)
	return nil
}

func (r *fakeRepo) DeleteTranslation(ctx context.Context, id string) error {
	for _, c := range r.items {
		for i, t := range c.Translations {
			if t.ID == id {
				c.Translations = append(c.Translations[:i], c.Translations[i+1:]...)
				return nil
			}
		}
	}
	return ErrTranslationNotFound
}

func (r *fakeRepo) LoadSiblingGroup(ctx context.Context, parentID string) ([]ordering.Sibling, error) {
	out := make([]ordering.Sibling, 0, len(r.items))
	for _, c := range r.items {
		out = append(out, ordering.Sibling{ID: c.ID, SortOrder: c.SortOrder})
	}
	return out, nil
}

func (r *fakeRepo) ApplyPositionUpdates(ctx context.Context, updates []ordering.Update) error {
	for _, u := range updates {
		r.items[u.ID].SortOrder = u.Position
	}
	return nil
}

func newTestService() (Service, *fakeRepo) {
	repo := newFakeRepo()
	return NewService(repo, ordering.NewReorderer(repo, &orderingtest.Tx{})), repo
}

func slugsInOrder(t *testing.T, svc Service) []string {
	list, err := svc.List(context.Background())
	require.NoError(t, err)
	out := make([]string, len(list))
	for i, c := range list {
		out[i] = c.Slug
	}
	return out
}

func TestService_Create(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	t.Run("依次追加到末尾", func(t *testing.T) {
		for i, slug := range []string{"phones", "laptops", "tablets"} {
			c, err := svc.Create(ctx, slug, true)
			require.NoError(t, err)
			assert.Equal(t, i+1, c.SortOrder)
			assert.Len(t, c.ID, 36)
		}
	})

	t.Run("slug格式非法", func(t *testing.T) {
		_, err := svc.Create(ctx, "Bad Slug", true)
		assert.ErrorIs(t, err, ErrInvalidSlug)
	})

	t.Run("slug重复", func(t *testing.T) {
		_, err := svc.Create(ctx, "phones", true)
		assert.ErrorIs(t, err, ErrSlugDuplicate)
	})
}

func TestService_ChangePosition(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	ids := map[string]string{}
	for _, slug := range []string{"a", "b", "c", "d", "e"} {
		c, err := svc.Create(ctx, slug, true)
		require.NoError(t, err)
		ids[slug] = c.ID
	}

	moved, updates, err := svc.ChangePosition(ctx, ids["a"], 4)
	require.NoError(t, err)
	assert.Equal(t, 4, moved.SortOrder)
	assert.Len(t, updates, 4)
	assert.Equal(t, []string{"b", "c", "d", "a", "e"}, slugsInOrder(t, svc))

	t.Run("越界", func(t *testing.T) {
		_, _, err := svc.ChangePosition(ctx, ids["a"], 6)
		assert.ErrorIs(t, err, ordering.ErrInvalidPosition)
	})

	t.Run("分类不存在", func(t *testing.T) {
		_, _, err := svc.ChangePosition(ctx, "missing", 1)
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	var first string
	for i, slug := range []string{"a", "b", "c"} {
		c, err := svc.Create(ctx, slug, true)
		require.NoError(t, err)
		if i == 0 {
			first = c.ID
		}
	}

	updates, err := svc.Delete(ctx, first)
	require.NoError(t, err)
	assert.Len(t, updates, 2)
	assert.Equal(t, []string{"b", "c"}, slugsInOrder(t, svc))

	group, _ := repo.LoadSiblingGroup(ctx, RootGroup)
	assert.True(t, ordering.IsDense(group))

	_, err = svc.Delete(ctx, first)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestService_Translations(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	c, err := svc.Create(ctx, "phones", true)
	require.NoError(t, err)

	require.NoError(t, svc.UpsertTranslation(ctx, c.ID, catalog.LanguageEN, "Phones", "All phones"))
	require.NoError(t, svc.UpsertTranslation(ctx, c.ID, catalog.LanguageEN, "Smartphones", ""))

	got, err := svc.Get(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, got.Translations, 1)

	t.Run("缺失语言回退到默认语言", func(t *testing.T) {
		tr, ok := got.Localized(catalog.LanguageDE)
		require.True(t, ok)
		assert.Equal(t, "Smartphones", tr.Title)
	})

	t.Run("分类不存在", func(t *testing.T) {
		err := svc.UpsertTranslation(ctx, "missing", catalog.LanguageEN, "x", "")
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})

	t.Run("标题为空", func(t *testing.T) {
		err := svc.UpsertTranslation(ctx, c.ID, catalog.LanguageUA, "", "")
		assert.ErrorIs(t, err, ErrEmptyTitle)
	})
}

func TestService_Update(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	c, err := svc.Create(ctx, "phones", true)
	require.NoError(t, err)

	slug := "mobile-phones"
	available := false
	updated, err := svc.Update(ctx, c.ID, UpdateParams{Slug: &slug, IsAvailable: &available})
	require.NoError(t, err)
	assert.Equal(t, "mobile-phones", updated.Slug)
	assert.False(t, updated.IsAvailable)
	assert.Equal(t, 1, updated.SortOrder)
}
