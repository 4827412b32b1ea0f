package item

import (
	"context"
	"sort"

	"github.com/xiebiao/storecatalog/internal/domain/attribute"
	"github.com/xiebiao/storecatalog/internal/domain/ordering"
)

// memRepo 商品、图片、规格、价格的内存仓储
type memRepo struct {
	categories map[string]bool
	items      map[string]*Item
	images     map[string]*Image
	variants   map[string]*Variant
	prices     map[string]*Price
	attrs      map[string]*attribute.Attribute

	// trace 按发生顺序记录加锁读组和商品行写入
	trace []string
}

func newMemRepo(categoryIDs ...string) *memRepo {
	r := &memRepo{
		categories: map[string]bool{},
		items:      map[string]*Item{},
		images:     map[string]*Image{},
		variants:   map[string]*Variant{},
		prices:     map[string]*Price{},
		attrs:      map[string]*attribute.Attribute{},
	}
	for _, id := range categoryIDs {
		r.categories[id] = true
	}
	return r
}

// ---- Repository ----

func (r *memRepo) Create(ctx context.Context, it *Item) error {
	for _, existing := range r.items {
		if existing.CategoryID == it.CategoryID && existing.Slug == it.Slug {
			return ErrSlugDuplicate
		}
	}
	cp := *it
	r.items[it.ID] = &cp
	return nil
}

func (r *memRepo) FindByID(ctx context.Context, id string) (*Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	cp := *it
	cp.Images = nil
	for _, img := range r.images {
		if img.ItemID == id {
			cp.Images = append(cp.Images, *img)
		}
	}
	cp.Variants = nil
	for _, v := range r.variants {
		if v.ItemID == id {
			cp.Variants = append(cp.Variants, r.loadVariant(v))
		}
	}
	cp.Prices = nil
	for _, p := range r.prices {
		if p.ItemID == id && p.VariantID == nil {
			cp.Prices = append(cp.Prices, *p)
		}
	}
	return &cp, nil
}

func (r *memRepo) loadVariant(v *Variant) Variant {
	cp := *v
	cp.Attribute = r.attrs[v.AttributeID]
	cp.Prices = nil
	for _, p := range r.prices {
		if p.VariantID != nil && *p.VariantID == v.ID {
			cp.Prices = append(cp.Prices, *p)
		}
	}
	return cp
}

func (r *memRepo) ListByCategory(ctx context.Context, categoryID string) ([]*Item, error) {
	var out []*Item
	for id, it := range r.items {
		if it.CategoryID == categoryID {
			full, _ := r.FindByID(ctx, id)
			out = append(out, full)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (r *memRepo) Update(ctx context.Context, it *Item) error {
	r.trace = append(r.trace, "update:"+it.ID)
	existing := r.items[it.ID]
	existing.Slug = it.Slug
	existing.Brand = it.Brand
	existing.IsAvailable = it.IsAvailable
	existing.ExpectedDate = it.ExpectedDate
	return nil
}

func (r *memRepo) Relocate(ctx context.Context, id, categoryID string, position int) error {
	r.items[id].CategoryID = categoryID
	r.items[id].SortOrder = position
	return nil
}

func (r *memRepo) Delete(ctx context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *memRepo) UpsertTranslation(ctx context.Context, t *Translation) error {
	it := r.items[t.ItemID]
	for i := range it.Translations {
		if it.Translations[i].Language == t.Language {
			it.Translations[i] = *t
			return nil
		}
	}
	it.Translations = append(it.Translations, *t)
	return nil
}

func (r *memRepo) DeleteTranslation(ctx context.Context, id string) error {
	return ErrTranslationNotFound
}

// itemSiblings 分类下的商品兄弟组
type itemSiblings struct{ r *memRepo }

func (s itemSiblings) LoadSiblingGroup(ctx context.Context, parentID string) ([]ordering.Sibling, error) {
	if !s.r.categories[parentID] {
		return nil, ordering.ErrParentNotFound
	}
	s.r.trace = append(s.r.trace, "lock:"+parentID)
	var out []ordering.Sibling
	for _, it := range s.r.items {
		if it.CategoryID == parentID {
			out = append(out, ordering.Sibling{ID: it.ID, SortOrder: it.SortOrder})
		}
	}
	return out, nil
}

func (s itemSiblings) ApplyPositionUpdates(ctx context.Context, updates []ordering.Update) error {
	for _, u := range updates {
		s.r.items[u.ID].SortOrder = u.Position
	}
	return nil
}

// ---- ImageRepository ----

type imageRepo struct{ r *memRepo }

func (s imageRepo) Create(ctx context.Context, img *Image) error {
	cp := *img
	s.r.images[img.ID] = &cp
	return nil
}

func (s imageRepo) FindByID(ctx context.Context, id string) (*Image, error) {
	img, ok := s.r.images[id]
	if !ok {
		return nil, ErrImageNotFound
	}
	cp := *img
	return &cp, nil
}

func (s imageRepo) Delete(ctx context.Context, id string) error {
	delete(s.r.images, id)
	return nil
}

func (s imageRepo) LoadSiblingGroup(ctx context.Context, parentID string) ([]ordering.Sibling, error) {
	if _, ok := s.r.items[parentID]; !ok {
		return nil, ordering.ErrParentNotFound
	}
	var out []ordering.Sibling
	for _, img := range s.r.images {
		if img.ItemID == parentID {
			out = append(out, ordering.Sibling{ID: img.ID, SortOrder: img.SortOrder})
		}
	}
	return out, nil
}

func (s imageRepo) ApplyPositionUpdates(ctx context.Context, updates []ordering.Update) error {
	for _, u := range updates {
		s.r.images[u.ID].SortOrder = u.Position
	}
	return nil
}

// ---- VariantRepository / PriceRepository ----

type variantRepo struct{ r *memRepo }

func (s variantRepo) Create(ctx context.Context, v *Variant) error {
	for _, existing := range s.r.variants {
		if existing.ItemID == v.ItemID && existing.AttributeID == v.AttributeID {
			return ErrVariantDuplicate
		}
	}
	cp := *v
	s.r.variants[v.ID] = &cp
	return nil
}

func (s variantRepo) FindByID(ctx context.Context, id string) (*Variant, error) {
	v, ok := s.r.variants[id]
	if !ok {
		return nil, ErrVariantNotFound
	}
	full := s.r.loadVariant(v)
	return &full, nil
}

func (s variantRepo) Delete(ctx context.Context, id string) error {
	delete(s.r.variants, id)
	for pid, p := range s.r.prices {
		if p.VariantID != nil && *p.VariantID == id {
			delete(s.r.prices, pid)
		}
	}
	return nil
}

func (s variantRepo) UpsertTranslation(ctx context.Context, t *VariantTranslation) error {
	v := s.r.variants[t.VariantID]
	for i := range v.Translations {
		if v.Translations[i].Language == t.Language {
			v.Translations[i].Value = t.Value
			return nil
		}
	}
	v.Translations = append(v.Translations, *t)
	return nil
}

type priceRepo struct{ r *memRepo }

func (s priceRepo) Create(ctx context.Context, p *Price) error {
	cp := *p
	s.r.prices[p.ID] = &cp
	return nil
}

func (s priceRepo) FindByID(ctx context.Context, id string) (*Price, error) {
	p, ok := s.r.prices[id]
	if !ok {
		return nil, ErrPriceNotFound
	}
	cp := *p
	return &cp, nil
}

func (s priceRepo) Delete(ctx context.Context, id string) error {
	delete(s.r.prices, id)
	return nil
}

// attrRepo 只实现FindByID，其余方法不会被调用
type attrRepo struct {
	attribute.Repository
	r *memRepo
}

func (s attrRepo) FindByID(ctx context.Context, id string) (*attribute.Attribute, error) {
	a, ok := s.r.attrs[id]
	if !ok {
		return nil, attribute.ErrAttributeNotFound
	}
	return a, nil
}
