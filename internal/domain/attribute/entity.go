package attribute

import (
	"time"

	"github.com/google/uuid"

	"github.com/xiebiao/storecatalog/internal/domain/catalog"
	"github.com/xiebiao/storecatalog/internal/domain/category"
)

// Attribute 分类下的属性定义（如颜色、内存容量）
// 同一分类下的属性构成一个兄弟组
type Attribute struct {
	ID           string
	CategoryID   string
	Slug         string
	SortOrder    int
	Translations []Translation
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Translation 属性名称的多语言文案
type Translation struct {
	ID          string
	AttributeID string
	Language    catalog.Language
	Name        string
}

// NewAttribute 创建属性
func NewAttribute(categoryID, slug string) (*Attribute, error) {
	if !category.ValidSlug(slug) {
		return nil, ErrInvalidSlug
	}

	now := time.Now()
	return &Attribute{
		ID:         uuid.NewString(),
		CategoryID: categoryID,
		Slug:       slug,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Localized 取指定语言的名称，缺失时回退到默认语言
func (a *Attribute) Localized(lang catalog.Language) (Translation, bool) {
	var fallback *Translation
	for i := range a.Translations {
		t := &a.Translations[i]
		if t.Language == lang {
			return *t, true
		}
		if t.Language == catalog.DefaultLanguage {
			fallback = t
		}
	}
	if fallback != nil {
		return *fallback, true
	}
	return Translation{}, false
}

func (a *Attribute) PositionID() string { return a.ID }
func (a *Attribute) Position() int      { return a.SortOrder }
