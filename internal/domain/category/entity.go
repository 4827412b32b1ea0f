package category

import (
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/xiebiao/storecatalog/internal/domain/catalog"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Category 店铺分类(聚合根)
// 同一店铺下的全部分类构成一个兄弟组，SortOrder在组内为1..N
type Category struct {
	ID           string
	Slug         string
	IsAvailable  bool
	SortOrder    int
	Translations []Translation
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Translation 分类的多语言文案，(CategoryID, Language)唯一
type Translation struct {
	ID          string
	CategoryID  string
	Language    catalog.Language
	Title       string
	Description string
}

// NewCategory 创建分类(工厂方法)
// SortOrder由排序引擎在写入时分配
func NewCategory(slug string, isAvailable bool) (*Category, error) {
	if !ValidSlug(slug) {
		return nil, ErrInvalidSlug
	}

	now := time.Now()
	return &Category{
		ID:          uuid.NewString(),
		Slug:        slug,
		IsAvailable: isAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// NewTranslation 创建翻译
func NewTranslation(categoryID string, lang catalog.Language, title, description string) (*Translation, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	return &Translation{
		ID:          uuid.NewString(),
		CategoryID:  categoryID,
		Language:    lang,
		Title:       title,
		Description: description,
	}, nil
}

// Localized 取指定语言的翻译，缺失时回退到默认语言
func (c *Category) Localized(lang catalog.Language) (Translation, bool) {
	var fallback *Translation
	for i := range c.Translations {
		t := &c.Translations[i]
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

// Rename 修改slug
func (c *Category) Rename(slug string) error {
	if !ValidSlug(slug) {
		return ErrInvalidSlug
	}
	c.Slug = slug
	c.UpdatedAt = time.Now()
	return nil
}

// SetAvailable 上下架
func (c *Category) SetAvailable(available bool) {
	c.IsAvailable = available
	c.UpdatedAt = time.Now()
}

func (c *Category) PositionID() string { return c.ID }
func (c *Category) Position() int      { return c.SortOrder }

// ValidSlug slug只允许小写字母、数字和单个连字符
func ValidSlug(slug string) bool {
	return len(slug) > 0 && len(slug) <= 255 && slugPattern.MatchString(slug)
}
