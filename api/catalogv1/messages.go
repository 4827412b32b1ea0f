package catalogv1

import "time"

// =========================================
// 通用消息
// =========================================

type Empty struct{}

type IDRequest struct {
	Id string `json:"id"`
}

type IDResponse struct {
	Id string `json:"id"`
}

type StatusResponse struct {
	Success bool `json:"success"`
}

// ChangePositionRequest 把实体移动到兄弟组内的sort_order位置(1..N)
// Language只对返回商品视图的接口有效
type ChangePositionRequest struct {
	Id        string `json:"id"`
	SortOrder int32  `json:"sort_order"`
	Language  int32  `json:"language,omitempty"`
}

// =========================================
// 分类
// =========================================

type Category struct {
	Id           string                `json:"id"`
	Slug         string                `json:"slug"`
	IsAvailable  bool                  `json:"is_available"`
	SortOrder    int32                 `json:"sort_order"`
	Translations []CategoryTranslation `json:"translations"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

type CategoryTranslation struct {
	Id          string `json:"id"`
	Language    int32  `json:"language"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type LocalizedCategory struct {
	Id          string `json:"id"`
	Slug        string `json:"slug"`
	IsAvailable bool   `json:"is_available"`
	SortOrder   int32  `json:"sort_order"`
	Language    int32  `json:"language"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ListCategoriesRequest struct {
	Language int32 `json:"language"`
}

type ListCategoriesResponse struct {
	Categories []LocalizedCategory `json:"categories"`
}

// CreateCategoryRequest IsAvailable未指定时为true
type CreateCategoryRequest struct {
	Slug        string `json:"slug"`
	IsAvailable *bool  `json:"is_available,omitempty"`
}

type UpdateCategoryRequest struct {
	Id          string  `json:"id"`
	Slug        *string `json:"slug,omitempty"`
	IsAvailable *bool   `json:"is_available,omitempty"`
}

type UpsertCategoryTranslationRequest struct {
	CategoryId  string `json:"category_id"`
	Language    int32  `json:"language"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// =========================================
// 属性
// =========================================

type Attribute struct {
	Id           string                 `json:"id"`
	CategoryId   string                 `json:"category_id"`
	Slug         string                 `json:"slug"`
	SortOrder    int32                  `json:"sort_order"`
	Translations []AttributeTranslation `json:"translations"`
}

type AttributeTranslation struct {
	Id       string `json:"id"`
	Language int32  `json:"language"`
	Name     string `json:"name"`
}

type ListAttributesRequest struct {
	CategoryId string `json:"category_id"`
}

type ListAttributesResponse struct {
	Attributes []Attribute `json:"attributes"`
}

type CreateAttributeRequest struct {
	CategoryId string `json:"category_id"`
	Slug       string `json:"slug"`
}

type UpdateAttributeRequest struct {
	Id   string `json:"id"`
	Slug string `json:"slug"`
}

type UpsertAttributeTranslationRequest struct {
	AttributeId string `json:"attribute_id"`
	Language    int32  `json:"language"`
	Name        string `json:"name"`
}

// =========================================
// 商品
// =========================================

// Item 商品在某个语言下的视图
type Item struct {
	Id                  string        `json:"id"`
	CategoryId          string        `json:"category_id"`
	Slug                string        `json:"slug"`
	Brand               *string       `json:"brand,omitempty"`
	IsAvailable         bool          `json:"is_available"`
	ExpectedDate        *time.Time    `json:"expected_date,omitempty"`
	SortOrder           int32         `json:"sort_order"`
	Title               string        `json:"title"`
	Description         *string       `json:"description,omitempty"`
	DetailedDescription *string       `json:"detailed_description,omitempty"`
	Images              []Image       `json:"images"`
	Variants            []ItemVariant `json:"variants"`
	Infos               []ItemInfo    `json:"infos"`
	Prices              []Price       `json:"prices"`
}

type Image struct {
	Id        string  `json:"id"`
	ItemId    string  `json:"item_id"`
	Url       string  `json:"url"`
	Alt       *string `json:"alt,omitempty"`
	SortOrder int32   `json:"sort_order"`
}

// ItemVariant 可选规格，价格为十进制字符串，没有该类型价格时为空
type ItemVariant struct {
	Id             string `json:"id"`
	AttributeSlug  string `json:"attribute_slug"`
	AttributeName  string `json:"attribute_name"`
	Value          string `json:"value"`
	RegularPrice   string `json:"regular_price,omitempty"`
	DiscountPrice  string `json:"discount_price,omitempty"`
	WholesalePrice string `json:"wholesale_price,omitempty"`
	Currency       int32  `json:"currency"`
}

type ItemInfo struct {
	AttributeSlug string `json:"attribute_slug"`
	AttributeName string `json:"attribute_name"`
	Value         string `json:"value"`
}

type Price struct {
	Id        string  `json:"id"`
	ItemId    string  `json:"item_id"`
	VariantId *string `json:"variant_id,omitempty"`
	Type      int32   `json:"type"`
	Value     string  `json:"value"`
	Currency  int32   `json:"currency"`
}

type Variant struct {
	Id           string               `json:"id"`
	ItemId       string               `json:"item_id"`
	AttributeId  string               `json:"attribute_id"`
	Translations []VariantTranslation `json:"translations"`
}

type VariantTranslation struct {
	Id       string `json:"id"`
	Language int32  `json:"language"`
	Value    string `json:"value"`
}

type GetItemRequest struct {
	Id       string `json:"id"`
	Language int32  `json:"language"`
}

// ListItemsRequest CategoryId与CategorySlug二选一，CategoryId优先
type ListItemsRequest struct {
	CategoryId   string `json:"category_id,omitempty"`
	CategorySlug string `json:"category_slug,omitempty"`
	Language     int32  `json:"language"`
}

type ListItemsResponse struct {
	Items []Item `json:"items"`
}

// CreateItemRequest IsAvailable未指定时为true
type CreateItemRequest struct {
	CategoryId   string     `json:"category_id"`
	Slug         string     `json:"slug"`
	Brand        *string    `json:"brand,omitempty"`
	IsAvailable  *bool      `json:"is_available,omitempty"`
	ExpectedDate *time.Time `json:"expected_date,omitempty"`
}

// UpdateItemRequest CategoryId变化时商品移到新分类末尾
type UpdateItemRequest struct {
	Id           string     `json:"id"`
	Slug         *string    `json:"slug,omitempty"`
	Brand        *string    `json:"brand,omitempty"`
	IsAvailable  *bool      `json:"is_available,omitempty"`
	ExpectedDate *time.Time `json:"expected_date,omitempty"`
	CategoryId   *string    `json:"category_id,omitempty"`
}

type UpsertItemTranslationRequest struct {
	ItemId              string  `json:"item_id"`
	Language            int32   `json:"language"`
	Title               string  `json:"title"`
	Description         *string `json:"description,omitempty"`
	DetailedDescription *string `json:"detailed_description,omitempty"`
}

type AddImageRequest struct {
	ItemId string  `json:"item_id"`
	Url    string  `json:"url"`
	Alt    *string `json:"alt,omitempty"`
}

type AddVariantRequest struct {
	ItemId      string `json:"item_id"`
	AttributeId string `json:"attribute_id"`
	Language    int32  `json:"language"`
	Value       string `json:"value"`
}

type UpsertVariantTranslationRequest struct {
	VariantId string `json:"variant_id"`
	Language  int32  `json:"language"`
	Value     string `json:"value"`
}

type AddVariantPriceRequest struct {
	VariantId string `json:"variant_id"`
	Type      int32  `json:"type"`
	Value     string `json:"value"`
	Currency  int32  `json:"currency"`
}

type AddBasePriceRequest struct {
	ItemId   string `json:"item_id"`
	Type     int32  `json:"type"`
	Value    string `json:"value"`
	Currency int32  `json:"currency"`
}

// =========================================
// 健康检查
// =========================================

type AppHealthResponse struct {
	Serving bool   `json:"serving"`
	Message string `json:"message"`
}

type Connection struct {
	Name      string `json:"name"`
	Healthy   bool   `json:"healthy"`
	Message   string `json:"message"`
	LatencyMs int64  `json:"latency_ms"`
}

type ConnectionsResponse struct {
	Connections []Connection `json:"connections"`
}
