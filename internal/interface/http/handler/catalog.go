package handler

import (
	"github.com/gin-gonic/gin"

	appattribute "github.com/xiebiao/storecatalog/internal/application/attribute"
	appcategory "github.com/xiebiao/storecatalog/internal/application/category"
	appitem "github.com/xiebiao/storecatalog/internal/application/item"
	"github.com/xiebiao/storecatalog/internal/domain/catalog"
	"github.com/xiebiao/storecatalog/internal/interface/http/dto"
	apperrors "github.com/xiebiao/storecatalog/pkg/errors"
	"github.com/xiebiao/storecatalog/pkg/response"
)

// CatalogHandler 目录的REST读接口和排序接口
// 完整的增删改走gRPC
type CatalogHandler struct {
	categories *appcategory.Service
	attributes *appattribute.Service
	items      *appitem.Service
}

// NewCatalogHandler 创建目录处理器
func NewCatalogHandler(categories *appcategory.Service, attributes *appattribute.Service, items *appitem.Service) *CatalogHandler {
	return &CatalogHandler{
		categories: categories,
		attributes: attributes,
		items:      items,
	}
}

// ListCategories 分类列表
// @Summary      分类列表
// @Description  按位置返回指定语言的分类，缺少该语言翻译时回退到EN
// @Tags         分类
// @Produce      json
// @Param        lang query string false "语言(EN/UA/RU/DE/ES/FR)" default(EN)
// @Success      200 {object} response.Response{data=[]appcategory.CategoryView}
// @Failure      404 {object} response.Response "店铺暂无分类"
// @Router       /api/v1/categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	lang, ok := language(c)
	if !ok {
		return
	}
	views, err := h.categories.ListByLanguage(c.Request.Context(), lang)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, views)
}

// GetCategory 分类详情
// @Summary      分类详情
// @Tags         分类
// @Produce      json
// @Param        id path string true "分类ID"
// @Success      200 {object} response.Response{data=appcategory.CategoryDTO}
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /api/v1/categories/{id} [get]
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	category, err := h.categories.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, category)
}

// ChangeCategoryPosition 调整分类排序
// @Summary      调整分类排序
// @Tags         分类
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "分类ID"
// @Param        request body dto.ChangePositionRequest true "目标位置"
// @Success      200 {object} response.Response{data=appcategory.CategoryDTO}
// @Failure      400 {object} response.Response "位置越界"
// @Failure      409 {object} response.Response "并发冲突"
// @Router       /api/v1/categories/{id}/position [put]
func (h *CatalogHandler) ChangeCategoryPosition(c *gin.Context) {
	position, ok := bindPosition(c)
	if !ok {
		return
	}
	category, err := h.categories.ChangePosition(c.Request.Context(), c.Param("id"), position)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, category)
}

// ListAttributes 分类下的属性
// @Summary      属性列表
// @Tags         属性
// @Produce      json
// @Param        id path string true "分类ID"
// @Success      200 {object} response.Response{data=[]appattribute.AttributeDTO}
// @Router       /api/v1/categories/{id}/attributes [get]
func (h *CatalogHandler) ListAttributes(c *gin.Context) {
	attrs, err := h.attributes.ListByCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, attrs)
}

// ChangeAttributePosition 调整属性排序
// @Summary      调整属性排序
// @Tags         属性
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "属性ID"
// @Param        request body dto.ChangePositionRequest true "目标位置"
// @Success      200 {object} response.Response{data=appattribute.AttributeDTO}
// @Failure      400 {object} response.Response "位置越界"
// @Router       /api/v1/attributes/{id}/position [put]
func (h *CatalogHandler) ChangeAttributePosition(c *gin.Context) {
	position, ok := bindPosition(c)
	if !ok {
		return
	}
	attr, err := h.attributes.ChangePosition(c.Request.Context(), c.Param("id"), position)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, attr)
}

// ListItems 分类下的商品
// @Summary      商品列表
// @Tags         商品
// @Produce      json
// @Param        id path string true "分类ID"
// @Param        lang query string false "语言" default(EN)
// @Success      200 {object} response.Response{data=[]appitem.ItemView}
// @Router       /api/v1/categories/{id}/items [get]
func (h *CatalogHandler) ListItems(c *gin.Context) {
	lang, ok := language(c)
	if !ok {
		return
	}
	items, err := h.items.ListByCategoryID(c.Request.Context(), c.Param("id"), lang)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, items)
}

// GetItem 商品详情
// @Summary      商品详情
// @Tags         商品
// @Produce      json
// @Param        id path string true "商品ID"
// @Param        lang query string false "语言" default(EN)
// @Success      200 {object} response.Response{data=appitem.ItemView}
// @Failure      404 {object} response.Response "商品不存在"
// @Router       /api/v1/items/{id} [get]
func (h *CatalogHandler) GetItem(c *gin.Context) {
	lang, ok := language(c)
	if !ok {
		return
	}
	item, err := h.items.GetByID(c.Request.Context(), c.Param("id"), lang)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, item)
}

// ChangeItemPosition 调整商品排序
// @Summary      调整商品排序
// @Tags         商品
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "商品ID"
// @Param        lang query string false "返回视图的语言" default(EN)
// @Param        request body dto.ChangePositionRequest true "目标位置"
// @Success      200 {object} response.Response{data=appitem.ItemView}
// @Failure      400 {object} response.Response "位置越界"
// @Router       /api/v1/items/{id}/position [put]
func (h *CatalogHandler) ChangeItemPosition(c *gin.Context) {
	lang, ok := language(c)
	if !ok {
		return
	}
	position, ok := bindPosition(c)
	if !ok {
		return
	}
	item, err := h.items.ChangePosition(c.Request.Context(), c.Param("id"), position, lang)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, item)
}

// ChangeImagePosition 调整商品图片排序
// @Summary      调整图片排序
// @Tags         商品
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "图片ID"
// @Param        request body dto.ChangePositionRequest true "目标位置"
// @Success      200 {object} response.Response{data=appitem.ImageDTO}
// @Failure      400 {object} response.Response "位置越界"
// @Router       /api/v1/images/{id}/position [put]
func (h *CatalogHandler) ChangeImagePosition(c *gin.Context) {
	position, ok := bindPosition(c)
	if !ok {
		return
	}
	img, err := h.items.ChangeImagePosition(c.Request.Context(), c.Param("id"), position)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, img)
}

// language 解析?lang=，缺省为EN，不支持的语言返回400
func language(c *gin.Context) (catalog.Language, bool) {
	lang, err := catalog.ParseLanguage(c.Query("lang"))
	if err != nil {
		response.Error(c, err)
		return "", false
	}
	return lang, true
}

func bindPosition(c *gin.Context) (int, bool) {
	var req dto.ChangePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrBindError.WithMessage("参数错误: "+err.Error()))
		return 0, false
	}
	return *req.SortOrder, true
}
