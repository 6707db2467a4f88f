package handler

import (
	"errors"
	"net/http"

	"shop_backoffice/internal/domain/catalog/model"
	"shop_backoffice/internal/domain/catalog/service"
	"shop_backoffice/pkg/response"
	"shop_backoffice/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CatalogHandler 分类与商品处理器
type CatalogHandler struct {
	service service.CatalogService
}

// NewCatalogHandler 创建处理器
func NewCatalogHandler(service service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// CreateCategoryInput 创建分类输入
type CreateCategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
}

// UpdateCategoryInput 更新分类输入
type UpdateCategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProductInput 创建/更新商品输入
type ProductInput struct {
	Name          string          `json:"name" binding:"required"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price" binding:"required"`
	Type          string          `json:"type" binding:"required,oneof=digital_product service"`
	CategoryID    string          `json:"categoryId" binding:"required,uuid"`
	StockQuantity *int            `json:"stockQuantity" binding:"omitempty,min=0"`
}

// ProductListQuery 商品列表查询参数
type ProductListQuery struct {
	utils.Pagination
	CategoryID string `form:"categoryId"`
	Type       string `form:"type"`
	IsActive   *bool  `form:"isActive"`
	Keyword    string `form:"keyword"`
}

// CreateCategory 创建分类 (管理员)
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var input CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	category, err := h.service.CreateCategory(input.Name, input.Slug, input.Description)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}
	response.Success(c, category)
}

// GetCategories 获取分类列表
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	var p utils.Pagination
	if err := c.ShouldBindQuery(&p); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	categories, total, err := h.service.GetCategories(p.Page, p.Limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to fetch categories")
		return
	}
	response.Success(c, utils.PageResult{List: categories, Total: total, Page: p.Page, Limit: p.Limit})
}

// UpdateCategory 更新分类 (管理员)
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id := c.Param("id")
	var input UpdateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	category, err := h.service.UpdateCategory(id, input.Name, input.Description)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			response.Error(c, http.StatusNotFound, response.ErrCategoryNotFound, "Category not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}
	response.Success(c, category)
}

// DeleteCategory 下架分类 (管理员)
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	if err := h.service.DeactivateCategory(c.Param("id")); err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			response.Error(c, http.StatusNotFound, response.ErrCategoryNotFound, "Category not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}
	response.Success(c, true)
}

// CreateProduct 创建商品 (管理员)
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	product, err := h.service.CreateProduct(service.CreateProductInput{
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		Type:          input.Type,
		CategoryID:    input.CategoryID,
		StockQuantity: input.StockQuantity,
	})
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			response.Error(c, http.StatusNotFound, response.ErrCategoryNotFound, "Category not found")
			return
		}
		if errors.Is(err, service.ErrInvalidType) {
			response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}
	response.Success(c, product)
}

// GetProduct 获取单个商品
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.service.GetProduct(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, response.ErrProductNotFound, "Product not found")
		return
	}
	response.Success(c, product)
}

// GetProducts 获取商品列表
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	var query ProductListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	filter := model.ProductFilter{
		CategoryID: query.CategoryID,
		Type:       query.Type,
		IsActive:   query.IsActive,
		Keyword:    query.Keyword,
	}
	products, total, err := h.service.GetProducts(filter, query.Page, query.Limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to fetch products")
		return
	}
	response.Success(c, utils.PageResult{List: products, Total: total, Page: query.Page, Limit: query.Limit})
}

// UpdateProduct 更新商品 (管理员)
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	// 更新时所有字段可选
	var input struct {
		Name          string          `json:"name"`
		Description   string          `json:"description"`
		Price         decimal.Decimal `json:"price"`
		Type          string          `json:"type" binding:"omitempty,oneof=digital_product service"`
		CategoryID    string          `json:"categoryId" binding:"omitempty,uuid"`
		StockQuantity *int            `json:"stockQuantity" binding:"omitempty,min=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	product, err := h.service.UpdateProduct(id, service.CreateProductInput{
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		Type:          input.Type,
		CategoryID:    input.CategoryID,
		StockQuantity: input.StockQuantity,
	})
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.Error(c, http.StatusNotFound, response.ErrProductNotFound, "Product not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}
	response.Success(c, product)
}

// DeleteProduct 下架商品 (管理员)
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	if err := h.service.DeactivateProduct(c.Param("id")); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.Error(c, http.StatusNotFound, response.ErrProductNotFound, "Product not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}
	response.Success(c, true)
}
