package service

import (
	"errors"

	"shop_backoffice/internal/domain/catalog/model"
	"shop_backoffice/internal/domain/catalog/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// 商品模块业务错误
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidType      = errors.New("product type must be digital_product or service")
)

// CreateProductInput 创建/更新商品输入
type CreateProductInput struct {
	Name          string
	Description   string
	Price         decimal.Decimal
	Type          string
	CategoryID    string
	StockQuantity *int
}

// CatalogService 分类与商品服务接口
type CatalogService interface {
	CreateCategory(name, slug, description string) (*model.Category, error)
	GetCategories(page, limit int) ([]model.Category, int64, error)
	UpdateCategory(id, name, description string) (*model.Category, error)
	DeactivateCategory(id string) error

	CreateProduct(input CreateProductInput) (*model.Product, error)
	GetProduct(id string) (*model.Product, error)
	GetProducts(filter model.ProductFilter, page, limit int) ([]model.Product, int64, error)
	UpdateProduct(id string, input CreateProductInput) (*model.Product, error)
	DeactivateProduct(id string) error
}

type catalogService struct {
	repo repository.CatalogRepository
}

// NewCatalogService 创建服务
func NewCatalogService(repo repository.CatalogRepository) CatalogService {
	return &catalogService{repo: repo}
}

// CreateCategory 创建分类
func (s *catalogService) CreateCategory(name, slug, description string) (*model.Category, error) {
	category := &model.Category{
		Name:        name,
		Slug:        slug,
		Description: description,
		IsActive:    true,
	}
	if err := s.repo.CreateCategory(category); err != nil {
		return nil, err
	}
	return category, nil
}

// GetCategories 获取分类列表
func (s *catalogService) GetCategories(page, limit int) ([]model.Category, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	return s.repo.GetCategoryList((page-1)*limit, limit)
}

// UpdateCategory 更新分类
func (s *catalogService) UpdateCategory(id, name, description string) (*model.Category, error) {
	category, err := s.repo.GetCategoryByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	if name != "" {
		category.Name = name
	}
	if description != "" {
		category.Description = description
	}

	if err := s.repo.UpdateCategory(category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeactivateCategory 下架分类（软删除）
func (s *catalogService) DeactivateCategory(id string) error {
	category, err := s.repo.GetCategoryByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}

	category.IsActive = false
	return s.repo.UpdateCategory(category)
}

// CreateProduct 创建商品
func (s *catalogService) CreateProduct(input CreateProductInput) (*model.Product, error) {
	if input.Type != model.ProductTypeDigital && input.Type != model.ProductTypeService {
		return nil, ErrInvalidType
	}

	// 分类必须存在
	if _, err := s.repo.GetCategoryByID(input.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	product := &model.Product{
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price.Round(2),
		Type:          input.Type,
		CategoryID:    input.CategoryID,
		StockQuantity: input.StockQuantity,
		IsActive:      true,
	}
	if err := s.repo.CreateProduct(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct 获取单个商品
func (s *catalogService) GetProduct(id string) (*model.Product, error) {
	product, err := s.repo.GetProductByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// GetProducts 按条件获取商品列表
func (s *catalogService) GetProducts(filter model.ProductFilter, page, limit int) ([]model.Product, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	return s.repo.GetProductList(filter, (page-1)*limit, limit)
}

// UpdateProduct 更新商品
func (s *catalogService) UpdateProduct(id string, input CreateProductInput) (*model.Product, error) {
	product, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		product.Name = input.Name
	}
	if input.Description != "" {
		product.Description = input.Description
	}
	if !input.Price.IsZero() {
		product.Price = input.Price.Round(2)
	}
	if input.Type != "" {
		if input.Type != model.ProductTypeDigital && input.Type != model.ProductTypeService {
			return nil, ErrInvalidType
		}
		product.Type = input.Type
	}
	if input.CategoryID != "" {
		product.CategoryID = input.CategoryID
	}
	if input.StockQuantity != nil {
		product.StockQuantity = input.StockQuantity
	}

	if err := s.repo.UpdateProduct(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeactivateProduct 下架商品（软删除）
func (s *catalogService) DeactivateProduct(id string) error {
	product, err := s.GetProduct(id)
	if err != nil {
		return err
	}

	product.IsActive = false
	return s.repo.UpdateProduct(product)
}
