package repository

import (
	"shop_backoffice/internal/domain/catalog/model"

	"gorm.io/gorm"
)

// CatalogRepository 分类与商品仓库
type CatalogRepository interface {
	CreateCategory(category *model.Category) error
	GetCategoryByID(id string) (*model.Category, error)
	GetCategoryList(offset, limit int) ([]model.Category, int64, error)
	UpdateCategory(category *model.Category) error

	CreateProduct(product *model.Product) error
	GetProductByID(id string) (*model.Product, error)
	GetProductList(filter model.ProductFilter, offset, limit int) ([]model.Product, int64, error)
	UpdateProduct(product *model.Product) error
}

type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository 创建仓库实例
func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

// CreateCategory 创建分类
func (r *catalogRepository) CreateCategory(category *model.Category) error {
	return r.db.Create(category).Error
}

// GetCategoryByID 根据ID获取分类
func (r *catalogRepository) GetCategoryByID(id string) (*model.Category, error) {
	var category model.Category
	if err := r.db.Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// GetCategoryList 获取分类列表（分页）
func (r *catalogRepository) GetCategoryList(offset, limit int) ([]model.Category, int64, error) {
	var categories []model.Category
	var total int64

	if err := r.db.Model(&model.Category{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Offset(offset).Limit(limit).Order("created_at DESC").Find(&categories).Error; err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

// UpdateCategory 更新分类
func (r *catalogRepository) UpdateCategory(category *model.Category) error {
	return r.db.Save(category).Error
}

// CreateProduct 创建商品
func (r *catalogRepository) CreateProduct(product *model.Product) error {
	return r.db.Create(product).Error
}

// GetProductByID 根据ID获取商品
func (r *catalogRepository) GetProductByID(id string) (*model.Product, error) {
	var product model.Product
	if err := r.db.Preload("Category").Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// GetProductList 按条件获取商品列表（分页）
func (r *catalogRepository) GetProductList(filter model.ProductFilter, offset, limit int) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	query := r.db.Model(&model.Product{})
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.Keyword != "" {
		// 简单子串匹配
		query = query.Where("name ILIKE ?", "%"+filter.Keyword+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("Category").Offset(offset).Limit(limit).Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// UpdateProduct 更新商品
func (r *catalogRepository) UpdateProduct(product *model.Product) error {
	return r.db.Save(product).Error
}
