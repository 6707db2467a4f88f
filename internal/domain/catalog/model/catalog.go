package model

import (
	baseModel "shop_backoffice/pkg/model"

	"github.com/shopspring/decimal"
)

// 商品类型
const (
	ProductTypeDigital = "digital_product"
	ProductTypeService = "service"
)

// Category 商品分类
type Category struct {
	baseModel.BaseModel
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Slug        string `gorm:"type:varchar(100);uniqueIndex" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`
}

// Product 商品
// StockQuantity 为 nil 表示不做库存管理（服务类、数字商品）
type Product struct {
	baseModel.BaseModel
	Name          string          `gorm:"type:varchar(200);not null" json:"name"`
	Description   string          `gorm:"type:text" json:"description"`
	Price         decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Type          string          `gorm:"type:varchar(20);default:'digital_product'" json:"type"` // digital_product, service
	CategoryID    string          `gorm:"type:uuid;index" json:"categoryId"`
	Category      *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	StockQuantity *int            `json:"stockQuantity"`
	IsActive      bool            `gorm:"default:true" json:"isActive"`
}

// ProductFilter 商品列表查询条件
type ProductFilter struct {
	CategoryID string
	Type       string
	IsActive   *bool
	Keyword    string // 名称子串匹配
}
