package model

import (
	catalogModel "shop_backoffice/internal/domain/catalog/model"
	baseModel "shop_backoffice/pkg/model"

	"github.com/shopspring/decimal"
)

// CartItem 购物车条目，同一用户同一商品唯一
type CartItem struct {
	baseModel.BaseModel
	UserID    string                `gorm:"type:uuid;uniqueIndex:idx_cart_user_product;not null" json:"userId"`
	ProductID string                `gorm:"type:uuid;uniqueIndex:idx_cart_user_product;not null" json:"productId"`
	Product   *catalogModel.Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int                   `gorm:"not null" json:"quantity"`
}

// Cart 购物车视图，带按当前售价计算的合计
type Cart struct {
	Items []CartItem      `json:"items"`
	Total decimal.Decimal `json:"total"`
}
