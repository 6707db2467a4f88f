package model

import (
	catalogModel "shop_backoffice/internal/domain/catalog/model"
	couponModel "shop_backoffice/internal/domain/coupon/model"
	userModel "shop_backoffice/internal/domain/user/model"
	baseModel "shop_backoffice/pkg/model"

	"github.com/shopspring/decimal"
)

// Order 订单
// TotalAmount 为折前合计，FinalAmount = TotalAmount - DiscountAmount，不会为负
type Order struct {
	baseModel.BaseModel
	UserID         string               `gorm:"type:uuid;index;not null" json:"userId"`
	User           *userModel.User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	TotalAmount    decimal.Decimal      `gorm:"type:numeric(10,2);not null" json:"totalAmount"`
	DiscountAmount decimal.Decimal      `gorm:"type:numeric(10,2);not null" json:"discountAmount"`
	FinalAmount    decimal.Decimal      `gorm:"type:numeric(10,2);not null" json:"finalAmount"`
	CouponID       *string              `gorm:"type:uuid" json:"couponId"`
	Coupon         *couponModel.Coupon  `gorm:"foreignKey:CouponID" json:"coupon,omitempty"`
	Status         string               `gorm:"type:varchar(20);default:'pending'" json:"status"`
	PaymentStatus  string               `gorm:"type:varchar(20);default:'pending'" json:"paymentStatus"`
	Items          []OrderItem          `gorm:"foreignKey:OrderID" json:"orderItems,omitempty"`
}

// OrderItem 订单行，创建后不可变
// UnitPrice/TotalPrice 是下单时的快照，商品后续改价不影响历史订单
type OrderItem struct {
	baseModel.BaseModel
	OrderID    string                `gorm:"type:uuid;index;not null" json:"orderId"`
	ProductID  string                `gorm:"type:uuid;not null" json:"productId"`
	Product    *catalogModel.Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity   int                   `gorm:"not null" json:"quantity"`
	UnitPrice  decimal.Decimal       `gorm:"type:numeric(10,2);not null" json:"unitPrice"`
	TotalPrice decimal.Decimal       `gorm:"type:numeric(10,2);not null" json:"totalPrice"`
}

// OrderEvent 订单事件流水，由 worker 异步落库
type OrderEvent struct {
	baseModel.BaseModel
	OrderID    string `gorm:"type:uuid;index;not null" json:"orderId"`
	FromStatus string `gorm:"type:varchar(20)" json:"fromStatus"`
	ToStatus   string `gorm:"type:varchar(20)" json:"toStatus"`
	Note       string `gorm:"type:text" json:"note"`
}

// StockDeduction 库存扣减/回补指令
type StockDeduction struct {
	ProductID string
	Quantity  int
}

// OrderFilter 订单列表查询条件
type OrderFilter struct {
	UserID        string
	Status        string
	PaymentStatus string
}
