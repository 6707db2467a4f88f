package model

import (
	"errors"
	"time"

	baseModel "shop_backoffice/pkg/model"

	"github.com/shopspring/decimal"
)

// 优惠券类型
const (
	CouponTypePercentage  = "percentage"
	CouponTypeFixedAmount = "fixed_amount"
)

// 优惠券校验错误
var (
	ErrCouponNotFound  = errors.New("invalid coupon code")
	ErrCouponExpired   = errors.New("coupon has expired")
	ErrCouponExhausted = errors.New("coupon usage limit reached")
	ErrMinimumNotMet   = errors.New("order amount below coupon minimum")
)

// Coupon 优惠券
// UsageLimit 为 nil 表示不限次数；ExpiresAt 为 nil 表示永久有效
type Coupon struct {
	baseModel.BaseModel
	Code               string           `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"`
	Type               string           `gorm:"type:varchar(20);not null" json:"type"` // percentage, fixed_amount
	Value              decimal.Decimal  `gorm:"type:numeric(10,2);not null" json:"value"`
	MinimumOrderAmount *decimal.Decimal `gorm:"type:numeric(10,2)" json:"minimumOrderAmount"`
	UsageLimit         *int             `json:"usageLimit"`
	UsedCount          int              `gorm:"default:0" json:"usedCount"`
	IsActive           bool             `gorm:"default:true" json:"isActive"`
	ExpiresAt          *time.Time       `json:"expiresAt"`
}

// ValidateForAmount 校验优惠券是否适用于给定订单金额，并返回折扣额
// 订单创建和预校验接口共用同一套检查，保证行为一致
func (c *Coupon) ValidateForAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	if !c.IsActive {
		return decimal.Zero, ErrCouponNotFound
	}
	if c.ExpiresAt != nil && c.ExpiresAt.Before(time.Now()) {
		return decimal.Zero, ErrCouponExpired
	}
	if c.UsageLimit != nil && c.UsedCount >= *c.UsageLimit {
		return decimal.Zero, ErrCouponExhausted
	}
	if c.MinimumOrderAmount != nil && amount.LessThan(*c.MinimumOrderAmount) {
		return decimal.Zero, ErrMinimumNotMet
	}

	var discount decimal.Decimal
	switch c.Type {
	case CouponTypePercentage:
		discount = amount.Mul(c.Value).Div(decimal.NewFromInt(100))
	default: // fixed_amount
		discount = c.Value
	}

	// 折扣不超过订单金额，最终金额不为负
	if discount.GreaterThan(amount) {
		discount = amount
	}
	return discount.Round(2), nil
}
