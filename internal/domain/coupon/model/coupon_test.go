package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestValidateForAmount(t *testing.T) {
	t.Run("percentage discount rounds to cents", func(t *testing.T) {
		coupon := &Coupon{
			Code:     "SAVE10",
			Type:     CouponTypePercentage,
			Value:    decimal.RequireFromString("10"),
			IsActive: true,
		}

		discount, err := coupon.ValidateForAmount(decimal.RequireFromString("69.97"))
		assert.NoError(t, err)
		assert.True(t, discount.Equal(decimal.RequireFromString("7.00")), "got %s", discount)
	})

	t.Run("fixed discount clamps to order total", func(t *testing.T) {
		coupon := &Coupon{
			Code:     "FLAT20",
			Type:     CouponTypeFixedAmount,
			Value:    decimal.RequireFromString("20.00"),
			IsActive: true,
		}

		discount, err := coupon.ValidateForAmount(decimal.RequireFromString("12.50"))
		assert.NoError(t, err)
		assert.True(t, discount.Equal(decimal.RequireFromString("12.50")))
	})

	t.Run("inactive coupon behaves like unknown code", func(t *testing.T) {
		coupon := &Coupon{Code: "OFF", Type: CouponTypePercentage, Value: decimal.RequireFromString("10")}

		_, err := coupon.ValidateForAmount(decimal.RequireFromString("100"))
		assert.ErrorIs(t, err, ErrCouponNotFound)
	})

	t.Run("expired coupon", func(t *testing.T) {
		expired := time.Now().Add(-24 * time.Hour)
		coupon := &Coupon{
			Code:      "OLD",
			Type:      CouponTypePercentage,
			Value:     decimal.RequireFromString("10"),
			IsActive:  true,
			ExpiresAt: &expired,
		}

		_, err := coupon.ValidateForAmount(decimal.RequireFromString("100"))
		assert.ErrorIs(t, err, ErrCouponExpired)
	})

	t.Run("usage limit reached", func(t *testing.T) {
		coupon := &Coupon{
			Code:       "LIMITED",
			Type:       CouponTypePercentage,
			Value:      decimal.RequireFromString("10"),
			IsActive:   true,
			UsageLimit: intPtr(100),
			UsedCount:  100,
		}

		_, err := coupon.ValidateForAmount(decimal.RequireFromString("100"))
		assert.ErrorIs(t, err, ErrCouponExhausted)
	})

	t.Run("below minimum order amount", func(t *testing.T) {
		coupon := &Coupon{
			Code:               "SAVE10",
			Type:               CouponTypePercentage,
			Value:              decimal.RequireFromString("10"),
			IsActive:           true,
			MinimumOrderAmount: decPtr("50.00"),
		}

		_, err := coupon.ValidateForAmount(decimal.RequireFromString("49.99"))
		assert.ErrorIs(t, err, ErrMinimumNotMet)
	})

	t.Run("exactly at minimum order amount", func(t *testing.T) {
		coupon := &Coupon{
			Code:               "SAVE10",
			Type:               CouponTypePercentage,
			Value:              decimal.RequireFromString("10"),
			IsActive:           true,
			MinimumOrderAmount: decPtr("50.00"),
		}

		discount, err := coupon.ValidateForAmount(decimal.RequireFromString("50.00"))
		assert.NoError(t, err)
		assert.True(t, discount.Equal(decimal.RequireFromString("5.00")))
	})

	t.Run("nil usage limit means unlimited", func(t *testing.T) {
		coupon := &Coupon{
			Code:      "FOREVER",
			Type:      CouponTypePercentage,
			Value:     decimal.RequireFromString("10"),
			IsActive:  true,
			UsedCount: 1000000,
		}

		_, err := coupon.ValidateForAmount(decimal.RequireFromString("100"))
		assert.NoError(t, err)
	})
}
