package service

import (
	"errors"
	"time"

	"shop_backoffice/internal/domain/coupon/model"
	"shop_backoffice/internal/domain/coupon/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateCouponInput 创建优惠券输入
type CreateCouponInput struct {
	Code               string
	Type               string
	Value              decimal.Decimal
	MinimumOrderAmount *decimal.Decimal
	UsageLimit         *int
	ExpiresAt          *time.Time
}

// ValidationResult 预校验结果，供下单前展示
// 校验失败时 Valid=false 且 Message 为可展示的原因，不作为错误抛出
type ValidationResult struct {
	Valid    bool             `json:"valid"`
	Coupon   *model.Coupon    `json:"coupon,omitempty"`
	Discount *decimal.Decimal `json:"discount,omitempty"`
	Message  string           `json:"message,omitempty"`
}

// CouponService 优惠券服务接口
type CouponService interface {
	CreateCoupon(input CreateCouponInput) (*model.Coupon, error)
	GetCoupons(page, limit int) ([]model.Coupon, int64, error)
	GetCoupon(id string) (*model.Coupon, error)
	DeactivateCoupon(id string) error
	ValidateCoupon(code string, orderAmount decimal.Decimal) ValidationResult
}

type couponService struct {
	repo repository.CouponRepository
}

// NewCouponService 创建优惠券服务
func NewCouponService(repo repository.CouponRepository) CouponService {
	return &couponService{repo: repo}
}

// CreateCoupon 创建优惠券
func (s *couponService) CreateCoupon(input CreateCouponInput) (*model.Coupon, error) {
	if input.Type != model.CouponTypePercentage && input.Type != model.CouponTypeFixedAmount {
		return nil, errors.New("coupon type must be percentage or fixed_amount")
	}

	coupon := &model.Coupon{
		Code:               input.Code,
		Type:               input.Type,
		Value:              input.Value.Round(2),
		MinimumOrderAmount: input.MinimumOrderAmount,
		UsageLimit:         input.UsageLimit,
		UsedCount:          0,
		IsActive:           true,
		ExpiresAt:          input.ExpiresAt,
	}
	if err := s.repo.Create(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// GetCoupons 获取优惠券列表
func (s *couponService) GetCoupons(page, limit int) ([]model.Coupon, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	return s.repo.GetList((page-1)*limit, limit)
}

// GetCoupon 获取单个优惠券
func (s *couponService) GetCoupon(id string) (*model.Coupon, error) {
	coupon, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrCouponNotFound
		}
		return nil, err
	}
	return coupon, nil
}

// DeactivateCoupon 停用优惠券
func (s *couponService) DeactivateCoupon(id string) error {
	coupon, err := s.GetCoupon(id)
	if err != nil {
		return err
	}

	coupon.IsActive = false
	return s.repo.Update(coupon)
}

// ValidateCoupon 下单前预校验：返回结构化结果而非错误
// 与订单创建共用 Coupon.ValidateForAmount，保证两处行为一致
func (s *couponService) ValidateCoupon(code string, orderAmount decimal.Decimal) ValidationResult {
	coupon, err := s.repo.GetByCode(code)
	if err != nil {
		return ValidationResult{Valid: false, Message: model.ErrCouponNotFound.Error()}
	}

	discount, err := coupon.ValidateForAmount(orderAmount)
	if err != nil {
		return ValidationResult{Valid: false, Message: err.Error()}
	}

	return ValidationResult{Valid: true, Coupon: coupon, Discount: &discount}
}
