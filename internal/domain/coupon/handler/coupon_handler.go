package handler

import (
	"errors"
	"net/http"
	"time"

	"shop_backoffice/internal/domain/coupon/model"
	"shop_backoffice/internal/domain/coupon/service"
	"shop_backoffice/pkg/response"
	"shop_backoffice/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CouponHandler 优惠券处理器
type CouponHandler struct {
	service service.CouponService
}

// NewCouponHandler 创建处理器
func NewCouponHandler(service service.CouponService) *CouponHandler {
	return &CouponHandler{service: service}
}

// CreateCouponInput 创建优惠券输入
type CreateCouponInput struct {
	Code               string           `json:"code" binding:"required"`
	Type               string           `json:"type" binding:"required,oneof=percentage fixed_amount"`
	Value              decimal.Decimal  `json:"value" binding:"required"`
	MinimumOrderAmount *decimal.Decimal `json:"minimumOrderAmount"`
	UsageLimit         *int             `json:"usageLimit" binding:"omitempty,min=1"`
	ExpiresAt          *time.Time       `json:"expiresAt"`
}

// ValidateCouponInput 预校验输入
type ValidateCouponInput struct {
	Code        string          `json:"code" binding:"required"`
	OrderAmount decimal.Decimal `json:"orderAmount" binding:"required"`
}

// CreateCoupon 创建优惠券 (管理员)
func (h *CouponHandler) CreateCoupon(c *gin.Context) {
	var input CreateCouponInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	coupon, err := h.service.CreateCoupon(service.CreateCouponInput{
		Code:               input.Code,
		Type:               input.Type,
		Value:              input.Value,
		MinimumOrderAmount: input.MinimumOrderAmount,
		UsageLimit:         input.UsageLimit,
		ExpiresAt:          input.ExpiresAt,
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}
	response.Success(c, coupon)
}

// GetCoupons 获取优惠券列表 (管理员)
func (h *CouponHandler) GetCoupons(c *gin.Context) {
	var p utils.Pagination
	if err := c.ShouldBindQuery(&p); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	coupons, total, err := h.service.GetCoupons(p.Page, p.Limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to fetch coupons")
		return
	}
	response.Success(c, utils.PageResult{List: coupons, Total: total, Page: p.Page, Limit: p.Limit})
}

// GetCoupon 获取单个优惠券 (管理员)
func (h *CouponHandler) GetCoupon(c *gin.Context) {
	coupon, err := h.service.GetCoupon(c.Param("id"))
	if err != nil {
		if errors.Is(err, model.ErrCouponNotFound) {
			response.Error(c, http.StatusNotFound, response.ErrCouponNotFound, "Coupon not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}
	response.Success(c, coupon)
}

// DeleteCoupon 停用优惠券 (管理员)
func (h *CouponHandler) DeleteCoupon(c *gin.Context) {
	if err := h.service.DeactivateCoupon(c.Param("id")); err != nil {
		if errors.Is(err, model.ErrCouponNotFound) {
			response.Error(c, http.StatusNotFound, response.ErrCouponNotFound, "Coupon not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
		return
	}
	response.Success(c, true)
}

// ValidateCoupon 下单前预校验
func (h *CouponHandler) ValidateCoupon(c *gin.Context) {
	var input ValidateCouponInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	result := h.service.ValidateCoupon(input.Code, input.OrderAmount)
	response.Success(c, result)
}
