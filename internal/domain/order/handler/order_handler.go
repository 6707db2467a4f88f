package handler

import (
	"errors"
	"net/http"

	couponModel "shop_backoffice/internal/domain/coupon/model"
	"shop_backoffice/internal/domain/order/model"
	"shop_backoffice/internal/domain/order/service"
	userService "shop_backoffice/internal/domain/user/service"
	"shop_backoffice/internal/pkg/middleware"
	"shop_backoffice/pkg/response"
	"shop_backoffice/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// OrderHandler 订单处理器
type OrderHandler struct {
	service service.OrderService
}

// NewOrderHandler 创建处理器
func NewOrderHandler(service service.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// OrderItemInput 下单行输入
type OrderItemInput struct {
	ProductID string          `json:"productId" binding:"required,uuid"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	Price     decimal.Decimal `json:"price" binding:"required"`
}

// CreateOrderInput 下单输入
type CreateOrderInput struct {
	Items      []OrderItemInput `json:"items" binding:"required,min=1,dive"`
	CouponCode string           `json:"couponCode"`
}

// AdminCreateOrderInput 管理员代客下单输入
type AdminCreateOrderInput struct {
	UserID string `json:"userId" binding:"required,uuid"`
	CreateOrderInput
}

// UpdateStatusInput 状态变更输入
type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// OrderListQuery 订单列表查询参数
type OrderListQuery struct {
	utils.Pagination
	UserID        string `form:"userId"`
	Status        string `form:"status"`
	PaymentStatus string `form:"paymentStatus"`
}

// CreateOrder 用户下单
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.ErrTokenInvalid, "User not authenticated")
		return
	}

	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	h.create(c, userID, input)
}

// AdminCreateOrder 管理员代客下单
func (h *OrderHandler) AdminCreateOrder(c *gin.Context) {
	var input AdminCreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	h.create(c, input.UserID, input.CreateOrderInput)
}

func (h *OrderHandler) create(c *gin.Context, userID string, input CreateOrderInput) {
	items := make([]service.OrderItemInput, len(input.Items))
	for i, item := range input.Items {
		items[i] = service.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}

	order, err := h.service.CreateOrder(userID, items, input.CouponCode)
	if err != nil {
		h.writeOrderError(c, err)
		return
	}
	response.Success(c, order)
}

// CancelOrder 用户取消自己的订单
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.ErrTokenInvalid, "User not authenticated")
		return
	}

	order, err := h.service.CancelOrder(c.Param("id"), userID)
	if err != nil {
		h.writeOrderError(c, err)
		return
	}
	response.Success(c, order)
}

// AdminCancelOrder 管理员取消任意订单
func (h *OrderHandler) AdminCancelOrder(c *gin.Context) {
	order, err := h.service.CancelOrder(c.Param("id"), "")
	if err != nil {
		h.writeOrderError(c, err)
		return
	}
	response.Success(c, order)
}

// UpdateStatus 管理员变更订单状态
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	order, err := h.service.UpdateStatus(c.Param("id"), input.Status)
	if err != nil {
		h.writeOrderError(c, err)
		return
	}
	response.Success(c, order)
}

// UpdatePaymentStatus 管理员变更支付状态
func (h *OrderHandler) UpdatePaymentStatus(c *gin.Context) {
	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	order, err := h.service.UpdatePaymentStatus(c.Param("id"), input.Status)
	if err != nil {
		h.writeOrderError(c, err)
		return
	}
	response.Success(c, order)
}

// GetMyOrders 用户查询自己的订单
func (h *OrderHandler) GetMyOrders(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.ErrTokenInvalid, "User not authenticated")
		return
	}

	var query OrderListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	filter := model.OrderFilter{
		UserID:        userID,
		Status:        query.Status,
		PaymentStatus: query.PaymentStatus,
	}
	orders, total, err := h.service.GetOrders(filter, query.Page, query.Limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to fetch orders")
		return
	}
	response.Success(c, utils.PageResult{List: orders, Total: total, Page: query.Page, Limit: query.Limit})
}

// GetOrders 管理员按条件查询订单
func (h *OrderHandler) GetOrders(c *gin.Context) {
	var query OrderListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	filter := model.OrderFilter{
		UserID:        query.UserID,
		Status:        query.Status,
		PaymentStatus: query.PaymentStatus,
	}
	orders, total, err := h.service.GetOrders(filter, query.Page, query.Limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to fetch orders")
		return
	}
	response.Success(c, utils.PageResult{List: orders, Total: total, Page: query.Page, Limit: query.Limit})
}

// GetOrder 获取订单详情 (管理员)
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.service.GetOrder(c.Param("id"))
	if err != nil {
		h.writeOrderError(c, err)
		return
	}
	response.Success(c, order)
}

// writeOrderError 将订单业务错误映射为响应码
func (h *OrderHandler) writeOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, userService.ErrUserNotFound):
		response.Error(c, http.StatusNotFound, response.ErrUserNotFound, err.Error())
	case errors.Is(err, model.ErrOrderNotFound):
		response.Error(c, http.StatusNotFound, response.ErrOrderNotFound, err.Error())
	case errors.Is(err, model.ErrProductNotFound):
		response.Error(c, http.StatusNotFound, response.ErrProductNotFound, err.Error())
	case errors.Is(err, model.ErrEmptyItems), errors.Is(err, model.ErrInvalidQuantity):
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
	case errors.Is(err, model.ErrPriceMismatch):
		response.Fail(c, response.ErrPriceMismatch, err.Error())
	case errors.Is(err, model.ErrInsufficientStock):
		response.Fail(c, response.ErrInsufficientStock, err.Error())
	case errors.Is(err, couponModel.ErrCouponNotFound):
		response.Fail(c, response.ErrCouponNotFound, err.Error())
	case errors.Is(err, couponModel.ErrCouponExpired):
		response.Fail(c, response.ErrCouponExpired, err.Error())
	case errors.Is(err, couponModel.ErrCouponExhausted):
		response.Fail(c, response.ErrCouponExhausted, err.Error())
	case errors.Is(err, couponModel.ErrMinimumNotMet):
		response.Fail(c, response.ErrMinOrderNotMet, err.Error())
	case errors.Is(err, model.ErrCannotCancel),
		errors.Is(err, model.ErrAlreadyCancelled),
		errors.Is(err, model.ErrInvalidTransition):
		response.Fail(c, response.ErrInvalidTransition, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
	}
}
