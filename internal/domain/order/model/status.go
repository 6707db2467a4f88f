package model

import "errors"

// 订单状态
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
	StatusRefunded   = "refunded"
)

// 支付状态
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
	PaymentRefunded  = "refunded"
)

// 订单模块业务错误
var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrEmptyItems        = errors.New("order must contain at least one item")
	ErrInvalidQuantity   = errors.New("quantity must be greater than 0")
	ErrProductNotFound   = errors.New("product not found or inactive")
	ErrPriceMismatch     = errors.New("product price has changed, please refresh")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrCannotCancel      = errors.New("cannot cancel completed or refunded orders")
	ErrAlreadyCancelled  = errors.New("order already cancelled")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// statusTransitions 订单状态机
// 取消有独立的受保护路径（含库存回补），completed/refunded/cancelled 不可逆转回 pending
var statusTransitions = map[string][]string{
	StatusPending:    {StatusProcessing, StatusCompleted, StatusCancelled},
	StatusProcessing: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {StatusRefunded},
	StatusCancelled:  {},
	StatusRefunded:   {},
}

// paymentTransitions 支付状态机
// failed 可重新回到 pending 重试支付
var paymentTransitions = map[string][]string{
	PaymentPending:   {PaymentCompleted, PaymentFailed},
	PaymentCompleted: {PaymentRefunded},
	PaymentFailed:    {PaymentPending},
	PaymentRefunded:  {},
}

// IsValidStatus 判断是否为合法订单状态
func IsValidStatus(s string) bool {
	_, ok := statusTransitions[s]
	return ok
}

// IsValidPaymentStatus 判断是否为合法支付状态
func IsValidPaymentStatus(s string) bool {
	_, ok := paymentTransitions[s]
	return ok
}

// CanTransition 判断订单状态能否从 from 迁移到 to
func CanTransition(from, to string) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CanTransitionPayment 判断支付状态能否从 from 迁移到 to
func CanTransitionPayment(from, to string) bool {
	for _, next := range paymentTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
