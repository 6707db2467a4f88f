package response

// 业务状态码
const (
	CodeSuccess = 0
	CodeError   = 1

	// 用户模块错误 100xx
	ErrUserExists   = 10001
	ErrUserNotFound = 10002
	ErrAuthFailed   = 10003
	ErrTokenInvalid = 10004
	ErrNoPermission = 10005

	// 优惠券模块错误 200xx
	ErrCouponNotFound   = 20001
	ErrCouponExpired    = 20002
	ErrCouponExhausted  = 20003
	ErrMinOrderNotMet   = 20004

	// 订单模块错误 300xx
	ErrOrderNotFound      = 30001
	ErrPriceMismatch      = 30002
	ErrInsufficientStock  = 30003
	ErrInvalidTransition  = 30004

	// 商品模块错误 400xx
	ErrProductNotFound  = 40001
	ErrCategoryNotFound = 40002

	// 系统错误 500xx
	ErrServerInternal  = 50001
	ErrInvalidParam    = 50002
	ErrTooManyRequests = 50003
)
