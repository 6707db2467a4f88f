package service

import (
	"errors"

	catalogRepo "shop_backoffice/internal/domain/catalog/repository"
	couponModel "shop_backoffice/internal/domain/coupon/model"
	couponRepo "shop_backoffice/internal/domain/coupon/repository"
	"shop_backoffice/internal/domain/order/model"
	"shop_backoffice/internal/domain/order/repository"
	userRepo "shop_backoffice/internal/domain/user/repository"
	userService "shop_backoffice/internal/domain/user/service"
	"shop_backoffice/internal/pkg/worker"
	"shop_backoffice/pkg/metrics"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// priceTolerance 客户端报价与当前售价允许的最大偏差
var priceTolerance = decimal.NewFromFloat(0.01)

// OrderItemInput 下单时的单行输入
// Price 是客户端看到的单价，与当前售价不一致 (超过 0.01) 时拒绝下单
type OrderItemInput struct {
	ProductID string
	Quantity  int
	Price     decimal.Decimal
}

// OrderService 订单服务接口
type OrderService interface {
	CreateOrder(userID string, items []OrderItemInput, couponCode string) (*model.Order, error)
	// CancelOrder userID 为空表示管理员操作，不校验归属
	CancelOrder(orderID, userID string) (*model.Order, error)
	UpdateStatus(orderID, status string) (*model.Order, error)
	UpdatePaymentStatus(orderID, paymentStatus string) (*model.Order, error)
	GetOrders(filter model.OrderFilter, page, limit int) ([]model.Order, int64, error)
	GetOrder(id string) (*model.Order, error)
}

type orderService struct {
	repo     repository.OrderRepository
	users    userRepo.UserRepository
	products catalogRepo.CatalogRepository
	coupons  couponRepo.CouponRepository
	events   *worker.WorkerPool
	metrics  *metrics.Collector
}

// NewOrderService 创建订单服务
// events 和 metrics 可为 nil (比如在测试里)
func NewOrderService(
	repo repository.OrderRepository,
	users userRepo.UserRepository,
	products catalogRepo.CatalogRepository,
	coupons couponRepo.CouponRepository,
	events *worker.WorkerPool,
	collector *metrics.Collector,
) OrderService {
	return &orderService{
		repo:     repo,
		users:    users,
		products: products,
		coupons:  coupons,
		events:   events,
		metrics:  collector,
	}
}

// CreateOrder 创建订单
// 校验顺序：用户 → 逐行 (商品存在且在售 → 价格一致 → 库存充足) → 优惠券
// 第一个失败即返回，不留任何部分写入；持久化阶段 (订单头+订单行+扣库存+核销券)
// 在仓库层的单个事务内完成
func (s *orderService) CreateOrder(userID string, items []OrderItemInput, couponCode string) (*model.Order, error) {
	// 1. 用户必须存在
	if _, err := s.users.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userService.ErrUserNotFound
		}
		return nil, err
	}

	if len(items) == 0 {
		return nil, model.ErrEmptyItems
	}

	// 2. 逐行校验，按输入顺序，第一个失败即中止
	orderItems := make([]model.OrderItem, 0, len(items))
	deductions := make([]model.StockDeduction, 0, len(items))
	total := decimal.Zero

	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, model.ErrInvalidQuantity
		}

		product, err := s.products.GetProductByID(item.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, model.ErrProductNotFound
			}
			return nil, err
		}
		if !product.IsActive {
			return nil, model.ErrProductNotFound
		}

		// 客户端报价与当前售价偏差不超过 0.01，防止使用过期价格下单
		if item.Price.Sub(product.Price).Abs().GreaterThan(priceTolerance) {
			return nil, model.ErrPriceMismatch
		}

		// 只校验做库存管理的商品
		if product.StockQuantity != nil {
			if *product.StockQuantity < item.Quantity {
				return nil, model.ErrInsufficientStock
			}
			deductions = append(deductions, model.StockDeduction{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			})
		}

		lineTotal := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
		orderItems = append(orderItems, model.OrderItem{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.Price.Round(2),
			TotalPrice: lineTotal,
		})
		total = total.Add(lineTotal)
	}

	// 3. 解析并应用优惠券
	discount := decimal.Zero
	var couponID *string
	if couponCode != "" {
		coupon, err := s.coupons.GetByCode(couponCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, couponModel.ErrCouponNotFound
			}
			return nil, err
		}

		discount, err = coupon.ValidateForAmount(total)
		if err != nil {
			return nil, err
		}
		couponID = &coupon.ID
	}

	final := total.Sub(discount)
	if final.IsNegative() {
		final = decimal.Zero
	}

	order := &model.Order{
		UserID:         userID,
		TotalAmount:    total,
		DiscountAmount: discount,
		FinalAmount:    final,
		CouponID:       couponID,
		Status:         model.StatusPending,
		PaymentStatus:  model.PaymentPending,
		Items:          orderItems,
	}

	// 4. 事务写入：订单头、订单行、库存扣减、优惠券核销
	if err := s.repo.Create(order, deductions); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.OrderCreated()
	}
	s.recordEvent(order.ID, "", model.StatusPending, "order created")

	return order, nil
}

// CancelOrder 取消订单并回补库存
// userID 非空时校验归属；归属不符与订单不存在返回同样的错误
func (s *orderService) CancelOrder(orderID, userID string) (*model.Order, error) {
	order, err := s.getForUser(orderID, userID)
	if err != nil {
		return nil, err
	}

	switch order.Status {
	case model.StatusCompleted, model.StatusRefunded:
		return nil, model.ErrCannotCancel
	case model.StatusCancelled:
		return nil, model.ErrAlreadyCancelled
	}

	from := order.Status
	restocks := make([]model.StockDeduction, 0, len(order.Items))
	for _, item := range order.Items {
		restocks = append(restocks, model.StockDeduction{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	if err := s.repo.Cancel(order, restocks); err != nil {
		return nil, err
	}
	order.Status = model.StatusCancelled

	if s.metrics != nil {
		s.metrics.OrderCancelled()
	}
	s.recordEvent(order.ID, from, model.StatusCancelled, "order cancelled")

	return order, nil
}

// UpdateStatus 通过状态机变更订单状态
// 目标为 cancelled 时走专门的取消路径，保证库存回补
func (s *orderService) UpdateStatus(orderID, status string) (*model.Order, error) {
	if !model.IsValidStatus(status) {
		return nil, model.ErrInvalidTransition
	}
	if status == model.StatusCancelled {
		return s.CancelOrder(orderID, "")
	}

	order, err := s.getForUser(orderID, "")
	if err != nil {
		return nil, err
	}

	if !model.CanTransition(order.Status, status) {
		return nil, model.ErrInvalidTransition
	}

	from := order.Status
	order.Status = status
	if err := s.repo.UpdateStatus(order); err != nil {
		return nil, err
	}

	s.recordEvent(order.ID, from, status, "status updated")
	return order, nil
}

// UpdatePaymentStatus 通过状态机变更支付状态
func (s *orderService) UpdatePaymentStatus(orderID, paymentStatus string) (*model.Order, error) {
	if !model.IsValidPaymentStatus(paymentStatus) {
		return nil, model.ErrInvalidTransition
	}

	order, err := s.getForUser(orderID, "")
	if err != nil {
		return nil, err
	}

	if !model.CanTransitionPayment(order.PaymentStatus, paymentStatus) {
		return nil, model.ErrInvalidTransition
	}

	from := order.PaymentStatus
	order.PaymentStatus = paymentStatus
	if err := s.repo.UpdateStatus(order); err != nil {
		return nil, err
	}

	s.recordEvent(order.ID, from, paymentStatus, "payment status updated")
	return order, nil
}

// GetOrders 按条件获取订单列表
func (s *orderService) GetOrders(filter model.OrderFilter, page, limit int) ([]model.Order, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	return s.repo.GetList(filter, (page-1)*limit, limit)
}

// GetOrder 获取订单详情（含用户、订单行、优惠券）
func (s *orderService) GetOrder(id string) (*model.Order, error) {
	order, err := s.repo.GetDetail(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) getForUser(orderID, userID string) (*model.Order, error) {
	var (
		order *model.Order
		err   error
	)
	if userID != "" {
		order, err = s.repo.GetByIDForUser(orderID, userID)
	} else {
		order, err = s.repo.GetByID(orderID)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) recordEvent(orderID, from, to, note string) {
	if s.events == nil {
		return
	}
	s.events.AddTask(worker.OrderEventTask{
		OrderID:    orderID,
		FromStatus: from,
		ToStatus:   to,
		Note:       note,
	})
}
