package repository

import (
	catalogModel "shop_backoffice/internal/domain/catalog/model"
	couponRepo "shop_backoffice/internal/domain/coupon/repository"
	"shop_backoffice/internal/domain/order/model"

	"gorm.io/gorm"
)

// OrderRepository 订单仓库
// Create/Cancel 内部使用单个数据库事务：任一步失败全部回滚，
// 避免订单头、订单行、库存、优惠券计数之间出现不一致
type OrderRepository interface {
	Create(order *model.Order, deductions []model.StockDeduction) error
	GetByID(id string) (*model.Order, error)
	GetByIDForUser(id, userID string) (*model.Order, error)
	GetDetail(id string) (*model.Order, error)
	GetList(filter model.OrderFilter, offset, limit int) ([]model.Order, int64, error)
	UpdateStatus(order *model.Order) error
	Cancel(order *model.Order, restocks []model.StockDeduction) error
	CreateEvent(event *model.OrderEvent) error
}

type orderRepository struct {
	db      *gorm.DB
	coupons couponRepo.CouponRepository
}

// NewOrderRepository 创建仓库实例
func NewOrderRepository(db *gorm.DB, coupons couponRepo.CouponRepository) OrderRepository {
	return &orderRepository{db: db, coupons: coupons}
}

// Create 在一个事务内写入订单头+订单行，扣减库存并核销优惠券
// 库存扣减用条件 UPDATE (stock_quantity >= qty)，并发超卖时影响行数为 0，
// 返回 ErrInsufficientStock 并回滚整个事务
func (r *orderRepository) Create(order *model.Order, deductions []model.StockDeduction) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// 1) 订单头 + 订单行 (gorm 关联写入)
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		// 2) 扣减库存，只针对做库存管理的商品
		for _, d := range deductions {
			result := tx.Model(&catalogModel.Product{}).
				Where("id = ? AND stock_quantity IS NOT NULL AND stock_quantity >= ?", d.ProductID, d.Quantity).
				UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", d.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return model.ErrInsufficientStock
			}
		}

		// 3) 核销优惠券 (条件自增，并发下用完即失败)
		if order.CouponID != nil {
			if err := r.coupons.IncrementUsage(tx, *order.CouponID); err != nil {
				return err
			}
		}

		return nil
	})
}

// GetByID 根据ID获取订单（含订单行）
func (r *orderRepository) GetByID(id string) (*model.Order, error) {
	var order model.Order
	if err := r.db.Preload("Items").Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// GetByIDForUser 根据ID获取订单并校验归属
// 不属于该用户时与不存在返回同样的错误，避免泄露订单存在性
func (r *orderRepository) GetByIDForUser(id, userID string) (*model.Order, error) {
	var order model.Order
	if err := r.db.Preload("Items").
		Where("id = ? AND user_id = ?", id, userID).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// GetDetail 获取订单详情，预加载用户、订单行(含商品)和优惠券
func (r *orderRepository) GetDetail(id string) (*model.Order, error) {
	var order model.Order
	if err := r.db.
		Preload("User").
		Preload("Items").
		Preload("Items.Product").
		Preload("Coupon").
		Where("id = ?", id).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// GetList 按条件获取订单列表（分页）
func (r *orderRepository) GetList(filter model.OrderFilter, offset, limit int) ([]model.Order, int64, error) {
	var orders []model.Order
	var total int64

	query := r.db.Model(&model.Order{})
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.PaymentStatus != "" {
		query = query.Where("payment_status = ?", filter.PaymentStatus)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("Items").Offset(offset).Limit(limit).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// UpdateStatus 保存状态变更
func (r *orderRepository) UpdateStatus(order *model.Order) error {
	return r.db.Model(&model.Order{}).
		Where("id = ?", order.ID).
		Updates(map[string]interface{}{
			"status":         order.Status,
			"payment_status": order.PaymentStatus,
		}).Error
}

// Cancel 在一个事务内取消订单并回补库存
// 回补只作用于做库存管理的商品，未管理库存的行影响行数为 0 属正常
func (r *orderRepository) Cancel(order *model.Order, restocks []model.StockDeduction) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Order{}).
			Where("id = ? AND status NOT IN ?", order.ID, []string{model.StatusCancelled, model.StatusCompleted, model.StatusRefunded}).
			Update("status", model.StatusCancelled)
		if result.Error != nil {
			return result.Error
		}
		// 并发取消时第二个事务在这里失败
		if result.RowsAffected == 0 {
			return model.ErrAlreadyCancelled
		}

		for _, d := range restocks {
			if err := tx.Model(&catalogModel.Product{}).
				Where("id = ? AND stock_quantity IS NOT NULL", d.ProductID).
				UpdateColumn("stock_quantity", gorm.Expr("stock_quantity + ?", d.Quantity)).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// CreateEvent 写入订单事件流水
func (r *orderRepository) CreateEvent(event *model.OrderEvent) error {
	return r.db.Create(event).Error
}
