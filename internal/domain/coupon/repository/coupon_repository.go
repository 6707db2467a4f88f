package repository

import (
	"shop_backoffice/internal/domain/coupon/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CouponRepository 优惠券仓库
type CouponRepository interface {
	Create(coupon *model.Coupon) error
	GetByID(id string) (*model.Coupon, error)
	GetByCode(code string) (*model.Coupon, error)
	GetList(offset, limit int) ([]model.Coupon, int64, error)
	Update(coupon *model.Coupon) error

	// GetByCodeForUpdate 在事务内加行锁读取，用于订单创建
	GetByCodeForUpdate(tx *gorm.DB, code string) (*model.Coupon, error)
	// IncrementUsage 条件自增 used_count，达到 usage_limit 时不生效
	IncrementUsage(tx *gorm.DB, couponID string) error
}

type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository 创建仓库实例
func NewCouponRepository(db *gorm.DB) CouponRepository {
	return &couponRepository{db: db}
}

func (r *couponRepository) Create(coupon *model.Coupon) error {
	return r.db.Create(coupon).Error
}

func (r *couponRepository) GetByID(id string) (*model.Coupon, error) {
	var coupon model.Coupon
	if err := r.db.Where("id = ?", id).First(&coupon).Error; err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *couponRepository) GetByCode(code string) (*model.Coupon, error) {
	var coupon model.Coupon
	if err := r.db.Where("code = ?", code).First(&coupon).Error; err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *couponRepository) GetList(offset, limit int) ([]model.Coupon, int64, error) {
	var coupons []model.Coupon
	var total int64

	if err := r.db.Model(&model.Coupon{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Offset(offset).Limit(limit).Order("created_at DESC").Find(&coupons).Error; err != nil {
		return nil, 0, err
	}
	return coupons, total, nil
}

func (r *couponRepository) Update(coupon *model.Coupon) error {
	return r.db.Save(coupon).Error
}

// GetByCodeForUpdate 行锁读取 (SELECT ... FOR UPDATE)
func (r *couponRepository) GetByCodeForUpdate(tx *gorm.DB, code string) (*model.Coupon, error) {
	var coupon model.Coupon
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("code = ?", code).
		First(&coupon).Error; err != nil {
		return nil, err
	}
	return &coupon, nil
}

// IncrementUsage 条件自增核销次数
// usage_limit 为 NULL 时不限次数；影响行数为 0 说明并发下已被用完
func (r *couponRepository) IncrementUsage(tx *gorm.DB, couponID string) error {
	result := tx.Model(&model.Coupon{}).
		Where("id = ? AND (usage_limit IS NULL OR used_count < usage_limit)", couponID).
		UpdateColumn("used_count", gorm.Expr("used_count + 1"))

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrCouponExhausted
	}
	return nil
}
