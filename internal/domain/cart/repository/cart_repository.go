package repository

import (
	"shop_backoffice/internal/domain/cart/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartRepository 购物车仓库
type CartRepository interface {
	Upsert(item *model.CartItem) error
	UpdateQuantity(userID, productID string, quantity int) error
	GetByUser(userID string) ([]model.CartItem, error)
	GetItem(userID, productID string) (*model.CartItem, error)
	Delete(userID, productID string) error
	Clear(userID string) error
}

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建仓库实例
func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

// Upsert 新增或累加数量 (user_id + product_id 唯一)
func (r *cartRepository) Upsert(item *model.CartItem) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("cart_items.quantity + ?", item.Quantity),
			"updated_at": gorm.Expr("NOW()"),
		}),
	}).Create(item).Error
}

// UpdateQuantity 直接设置数量
func (r *cartRepository) UpdateQuantity(userID, productID string, quantity int) error {
	return r.db.Model(&model.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", quantity).Error
}

func (r *cartRepository) GetByUser(userID string) ([]model.CartItem, error) {
	var items []model.CartItem
	if err := r.db.Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *cartRepository) GetItem(userID, productID string) (*model.CartItem, error) {
	var item model.CartItem
	if err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) Delete(userID, productID string) error {
	return r.db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.CartItem{}).Error
}

func (r *cartRepository) Clear(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.CartItem{}).Error
}
