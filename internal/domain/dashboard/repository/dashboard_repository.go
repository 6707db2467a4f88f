package repository

import (
	catalogModel "shop_backoffice/internal/domain/catalog/model"
	"shop_backoffice/internal/domain/dashboard/model"
	orderModel "shop_backoffice/internal/domain/order/model"
	userModel "shop_backoffice/internal/domain/user/model"

	"gorm.io/gorm"
)

// DashboardRepository 仪表盘聚合查询
type DashboardRepository interface {
	GetStats() (*model.Stats, error)
	GetStatusCounts() ([]model.StatusCount, error)
	GetRecentOrders(limit int) ([]orderModel.Order, error)
	GetTopProducts(limit int) ([]model.TopProduct, error)
	GetDailySales(days int) ([]model.DailySales, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository 创建仓库实例
func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

// GetStats 总量统计，营收只计入未取消订单
func (r *dashboardRepository) GetStats() (*model.Stats, error) {
	var stats model.Stats

	if err := r.db.Model(&userModel.User{}).Count(&stats.UserCount).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&catalogModel.Product{}).Count(&stats.ProductCount).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&orderModel.Order{}).Count(&stats.OrderCount).Error; err != nil {
		return nil, err
	}

	err := r.db.Model(&orderModel.Order{}).
		Select("COALESCE(SUM(final_amount), 0)").
		Where("status <> ?", orderModel.StatusCancelled).
		Row().
		Scan(&stats.Revenue)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetStatusCounts 订单状态分布
func (r *dashboardRepository) GetStatusCounts() ([]model.StatusCount, error) {
	var counts []model.StatusCount
	err := r.db.Model(&orderModel.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// GetRecentOrders 最新订单
func (r *dashboardRepository) GetRecentOrders(limit int) ([]orderModel.Order, error) {
	var orders []orderModel.Order
	err := r.db.Preload("User").Preload("Items").
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// GetTopProducts 按销量排行，只统计未取消订单
func (r *dashboardRepository) GetTopProducts(limit int) ([]model.TopProduct, error) {
	var products []model.TopProduct
	err := r.db.Model(&orderModel.OrderItem{}).
		Select("order_items.product_id, products.name AS product_name, SUM(order_items.quantity) AS quantity, SUM(order_items.total_price) AS revenue").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("orders.status <> ? AND orders.deleted_at IS NULL", orderModel.StatusCancelled).
		Group("order_items.product_id, products.name").
		Order("quantity DESC").
		Limit(limit).
		Scan(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// GetDailySales 最近 N 天按天销售汇总
func (r *dashboardRepository) GetDailySales(days int) ([]model.DailySales, error) {
	var sales []model.DailySales
	err := r.db.Model(&orderModel.Order{}).
		Select("TO_CHAR(created_at, 'YYYY-MM-DD') AS date, COUNT(*) AS order_count, COALESCE(SUM(final_amount), 0) AS revenue").
		Where("status <> ? AND created_at >= CURRENT_DATE - ?::integer", orderModel.StatusCancelled, days).
		Group("TO_CHAR(created_at, 'YYYY-MM-DD')").
		Order("date ASC").
		Scan(&sales).Error
	if err != nil {
		return nil, err
	}
	return sales, nil
}
