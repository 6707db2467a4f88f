package model

import (
	orderModel "shop_backoffice/internal/domain/order/model"

	"github.com/shopspring/decimal"
)

// Stats 后台总览统计
type Stats struct {
	UserCount    int64           `json:"userCount"`
	ProductCount int64           `json:"productCount"`
	OrderCount   int64           `json:"orderCount"`
	Revenue      decimal.Decimal `json:"revenue"` // 非取消订单的 final_amount 合计
}

// StatusCount 订单状态分布
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// TopProduct 销量排行项
type TopProduct struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int64           `json:"quantity"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// DailySales 按天销售汇总
type DailySales struct {
	Date       string          `json:"date"`
	OrderCount int64           `json:"orderCount"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// Overview 仪表盘聚合视图
type Overview struct {
	Stats        Stats              `json:"stats"`
	StatusCounts []StatusCount      `json:"statusCounts"`
	RecentOrders []orderModel.Order `json:"recentOrders"`
	TopProducts  []TopProduct       `json:"topProducts"`
}
