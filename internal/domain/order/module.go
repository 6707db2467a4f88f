package order

import (
	catalogRepo "shop_backoffice/internal/domain/catalog/repository"
	couponRepo "shop_backoffice/internal/domain/coupon/repository"
	"shop_backoffice/internal/domain/order/handler"
	"shop_backoffice/internal/domain/order/repository"
	"shop_backoffice/internal/domain/order/service"
	userRepo "shop_backoffice/internal/domain/user/repository"
	"shop_backoffice/internal/pkg/middleware"
	"shop_backoffice/internal/pkg/registry"
	"shop_backoffice/internal/pkg/worker"
	"shop_backoffice/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// OrderModule 订单模块
type OrderModule struct{}

func init() {
	registry.Register(&OrderModule{})
}

func (m *OrderModule) Name() string {
	return "order"
}

func (m *OrderModule) Priority() int {
	// 依赖用户、商品、优惠券模块
	return 10
}

func (m *OrderModule) Init(ctx *registry.ModuleContext) error {
	coupons := couponRepo.NewCouponRepository(ctx.DB)
	orderRepository := repository.NewOrderRepository(ctx.DB, coupons)

	// 订单事件异步落库 (5 个 worker，缓冲 1000)
	events := worker.NewWorkerPool(orderRepository, 5, 1000)
	events.Start()

	svc := service.NewOrderService(
		orderRepository,
		userRepo.NewUserRepository(ctx.DB),
		catalogRepo.NewCatalogRepository(ctx.DB),
		coupons,
		events,
		metrics.Default(),
	)
	h := handler.NewOrderHandler(svc)

	setupRoutes(ctx.Router, h)
	return nil
}

func setupRoutes(r *gin.Engine, h *handler.OrderHandler) {
	// 用户路由
	orderGroup := r.Group("/orders")
	orderGroup.Use(middleware.AuthMiddleware())
	{
		orderGroup.POST("/", h.CreateOrder)
		orderGroup.GET("/", h.GetMyOrders)
		orderGroup.POST("/:id/cancel", h.CancelOrder)
	}

	// 管理员路由
	adminGroup := r.Group("/admin/orders")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		adminGroup.POST("/", h.AdminCreateOrder)
		adminGroup.GET("/", h.GetOrders)
		adminGroup.GET("/:id", h.GetOrder)
		adminGroup.POST("/:id/cancel", h.AdminCancelOrder)
		adminGroup.PUT("/:id/status", h.UpdateStatus)
		adminGroup.PUT("/:id/payment-status", h.UpdatePaymentStatus)
	}
}
