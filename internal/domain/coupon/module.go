package coupon

import (
	"shop_backoffice/internal/domain/coupon/handler"
	"shop_backoffice/internal/domain/coupon/repository"
	"shop_backoffice/internal/domain/coupon/service"
	"shop_backoffice/internal/pkg/middleware"
	"shop_backoffice/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// CouponModule 优惠券模块
type CouponModule struct{}

func init() {
	registry.Register(&CouponModule{})
}

func (m *CouponModule) Name() string {
	return "coupon"
}

func (m *CouponModule) Priority() int {
	// 先于订单模块初始化
	return 3
}

func (m *CouponModule) Init(ctx *registry.ModuleContext) error {
	repo := repository.NewCouponRepository(ctx.DB)
	svc := service.NewCouponService(repo)
	h := handler.NewCouponHandler(svc)

	setupRoutes(ctx.Router, h)
	return nil
}

func setupRoutes(r *gin.Engine, h *handler.CouponHandler) {
	// 登录用户可预校验优惠券
	couponGroup := r.Group("/coupons")
	couponGroup.Use(middleware.AuthMiddleware())
	{
		couponGroup.POST("/validate", h.ValidateCoupon)
	}

	// 管理员路由
	adminGroup := r.Group("/admin/coupons")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		adminGroup.POST("/", h.CreateCoupon)
		adminGroup.GET("/", h.GetCoupons)
		adminGroup.GET("/:id", h.GetCoupon)
		adminGroup.DELETE("/:id", h.DeleteCoupon)
	}
}
