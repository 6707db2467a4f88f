package dashboard

import (
	"shop_backoffice/internal/domain/dashboard/handler"
	"shop_backoffice/internal/domain/dashboard/repository"
	"shop_backoffice/internal/domain/dashboard/service"
	"shop_backoffice/internal/pkg/middleware"
	"shop_backoffice/internal/pkg/registry"
	"shop_backoffice/pkg/cache"
)

// DashboardModule 后台仪表盘模块
type DashboardModule struct{}

func init() {
	registry.Register(&DashboardModule{})
}

func (m *DashboardModule) Name() string {
	return "dashboard"
}

func (m *DashboardModule) Priority() int {
	return 20
}

func (m *DashboardModule) Init(ctx *registry.ModuleContext) error {
	var cacheService cache.CacheService
	if ctx.Redis != nil {
		cacheService = cache.NewRedisCache(ctx.Redis)
	}
	svc := service.NewDashboardService(repository.NewDashboardRepository(ctx.DB), cacheService)
	h := handler.NewDashboardHandler(svc)

	adminGroup := ctx.Router.Group("/admin/dashboard")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		adminGroup.GET("", h.GetOverview)
		adminGroup.GET("/sales", h.GetDailySales)
	}

	return nil
}
