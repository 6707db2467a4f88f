package settings

import (
	"shop_backoffice/internal/domain/settings/handler"
	"shop_backoffice/internal/domain/settings/repository"
	"shop_backoffice/internal/domain/settings/service"
	"shop_backoffice/internal/pkg/middleware"
	"shop_backoffice/internal/pkg/registry"
)

// SettingsModule 站点配置模块
type SettingsModule struct{}

func init() {
	registry.Register(&SettingsModule{})
}

func (m *SettingsModule) Name() string {
	return "settings"
}

func (m *SettingsModule) Priority() int {
	return 15
}

func (m *SettingsModule) Init(ctx *registry.ModuleContext) error {
	svc := service.NewSettingsService(repository.NewSettingsRepository(ctx.DB))
	h := handler.NewSettingsHandler(svc)

	// 公开读取站点配置
	ctx.Router.GET("/settings", h.GetAll)

	// 管理员读写
	adminGroup := ctx.Router.Group("/admin/settings")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		adminGroup.GET("", h.GetAll)
		adminGroup.GET("/:key", h.Get)
		adminGroup.PUT("/:key", h.Set)
		adminGroup.DELETE("/:key", h.Delete)
	}

	return nil
}
