package contact

import (
	"shop_backoffice/internal/domain/contact/handler"
	"shop_backoffice/internal/domain/contact/repository"
	"shop_backoffice/internal/domain/contact/service"
	"shop_backoffice/internal/pkg/middleware"
	"shop_backoffice/internal/pkg/registry"
)

// ContactModule 客户留言模块
type ContactModule struct{}

func init() {
	registry.Register(&ContactModule{})
}

func (m *ContactModule) Name() string {
	return "contact"
}

func (m *ContactModule) Priority() int {
	return 14
}

func (m *ContactModule) Init(ctx *registry.ModuleContext) error {
	svc := service.NewContactService(repository.NewContactRepository(ctx.DB))
	h := handler.NewContactHandler(svc)

	// 公开提交
	ctx.Router.POST("/contact", h.Submit)

	// 管理员管理
	adminGroup := ctx.Router.Group("/admin/messages")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		adminGroup.GET("", h.GetMessages)
		adminGroup.GET("/:id", h.GetMessage)
		adminGroup.PUT("/:id/read", h.MarkRead)
		adminGroup.DELETE("/:id", h.DeleteMessage)
	}

	return nil
}
