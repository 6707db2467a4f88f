package blog

import (
	"shop_backoffice/internal/domain/blog/handler"
	"shop_backoffice/internal/domain/blog/repository"
	"shop_backoffice/internal/domain/blog/service"
	"shop_backoffice/internal/pkg/middleware"
	"shop_backoffice/internal/pkg/registry"
)

// BlogModule 博客模块
type BlogModule struct{}

func init() {
	registry.Register(&BlogModule{})
}

func (m *BlogModule) Name() string {
	return "blog"
}

func (m *BlogModule) Priority() int {
	return 13
}

func (m *BlogModule) Init(ctx *registry.ModuleContext) error {
	svc := service.NewBlogService(repository.NewBlogRepository(ctx.DB))
	h := handler.NewBlogHandler(svc)

	// 公开读取，只返回已发布文章
	ctx.Router.GET("/blog", h.GetPosts)
	ctx.Router.GET("/blog/:slug", h.GetPostBySlug)

	// 管理员读写
	adminGroup := ctx.Router.Group("/admin/blog")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		adminGroup.POST("", h.CreatePost)
		adminGroup.GET("", h.GetAllPosts)
		adminGroup.GET("/:id", h.GetPost)
		adminGroup.PUT("/:id", h.UpdatePost)
		adminGroup.DELETE("/:id", h.DeletePost)
	}

	return nil
}
