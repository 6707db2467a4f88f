package review

import (
	catalogRepo "shop_backoffice/internal/domain/catalog/repository"
	catalogService "shop_backoffice/internal/domain/catalog/service"
	"shop_backoffice/internal/domain/review/handler"
	"shop_backoffice/internal/domain/review/repository"
	"shop_backoffice/internal/domain/review/service"
	"shop_backoffice/internal/pkg/middleware"
	"shop_backoffice/internal/pkg/registry"
)

// ReviewModule 商品评价模块
type ReviewModule struct{}

func init() {
	registry.Register(&ReviewModule{})
}

func (m *ReviewModule) Name() string {
	return "review"
}

func (m *ReviewModule) Priority() int {
	return 12
}

func (m *ReviewModule) Init(ctx *registry.ModuleContext) error {
	catalog := catalogService.NewCatalogService(catalogRepo.NewCatalogRepository(ctx.DB))
	svc := service.NewReviewService(repository.NewReviewRepository(ctx.DB), catalog)
	h := handler.NewReviewHandler(svc)

	// 公开读取
	ctx.Router.GET("/products/:id/reviews", h.GetProductReviews)
	ctx.Router.GET("/products/:id/rating", h.GetProductRating)

	// 登录用户写入
	authGroup := ctx.Router.Group("/products")
	authGroup.Use(middleware.AuthMiddleware())
	{
		authGroup.POST("/:id/reviews", h.CreateReview)
	}

	// 管理员删除
	adminGroup := ctx.Router.Group("/admin/reviews")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		adminGroup.DELETE("/:id", h.DeleteReview)
	}

	return nil
}
