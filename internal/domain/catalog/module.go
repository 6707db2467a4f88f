package catalog

import (
	"shop_backoffice/internal/domain/catalog/handler"
	"shop_backoffice/internal/domain/catalog/repository"
	"shop_backoffice/internal/domain/catalog/service"
	"shop_backoffice/internal/pkg/middleware"
	"shop_backoffice/internal/pkg/registry"
	"shop_backoffice/pkg/cache"

	"github.com/gin-gonic/gin"
)

// CatalogModule 分类与商品模块
type CatalogModule struct{}

func init() {
	registry.Register(&CatalogModule{})
}

func (m *CatalogModule) Name() string {
	return "catalog"
}

func (m *CatalogModule) Priority() int {
	// 先于订单、购物车模块初始化
	return 2
}

func (m *CatalogModule) Init(ctx *registry.ModuleContext) error {
	repo := repository.NewCatalogRepository(ctx.DB)
	svc := service.NewCatalogService(repo)

	// Redis 可用时套一层商品读缓存
	if ctx.Redis != nil {
		svc = service.NewCachedCatalogService(svc, cache.NewRedisCache(ctx.Redis))
	}

	h := handler.NewCatalogHandler(svc)
	setupRoutes(ctx.Router, h)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.CatalogHandler) {
	// 公开读取
	r.GET("/categories", h.GetCategories)
	r.GET("/products", h.GetProducts)
	r.GET("/products/:id", h.GetProduct)

	// 管理员写入
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		adminGroup.POST("/categories", h.CreateCategory)
		adminGroup.PUT("/categories/:id", h.UpdateCategory)
		adminGroup.DELETE("/categories/:id", h.DeleteCategory)

		adminGroup.POST("/products", h.CreateProduct)
		adminGroup.PUT("/products/:id", h.UpdateProduct)
		adminGroup.DELETE("/products/:id", h.DeleteProduct)
	}
}
