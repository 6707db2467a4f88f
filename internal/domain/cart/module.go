package cart

import (
	"shop_backoffice/internal/domain/cart/handler"
	"shop_backoffice/internal/domain/cart/repository"
	"shop_backoffice/internal/domain/cart/service"
	catalogRepo "shop_backoffice/internal/domain/catalog/repository"
	catalogService "shop_backoffice/internal/domain/catalog/service"
	"shop_backoffice/internal/pkg/middleware"
	"shop_backoffice/internal/pkg/registry"
)

// CartModule 购物车模块
type CartModule struct{}

func init() {
	registry.Register(&CartModule{})
}

func (m *CartModule) Name() string {
	return "cart"
}

func (m *CartModule) Priority() int {
	return 11
}

func (m *CartModule) Init(ctx *registry.ModuleContext) error {
	catalog := catalogService.NewCatalogService(catalogRepo.NewCatalogRepository(ctx.DB))
	svc := service.NewCartService(repository.NewCartRepository(ctx.DB), catalog)
	h := handler.NewCartHandler(svc)

	cartGroup := ctx.Router.Group("/cart")
	cartGroup.Use(middleware.AuthMiddleware())
	{
		cartGroup.GET("/", h.GetCart)
		cartGroup.POST("/items", h.AddItem)
		cartGroup.PUT("/items/:productId", h.UpdateItem)
		cartGroup.DELETE("/items/:productId", h.RemoveItem)
		cartGroup.DELETE("/", h.Clear)
	}

	return nil
}
