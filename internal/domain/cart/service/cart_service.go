package service

import (
	"errors"

	"shop_backoffice/internal/domain/cart/model"
	"shop_backoffice/internal/domain/cart/repository"
	catalogService "shop_backoffice/internal/domain/catalog/service"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrCartItemNotFound 购物车条目不存在
var ErrCartItemNotFound = errors.New("cart item not found")

// CartService 购物车服务接口
type CartService interface {
	AddItem(userID, productID string, quantity int) error
	UpdateQuantity(userID, productID string, quantity int) error
	RemoveItem(userID, productID string) error
	Clear(userID string) error
	GetCart(userID string) (*model.Cart, error)
}

type cartService struct {
	repo    repository.CartRepository
	catalog catalogService.CatalogService
}

// NewCartService 创建购物车服务
func NewCartService(repo repository.CartRepository, catalog catalogService.CatalogService) CartService {
	return &cartService{repo: repo, catalog: catalog}
}

// AddItem 加入购物车；已存在则累加数量
func (s *cartService) AddItem(userID, productID string, quantity int) error {
	// 商品必须存在且在售
	product, err := s.catalog.GetProduct(productID)
	if err != nil {
		return err
	}
	if !product.IsActive {
		return catalogService.ErrProductNotFound
	}

	return s.repo.Upsert(&model.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	})
}

// UpdateQuantity 修改数量；数量为 0 时移除
func (s *cartService) UpdateQuantity(userID, productID string, quantity int) error {
	if quantity <= 0 {
		return s.repo.Delete(userID, productID)
	}

	if _, err := s.repo.GetItem(userID, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCartItemNotFound
		}
		return err
	}

	return s.repo.UpdateQuantity(userID, productID, quantity)
}

// RemoveItem 移除条目
func (s *cartService) RemoveItem(userID, productID string) error {
	return s.repo.Delete(userID, productID)
}

// Clear 清空购物车
func (s *cartService) Clear(userID string) error {
	return s.repo.Clear(userID)
}

// GetCart 获取购物车及按当前售价计算的合计
func (s *cartService) GetCart(userID string) (*model.Cart, error) {
	items, err := s.repo.GetByUser(userID)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, item := range items {
		if item.Product == nil || !item.Product.IsActive {
			continue
		}
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return &model.Cart{Items: items, Total: total.Round(2)}, nil
}
