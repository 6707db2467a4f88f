package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shop_backoffice/internal/domain/catalog/model"
	"shop_backoffice/pkg/cache"
	"shop_backoffice/pkg/logger"

	"go.uber.org/zap"
)

// 缓存键常量
const (
	ProductCacheKeyPrefix = "product:"
	ProductCacheTTL       = time.Minute * 30
)

// CachedCatalogService 带缓存的商品服务
// 只缓存单个商品读取；列表查询条件组合多，直接走数据库
type CachedCatalogService struct {
	CatalogService
	cache cache.CacheService
}

// NewCachedCatalogService 创建带缓存的商品服务
func NewCachedCatalogService(inner CatalogService, cache cache.CacheService) CatalogService {
	return &CachedCatalogService{
		CatalogService: inner,
		cache:          cache,
	}
}

func (s *CachedCatalogService) productCacheKey(id string) string {
	return fmt.Sprintf("%s%s", ProductCacheKeyPrefix, id)
}

// GetProduct 先查缓存，未命中回源数据库并写回
func (s *CachedCatalogService) GetProduct(id string) (*model.Product, error) {
	ctx := context.Background()
	key := s.productCacheKey(id)

	var cached model.Product
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) && logger.Log != nil {
		logger.Log.Warn("product cache read failed", zap.String("key", key), zap.Error(err))
	}

	product, err := s.CatalogService.GetProduct(id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, product, ProductCacheTTL); err != nil && logger.Log != nil {
		logger.Log.Warn("product cache write failed", zap.String("key", key), zap.Error(err))
	}

	return product, nil
}

// UpdateProduct 更新后清除缓存
func (s *CachedCatalogService) UpdateProduct(id string, input CreateProductInput) (*model.Product, error) {
	product, err := s.CatalogService.UpdateProduct(id, input)
	if err != nil {
		return nil, err
	}
	s.invalidate(id)
	return product, nil
}

// DeactivateProduct 下架后清除缓存
func (s *CachedCatalogService) DeactivateProduct(id string) error {
	if err := s.CatalogService.DeactivateProduct(id); err != nil {
		return err
	}
	s.invalidate(id)
	return nil
}

func (s *CachedCatalogService) invalidate(id string) {
	if err := s.cache.Delete(context.Background(), s.productCacheKey(id)); err != nil && logger.Log != nil {
		logger.Log.Warn("product cache invalidation failed", zap.String("id", id), zap.Error(err))
	}
}
