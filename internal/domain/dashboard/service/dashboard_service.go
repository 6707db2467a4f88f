package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shop_backoffice/internal/domain/dashboard/model"
	"shop_backoffice/internal/domain/dashboard/repository"
	"shop_backoffice/pkg/cache"
	"shop_backoffice/pkg/logger"

	"go.uber.org/zap"
)

// 仪表盘查询全是聚合扫描，结果缓存一小段时间
const cacheTTL = 60 * time.Second

// DashboardService 仪表盘服务接口
type DashboardService interface {
	GetOverview(ctx context.Context) (*model.Overview, error)
	GetDailySales(ctx context.Context, days int) ([]model.DailySales, error)
}

type dashboardService struct {
	repo  repository.DashboardRepository
	cache cache.CacheService
}

// NewDashboardService 创建仪表盘服务，cache 可为 nil
func NewDashboardService(repo repository.DashboardRepository, cacheService cache.CacheService) DashboardService {
	return &dashboardService{repo: repo, cache: cacheService}
}

// GetOverview 获取总览数据
func (s *dashboardService) GetOverview(ctx context.Context) (*model.Overview, error) {
	const key = "dashboard:overview"

	if s.cache != nil {
		var cached model.Overview
		if err := s.cache.Get(ctx, key, &cached); err == nil {
			return &cached, nil
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			logger.Log.Warn("dashboard cache read failed", zap.Error(err))
		}
	}

	stats, err := s.repo.GetStats()
	if err != nil {
		return nil, err
	}
	statusCounts, err := s.repo.GetStatusCounts()
	if err != nil {
		return nil, err
	}
	recentOrders, err := s.repo.GetRecentOrders(10)
	if err != nil {
		return nil, err
	}
	topProducts, err := s.repo.GetTopProducts(5)
	if err != nil {
		return nil, err
	}

	overview := &model.Overview{
		Stats:        *stats,
		StatusCounts: statusCounts,
		RecentOrders: recentOrders,
		TopProducts:  topProducts,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, overview, cacheTTL); err != nil {
			logger.Log.Warn("dashboard cache write failed", zap.Error(err))
		}
	}
	return overview, nil
}

// GetDailySales 获取最近 N 天销售报表，days 限制在 1-90
func (s *dashboardService) GetDailySales(ctx context.Context, days int) ([]model.DailySales, error) {
	if days <= 0 {
		days = 7
	}
	if days > 90 {
		days = 90
	}
	key := fmt.Sprintf("dashboard:sales:%d", days)

	if s.cache != nil {
		var cached []model.DailySales
		if err := s.cache.Get(ctx, key, &cached); err == nil {
			return cached, nil
		}
	}

	sales, err := s.repo.GetDailySales(days)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, sales, cacheTTL); err != nil {
			logger.Log.Warn("dashboard cache write failed", zap.Error(err))
		}
	}
	return sales, nil
}
