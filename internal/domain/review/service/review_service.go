package service

import (
	"errors"

	catalogService "shop_backoffice/internal/domain/catalog/service"
	"shop_backoffice/internal/domain/review/model"
	"shop_backoffice/internal/domain/review/repository"

	"gorm.io/gorm"
)

// 评价模块业务错误
var (
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrAlreadyReviewed = errors.New("you have already reviewed this product")
)

// ReviewService 评价服务接口
type ReviewService interface {
	CreateReview(userID, productID string, rating int, comment string) (*model.Review, error)
	GetProductReviews(productID string, page, limit int) ([]model.Review, int64, error)
	GetProductRating(productID string) (*model.RatingSummary, error)
	DeleteReview(id string) error
}

type reviewService struct {
	repo    repository.ReviewRepository
	catalog catalogService.CatalogService
}

// NewReviewService 创建评价服务
func NewReviewService(repo repository.ReviewRepository, catalog catalogService.CatalogService) ReviewService {
	return &reviewService{repo: repo, catalog: catalog}
}

// CreateReview 创建评价
func (s *reviewService) CreateReview(userID, productID string, rating int, comment string) (*model.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	// 商品必须存在
	if _, err := s.catalog.GetProduct(productID); err != nil {
		return nil, err
	}

	// 同一用户同一商品只能评一次
	if _, err := s.repo.GetByProductAndUser(productID, userID); err == nil {
		return nil, ErrAlreadyReviewed
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	review := &model.Review{
		ProductID: productID,
		UserID:    userID,
		Rating:    rating,
		Comment:   comment,
	}
	if err := s.repo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

// GetProductReviews 获取商品评价列表
func (s *reviewService) GetProductReviews(productID string, page, limit int) ([]model.Review, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	return s.repo.GetByProduct(productID, (page-1)*limit, limit)
}

// GetProductRating 获取商品评分汇总
func (s *reviewService) GetProductRating(productID string) (*model.RatingSummary, error) {
	return s.repo.GetSummary(productID)
}

// DeleteReview 删除评价 (管理员)
func (s *reviewService) DeleteReview(id string) error {
	return s.repo.Delete(id)
}
