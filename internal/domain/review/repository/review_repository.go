package repository

import (
	"shop_backoffice/internal/domain/review/model"

	"gorm.io/gorm"
)

// ReviewRepository 评价仓库
type ReviewRepository interface {
	Create(review *model.Review) error
	GetByProductAndUser(productID, userID string) (*model.Review, error)
	GetByProduct(productID string, offset, limit int) ([]model.Review, int64, error)
	GetSummary(productID string) (*model.RatingSummary, error)
	Delete(id string) error
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository 创建仓库实例
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *model.Review) error {
	return r.db.Create(review).Error
}

func (r *reviewRepository) GetByProductAndUser(productID, userID string) (*model.Review, error) {
	var review model.Review
	if err := r.db.Where("product_id = ? AND user_id = ?", productID, userID).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) GetByProduct(productID string, offset, limit int) ([]model.Review, int64, error) {
	var reviews []model.Review
	var total int64

	query := r.db.Model(&model.Review{}).Where("product_id = ?", productID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("User").Offset(offset).Limit(limit).Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

// GetSummary 聚合商品的平均评分与评价数
func (r *reviewRepository) GetSummary(productID string) (*model.RatingSummary, error) {
	summary := model.RatingSummary{ProductID: productID}
	err := r.db.Model(&model.Review{}).
		Select("COALESCE(AVG(rating), 0) AS average_rating, COUNT(*) AS review_count").
		Where("product_id = ?", productID).
		Row().
		Scan(&summary.AverageRating, &summary.ReviewCount)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *reviewRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.Review{}).Error
}
