package model

import (
	userModel "shop_backoffice/internal/domain/user/model"
	baseModel "shop_backoffice/pkg/model"
)

// Review 商品评价，同一用户对同一商品只能评一次
type Review struct {
	baseModel.BaseModel
	ProductID string          `gorm:"type:uuid;uniqueIndex:idx_review_product_user;not null" json:"productId"`
	UserID    string          `gorm:"type:uuid;uniqueIndex:idx_review_product_user;not null" json:"userId"`
	User      *userModel.User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Rating    int             `gorm:"not null" json:"rating"` // 1-5
	Comment   string          `gorm:"type:text" json:"comment"`
}

// RatingSummary 商品评分汇总
type RatingSummary struct {
	ProductID     string  `json:"productId"`
	AverageRating float64 `json:"averageRating"`
	ReviewCount   int64   `json:"reviewCount"`
}
