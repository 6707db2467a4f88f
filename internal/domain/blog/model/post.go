package model

import (
	"encoding/json"
	"time"

	baseModel "shop_backoffice/pkg/model"
)

// Post 博客文章
type Post struct {
	baseModel.BaseModel
	Title       string          `gorm:"not null" json:"title"`
	Slug        string          `gorm:"uniqueIndex;not null" json:"slug"`
	Content     string          `gorm:"type:text" json:"content"`
	Excerpt     string          `gorm:"type:text" json:"excerpt"`
	CoverImage  string          `json:"coverImage"`
	Tags        json.RawMessage `gorm:"type:jsonb;default:'[]'" json:"tags"` // 标签数组
	Published   bool            `gorm:"default:false;index" json:"published"`
	PublishedAt *time.Time      `json:"publishedAt,omitempty"`
	AuthorID    string          `gorm:"type:uuid" json:"authorId"`
}
