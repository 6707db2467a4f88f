package model

import (
	baseModel "shop_backoffice/pkg/model"
)

// Message 客户留言
type Message struct {
	baseModel.BaseModel
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Subject string `json:"subject"`
	Content string `gorm:"type:text;not null" json:"content"`
	IsRead  bool   `gorm:"default:false;index" json:"isRead"`
}
