package model

import (
	baseModel "shop_backoffice/pkg/model"
)

// 用户角色
const (
	RoleUser  = 1
	RoleAdmin = 2
)

// 用户状态
const (
	StatusNormal  = 1
	StatusBanned  = 2
	StatusDeleted = 3
)

// User 用户模型
type User struct {
	baseModel.BaseModel
	Username string `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Password string `gorm:"type:varchar(100);not null" json:"-"` // 密码不返回给前端
	Email    string `gorm:"type:varchar(100);uniqueIndex" json:"email"`
	Role     int    `gorm:"default:1" json:"role"`
	Status   int    `gorm:"default:1" json:"status"` // 1:正常, 2:封禁, 3:已注销
}
