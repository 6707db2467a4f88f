package model

import (
	baseModel "shop_backoffice/pkg/model"
)

// Setting 站点配置项，键值存储
type Setting struct {
	baseModel.BaseModel
	Key   string `gorm:"uniqueIndex;not null" json:"key"`
	Value string `gorm:"type:text" json:"value"`
}
