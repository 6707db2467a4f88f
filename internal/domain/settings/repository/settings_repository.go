package repository

import (
	"shop_backoffice/internal/domain/settings/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingsRepository 配置仓库
type SettingsRepository interface {
	GetAll() ([]model.Setting, error)
	GetByKey(key string) (*model.Setting, error)
	Upsert(key, value string) (*model.Setting, error)
	Delete(key string) error
}

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository 创建仓库实例
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetAll() ([]model.Setting, error) {
	var settings []model.Setting
	if err := r.db.Order("key ASC").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *settingsRepository) GetByKey(key string) (*model.Setting, error) {
	var setting model.Setting
	if err := r.db.Where("key = ?", key).First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

// Upsert 按 key 插入或更新
func (r *settingsRepository) Upsert(key, value string) (*model.Setting, error) {
	setting := model.Setting{Key: key, Value: value}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"value": value}),
	}).Create(&setting).Error
	if err != nil {
		return nil, err
	}
	return r.GetByKey(key)
}

func (r *settingsRepository) Delete(key string) error {
	return r.db.Where("key = ?", key).Delete(&model.Setting{}).Error
}
