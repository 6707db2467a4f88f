package service

import (
	"errors"

	"shop_backoffice/internal/domain/settings/model"
	"shop_backoffice/internal/domain/settings/repository"

	"gorm.io/gorm"
)

// ErrSettingNotFound 配置项不存在
var ErrSettingNotFound = errors.New("setting not found")

// SettingsService 配置服务接口
type SettingsService interface {
	GetAll() (map[string]string, error)
	Get(key string) (*model.Setting, error)
	Set(key, value string) (*model.Setting, error)
	Delete(key string) error
}

type settingsService struct {
	repo repository.SettingsRepository
}

// NewSettingsService 创建配置服务
func NewSettingsService(repo repository.SettingsRepository) SettingsService {
	return &settingsService{repo: repo}
}

// GetAll 获取全部配置，返回键值映射
func (s *settingsService) GetAll() (map[string]string, error) {
	settings, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	result := make(map[string]string, len(settings))
	for _, item := range settings {
		result[item.Key] = item.Value
	}
	return result, nil
}

// Get 获取单个配置项
func (s *settingsService) Get(key string) (*model.Setting, error) {
	setting, err := s.repo.GetByKey(key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, err
	}
	return setting, nil
}

// Set 写入配置项，存在则覆盖
func (s *settingsService) Set(key, value string) (*model.Setting, error) {
	return s.repo.Upsert(key, value)
}

// Delete 删除配置项
func (s *settingsService) Delete(key string) error {
	if _, err := s.Get(key); err != nil {
		return err
	}
	return s.repo.Delete(key)
}
