package repository

import (
	"shop_backoffice/internal/domain/contact/model"

	"gorm.io/gorm"
)

// ContactRepository 留言仓库
type ContactRepository interface {
	Create(message *model.Message) error
	GetByID(id string) (*model.Message, error)
	GetList(unreadOnly bool, offset, limit int) ([]model.Message, int64, error)
	MarkRead(id string) error
	Delete(id string) error
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository 创建仓库实例
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(message *model.Message) error {
	return r.db.Create(message).Error
}

func (r *contactRepository) GetByID(id string) (*model.Message, error) {
	var message model.Message
	if err := r.db.Where("id = ?", id).First(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *contactRepository) GetList(unreadOnly bool, offset, limit int) ([]model.Message, int64, error) {
	var messages []model.Message
	var total int64

	query := r.db.Model(&model.Message{})
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

func (r *contactRepository) MarkRead(id string) error {
	result := r.db.Model(&model.Message{}).Where("id = ?", id).Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *contactRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.Message{}).Error
}
