package service

import (
	"errors"

	"shop_backoffice/internal/domain/contact/model"
	"shop_backoffice/internal/domain/contact/repository"

	"gorm.io/gorm"
)

// ErrMessageNotFound 留言不存在
var ErrMessageNotFound = errors.New("message not found")

// ContactService 留言服务接口
type ContactService interface {
	Submit(name, email, subject, content string) (*model.Message, error)
	GetMessages(unreadOnly bool, page, limit int) ([]model.Message, int64, error)
	GetMessage(id string) (*model.Message, error)
	MarkRead(id string) error
	DeleteMessage(id string) error
}

type contactService struct {
	repo repository.ContactRepository
}

// NewContactService 创建留言服务
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactService{repo: repo}
}

// Submit 提交留言 (公开)
func (s *contactService) Submit(name, email, subject, content string) (*model.Message, error) {
	message := &model.Message{
		Name:    name,
		Email:   email,
		Subject: subject,
		Content: content,
	}
	if err := s.repo.Create(message); err != nil {
		return nil, err
	}
	return message, nil
}

// GetMessages 获取留言列表 (管理员)
func (s *contactService) GetMessages(unreadOnly bool, page, limit int) ([]model.Message, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	return s.repo.GetList(unreadOnly, (page-1)*limit, limit)
}

// GetMessage 获取单条留言
func (s *contactService) GetMessage(id string) (*model.Message, error) {
	message, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return message, nil
}

// MarkRead 标记留言已读
func (s *contactService) MarkRead(id string) error {
	if err := s.repo.MarkRead(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMessageNotFound
		}
		return err
	}
	return nil
}

// DeleteMessage 删除留言
func (s *contactService) DeleteMessage(id string) error {
	if _, err := s.GetMessage(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
