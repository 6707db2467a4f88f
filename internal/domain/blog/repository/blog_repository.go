package repository

import (
	"shop_backoffice/internal/domain/blog/model"

	"gorm.io/gorm"
)

// BlogRepository 博客仓库
type BlogRepository interface {
	Create(post *model.Post) error
	GetByID(id string) (*model.Post, error)
	GetBySlug(slug string) (*model.Post, error)
	GetList(publishedOnly bool, offset, limit int) ([]model.Post, int64, error)
	Update(post *model.Post) error
	Delete(id string) error
}

type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository 创建仓库实例
func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(post *model.Post) error {
	return r.db.Create(post).Error
}

func (r *blogRepository) GetByID(id string) (*model.Post, error) {
	var post model.Post
	if err := r.db.Where("id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *blogRepository) GetBySlug(slug string) (*model.Post, error) {
	var post model.Post
	if err := r.db.Where("slug = ?", slug).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *blogRepository) GetList(publishedOnly bool, offset, limit int) ([]model.Post, int64, error) {
	var posts []model.Post
	var total int64

	query := r.db.Model(&model.Post{})
	if publishedOnly {
		query = query.Where("published = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *blogRepository) Update(post *model.Post) error {
	return r.db.Save(post).Error
}

func (r *blogRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.Post{}).Error
}
