package service

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"time"

	"shop_backoffice/internal/domain/blog/model"
	"shop_backoffice/internal/domain/blog/repository"

	"gorm.io/gorm"
)

// 博客模块业务错误
var (
	ErrPostNotFound  = errors.New("post not found")
	ErrSlugTaken     = errors.New("slug already in use")
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// PostInput 创建/更新文章输入
type PostInput struct {
	Title      string
	Slug       string
	Content    string
	Excerpt    string
	CoverImage string
	Tags       []string
	Published  bool
}

// BlogService 博客服务接口
type BlogService interface {
	CreatePost(authorID string, input PostInput) (*model.Post, error)
	GetPost(id string) (*model.Post, error)
	GetPostBySlug(slug string) (*model.Post, error)
	GetPosts(publishedOnly bool, page, limit int) ([]model.Post, int64, error)
	UpdatePost(id string, input PostInput) (*model.Post, error)
	DeletePost(id string) error
}

type blogService struct {
	repo repository.BlogRepository
}

// NewBlogService 创建博客服务
func NewBlogService(repo repository.BlogRepository) BlogService {
	return &blogService{repo: repo}
}

// Slugify 将标题转换成 URL 友好的 slug
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugPattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// CreatePost 创建文章，slug 为空时由标题生成
func (s *blogService) CreatePost(authorID string, input PostInput) (*model.Post, error) {
	slug := input.Slug
	if slug == "" {
		slug = Slugify(input.Title)
	}
	if _, err := s.repo.GetBySlug(slug); err == nil {
		return nil, ErrSlugTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tags, err := json.Marshal(input.Tags)
	if err != nil {
		return nil, err
	}

	post := &model.Post{
		Title:      input.Title,
		Slug:       slug,
		Content:    input.Content,
		Excerpt:    input.Excerpt,
		CoverImage: input.CoverImage,
		Tags:       tags,
		Published:  input.Published,
		AuthorID:   authorID,
	}
	if input.Published {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := s.repo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost 按 ID 获取文章
func (s *blogService) GetPost(id string) (*model.Post, error) {
	post, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

// GetPostBySlug 按 slug 获取已发布文章
func (s *blogService) GetPostBySlug(slug string) (*model.Post, error) {
	post, err := s.repo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	if !post.Published {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// GetPosts 获取文章列表
func (s *blogService) GetPosts(publishedOnly bool, page, limit int) ([]model.Post, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	return s.repo.GetList(publishedOnly, (page-1)*limit, limit)
}

// UpdatePost 更新文章
func (s *blogService) UpdatePost(id string, input PostInput) (*model.Post, error) {
	post, err := s.GetPost(id)
	if err != nil {
		return nil, err
	}

	if input.Slug != "" && input.Slug != post.Slug {
		if _, err := s.repo.GetBySlug(input.Slug); err == nil {
			return nil, ErrSlugTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		post.Slug = input.Slug
	}

	if input.Title != "" {
		post.Title = input.Title
	}
	if input.Content != "" {
		post.Content = input.Content
	}
	post.Excerpt = input.Excerpt
	post.CoverImage = input.CoverImage
	if input.Tags != nil {
		tags, err := json.Marshal(input.Tags)
		if err != nil {
			return nil, err
		}
		post.Tags = tags
	}

	// 首次发布时记录发布时间
	if input.Published && !post.Published {
		now := time.Now()
		post.PublishedAt = &now
	}
	post.Published = input.Published

	if err := s.repo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost 删除文章
func (s *blogService) DeletePost(id string) error {
	if _, err := s.GetPost(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
