package service

import (
	"testing"

	"shop_backoffice/internal/domain/blog/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockBlogRepository is a mock of BlogRepository
type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) Create(post *model.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockBlogRepository) GetByID(id string) (*model.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockBlogRepository) GetBySlug(slug string) (*model.Post, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockBlogRepository) GetList(publishedOnly bool, offset, limit int) ([]model.Post, int64, error) {
	args := m.Called(publishedOnly, offset, limit)
	return args.Get(0).([]model.Post), args.Get(1).(int64), args.Error(2)
}

func (m *MockBlogRepository) Update(post *model.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockBlogRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "hello-world", Slugify("Hello World"))
	assert.Equal(t, "summer-sale-2026", Slugify("  Summer Sale 2026! "))
	assert.Equal(t, "a-b-c", Slugify("a__b--c"))
}

func TestCreatePost(t *testing.T) {
	t.Run("generates slug from title", func(t *testing.T) {
		mockRepo := new(MockBlogRepository)
		svc := NewBlogService(mockRepo)

		mockRepo.On("GetBySlug", "hello-world").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", mock.AnythingOfType("*model.Post")).Return(nil)

		post, err := svc.CreatePost("admin-1", PostInput{Title: "Hello World", Content: "body"})
		assert.NoError(t, err)
		assert.Equal(t, "hello-world", post.Slug)
		assert.False(t, post.Published)
		assert.Nil(t, post.PublishedAt)
	})

	t.Run("sets published timestamp on publish", func(t *testing.T) {
		mockRepo := new(MockBlogRepository)
		svc := NewBlogService(mockRepo)

		mockRepo.On("GetBySlug", "hello-world").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", mock.Anything).Return(nil)

		post, err := svc.CreatePost("admin-1", PostInput{Title: "Hello World", Content: "body", Published: true})
		assert.NoError(t, err)
		assert.True(t, post.Published)
		assert.NotNil(t, post.PublishedAt)
	})

	t.Run("rejects duplicate slug", func(t *testing.T) {
		mockRepo := new(MockBlogRepository)
		svc := NewBlogService(mockRepo)

		mockRepo.On("GetBySlug", "hello-world").Return(&model.Post{Slug: "hello-world"}, nil)

		_, err := svc.CreatePost("admin-1", PostInput{Title: "Hello World", Content: "body"})
		assert.ErrorIs(t, err, ErrSlugTaken)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	})
}

func TestGetPostBySlug(t *testing.T) {
	t.Run("hides drafts from public reads", func(t *testing.T) {
		mockRepo := new(MockBlogRepository)
		svc := NewBlogService(mockRepo)

		mockRepo.On("GetBySlug", "draft").Return(&model.Post{Slug: "draft", Published: false}, nil)

		_, err := svc.GetPostBySlug("draft")
		assert.ErrorIs(t, err, ErrPostNotFound)
	})
}
