package service

import (
	"testing"

	catalogModel "shop_backoffice/internal/domain/catalog/model"
	catalogService "shop_backoffice/internal/domain/catalog/service"
	"shop_backoffice/internal/domain/review/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockReviewRepository is a mock of ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(review *model.Review) error {
	args := m.Called(review)
	return args.Error(0)
}

func (m *MockReviewRepository) GetByProductAndUser(productID, userID string) (*model.Review, error) {
	args := m.Called(productID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Review), args.Error(1)
}

func (m *MockReviewRepository) GetByProduct(productID string, offset, limit int) ([]model.Review, int64, error) {
	args := m.Called(productID, offset, limit)
	return args.Get(0).([]model.Review), args.Get(1).(int64), args.Error(2)
}

func (m *MockReviewRepository) GetSummary(productID string) (*model.RatingSummary, error) {
	args := m.Called(productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RatingSummary), args.Error(1)
}

func (m *MockReviewRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockCatalogService is a mock of catalog service.CatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) CreateCategory(name, slug, description string) (*catalogModel.Category, error) {
	args := m.Called(name, slug, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogModel.Category), args.Error(1)
}

func (m *MockCatalogService) GetCategories(page, limit int) ([]catalogModel.Category, int64, error) {
	args := m.Called(page, limit)
	return args.Get(0).([]catalogModel.Category), args.Get(1).(int64), args.Error(2)
}

func (m *MockCatalogService) UpdateCategory(id, name, description string) (*catalogModel.Category, error) {
	args := m.Called(id, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogModel.Category), args.Error(1)
}

func (m *MockCatalogService) DeactivateCategory(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCatalogService) CreateProduct(input catalogService.CreateProductInput) (*catalogModel.Product, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogModel.Product), args.Error(1)
}

func (m *MockCatalogService) GetProduct(id string) (*catalogModel.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogModel.Product), args.Error(1)
}

func (m *MockCatalogService) GetProducts(filter catalogModel.ProductFilter, page, limit int) ([]catalogModel.Product, int64, error) {
	args := m.Called(filter, page, limit)
	return args.Get(0).([]catalogModel.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockCatalogService) UpdateProduct(id string, input catalogService.CreateProductInput) (*catalogModel.Product, error) {
	args := m.Called(id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogModel.Product), args.Error(1)
}

func (m *MockCatalogService) DeactivateProduct(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestCreateReview(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockRepo := new(MockReviewRepository)
		mockCatalog := new(MockCatalogService)
		svc := NewReviewService(mockRepo, mockCatalog)

		mockCatalog.On("GetProduct", "prod-1").Return(&catalogModel.Product{}, nil)
		mockRepo.On("GetByProductAndUser", "prod-1", "user-1").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", mock.AnythingOfType("*model.Review")).Return(nil)

		review, err := svc.CreateReview("user-1", "prod-1", 5, "great")
		assert.NoError(t, err)
		assert.Equal(t, 5, review.Rating)
	})

	t.Run("rejects out-of-range rating", func(t *testing.T) {
		mockRepo := new(MockReviewRepository)
		mockCatalog := new(MockCatalogService)
		svc := NewReviewService(mockRepo, mockCatalog)

		_, err := svc.CreateReview("user-1", "prod-1", 6, "")
		assert.ErrorIs(t, err, ErrInvalidRating)

		_, err = svc.CreateReview("user-1", "prod-1", 0, "")
		assert.ErrorIs(t, err, ErrInvalidRating)
	})

	t.Run("rejects second review for same product", func(t *testing.T) {
		mockRepo := new(MockReviewRepository)
		mockCatalog := new(MockCatalogService)
		svc := NewReviewService(mockRepo, mockCatalog)

		mockCatalog.On("GetProduct", "prod-1").Return(&catalogModel.Product{}, nil)
		mockRepo.On("GetByProductAndUser", "prod-1", "user-1").Return(&model.Review{Rating: 4}, nil)

		_, err := svc.CreateReview("user-1", "prod-1", 5, "")
		assert.ErrorIs(t, err, ErrAlreadyReviewed)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("rejects unknown product", func(t *testing.T) {
		mockRepo := new(MockReviewRepository)
		mockCatalog := new(MockCatalogService)
		svc := NewReviewService(mockRepo, mockCatalog)

		mockCatalog.On("GetProduct", "ghost").Return(nil, catalogService.ErrProductNotFound)

		_, err := svc.CreateReview("user-1", "ghost", 5, "")
		assert.ErrorIs(t, err, catalogService.ErrProductNotFound)
	})
}
