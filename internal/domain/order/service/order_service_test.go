package service

import (
	"testing"
	"time"

	catalogModel "shop_backoffice/internal/domain/catalog/model"
	couponModel "shop_backoffice/internal/domain/coupon/model"
	"shop_backoffice/internal/domain/order/model"
	userModel "shop_backoffice/internal/domain/user/model"
	userService "shop_backoffice/internal/domain/user/service"
	baseModel "shop_backoffice/pkg/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockOrderRepository is a mock of OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(order *model.Order, deductions []model.StockDeduction) error {
	args := m.Called(order, deductions)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(id string) (*model.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByIDForUser(id, userID string) (*model.Order, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderRepository) GetDetail(id string) (*model.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderRepository) GetList(filter model.OrderFilter, offset, limit int) ([]model.Order, int64, error) {
	args := m.Called(filter, offset, limit)
	return args.Get(0).([]model.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) UpdateStatus(order *model.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) Cancel(order *model.Order, restocks []model.StockDeduction) error {
	args := m.Called(order, restocks)
	return args.Error(0)
}

func (m *MockOrderRepository) CreateEvent(event *model.OrderEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

// MockUserRepository is a mock of user repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *userModel.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*userModel.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userModel.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*userModel.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userModel.User), args.Error(1)
}

func (m *MockUserRepository) GetList(offset, limit int) ([]userModel.User, int64, error) {
	args := m.Called(offset, limit)
	return args.Get(0).([]userModel.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) Update(user *userModel.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(user *userModel.User) error {
	args := m.Called(user)
	return args.Error(0)
}

// MockCatalogRepository is a mock of catalog repository.CatalogRepository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) CreateCategory(category *catalogModel.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCatalogRepository) GetCategoryByID(id string) (*catalogModel.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogModel.Category), args.Error(1)
}

func (m *MockCatalogRepository) GetCategoryList(offset, limit int) ([]catalogModel.Category, int64, error) {
	args := m.Called(offset, limit)
	return args.Get(0).([]catalogModel.Category), args.Get(1).(int64), args.Error(2)
}

func (m *MockCatalogRepository) UpdateCategory(category *catalogModel.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCatalogRepository) CreateProduct(product *catalogModel.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockCatalogRepository) GetProductByID(id string) (*catalogModel.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogModel.Product), args.Error(1)
}

func (m *MockCatalogRepository) GetProductList(filter catalogModel.ProductFilter, offset, limit int) ([]catalogModel.Product, int64, error) {
	args := m.Called(filter, offset, limit)
	return args.Get(0).([]catalogModel.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockCatalogRepository) UpdateProduct(product *catalogModel.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

// MockCouponRepository is a mock of coupon repository.CouponRepository
type MockCouponRepository struct {
	mock.Mock
}

func (m *MockCouponRepository) Create(coupon *couponModel.Coupon) error {
	args := m.Called(coupon)
	return args.Error(0)
}

func (m *MockCouponRepository) GetByID(id string) (*couponModel.Coupon, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*couponModel.Coupon), args.Error(1)
}

func (m *MockCouponRepository) GetByCode(code string) (*couponModel.Coupon, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*couponModel.Coupon), args.Error(1)
}

func (m *MockCouponRepository) GetList(offset, limit int) ([]couponModel.Coupon, int64, error) {
	args := m.Called(offset, limit)
	return args.Get(0).([]couponModel.Coupon), args.Get(1).(int64), args.Error(2)
}

func (m *MockCouponRepository) Update(coupon *couponModel.Coupon) error {
	args := m.Called(coupon)
	return args.Error(0)
}

func (m *MockCouponRepository) GetByCodeForUpdate(tx *gorm.DB, code string) (*couponModel.Coupon, error) {
	args := m.Called(tx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*couponModel.Coupon), args.Error(1)
}

func (m *MockCouponRepository) IncrementUsage(tx *gorm.DB, couponID string) error {
	args := m.Called(tx, couponID)
	return args.Error(0)
}

func intPtr(v int) *int { return &v }

func newTestService() (*MockOrderRepository, *MockUserRepository, *MockCatalogRepository, *MockCouponRepository, OrderService) {
	mockRepo := new(MockOrderRepository)
	mockUsers := new(MockUserRepository)
	mockProducts := new(MockCatalogRepository)
	mockCoupons := new(MockCouponRepository)
	svc := NewOrderService(mockRepo, mockUsers, mockProducts, mockCoupons, nil, nil)
	return mockRepo, mockUsers, mockProducts, mockCoupons, svc
}

func testUser(id string) *userModel.User {
	return &userModel.User{
		BaseModel: baseModel.BaseModel{ID: id},
		Username:  "tester",
		Role:      userModel.RoleUser,
		Status:    userModel.StatusNormal,
	}
}

func testProduct(id string, price string, stock *int) *catalogModel.Product {
	return &catalogModel.Product{
		BaseModel:     baseModel.BaseModel{ID: id},
		Name:          "Test Product",
		Price:         decimal.RequireFromString(price),
		Type:          catalogModel.ProductTypeDigital,
		StockQuantity: stock,
		IsActive:      true,
	}
}

func TestCreateOrder(t *testing.T) {
	t.Run("creates pending order and deducts stock", func(t *testing.T) {
		mockRepo, mockUsers, mockProducts, _, svc := newTestService()

		mockUsers.On("GetByID", "user-1").Return(testUser("user-1"), nil)
		mockProducts.On("GetProductByID", "prod-1").Return(testProduct("prod-1", "29.99", intPtr(10)), nil)
		mockRepo.On("Create", mock.AnythingOfType("*model.Order"), mock.Anything).Return(nil)

		order, err := svc.CreateOrder("user-1", []OrderItemInput{
			{ProductID: "prod-1", Quantity: 1, Price: decimal.RequireFromString("29.99")},
		}, "")

		assert.NoError(t, err)
		assert.Equal(t, model.StatusPending, order.Status)
		assert.Equal(t, model.PaymentPending, order.PaymentStatus)
		assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("29.99")))
		assert.True(t, order.DiscountAmount.IsZero())
		assert.True(t, order.FinalAmount.Equal(decimal.RequireFromString("29.99")))
		assert.Len(t, order.Items, 1)

		mockRepo.AssertCalled(t, "Create", mock.AnythingOfType("*model.Order"), []model.StockDeduction{
			{ProductID: "prod-1", Quantity: 1},
		})
	})

	t.Run("rejects stale client price without any write", func(t *testing.T) {
		mockRepo, mockUsers, mockProducts, _, svc := newTestService()

		mockUsers.On("GetByID", "user-1").Return(testUser("user-1"), nil)
		mockProducts.On("GetProductByID", "prod-1").Return(testProduct("prod-1", "29.99", intPtr(10)), nil)

		order, err := svc.CreateOrder("user-1", []OrderItemInput{
			{ProductID: "prod-1", Quantity: 1, Price: decimal.RequireFromString("99.99")},
		}, "")

		assert.ErrorIs(t, err, model.ErrPriceMismatch)
		assert.Nil(t, order)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("allows price within tolerance", func(t *testing.T) {
		mockRepo, mockUsers, mockProducts, _, svc := newTestService()

		mockUsers.On("GetByID", "user-1").Return(testUser("user-1"), nil)
		mockProducts.On("GetProductByID", "prod-1").Return(testProduct("prod-1", "29.99", intPtr(10)), nil)
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		_, err := svc.CreateOrder("user-1", []OrderItemInput{
			{ProductID: "prod-1", Quantity: 1, Price: decimal.RequireFromString("29.98")},
		}, "")

		assert.NoError(t, err)
	})

	t.Run("applies percentage coupon", func(t *testing.T) {
		mockRepo, mockUsers, mockProducts, mockCoupons, svc := newTestService()

		mockUsers.On("GetByID", "user-1").Return(testUser("user-1"), nil)
		mockProducts.On("GetProductByID", "prod-1").Return(testProduct("prod-1", "69.97", nil), nil)
		min := decimal.RequireFromString("50.00")
		mockCoupons.On("GetByCode", "SAVE10").Return(&couponModel.Coupon{
			BaseModel:          baseModel.BaseModel{ID: "coupon-1"},
			Code:               "SAVE10",
			Type:               couponModel.CouponTypePercentage,
			Value:              decimal.RequireFromString("10"),
			MinimumOrderAmount: &min,
			IsActive:           true,
		}, nil)
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		order, err := svc.CreateOrder("user-1", []OrderItemInput{
			{ProductID: "prod-1", Quantity: 1, Price: decimal.RequireFromString("69.97")},
		}, "SAVE10")

		assert.NoError(t, err)
		assert.True(t, order.DiscountAmount.Equal(decimal.RequireFromString("7.00")), "got %s", order.DiscountAmount)
		assert.True(t, order.FinalAmount.Equal(decimal.RequireFromString("62.97")), "got %s", order.FinalAmount)
		assert.NotNil(t, order.CouponID)
		assert.Equal(t, "coupon-1", *order.CouponID)
	})

	t.Run("rejects coupon below minimum order amount", func(t *testing.T) {
		mockRepo, mockUsers, mockProducts, mockCoupons, svc := newTestService()

		mockUsers.On("GetByID", "user-1").Return(testUser("user-1"), nil)
		mockProducts.On("GetProductByID", "prod-1").Return(testProduct("prod-1", "19.99", nil), nil)
		min := decimal.RequireFromString("50.00")
		mockCoupons.On("GetByCode", "SAVE10").Return(&couponModel.Coupon{
			BaseModel:          baseModel.BaseModel{ID: "coupon-1"},
			Code:               "SAVE10",
			Type:               couponModel.CouponTypePercentage,
			Value:              decimal.RequireFromString("10"),
			MinimumOrderAmount: &min,
			IsActive:           true,
		}, nil)

		_, err := svc.CreateOrder("user-1", []OrderItemInput{
			{ProductID: "prod-1", Quantity: 1, Price: decimal.RequireFromString("19.99")},
		}, "SAVE10")

		assert.ErrorIs(t, err, couponModel.ErrMinimumNotMet)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects expired coupon", func(t *testing.T) {
		mockRepo, mockUsers, mockProducts, mockCoupons, svc := newTestService()

		mockUsers.On("GetByID", "user-1").Return(testUser("user-1"), nil)
		mockProducts.On("GetProductByID", "prod-1").Return(testProduct("prod-1", "69.97", nil), nil)
		expired := time.Now().Add(-time.Hour)
		mockCoupons.On("GetByCode", "OLD").Return(&couponModel.Coupon{
			BaseModel: baseModel.BaseModel{ID: "coupon-2"},
			Code:      "OLD",
			Type:      couponModel.CouponTypeFixedAmount,
			Value:     decimal.RequireFromString("5.00"),
			IsActive:  true,
			ExpiresAt: &expired,
		}, nil)

		_, err := svc.CreateOrder("user-1", []OrderItemInput{
			{ProductID: "prod-1", Quantity: 1, Price: decimal.RequireFromString("69.97")},
		}, "OLD")

		assert.ErrorIs(t, err, couponModel.ErrCouponExpired)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("clamps fixed discount to order total", func(t *testing.T) {
		mockRepo, mockUsers, mockProducts, mockCoupons, svc := newTestService()

		mockUsers.On("GetByID", "user-1").Return(testUser("user-1"), nil)
		mockProducts.On("GetProductByID", "prod-1").Return(testProduct("prod-1", "5.00", nil), nil)
		mockCoupons.On("GetByCode", "BIG").Return(&couponModel.Coupon{
			BaseModel: baseModel.BaseModel{ID: "coupon-3"},
			Code:      "BIG",
			Type:      couponModel.CouponTypeFixedAmount,
			Value:     decimal.RequireFromString("20.00"),
			IsActive:  true,
		}, nil)
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		order, err := svc.CreateOrder("user-1", []OrderItemInput{
			{ProductID: "prod-1", Quantity: 1, Price: decimal.RequireFromString("5.00")},
		}, "BIG")

		assert.NoError(t, err)
		assert.True(t, order.DiscountAmount.Equal(decimal.RequireFromString("5.00")))
		assert.True(t, order.FinalAmount.IsZero())
	})

	t.Run("rejects insufficient stock", func(t *testing.T) {
		mockRepo, mockUsers, mockProducts, _, svc := newTestService()

		mockUsers.On("GetByID", "user-1").Return(testUser("user-1"), nil)
		mockProducts.On("GetProductByID", "prod-1").Return(testProduct("prod-1", "29.99", intPtr(10)), nil)

		_, err := svc.CreateOrder("user-1", []OrderItemInput{
			{ProductID: "prod-1", Quantity: 15, Price: decimal.RequireFromString("29.99")},
		}, "")

		assert.ErrorIs(t, err, model.ErrInsufficientStock)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("skips stock deduction for untracked products", func(t *testing.T) {
		mockRepo, mockUsers, mockProducts, _, svc := newTestService()

		mockUsers.On("GetByID", "user-1").Return(testUser("user-1"), nil)
		mockProducts.On("GetProductByID", "prod-1").Return(testProduct("prod-1", "29.99", nil), nil)
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		_, err := svc.CreateOrder("user-1", []OrderItemInput{
			{ProductID: "prod-1", Quantity: 100, Price: decimal.RequireFromString("29.99")},
		}, "")

		assert.NoError(t, err)
		mockRepo.AssertCalled(t, "Create", mock.Anything, []model.StockDeduction{})
	})

	t.Run("rejects empty items", func(t *testing.T) {
		_, mockUsers, _, _, svc := newTestService()

		mockUsers.On("GetByID", "user-1").Return(testUser("user-1"), nil)

		_, err := svc.CreateOrder("user-1", nil, "")
		assert.ErrorIs(t, err, model.ErrEmptyItems)
	})

	t.Run("rejects unknown user", func(t *testing.T) {
		_, mockUsers, _, _, svc := newTestService()

		mockUsers.On("GetByID", "nobody").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.CreateOrder("nobody", []OrderItemInput{
			{ProductID: "prod-1", Quantity: 1, Price: decimal.RequireFromString("29.99")},
		}, "")
		assert.ErrorIs(t, err, userService.ErrUserNotFound)
	})

	t.Run("rejects unknown product", func(t *testing.T) {
		_, mockUsers, mockProducts, _, svc := newTestService()

		mockUsers.On("GetByID", "user-1").Return(testUser("user-1"), nil)
		mockProducts.On("GetProductByID", "ghost").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.CreateOrder("user-1", []OrderItemInput{
			{ProductID: "ghost", Quantity: 1, Price: decimal.RequireFromString("29.99")},
		}, "")
		assert.ErrorIs(t, err, model.ErrProductNotFound)
	})

	t.Run("rejects inactive product", func(t *testing.T) {
		_, mockUsers, mockProducts, _, svc := newTestService()

		product := testProduct("prod-1", "29.99", intPtr(10))
		product.IsActive = false
		mockUsers.On("GetByID", "user-1").Return(testUser("user-1"), nil)
		mockProducts.On("GetProductByID", "prod-1").Return(product, nil)

		_, err := svc.CreateOrder("user-1", []OrderItemInput{
			{ProductID: "prod-1", Quantity: 1, Price: decimal.RequireFromString("29.99")},
		}, "")
		assert.ErrorIs(t, err, model.ErrProductNotFound)
	})

	t.Run("rejects unknown coupon code", func(t *testing.T) {
		_, mockUsers, mockProducts, mockCoupons, svc := newTestService()

		mockUsers.On("GetByID", "user-1").Return(testUser("user-1"), nil)
		mockProducts.On("GetProductByID", "prod-1").Return(testProduct("prod-1", "29.99", nil), nil)
		mockCoupons.On("GetByCode", "NOPE").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.CreateOrder("user-1", []OrderItemInput{
			{ProductID: "prod-1", Quantity: 1, Price: decimal.RequireFromString("29.99")},
		}, "NOPE")
		assert.ErrorIs(t, err, couponModel.ErrCouponNotFound)
	})
}

func testOrder(id, status string) *model.Order {
	return &model.Order{
		BaseModel:     baseModel.BaseModel{ID: id},
		UserID:        "user-1",
		TotalAmount:   decimal.RequireFromString("29.99"),
		FinalAmount:   decimal.RequireFromString("29.99"),
		Status:        status,
		PaymentStatus: model.PaymentPending,
		Items: []model.OrderItem{
			{OrderID: id, ProductID: "prod-1", Quantity: 1, UnitPrice: decimal.RequireFromString("29.99"), TotalPrice: decimal.RequireFromString("29.99")},
		},
	}
}

func TestCancelOrder(t *testing.T) {
	t.Run("cancels pending order and restocks items", func(t *testing.T) {
		mockRepo, _, _, _, svc := newTestService()

		mockRepo.On("GetByIDForUser", "order-1", "user-1").Return(testOrder("order-1", model.StatusPending), nil)
		mockRepo.On("Cancel", mock.Anything, []model.StockDeduction{
			{ProductID: "prod-1", Quantity: 1},
		}).Return(nil)

		order, err := svc.CancelOrder("order-1", "user-1")
		assert.NoError(t, err)
		assert.Equal(t, model.StatusCancelled, order.Status)
	})

	t.Run("rejects cancelling completed order", func(t *testing.T) {
		mockRepo, _, _, _, svc := newTestService()

		mockRepo.On("GetByIDForUser", "order-1", "user-1").Return(testOrder("order-1", model.StatusCompleted), nil)

		_, err := svc.CancelOrder("order-1", "user-1")
		assert.ErrorIs(t, err, model.ErrCannotCancel)
		mockRepo.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything)
	})

	t.Run("rejects cancelling twice", func(t *testing.T) {
		mockRepo, _, _, _, svc := newTestService()

		mockRepo.On("GetByIDForUser", "order-1", "user-1").Return(testOrder("order-1", model.StatusCancelled), nil)

		_, err := svc.CancelOrder("order-1", "user-1")
		assert.ErrorIs(t, err, model.ErrAlreadyCancelled)
	})

	t.Run("hides other users' orders", func(t *testing.T) {
		mockRepo, _, _, _, svc := newTestService()

		mockRepo.On("GetByIDForUser", "order-1", "intruder").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.CancelOrder("order-1", "intruder")
		assert.ErrorIs(t, err, model.ErrOrderNotFound)
	})

	t.Run("admin cancel skips ownership check", func(t *testing.T) {
		mockRepo, _, _, _, svc := newTestService()

		mockRepo.On("GetByID", "order-1").Return(testOrder("order-1", model.StatusProcessing), nil)
		mockRepo.On("Cancel", mock.Anything, mock.Anything).Return(nil)

		order, err := svc.CancelOrder("order-1", "")
		assert.NoError(t, err)
		assert.Equal(t, model.StatusCancelled, order.Status)
		mockRepo.AssertNotCalled(t, "GetByIDForUser", mock.Anything, mock.Anything)
	})
}

func TestUpdateStatus(t *testing.T) {
	transitions := []struct {
		name    string
		from    string
		to      string
		allowed bool
	}{
		{"pending to processing", model.StatusPending, model.StatusProcessing, true},
		{"pending to completed", model.StatusPending, model.StatusCompleted, true},
		{"processing to completed", model.StatusProcessing, model.StatusCompleted, true},
		{"completed to refunded", model.StatusCompleted, model.StatusRefunded, true},
		{"processing to refunded", model.StatusProcessing, model.StatusRefunded, false},
		{"completed to processing", model.StatusCompleted, model.StatusProcessing, false},
		{"refunded to pending", model.StatusRefunded, model.StatusPending, false},
	}

	for _, tc := range transitions {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo, _, _, _, svc := newTestService()

			mockRepo.On("GetByID", "order-1").Return(testOrder("order-1", tc.from), nil)
			mockRepo.On("UpdateStatus", mock.Anything).Return(nil)

			order, err := svc.UpdateStatus("order-1", tc.to)
			if tc.allowed {
				assert.NoError(t, err)
				assert.Equal(t, tc.to, order.Status)
			} else {
				assert.ErrorIs(t, err, model.ErrInvalidTransition)
				mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything)
			}
		})
	}

	t.Run("rejects unknown status", func(t *testing.T) {
		_, _, _, _, svc := newTestService()

		_, err := svc.UpdateStatus("order-1", "shipped")
		assert.ErrorIs(t, err, model.ErrInvalidTransition)
	})

	t.Run("cancelling via status update restocks items", func(t *testing.T) {
		mockRepo, _, _, _, svc := newTestService()

		mockRepo.On("GetByID", "order-1").Return(testOrder("order-1", model.StatusPending), nil)
		mockRepo.On("Cancel", mock.Anything, []model.StockDeduction{
			{ProductID: "prod-1", Quantity: 1},
		}).Return(nil)

		order, err := svc.UpdateStatus("order-1", model.StatusCancelled)
		assert.NoError(t, err)
		assert.Equal(t, model.StatusCancelled, order.Status)
		mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything)
	})
}

func TestUpdatePaymentStatus(t *testing.T) {
	transitions := []struct {
		name    string
		from    string
		to      string
		allowed bool
	}{
		{"pending to completed", model.PaymentPending, model.PaymentCompleted, true},
		{"pending to failed", model.PaymentPending, model.PaymentFailed, true},
		{"failed to pending", model.PaymentFailed, model.PaymentPending, true},
		{"completed to refunded", model.PaymentCompleted, model.PaymentRefunded, true},
		{"pending to refunded", model.PaymentPending, model.PaymentRefunded, false},
		{"refunded to pending", model.PaymentRefunded, model.PaymentPending, false},
	}

	for _, tc := range transitions {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo, _, _, _, svc := newTestService()

			order := testOrder("order-1", model.StatusPending)
			order.PaymentStatus = tc.from
			mockRepo.On("GetByID", "order-1").Return(order, nil)
			mockRepo.On("UpdateStatus", mock.Anything).Return(nil)

			updated, err := svc.UpdatePaymentStatus("order-1", tc.to)
			if tc.allowed {
				assert.NoError(t, err)
				assert.Equal(t, tc.to, updated.PaymentStatus)
			} else {
				assert.ErrorIs(t, err, model.ErrInvalidTransition)
			}
		})
	}
}
