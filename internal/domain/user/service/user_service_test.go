package service

import (
	"testing"

	"shop_backoffice/internal/domain/user/model"
	"shop_backoffice/internal/pkg/config"
	baseModel "shop_backoffice/pkg/model"
	"shop_backoffice/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockUserRepository is a mock of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*model.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetList(offset, limit int) ([]model.User, int64, error) {
	args := m.Called(offset, limit)
	return args.Get(0).([]model.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) Update(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func TestMain(m *testing.M) {
	config.GlobalConfig.JWT.Secret = "test_secret_key_0123456789abcdefghij"
	config.GlobalConfig.JWT.Expire = 1
	m.Run()
}

func TestRegister(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := NewUserService(mockRepo)

		mockRepo.On("GetByUsername", "alice").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", mock.AnythingOfType("*model.User")).Return(nil)

		user, err := svc.Register("alice", "s3cret-pass", "alice@example.com")
		assert.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, model.RoleUser, user.Role)
		// 密码必须以哈希形式存储
		assert.NotEqual(t, "s3cret-pass", user.Password)
		assert.True(t, utils.CheckPassword(user.Password, "s3cret-pass"))
	})

	t.Run("duplicate username", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := NewUserService(mockRepo)

		mockRepo.On("GetByUsername", "alice").Return(&model.User{Username: "alice"}, nil)

		_, err := svc.Register("alice", "s3cret-pass", "alice@example.com")
		assert.ErrorIs(t, err, ErrUserExists)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	hashed, _ := utils.HashPassword("s3cret-pass")

	newUser := func(status int) *model.User {
		return &model.User{
			BaseModel: baseModel.BaseModel{ID: "user-1"},
			Username:  "alice",
			Password:  hashed,
			Role:      model.RoleUser,
			Status:    status,
		}
	}

	t.Run("success returns token", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := NewUserService(mockRepo)

		mockRepo.On("GetByUsername", "alice").Return(newUser(model.StatusNormal), nil)

		token, err := svc.Login("alice", "s3cret-pass")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := utils.ParseToken(token)
		assert.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := NewUserService(mockRepo)

		mockRepo.On("GetByUsername", "alice").Return(newUser(model.StatusNormal), nil)

		_, err := svc.Login("alice", "wrong")
		assert.ErrorIs(t, err, ErrAuthFailed)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := NewUserService(mockRepo)

		mockRepo.On("GetByUsername", "ghost").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Login("ghost", "whatever")
		assert.ErrorIs(t, err, ErrAuthFailed)
	})

	t.Run("banned user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := NewUserService(mockRepo)

		mockRepo.On("GetByUsername", "alice").Return(newUser(model.StatusBanned), nil)

		_, err := svc.Login("alice", "s3cret-pass")
		assert.ErrorIs(t, err, ErrUserBanned)
	})
}

func TestGetUser(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := NewUserService(mockRepo)

		mockRepo.On("GetByID", "nobody").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetUser("nobody")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
