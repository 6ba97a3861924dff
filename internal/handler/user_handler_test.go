package handler_test

import (
	"context"
	"net/http"
	"testing"

	"gantt/internal/handler"
	"gantt/internal/middleware"
	"gantt/internal/model"
	"gantt/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Мок репозитория пользователей
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	users := args.Get(0)
	if users == nil {
		return nil, args.Error(1)
	}
	return users.([]model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

var _ repository.UserRepositoryInterface = (*MockUserRepository)(nil)

// setupUserRouter собирает маршруты управления пользователями с подставной
// аутентификацией супер-админа
func setupUserRouter(actorID uuid.UUID, isSuperAdmin bool) (*gin.Engine, *MockUserRepository) {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	mockRepo := new(MockUserRepository)
	userHandler := handler.NewUserHandler(mockRepo)

	r.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, actorID)
		c.Set(middleware.IsSuperAdminKey, isSuperAdmin)
		c.Next()
	})

	r.GET("/api/users", userHandler.List)
	r.POST("/api/users", userHandler.Create)
	r.GET("/api/users/:id", userHandler.Get)
	r.PUT("/api/users/:id", userHandler.Update)
	r.DELETE("/api/users/:id", userHandler.Delete)
	r.POST("/api/users/:id/reset-password", userHandler.ResetPassword)

	return r, mockRepo
}

func TestUserCreate_Success(t *testing.T) {
	// Arrange
	router, mockRepo := setupUserRouter(uuid.New(), true)

	mockRepo.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, nil)

	var created *model.User
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*model.User)
		}).
		Return(nil)

	body := map[string]any{
		"email":     "new@example.com",
		"full_name": "Новый Пользователь",
		"position":  "Инженер",
		"password":  "password123",
	}

	// Act
	resp := doJSON(t, router, "POST", "/api/users", body)

	// Assert
	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.NotNil(t, created)

	// Созданный пользователь никогда не получает роль супер-админа
	assert.False(t, created.IsSuperAdmin)
	assert.Equal(t, "new@example.com", created.Email)
	assert.NotEqual(t, "password123", created.HashedPassword)

	mockRepo.AssertExpectations(t)
}

func TestUserCreate_EmailAlreadyInUse(t *testing.T) {
	// Arrange
	router, mockRepo := setupUserRouter(uuid.New(), true)

	existing := &model.User{ID: uuid.New(), Email: "taken@example.com"}
	mockRepo.On("FindByEmail", mock.Anything, "taken@example.com").Return(existing, nil)

	body := map[string]any{
		"email":     "taken@example.com",
		"full_name": "Дубликат",
		"position":  "Инженер",
		"password":  "password123",
	}

	// Act
	resp := doJSON(t, router, "POST", "/api/users", body)

	// Assert
	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.Contains(t, resp.Body.String(), "Email already in use")
	mockRepo.AssertNotCalled(t, "Create")
}

func TestUserDelete_Self(t *testing.T) {
	// Arrange: супер-админ пытается удалить самого себя
	actorID := uuid.New()
	router, mockRepo := setupUserRouter(actorID, true)

	self := &model.User{ID: actorID, Email: "admin@admin.ru", IsSuperAdmin: true}
	mockRepo.On("GetByID", mock.Anything, actorID).Return(self, nil)

	// Act
	resp := doJSON(t, router, "DELETE", "/api/users/"+actorID.String(), nil)

	// Assert
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "Cannot delete yourself")
	mockRepo.AssertNotCalled(t, "Delete")
}

func TestUserDelete_SuperAdminTarget(t *testing.T) {
	// Arrange: целевой пользователь — другой супер-админ
	router, mockRepo := setupUserRouter(uuid.New(), true)

	targetID := uuid.New()
	target := &model.User{ID: targetID, Email: "root@admin.ru", IsSuperAdmin: true}
	mockRepo.On("GetByID", mock.Anything, targetID).Return(target, nil)

	// Act
	resp := doJSON(t, router, "DELETE", "/api/users/"+targetID.String(), nil)

	// Assert
	assert.Equal(t, http.StatusForbidden, resp.Code)
	assert.Contains(t, resp.Body.String(), "Cannot delete super admin")
	mockRepo.AssertNotCalled(t, "Delete")
}

func TestUserDelete_Success(t *testing.T) {
	// Arrange
	router, mockRepo := setupUserRouter(uuid.New(), true)

	targetID := uuid.New()
	target := &model.User{ID: targetID, Email: "user@example.com"}
	mockRepo.On("GetByID", mock.Anything, targetID).Return(target, nil)
	mockRepo.On("Delete", mock.Anything, targetID).Return(nil)

	// Act
	resp := doJSON(t, router, "DELETE", "/api/users/"+targetID.String(), nil)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	mockRepo.AssertExpectations(t)
}

func TestUserDelete_NotFound(t *testing.T) {
	// Arrange
	router, mockRepo := setupUserRouter(uuid.New(), true)

	targetID := uuid.New()
	mockRepo.On("GetByID", mock.Anything, targetID).Return(nil, repository.ErrUserNotFound)

	// Act
	resp := doJSON(t, router, "DELETE", "/api/users/"+targetID.String(), nil)

	// Assert
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestUserUpdate_OtherSuperAdmin(t *testing.T) {
	// Arrange: изменение чужого супер-админа запрещено
	router, mockRepo := setupUserRouter(uuid.New(), true)

	targetID := uuid.New()
	target := &model.User{ID: targetID, Email: "root@admin.ru", IsSuperAdmin: true}
	mockRepo.On("GetByID", mock.Anything, targetID).Return(target, nil)

	// Act
	resp := doJSON(t, router, "PUT", "/api/users/"+targetID.String(),
		map[string]any{"full_name": "Новое имя"})

	// Assert
	assert.Equal(t, http.StatusForbidden, resp.Code)
	assert.Contains(t, resp.Body.String(), "Cannot modify other super admin")
	mockRepo.AssertNotCalled(t, "Update")
}

func TestUserResetPassword(t *testing.T) {
	// Arrange
	router, mockRepo := setupUserRouter(uuid.New(), true)

	targetID := uuid.New()
	target := &model.User{ID: targetID, Email: "user@example.com", HashedPassword: "old-hash"}
	mockRepo.On("GetByID", mock.Anything, targetID).Return(target, nil)
	mockRepo.On("Update", mock.Anything, target).Return(nil)

	// Act
	resp := doJSON(t, router, "POST", "/api/users/"+targetID.String()+"/reset-password",
		map[string]any{"new_password": "newpassword"})

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.NotEqual(t, "old-hash", target.HashedPassword)
	mockRepo.AssertExpectations(t)
}
