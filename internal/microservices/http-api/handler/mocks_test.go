package handler

import (
	"context"

	"stackit/internal/microservices/http-api/models"
	"stackit/internal/middleware/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// MockAuthService mocks the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	args := m.Called(name, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	args := m.Called(email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*models.User), args.Error(2)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*auth.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Claims), args.Error(1)
}

// MockQuestionService mocks the QuestionService interface
type MockQuestionService struct {
	mock.Mock
}

func (m *MockQuestionService) Create(ctx context.Context, authorID, title, description, tags string) (*models.Question, error) {
	args := m.Called(authorID, title, description, tags)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Question), args.Error(1)
}

func (m *MockQuestionService) List(ctx context.Context, tag string) ([]models.Question, error) {
	args := m.Called(tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Question), args.Error(1)
}

func (m *MockQuestionService) Get(ctx context.Context, id string) (*models.Question, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Question), args.Error(1)
}

// MockAnswerService mocks the AnswerService interface
type MockAnswerService struct {
	mock.Mock
}

func (m *MockAnswerService) Post(ctx context.Context, userID, questionID, content string) (*models.Answer, error) {
	args := m.Called(userID, questionID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Answer), args.Error(1)
}

func (m *MockAnswerService) Vote(ctx context.Context, answerID string, vote int) error {
	args := m.Called(answerID, vote)
	return args.Error(0)
}

func (m *MockAnswerService) Accept(ctx context.Context, userID, answerID string) error {
	args := m.Called(userID, answerID)
	return args.Error(0)
}

// MockFlagService mocks the FlagService interface
type MockFlagService struct {
	mock.Mock
}

func (m *MockFlagService) FlagQuestion(ctx context.Context, userID, questionID, reason string) error {
	args := m.Called(userID, questionID, reason)
	return args.Error(0)
}

func (m *MockFlagService) FlagAnswer(ctx context.Context, userID, answerID, reason string) error {
	args := m.Called(userID, answerID, reason)
	return args.Error(0)
}

// MockNotificationService mocks the NotificationService interface
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) List(ctx context.Context, userID string) ([]models.Notification, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockNotificationService) MarkAllAsRead(ctx context.Context, userID string) (int64, int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

// MockUserService mocks the UserService interface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Get(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// setupAuthedRouter stands in for the auth middleware by pinning the caller identity.
func setupAuthedRouter(userID string) *gin.Engine {
	router := setupRouter()
	router.Use(func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	})
	return router
}
