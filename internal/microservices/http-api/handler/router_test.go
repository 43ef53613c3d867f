package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"stackit/internal/microservices/http-api/middleware"
	"stackit/internal/microservices/http-api/service"
	"stackit/internal/microservices/websocket"
	"stackit/internal/middleware/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestRouter(authSvc *MockAuthService, questions *MockQuestionService, perMinute int) http.Handler {
	setupRouter() // test mode
	users := new(MockUserService)
	users.On("Get", mock.Anything).Return(nil, service.ErrUserNotFound)
	return NewRouter(RouterDeps{
		Auth:          authSvc,
		Users:         users,
		Questions:     questions,
		Answers:       new(MockAnswerService),
		Flags:         new(MockFlagService),
		Notifications: new(MockNotificationService),
		Registry:      websocket.NewRegistry(auth.NewTokenManager("router-test-secret", 0)),
		Limiter:       middleware.NewMemoryLimiter(perMinute),
	})
}

func TestRouter_HealthReportsChannels(t *testing.T) {
	router := newTestRouter(new(MockAuthService), new(MockQuestionService), 30)

	req, _ := http.NewRequest(http.MethodGet, "/check-conn", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"API is alive","notification_channels":0}`, w.Body.String())
}

func TestRouter_ProtectedRoutesNeedToken(t *testing.T) {
	router := newTestRouter(new(MockAuthService), new(MockQuestionService), 30)

	req, _ := http.NewRequest(http.MethodGet, "/notifications", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_PublicQuestionList(t *testing.T) {
	questions := new(MockQuestionService)
	questions.On("List", "").Return(nil, nil)
	router := newTestRouter(new(MockAuthService), questions, 30)

	req, _ := http.NewRequest(http.MethodGet, "/questions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":0,"data":[]}`, w.Body.String())
}

func TestRouter_UserProfileIsPublic(t *testing.T) {
	router := newTestRouter(new(MockAuthService), new(MockQuestionService), 30)

	req, _ := http.NewRequest(http.MethodGet, "/users/"+profileID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_RateLimitSkipsHealth(t *testing.T) {
	questions := new(MockQuestionService)
	questions.On("List", "").Return(nil, nil)
	router := newTestRouter(new(MockAuthService), questions, 1)

	do := func(path string) int {
		req, _ := http.NewRequest(http.MethodGet, path, nil)
		req.RemoteAddr = "192.0.2.10:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do("/questions"))
	assert.Equal(t, http.StatusTooManyRequests, do("/questions"))
	assert.Equal(t, http.StatusOK, do("/check-conn"))
}
