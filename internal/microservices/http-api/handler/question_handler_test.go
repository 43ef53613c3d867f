package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stackit/internal/microservices/http-api/dto"
	"stackit/internal/microservices/http-api/models"
	"stackit/internal/microservices/http-api/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuestionRouter(questions *MockQuestionService, flags *MockFlagService) http.Handler {
	router := setupAuthedRouter(callerID)
	NewQuestionHandler(questions, flags).RegisterRoutes(router, router)
	return router
}

func TestCreateQuestion(t *testing.T) {
	questions := new(MockQuestionService)
	router := newQuestionRouter(questions, new(MockFlagService))

	created := &models.Question{
		ID:          "q-1",
		Title:       "Closing channels",
		Description: "When?",
		Tags:        "go,channels",
		AuthorID:    callerID,
		Status:      models.StatusActive,
		CreatedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	questions.On("Create", callerID, "Closing channels", "When?", "go, channels").Return(created, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, postJSON(t, "/questions", dto.CreateQuestionRequest{
		Title:       "Closing channels",
		Description: "When?",
		Tags:        "go, channels",
	}))

	require.Equal(t, http.StatusCreated, w.Code)
	var resp dto.QuestionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"go", "channels"}, resp.Tags)
	assert.Equal(t, callerID, resp.AuthorID)
}

func TestCreateQuestion_EmptyTitle(t *testing.T) {
	questions := new(MockQuestionService)
	router := newQuestionRouter(questions, new(MockFlagService))

	questions.On("Create", callerID, " ", "d", "go").Return(nil, service.ErrEmptyField)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, postJSON(t, "/questions", dto.CreateQuestionRequest{Title: " ", Description: "d", Tags: "go"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListQuestions_TagFilter(t *testing.T) {
	questions := new(MockQuestionService)
	router := newQuestionRouter(questions, new(MockFlagService))

	questions.On("List", "go").Return([]models.Question{{ID: "q-2", Tags: "go"}, {ID: "q-1", Tags: "go,sql"}}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/questions?tag=go", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.QuestionListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "q-2", resp.Data[0].ID)
}

func TestGetQuestion_WithAnswers(t *testing.T) {
	questions := new(MockQuestionService)
	router := newQuestionRouter(questions, new(MockFlagService))

	questions.On("Get", "q-1").Return(&models.Question{
		ID:      "q-1",
		Answers: []models.Answer{{ID: "a-1", QuestionID: "q-1", Content: "yes"}},
	}, nil)
	questions.On("Get", "missing").Return(nil, service.ErrQuestionNotFound)

	req, _ := http.NewRequest(http.MethodGet, "/questions/q-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.QuestionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Answers, 1)
	assert.Equal(t, "yes", resp.Answers[0].Content)

	req, _ = http.NewRequest(http.MethodGet, "/questions/missing", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFlagQuestion_RequiresReason(t *testing.T) {
	flags := new(MockFlagService)
	router := newQuestionRouter(new(MockQuestionService), flags)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, postJSON(t, "/questions/q-1/flag", map[string]string{}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	flags.AssertNotCalled(t, "FlagQuestion")
}

func TestFlagQuestion_Success(t *testing.T) {
	flags := new(MockFlagService)
	router := newQuestionRouter(new(MockQuestionService), flags)

	flags.On("FlagQuestion", callerID, "q-1", "off-topic").Return(nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, postJSON(t, "/questions/q-1/flag", dto.FlagRequest{Reason: "off-topic"}))

	assert.Equal(t, http.StatusOK, w.Code)
	flags.AssertExpectations(t)
}
