package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"stackit/internal/microservices/http-api/models"
	"stackit/internal/microservices/http-api/service"

	"github.com/stretchr/testify/assert"
)

const profileID = "4b0a3c53-7c43-4c1e-9a59-2f0a2b8a6a11"

func TestGetUser(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		user       *models.User
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "found",
			id:         profileID,
			user:       &models.User{ID: profileID, Name: "Ada", Email: "ada@example.com", Password: "hash"},
			wantStatus: http.StatusOK,
			wantBody:   `{"id":"` + profileID + `","name":"Ada","email":"ada@example.com"}`,
		},
		{
			name:       "unknown id",
			id:         profileID,
			err:        service.ErrUserNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"user not found"}`,
		},
		{
			name:       "malformed id",
			id:         "not-a-uuid",
			err:        service.ErrInvalidID,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"invalid id format"}`,
		},
		{
			name:       "storage failure",
			id:         profileID,
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserService)
			router := setupRouter()
			NewUserHandler(users).RegisterRoutes(router)

			if tt.user != nil {
				users.On("Get", tt.id).Return(tt.user, nil)
			} else {
				users.On("Get", tt.id).Return(nil, tt.err)
			}

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/users/"+tt.id, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			assert.NotContains(t, w.Body.String(), "hash")
			users.AssertExpectations(t)
		})
	}
}
