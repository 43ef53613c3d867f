package client

// http_client.go = handles HTTP client functionality for the stackit CLI.

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// defines the HTTP client structure and methods
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type Notification struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	QuestionID *string   `json:"question_id"`
	AnswerID   *string   `json:"answer_id"`
	Message    string    `json:"message"`
	IsRead     bool      `json:"is_read"`
	Timestamp  time.Time `json:"timestamp"`
}

type MarkReadResponse struct {
	Message  string `json:"message"`
	Matched  int64  `json:"matched"`
	Modified int64  `json:"modified"`
}

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.Status, e.Message)
}

// constructor for HTTP client
func NewHTTPClient(apiURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: apiURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// set token for HTTP client
func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

func (c *HTTPClient) Register(request *RegisterRequest) (*RegisterResponse, error) {
	var result RegisterResponse
	if err := c.do(http.MethodPost, "/auth/register", request, http.StatusCreated, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) Login(request *LoginRequest) (*TokenResponse, error) {
	var result TokenResponse
	if err := c.do(http.MethodPost, "/login", request, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) ListNotifications() ([]Notification, error) {
	var result []Notification
	if err := c.do(http.MethodGet, "/notifications", nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) MarkNotificationsRead() (*MarkReadResponse, error) {
	var result MarkReadResponse
	if err := c.do(http.MethodPost, "/notifications/mark_read", nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) do(method, path string, body any, wantStatus int, out any) error {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	response, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer response.Body.Close() // Ensure the response body is closed

	if response.StatusCode != wantStatus {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(response.Body).Decode(&apiErr)
		return &APIError{Status: response.StatusCode, Message: apiErr.Error}
	}

	return json.NewDecoder(response.Body).Decode(out)
}
