package dto

import (
	"time"

	"stackit/internal/microservices/http-api/models"
)

type CreateAnswerRequest struct {
	QuestionID string `json:"question_id" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

type AnswerResponse struct {
	ID         string    `json:"id"`
	QuestionID string    `json:"question_id"`
	AuthorID   string    `json:"author_id"`
	Content    string    `json:"content"`
	Upvotes    int       `json:"upvotes"`
	Downvotes  int       `json:"downvotes"`
	IsAccepted bool      `json:"is_accepted"`
	Flagged    bool      `json:"flagged"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromModelToAnswerResponse(a *models.Answer) AnswerResponse {
	return AnswerResponse{
		ID:         a.ID,
		QuestionID: a.QuestionID,
		AuthorID:   a.AuthorID,
		Content:    a.Content,
		Upvotes:    a.Upvotes,
		Downvotes:  a.Downvotes,
		IsAccepted: a.IsAccepted,
		Flagged:    a.Flagged,
		Status:     a.Status,
		CreatedAt:  a.CreatedAt,
	}
}

// FlagRequest is the body of both flag endpoints.
type FlagRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type MarkReadResponse struct {
	Message  string `json:"message"`
	Matched  int64  `json:"matched"`
	Modified int64  `json:"modified"`
}
