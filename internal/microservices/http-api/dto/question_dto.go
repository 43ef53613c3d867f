package dto

import (
	"time"

	"stackit/internal/microservices/http-api/models"

	"github.com/samber/lo"
)

type CreateQuestionRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Tags        string `json:"tags" binding:"required"` // comma separated
}

type QuestionResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Tags        []string         `json:"tags"`
	AuthorID    string           `json:"author_id"`
	Flagged     bool             `json:"flagged"`
	Status      string           `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	Answers     []AnswerResponse `json:"answers,omitempty"`
}

type QuestionListResponse struct {
	Count int                `json:"count"`
	Data  []QuestionResponse `json:"data"`
}

func FromModelToQuestionResponse(q *models.Question) QuestionResponse {
	return QuestionResponse{
		ID:          q.ID,
		Title:       q.Title,
		Description: q.Description,
		Tags:        q.TagList(),
		AuthorID:    q.AuthorID,
		Flagged:     q.Flagged,
		Status:      q.Status,
		CreatedAt:   q.CreatedAt,
		Answers: lo.Map(q.Answers, func(a models.Answer, _ int) AnswerResponse {
			return FromModelToAnswerResponse(&a)
		}),
	}
}

func FromModelsToQuestionList(questions []models.Question) QuestionListResponse {
	data := lo.Map(questions, func(q models.Question, _ int) QuestionResponse {
		return FromModelToQuestionResponse(&q)
	})
	return QuestionListResponse{Count: len(data), Data: data}
}
