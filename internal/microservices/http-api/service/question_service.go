package service

import (
	"context"
	"errors"
	"strings"

	"stackit/internal/microservices/http-api/models"
	"stackit/internal/microservices/http-api/repository"

	"github.com/samber/lo"
)

type QuestionService interface {
	Create(ctx context.Context, authorID, title, description, tags string) (*models.Question, error)
	List(ctx context.Context, tag string) ([]models.Question, error)
	Get(ctx context.Context, id string) (*models.Question, error)
}

type questionService struct {
	questionRepo repository.QuestionRepository
}

func NewQuestionService(questionRepo repository.QuestionRepository) QuestionService {
	return &questionService{questionRepo: questionRepo}
}

// ParseTags splits a comma separated tag string, trimming blanks and duplicates.
func ParseTags(raw string) []string {
	tags := lo.Map(strings.Split(raw, ","), func(tag string, _ int) string {
		return strings.TrimSpace(tag)
	})
	return lo.Uniq(lo.Compact(tags))
}

func (s *questionService) Create(ctx context.Context, authorID, title, description, tags string) (*models.Question, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" {
		return nil, emptyField("title")
	}
	if description == "" {
		return nil, emptyField("description")
	}

	tagList := ParseTags(tags)
	if len(tagList) == 0 {
		return nil, emptyField("tags")
	}

	question := &models.Question{
		Title:       title,
		Description: description,
		Tags:        strings.Join(tagList, ","),
		AuthorID:    authorID,
		Status:      models.StatusActive,
	}
	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *questionService) List(ctx context.Context, tag string) ([]models.Question, error) {
	return s.questionRepo.List(ctx, strings.TrimSpace(tag))
}

func (s *questionService) Get(ctx context.Context, id string) (*models.Question, error) {
	if err := validID(id); err != nil {
		return nil, err
	}
	question, err := s.questionRepo.GetWithAnswers(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	return question, nil
}
