package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"stackit/internal/microservices/http-api/models"
	"stackit/internal/microservices/http-api/repository"
	"stackit/internal/microservices/websocket"
)

type AnswerService interface {
	Post(ctx context.Context, userID, questionID, content string) (*models.Answer, error)
	Vote(ctx context.Context, answerID string, vote int) error
	Accept(ctx context.Context, userID, answerID string) error
}

type answerService struct {
	answerRepo   repository.AnswerRepository
	questionRepo repository.QuestionRepository
	publisher    *publisher
	now          func() time.Time
}

func NewAnswerService(
	answerRepo repository.AnswerRepository,
	questionRepo repository.QuestionRepository,
	notificationRepo repository.NotificationRepository,
	notifier websocket.Notifier,
	logger *slog.Logger,
) AnswerService {
	return &answerService{
		answerRepo:   answerRepo,
		questionRepo: questionRepo,
		publisher:    newPublisher(notificationRepo, notifier, logger),
		now:          time.Now,
	}
}

// Post stores the answer and notifies the question author, unless they answered themselves.
func (s *answerService) Post(ctx context.Context, userID, questionID, content string) (*models.Answer, error) {
	if err := validID(questionID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, emptyField("content")
	}

	question, err := s.questionRepo.GetByID(ctx, questionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}

	answer := &models.Answer{
		QuestionID: question.ID,
		AuthorID:   userID,
		Content:    content,
		Status:     models.StatusActive,
	}
	if err := s.answerRepo.Create(ctx, answer); err != nil {
		return nil, err
	}

	if question.AuthorID != userID {
		s.publisher.publish(ctx,
			&models.Notification{
				UserID:     question.AuthorID,
				Type:       string(websocket.EventNewAnswer),
				QuestionID: &question.ID,
				AnswerID:   &answer.ID,
				Message:    websocket.Preview(content, StoredMessageLength),
			},
			websocket.NewAnswerNotification(question.ID, answer.ID, content, s.now()),
		)
	}

	return answer, nil
}

func (s *answerService) Vote(ctx context.Context, answerID string, vote int) error {
	if vote != 1 && vote != -1 {
		return ErrInvalidVote
	}
	if err := validID(answerID); err != nil {
		return err
	}

	err := s.answerRepo.Vote(ctx, answerID, vote == 1)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrAnswerNotFound
	case errors.Is(err, repository.ErrVoteLimit):
		return ErrVoteLimit
	}
	return err
}

// Accept marks the answer accepted. Only the author of the question may do it.
func (s *answerService) Accept(ctx context.Context, userID, answerID string) error {
	if err := validID(answerID); err != nil {
		return err
	}

	answer, err := s.answerRepo.GetByID(ctx, answerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAnswerNotFound
		}
		return err
	}

	question, err := s.questionRepo.GetByID(ctx, answer.QuestionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrQuestionNotFound
		}
		return err
	}
	if question.AuthorID != userID {
		return ErrForbidden
	}

	if err := s.answerRepo.Accept(ctx, answerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAnswerNotFound
		}
		return err
	}
	return nil
}
