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

type FlagService interface {
	FlagQuestion(ctx context.Context, userID, questionID, reason string) error
	FlagAnswer(ctx context.Context, userID, answerID, reason string) error
}

type flagService struct {
	flagRepo     repository.FlagRepository
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
	publisher    *publisher
	now          func() time.Time
}

func NewFlagService(
	flagRepo repository.FlagRepository,
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
	notificationRepo repository.NotificationRepository,
	notifier websocket.Notifier,
	logger *slog.Logger,
) FlagService {
	return &flagService{
		flagRepo:     flagRepo,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		publisher:    newPublisher(notificationRepo, notifier, logger),
		now:          time.Now,
	}
}

func (s *flagService) FlagQuestion(ctx context.Context, userID, questionID, reason string) error {
	if err := validID(questionID); err != nil {
		return err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return emptyField("reason")
	}

	question, err := s.questionRepo.GetByID(ctx, questionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrQuestionNotFound
		}
		return err
	}

	err = s.flagRepo.Record(ctx, &models.Flag{
		TargetType: models.FlagTargetQuestion,
		TargetID:   question.ID,
		UserID:     userID,
		Reason:     reason,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrQuestionNotFound
		}
		return err
	}

	if question.AuthorID != userID {
		event := websocket.NewQuestionFlaggedNotification(question.ID, reason, s.now())
		s.publisher.publish(ctx, &models.Notification{
			UserID:     question.AuthorID,
			Type:       string(event.Type),
			QuestionID: &question.ID,
			Message:    event.Message,
		}, event)
	}
	return nil
}

// FlagAnswer reports an answer. Each user may flag a given answer once.
func (s *flagService) FlagAnswer(ctx context.Context, userID, answerID, reason string) error {
	if err := validID(answerID); err != nil {
		return err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return emptyField("reason")
	}

	answer, err := s.answerRepo.GetByID(ctx, answerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAnswerNotFound
		}
		return err
	}

	flagged, err := s.flagRepo.Exists(ctx, models.FlagTargetAnswer, answer.ID, userID)
	if err != nil {
		return err
	}
	if flagged {
		return ErrAlreadyFlagged
	}

	err = s.flagRepo.Record(ctx, &models.Flag{
		TargetType: models.FlagTargetAnswer,
		TargetID:   answer.ID,
		UserID:     userID,
		Reason:     reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return ErrAnswerNotFound
		case errors.Is(err, repository.ErrDuplicate):
			// a concurrent request won the race past Exists
			return ErrAlreadyFlagged
		}
		return err
	}

	if answer.AuthorID != userID {
		event := websocket.NewAnswerFlaggedNotification(answer.QuestionID, answer.ID, reason, s.now())
		s.publisher.publish(ctx, &models.Notification{
			UserID:     answer.AuthorID,
			Type:       string(event.Type),
			QuestionID: &answer.QuestionID,
			AnswerID:   &answer.ID,
			Message:    event.Message,
		}, event)
	}
	return nil
}
