package service

import (
	"context"

	"stackit/internal/microservices/http-api/models"
	"stackit/internal/microservices/http-api/repository"
)

type NotificationService interface {
	List(ctx context.Context, userID string) ([]models.Notification, error)
	MarkAllAsRead(ctx context.Context, userID string) (matched, modified int64, err error)
}

type notificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) List(ctx context.Context, userID string) ([]models.Notification, error) {
	notifications, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}
	return notifications, nil
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, userID string) (int64, int64, error) {
	return s.repo.MarkAllAsRead(ctx, userID)
}
