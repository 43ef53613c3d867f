package service

import (
	"context"
	"log/slog"

	"stackit/internal/microservices/http-api/models"
	"stackit/internal/microservices/http-api/repository"
	"stackit/internal/microservices/websocket"
)

// StoredMessageLength is how many characters of an answer the persisted notification keeps.
const StoredMessageLength = 200

// publisher stores the recipient's notification row and then pushes the live event.
// Neither step can fail the domain action that produced it.
type publisher struct {
	notifications repository.NotificationRepository
	notifier      websocket.Notifier
	logger        *slog.Logger
}

func newPublisher(notifications repository.NotificationRepository, notifier websocket.Notifier, logger *slog.Logger) *publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &publisher{notifications: notifications, notifier: notifier, logger: logger}
}

func (p *publisher) publish(ctx context.Context, row *models.Notification, event websocket.Event) {
	if err := p.notifications.Create(ctx, row); err != nil {
		p.logger.Error("notification_persist_failed",
			"user_id", row.UserID,
			"type", row.Type,
			"error", err.Error(),
		)
	}
	p.notifier.Deliver(row.UserID, event)
}
