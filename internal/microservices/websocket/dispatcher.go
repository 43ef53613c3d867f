package websocket

import (
	"log/slog"
)

// Notifier is what domain producers depend on. Deliver has no result on
// purpose: delivery is best-effort and must not decide the outcome of the
// domain action that triggered it.
type Notifier interface {
	Deliver(userID string, event Event)
}

// Dispatcher pushes one event to one user's live channel, if there is one.
type Dispatcher struct {
	registry *Registry
	logger   *slog.Logger
}

func NewDispatcher(registry *Registry, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{registry: registry, logger: logger}
}

// Deliver makes a single send attempt. A user without a channel is a no-op.
// A failed send evicts that channel (never a newer replacement) and drops the
// event; there is no retry and no buffering. Events without a type, nil
// included, are dropped before the lookup.
func (d *Dispatcher) Deliver(userID string, event Event) {
	if event == nil || event.Kind() == "" {
		d.logger.Debug("delivery_skipped_untyped_event", "user_id", userID)
		return
	}

	client, ok := d.registry.Lookup(userID)
	if !ok {
		d.logger.Debug("delivery_skipped_not_connected",
			"user_id", userID,
			"event_type", string(event.Kind()),
		)
		return
	}

	data, err := Encode(event)
	if err != nil {
		d.logger.Error("failed_to_encode_event",
			"user_id", userID,
			"event_type", string(event.Kind()),
			"error", err.Error(),
		)
		return
	}

	if err := client.Send(data); err != nil {
		d.registry.Release(client)
		client.Close()
		d.logger.Warn("delivery_failed",
			"user_id", userID,
			"client_id", client.ID,
			"event_type", string(event.Kind()),
			"error", err.Error(),
		)
		return
	}

	d.logger.Debug("event_delivered",
		"user_id", userID,
		"client_id", client.ID,
		"event_type", string(event.Kind()),
	)
}
