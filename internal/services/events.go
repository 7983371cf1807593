package services

import (
	"context"

	"go.uber.org/zap"
)

// Routing keys of the events published after successful writes.
const (
	EventAdminRegistered = "admin.registered"
	EventUserCreated     = "user.created"
)

// EventPublisher delivers domain events to a message broker.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// NopPublisher discards every event.
type NopPublisher struct{}

// Publish implements EventPublisher.
func (NopPublisher) Publish(context.Context, string, any) error { return nil }

// AdminRegistered is the payload of EventAdminRegistered.
type AdminRegistered struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserCreated is the payload of EventUserCreated.
type UserCreated struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// publish never fails the caller; the write it reports has already happened.
func publish(ctx context.Context, events EventPublisher, log *zap.Logger, routingKey string, payload any) {
	if err := events.Publish(ctx, routingKey, payload); err != nil {
		log.Warn("failed to publish event", zap.String("event", routingKey), zap.Error(err))
	}
}
