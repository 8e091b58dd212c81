package service

import (
	"context"
)

// SubscriberEvent is emitted after a newsletter signup succeeds
type SubscriberEvent struct {
	RequestID    string `json:"request_id,omitempty"` // For distributed tracing
	EventID      string `json:"event_id"`
	Type         string `json:"type"`
	Email        string `json:"email"`
	Locale       string `json:"locale,omitempty"`
	SubscribedAt string `json:"subscribed_at"`
}

// SubscriberCreatedEvent is the type of SubscriberEvent published on signup
const SubscriberCreatedEvent = "subscriber.created"

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishSubscriberEvent publishes a subscriber event for downstream processing
	PublishSubscriberEvent(ctx context.Context, event *SubscriberEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
