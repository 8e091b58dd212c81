package repository

import (
	"context"

	"legalsite/internal/domain/entity"
)

// SubscriberRepository defines newsletter subscriber operations.
type SubscriberRepository interface {
	// AddSubscriber registers a new subscriber email.
	AddSubscriber(ctx context.Context, email string) (*entity.Subscriber, error)

	// SubscriberExists reports whether the email is already registered.
	SubscriberExists(ctx context.Context, email string) (bool, error)
}
