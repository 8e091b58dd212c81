package usecase

import (
	"context"

	"legalsite/internal/domain/entity"
)

// SubscriberUsecase handles newsletter signups.
type SubscriberUsecase interface {
	// Subscribe validates and registers email. It fails with a ValidationError,
	// ErrAlreadySubscribed or ErrRemoteUnavailable.
	Subscribe(ctx context.Context, email string, lang entity.Language) (*entity.Subscriber, error)
}
