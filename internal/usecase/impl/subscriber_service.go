package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "legalsite/internal/delivery/context"
	"legalsite/internal/domain/entity"
	domainerrors "legalsite/internal/domain/errors"
	"legalsite/internal/domain/repository"
	"legalsite/internal/domain/service"
	"legalsite/internal/errors"
	"legalsite/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type subscribeInput struct {
	Email string `validate:"required,email,max=254"`
}

// subscriberService implements the SubscriberUsecase interface.
type subscriberService struct {
	subscriberRepo repository.SubscriberRepository
	publisher      service.EventPublisher
	validate       *validator.Validate
	now            func() time.Time
	logger         *slog.Logger
}

// NewSubscriberService is the constructor for subscriberService.
func NewSubscriberService(
	subscriberRepo repository.SubscriberRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.SubscriberUsecase {
	return &subscriberService{
		subscriberRepo: subscriberRepo,
		publisher:      publisher,
		validate:       validator.New(),
		now:            time.Now,
		logger:         logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *subscriberService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// Subscribe registers email for the newsletter.
func (srv *subscriberService) Subscribe(ctx context.Context, email string, lang entity.Language) (*entity.Subscriber, error) {
	input := subscribeInput{Email: strings.ToLower(strings.TrimSpace(email))}
	if err := srv.validate.Struct(input); err != nil {
		return nil, errors.WithStack(validationError(err))
	}

	logger := srv.log(ctx)

	exists, err := srv.subscriberRepo.SubscriberExists(ctx, input.Email)
	if err != nil {
		return nil, remoteFailure(err, "check subscriber")
	}
	if exists {
		return nil, errors.WithStack(domainerrors.ErrAlreadySubscribed)
	}

	subscriber, err := srv.subscriberRepo.AddSubscriber(ctx, input.Email)
	if err != nil {
		return nil, remoteFailure(err, "add subscriber")
	}
	if subscriber == nil {
		subscriber = &entity.Subscriber{Email: input.Email}
	}
	if subscriber.SubscribedAt.IsZero() {
		subscriber.SubscribedAt = srv.now().UTC()
	}

	event := &service.SubscriberEvent{
		RequestID:    deliverycontext.RequestIDFrom(ctx),
		EventID:      uuid.New().String(),
		Type:         service.SubscriberCreatedEvent,
		Email:        subscriber.Email,
		Locale:       lang.String(),
		SubscribedAt: subscriber.SubscribedAt.Format(time.RFC3339),
	}
	if err := srv.publisher.PublishSubscriberEvent(ctx, event); err != nil {
		logger.Error("Failed to publish subscriber event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)
	}

	logger.Info("Subscriber added", slog.Int("subscriber_id", subscriber.ID))

	return subscriber, nil
}

// validationError turns validator field errors into per-field messages.
func validationError(err error) error {
	fieldErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return domainerrors.NewValidationError(map[string]string{"email": err.Error()})
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		name := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			fields[name] = "is required"
		case "email":
			fields[name] = "must be a valid email address"
		case "max":
			fields[name] = "must be at most " + fe.Param() + " characters"
		default:
			fields[name] = "is invalid"
		}
	}

	return domainerrors.NewValidationError(fields)
}

// remoteFailure keeps content service errors as they are and reports anything
// else as the content service being unavailable.
func remoteFailure(err error, op string) error {
	if errors.Is(err, domainerrors.ErrRemoteUnavailable) {
		return errors.Wrap(err, op)
	}

	return domainerrors.NewRemoteError(errors.WithStack(err), op)
}
