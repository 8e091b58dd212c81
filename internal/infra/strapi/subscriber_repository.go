package strapi

import (
	"context"
	"net/http"

	"legalsite/internal/domain/entity"
	domainerrors "legalsite/internal/domain/errors"
	"legalsite/internal/domain/repository"
	"legalsite/internal/errors"
)

type subscriberRepository struct {
	client Fetcher
}

// NewSubscriberRepository creates a subscriber repository backed by the content service.
func NewSubscriberRepository(client *Client) repository.SubscriberRepository {
	return &subscriberRepository{client: client}
}

type subscriberPayload struct {
	Data struct {
		Email string `json:"email"`
	} `json:"data"`
}

func (r *subscriberRepository) AddSubscriber(ctx context.Context, email string) (*entity.Subscriber, error) {
	var payload subscriberPayload
	payload.Data.Email = email

	env, err := r.client.Fetch(ctx, pathSubscribers, WithMethod(http.MethodPost), WithJSONBody(payload))
	if err != nil {
		return nil, err
	}

	// The created entry comes back as a single object, not an array.
	flat, err := flatten(env.Data)
	if err != nil {
		return nil, domainerrors.NewRemoteError(err, "malformed payload from POST "+pathSubscribers)
	}

	items, err := decodeItems[subscriberDTO](&Envelope{Data: wrapArray(flat)}, pathSubscribers)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domainerrors.NewRemoteError(errors.New("empty create response"), "POST "+pathSubscribers)
	}

	return items[0].toEntity(), nil
}

func (r *subscriberRepository) SubscriberExists(ctx context.Context, email string) (bool, error) {
	path := NewQuery().Eq("email", email).Path(pathSubscribers)

	items, err := fetchItems[subscriberDTO](ctx, r.client, path)
	if err != nil {
		return false, err
	}

	return len(items) > 0, nil
}

func wrapArray(item []byte) []byte {
	out := make([]byte, 0, len(item)+2)
	out = append(out, '[')
	out = append(out, item...)

	return append(out, ']')
}
