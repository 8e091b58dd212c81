package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"legalsite/internal/domain/service"
	logs "legalsite/internal/infra/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PublishSubscriberEvent(t *testing.T) {
	var received PushMessage
	var requestID string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, logs.Discard())
	event := &service.SubscriberEvent{
		RequestID:    "req-1",
		EventID:      "evt-1",
		Type:         service.SubscriberCreatedEvent,
		Email:        "client@example.com",
		Locale:       "ar",
		SubscribedAt: "2026-01-01T00:00:00Z",
	}

	require.NoError(t, publisher.PublishSubscriberEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "ar", received.Message.Attributes["locale"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.SubscriberEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, logs.Discard())
	err := publisher.PublishSubscriberEvent(context.Background(), &service.SubscriberEvent{EventID: "evt-2"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
