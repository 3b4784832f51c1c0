package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"comerciaya/internal/domain/constants"
	"comerciaya/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PushFormat(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	event := &service.MarketplaceEvent{
		RequestID:     "req-1",
		Type:          constants.EventRatingCreated,
		BusinessID:    "biz-1",
		RatingCount:   2,
		RatingAverage: 3.0,
	}

	require.NoError(t, publisher.PublishMarketplaceEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, constants.EventRatingCreated, received.Message.Attributes["type"])
	assert.Equal(t, "biz-1", received.Message.Attributes["business_id"])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.MarketplaceEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 2, decoded.RatingCount)
	assert.InDelta(t, 3.0, decoded.RatingAverage, 0.0001)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	err := publisher.PublishMarketplaceEvent(context.Background(), &service.MarketplaceEvent{Type: constants.EventBusinessDeactivated})
	assert.Error(t, err)
}

func TestNoopPublisher(t *testing.T) {
	publisher := &noopPublisher{logger: newDiscardLogger()}

	assert.NoError(t, publisher.PublishMarketplaceEvent(context.Background(), &service.MarketplaceEvent{Type: "x"}))
	assert.NoError(t, publisher.Close())
}
