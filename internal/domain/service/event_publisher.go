package service

import (
	"context"
	"time"
)

// MarketplaceEvent is emitted after a rating or business write commits.
type MarketplaceEvent struct {
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	Type          string    `json:"type"`
	BusinessID    string    `json:"business_id"`
	RatingID      string    `json:"rating_id,omitempty"`
	ActorUserID   string    `json:"actor_user_id"`
	RatingCount   int       `json:"rating_count"`
	RatingAverage float64   `json:"rating_average"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMarketplaceEvent publishes one event for downstream consumers
	PublishMarketplaceEvent(ctx context.Context, event *MarketplaceEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
