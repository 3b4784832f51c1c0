package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "comerciaya/internal/delivery/context"
	"comerciaya/internal/domain/service"
)

// publishEvent emits a marketplace event after the write that caused it has
// committed. Publish failures are logged and never fail the request.
func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.MarketplaceEvent) {
	if publisher == nil {
		return
	}

	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	if err := publisher.PublishMarketplaceEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish marketplace event",
			slog.String("type", event.Type),
			slog.String("business_id", event.BusinessID),
			slog.Any("error", err),
		)
	}
}
