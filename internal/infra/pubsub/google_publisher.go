package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"comerciaya/config"
	"comerciaya/internal/domain/service"
	"comerciaya/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"google.golang.org/api/option"
)

// googlePubSubPublisher implements EventPublisher using Google Cloud Pub/Sub
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to the topic and fails fast when it does not exist.
func NewGooglePubSubPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	var opts []option.ClientOption
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	client, err := pubsub.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", cfg.ProjectID, cfg.TopicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", cfg.TopicID)
	}

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", cfg.ProjectID),
		slog.String("topic_id", cfg.TopicID),
	)

	return &googlePubSubPublisher{
		client:    client,
		publisher: client.Publisher(cfg.TopicID),
		logger:    logger,
	}, nil
}

func (p *googlePubSubPublisher) PublishMarketplaceEvent(ctx context.Context, event *service.MarketplaceEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: eventAttributes(event),
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to publish marketplace event")
	}

	p.logger.DebugContext(ctx, "[GooglePubSub] Event published",
		slog.String("type", event.Type),
		slog.String("business_id", event.BusinessID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages and releases client resources
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
