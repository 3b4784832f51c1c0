package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"comerciaya/config"
	"comerciaya/internal/delivery"
	"comerciaya/internal/delivery/api"
	"comerciaya/internal/delivery/api/middleware"
	"comerciaya/internal/delivery/api/router/handler"
	"comerciaya/internal/infra/auth"
	logs "comerciaya/internal/infra/log"
	"comerciaya/internal/infra/metrics"
	"comerciaya/internal/infra/persistence/memory"
	"comerciaya/internal/infra/persistence/postgres"
	"comerciaya/internal/infra/pubsub"
	"comerciaya/internal/infra/qrcode"
	"comerciaya/internal/infra/storage"
	"comerciaya/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	// The storage driver decides which providers exist, so config is read before the graph is built.
	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	fx.New(
		fx.Supply(cfg),
		injectInfra(),
		injectRepo(cfg),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			logs.New,
			context.Background,
			metrics.New,
		),
		pubsub.Module,
		storage.Module,
		// Every published event is counted by type and outcome.
		fx.Decorate((*metrics.Metrics).InstrumentPublisher),
	)
}

func injectRepo(cfg *config.Config) fx.Option {
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		return fx.Provide(
			memory.NewStore,
			memory.NewTransactionManager,
		)
	default:
		return fx.Provide(
			postgres.New,
			postgres.NewTransactionManager,
		)
	}
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewTokenRevoker,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProfileService,
			impl.NewBusinessService,
			impl.NewOfferingService,
			impl.NewRatingService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewBusinessHandler,
			handler.NewOfferingHandler,
			handler.NewRatingHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
