package main

import (
	"context"
	"log/slog"
	"os"

	"columbus/config"
	"columbus/internal/delivery"
	"columbus/internal/delivery/api"
	"columbus/internal/delivery/api/middleware"
	"columbus/internal/delivery/api/router/handler"
	"columbus/internal/infra/archive"
	"columbus/internal/infra/cache"
	"columbus/internal/infra/llm"
	logs "columbus/internal/infra/log"
	"columbus/internal/infra/maps"
	"columbus/internal/infra/metrics"
	"columbus/internal/infra/persistence/postgres"
	"columbus/internal/infra/pubsub"
	"columbus/internal/infra/qrcode"
	"columbus/internal/infra/secrets"
	"columbus/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
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
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.NewRedis,
		secrets.NewResolver,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewPreferenceRepository,
			postgres.NewItineraryRepository,
			postgres.NewDestinationRepository,
			postgres.NewChatRepository,
			postgres.NewSavedPlaceRepository,
			postgres.NewFeedbackRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			llm.NewAnthropicClient,
			maps.NewDirectionsService,
			cache.NewIdempotencyStore,
			cache.NewRateLimiter,
			cache.NewChatSessionStore,
			cache.NewItinerarySnapshotStore,
			archive.NewArchiveStore,
			pubsub.NewEventPublisher,
			qrcode.NewQRCodeService,
		),
		// Every provider call is counted and timed
		fx.Decorate(
			metrics.InstrumentTextGenerator,
			metrics.InstrumentDirections,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewProfileService,
			impl.NewPreferenceService,
			impl.NewItineraryService,
			impl.NewChatService,
			impl.NewDestinationService,
			impl.NewTransportationService,
			impl.NewSavedPlaceService,
			impl.NewFeedbackService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewItineraryHandler,
			handler.NewChatHandler,
			handler.NewUserHandler,
			handler.NewTravelHandler,
			handler.NewFeedbackHandler,
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

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
