package main

import (
	"context"
	"log/slog"
	"os"

	"aunerarroz/config"
	"aunerarroz/internal/delivery"
	"aunerarroz/internal/delivery/http"
	"aunerarroz/internal/delivery/http/middleware"
	"aunerarroz/internal/delivery/http/router/handler"
	"aunerarroz/internal/infra/auth"
	logs "aunerarroz/internal/infra/log"
	"aunerarroz/internal/infra/mailer"
	"aunerarroz/internal/infra/media"
	"aunerarroz/internal/infra/persistence/postgres"
	"aunerarroz/internal/infra/pubsub"
	"aunerarroz/internal/infra/qrcode"
	"aunerarroz/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

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
			impl.NewSessionEventRelay,
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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewIdentityProvider,
			qrcode.NewQRCodeService,
			pubsub.NewEventPublisher,
			mailer.New,
			media.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewPointsService,
			impl.NewPointsAdminService,
			impl.NewMenuService,
			impl.NewOrderService,
			impl.NewSuggestionService,
			impl.NewDashboardService,
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
			handler.NewSessionHandler,
			handler.NewPointsHandler,
			handler.NewPointsAdminHandler,
			handler.NewMenuHandler,
			handler.NewOrderHandler,
			handler.NewSuggestionHandler,
			handler.NewDashboardHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
