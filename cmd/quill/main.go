package main

import (
	"context"
	"log/slog"
	"os"

	"quill/config"
	"quill/internal/delivery"
	"quill/internal/delivery/http"
	"quill/internal/delivery/http/middleware"
	"quill/internal/delivery/http/router/handler"
	"quill/internal/domain/service"
	"quill/internal/infra/auth"
	logs "quill/internal/infra/log"
	"quill/internal/infra/mail"
	"quill/internal/infra/media"
	"quill/internal/infra/persistence/postgres"
	"quill/internal/infra/pubsub"
	"quill/internal/infra/qrcode"
	infraredis "quill/internal/infra/redis"
	"quill/internal/usecase/impl"

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
		infraredis.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewSessionRepository,
			postgres.NewPostRepository,
			postgres.NewSeriesRepository,
			postgres.NewProjectRepository,
			postgres.NewReactionRepository,
			postgres.NewTransactionManager,
			infraredis.NewOTPStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			mail.NewMailer,
			pubsub.NewEventPublisher,
			media.New,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewOTPService,
			impl.NewSessionService,
			impl.NewPostService,
			impl.NewSeriesService,
			impl.NewProjectService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewSessionHandler,
			handler.NewPostHandler,
			handler.NewSeriesHandler,
			handler.NewProjectHandler,
			handler.NewAdminHandler,
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
