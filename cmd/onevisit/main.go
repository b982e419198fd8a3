package main

import (
	"context"
	"log/slog"
	"os"

	"onevisit/config"
	"onevisit/internal/delivery"
	"onevisit/internal/delivery/http"
	"onevisit/internal/delivery/http/middleware"
	"onevisit/internal/delivery/http/router/handler"
	"onevisit/internal/domain/service"
	"onevisit/internal/infra/auth"
	logs "onevisit/internal/infra/log"
	"onevisit/internal/infra/messaging"
	"onevisit/internal/infra/persistence/postgres"
	"onevisit/internal/infra/pubsub"
	"onevisit/internal/infra/qrcode"
	"onevisit/internal/usecase/impl"

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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewCustomerRepository,
			postgres.NewQRCodeRepository,
			postgres.NewVisitRepository,
			postgres.NewAnalyticsRepository,
			postgres.NewBusinessRepository,
			postgres.NewUserRepository,
			postgres.NewEventRepository,
			postgres.NewCampaignRepository,
			postgres.NewMessageRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newQRCodeImageService,
		),
		pubsub.Module,
		messaging.Module,
	)
}

// newQRCodeImageService creates a QR code image service with dependency injection
func newQRCodeImageService(cfg *config.Config) service.QRCodeImageService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeImageService(256, "M")
	}

	return qrcode.NewQRCodeImageService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewOnboardingService,
			impl.NewAuthService,
			impl.NewCustomerService,
			impl.NewQRCodeService,
			impl.NewEventService,
			impl.NewCampaignService,
			impl.NewAnalyticsService,
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
			handler.NewOnboardingHandler,
			handler.NewAuthHandler,
			handler.NewCustomerHandler,
			handler.NewQRCodeHandler,
			handler.NewEventHandler,
			handler.NewCampaignHandler,
			handler.NewAnalyticsHandler,
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
