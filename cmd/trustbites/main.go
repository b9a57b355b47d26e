package main

import (
	"context"
	"log/slog"
	"os"

	"trustbites/config"
	"trustbites/internal/delivery"
	"trustbites/internal/delivery/api"
	"trustbites/internal/delivery/api/middleware"
	"trustbites/internal/delivery/api/router/handler"
	"trustbites/internal/domain/service"
	"trustbites/internal/infra/auth"
	"trustbites/internal/infra/geocoding"
	"trustbites/internal/infra/imaging"
	logs "trustbites/internal/infra/log"
	"trustbites/internal/infra/metrics"
	"trustbites/internal/infra/persistence/memory"
	"trustbites/internal/infra/qrcode"
	"trustbites/internal/usecase/impl"

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
			startReaper,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.NewRegistry,
		metrics.NewPrometheusMetrics,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewSessionManager,
			memory.NewSessionReaper,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			geocoding.NewNominatimClient,
			imaging.NewProcessor,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewAccountService,
			impl.NewPlaceService,
			impl.NewFeedService,
			impl.NewNavigationService,
			impl.NewMapService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewAccountHandler,
			handler.NewNavigationHandler,
			handler.NewPlaceHandler,
			handler.NewMapHandler,
			handler.NewFeedHandler,
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

// startReaper forces construction of the reaper so its lifecycle hooks are registered.
func startReaper(*memory.SessionReaper) {}

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
