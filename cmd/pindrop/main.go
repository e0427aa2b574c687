package main

import (
	"context"
	"log/slog"
	"os"

	"pindrop/config"
	"pindrop/internal/delivery"
	"pindrop/internal/delivery/http"
	"pindrop/internal/delivery/http/middleware"
	"pindrop/internal/delivery/http/router/handler"
	"pindrop/internal/domain/service"
	"pindrop/internal/infra/auth"
	"pindrop/internal/infra/ledger"
	"pindrop/internal/infra/ledger/horizon"
	logs "pindrop/internal/infra/log"
	"pindrop/internal/infra/marketplace"
	"pindrop/internal/infra/persistence/postgres"
	"pindrop/internal/infra/pubsub"
	"pindrop/internal/infra/qrcode"
	"pindrop/internal/infra/scheduler"
	"pindrop/internal/usecase/impl"

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
		pubsub.Module,
		scheduler.Module,
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
			postgres.NewTransactionManager,
			postgres.NewPinRepository,
			postgres.NewLocationGroupRepository,
			postgres.NewConsumptionRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			horizon.NewClient,
			ledger.NewDistributorSigner,
			marketplace.NewResolver,
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
			impl.NewCollectionService,
			impl.NewClaimService,
			impl.NewGroupService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPinHandler,
			handler.NewClaimHandler,
			handler.NewGroupHandler,
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
