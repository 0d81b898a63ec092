package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"navshortcut/config"
	"navshortcut/internal/delivery"
	"navshortcut/internal/delivery/http"
	"navshortcut/internal/delivery/http/router/handler"
	"navshortcut/internal/domain/repository"
	"navshortcut/internal/domain/service"
	"navshortcut/internal/errors"
	"navshortcut/internal/infra/icon"
	"navshortcut/internal/infra/label"
	logs "navshortcut/internal/infra/log"
	"navshortcut/internal/infra/looper"
	"navshortcut/internal/infra/metrics"
	"navshortcut/internal/infra/persistence/sqlite"
	"navshortcut/internal/infra/qrcode"
	"navshortcut/internal/usecase"
	"navshortcut/internal/usecase/impl"

	"github.com/prometheus/client_golang/prometheus"
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
		injectHandler(),
		fx.Invoke(
			startLooper,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		sqlite.New,
		newLooper,
		metrics.NewRegistry,
		func(registry *prometheus.Registry) prometheus.Gatherer { return registry },
		func(registry *prometheus.Registry) service.PipelineMetrics { return metrics.NewPipelineMetrics(registry) },
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			sqlite.NewContactStore,
			func(store *sqlite.ContactStore) repository.AddressStore { return store },
			func(store *sqlite.ContactStore) repository.AddressCatalog { return store },
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newLabelService,
			newComposer,
			newQRCodeService,
		),
	)
}

// newLooper creates the interactive loop shared by every shortcut request
func newLooper(cfg *config.Config, logger *slog.Logger) (*looper.Looper, service.InteractiveLoop) {
	l := looper.New(cfg.Worker.LoopQueueSize, logger)

	return l, l
}

// newLabelService creates the label service for the configured locale
func newLabelService(cfg *config.Config, logger *slog.Logger) service.LabelService {
	logger.Info("Address labels localised", slog.String("locale", label.ResolveTag(cfg.Label.Locale).String()))

	return label.NewLabelService(cfg.Label.Locale)
}

// newComposer creates the icon composer from the icon and navigation configuration
func newComposer(cfg *config.Config, labels service.LabelService, logger *slog.Logger) (service.IconComposer, error) {
	composer, err := icon.NewComposer(cfg.Icon, cfg.Navigation.Scheme, labels, logger)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create icon composer")
	}

	return composer, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAddressResolver,
			newShortcutService,
			newAddressService,
		),
	)
}

type shortcutServiceParams struct {
	fx.In

	Config   *config.Config
	Resolver usecase.AddressResolver
	Composer service.IconComposer
	Loop     service.InteractiveLoop
	Metrics  service.PipelineMetrics
	Logger   *slog.Logger
}

func newShortcutService(params shortcutServiceParams) usecase.ShortcutUsecase {
	return impl.NewShortcutService(impl.ShortcutServiceParams{
		Resolver:         params.Resolver,
		Composer:         params.Composer,
		Loop:             params.Loop,
		Metrics:          params.Metrics,
		Logger:           params.Logger,
		FetchConcurrency: params.Config.Worker.FetchConcurrency,
	})
}

func newAddressService(
	cfg *config.Config,
	catalog repository.AddressCatalog,
	resolver usecase.AddressResolver,
	qr service.QRCodeService,
) usecase.AddressUsecase {
	return impl.NewAddressService(catalog, resolver, qr, cfg.Navigation.Scheme)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAddressHandler,
			handler.NewShortcutHandler,
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

type startLooperParams struct {
	fx.In
	fx.Lifecycle

	Looper    *looper.Looper
	Shortcuts usecase.ShortcutUsecase
	DB        *sql.DB
	Logger    *slog.Logger
}

// startLooper runs the interactive loop for the lifetime of the application. On stop it first
// lets in-flight fetches hand their results over, then stops the loop.
func startLooper(params startLooperParams) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				if err := params.Looper.Run(ctx); err != nil {
					params.Logger.Error("Interactive loop stopped", slog.Any("error", err))
				}
			}()

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			params.Shortcuts.Wait()
			cancel()

			select {
			case <-done:
				params.Logger.Info("Interactive loop stopped", slog.Int("dropped_tasks", params.Looper.Pending()))

				return nil
			case <-stopCtx.Done():
				return errors.WithStack(stopCtx.Err())
			}
		},
	})
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
