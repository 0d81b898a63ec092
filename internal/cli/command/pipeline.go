package command

import (
	"context"
	"database/sql"
	"log/slog"

	"navshortcut/config"
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
	"github.com/urfave/cli/v2"
)

const metaPipeline = "pipeline"

// pipeline is the CLI's hand-wired counterpart of the daemon's fx graph.
type pipeline struct {
	cfg       *config.Config
	logger    *slog.Logger
	db        *sql.DB
	loop      *looper.Looper
	labels    service.LabelService
	shortcuts usecase.ShortcutUsecase
	addresses usecase.AddressUsecase
}

// pipelineFrom opens the pipeline on first use and caches it for the rest of the invocation.
func pipelineFrom(c *cli.Context) (*pipeline, error) {
	if p, ok := c.App.Metadata[metaPipeline].(*pipeline); ok {
		return p, nil
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	logger, err := logs.NewWithWriter(cfg, c.App.ErrWriter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create logger")
	}

	p, err := newPipeline(c.Context, cfg, logger)
	if err != nil {
		return nil, err
	}
	c.App.Metadata[metaPipeline] = p

	return p, nil
}

func closePipeline(c *cli.Context) error {
	p, ok := c.App.Metadata[metaPipeline].(*pipeline)
	if !ok {
		return nil
	}
	delete(c.App.Metadata, metaPipeline)

	return p.Close()
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if dir := c.String("config-dir"); dir != "" {
		cfg, err = config.LoadWithEnv[config.Config]("config", dir)
	} else {
		cfg, err = config.LoadWithEnv[config.Config]("config", "config", "../config", "../../config")
		if errors.Is(err, config.ErrNotFound) {
			cfg, err = &config.Config{}, nil
		}
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	cfg.ApplyDefaults()

	if store := c.String("store"); store != "" {
		cfg.Store.Path = store
	}
	if locale := c.String("locale"); locale != "" {
		cfg.Label.Locale = locale
	}
	if c.Bool("verbose") {
		cfg.Env.Log.Level = "debug"
	}

	return cfg, nil
}

func newPipeline(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*pipeline, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	db, err := sqlite.Open(ctx, cfg.Store.Path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open contact store")
	}

	labels := label.NewLabelService(cfg.Label.Locale)
	composer, err := icon.NewComposer(cfg.Icon, cfg.Navigation.Scheme, labels, logger)
	if err != nil {
		_ = db.Close()

		return nil, errors.Wrap(err, "failed to create icon composer")
	}

	store := sqlite.NewContactStore(db)
	resolver := impl.NewAddressResolver(store, logger)
	loop := looper.New(cfg.Worker.LoopQueueSize, logger)

	return &pipeline{
		cfg:    cfg,
		logger: logger,
		db:     db,
		loop:   loop,
		labels: labels,
		shortcuts: impl.NewShortcutService(impl.ShortcutServiceParams{
			Resolver:         resolver,
			Composer:         composer,
			Loop:             loop,
			Metrics:          metrics.NewPipelineMetrics(prometheus.NewRegistry()),
			Logger:           logger,
			FetchConcurrency: cfg.Worker.FetchConcurrency,
		}),
		addresses: impl.NewAddressService(
			store,
			resolver,
			qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel),
			cfg.Navigation.Scheme,
		),
	}, nil
}

// Close waits for started fetches and closes the store.
func (p *pipeline) Close() error {
	p.shortcuts.Wait()

	return errors.WithStack(p.db.Close())
}
