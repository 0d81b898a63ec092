package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"navshortcut/internal/domain/entity"
	"navshortcut/internal/domain/service"
	"navshortcut/internal/errors"
	"navshortcut/internal/usecase"

	"golang.org/x/sync/errgroup"
)

type shortcutService struct {
	resolver usecase.AddressResolver
	composer service.IconComposer
	loop     service.InteractiveLoop
	metrics  service.PipelineMetrics
	logger   *slog.Logger

	// pool bounds concurrent fetches; inflight counts submitted fetches, started or not.
	pool     *errgroup.Group
	inflight sync.WaitGroup
}

// ShortcutServiceParams holds the collaborators of the shortcut service
type ShortcutServiceParams struct {
	Resolver         usecase.AddressResolver
	Composer         service.IconComposer
	Loop             service.InteractiveLoop
	Metrics          service.PipelineMetrics
	Logger           *slog.Logger
	FetchConcurrency int
}

// NewShortcutService creates a new shortcut service instance
func NewShortcutService(params ShortcutServiceParams) usecase.ShortcutUsecase {
	pool := new(errgroup.Group)
	if params.FetchConcurrency > 0 {
		pool.SetLimit(params.FetchConcurrency)
	}

	return &shortcutService{
		resolver: params.Resolver,
		composer: params.Composer,
		loop:     params.Loop,
		metrics:  params.Metrics,
		logger:   params.Logger,
		pool:     pool,
	}
}

// CreateNavigationShortcut fetches in the background and composes on the interactive loop
func (s *shortcutService) CreateNavigationShortcut(ctx context.Context, ref string, onCreated usecase.OnShortcutCreated) {
	// Once started a fetch runs to completion.
	fetchCtx := context.WithoutCancel(ctx)

	s.submit(func() {
		s.metrics.FetchStarted()
		start := time.Now()
		record, photo := s.resolver.Resolve(fetchCtx, ref)
		s.metrics.ObserveResolve(record.Found, time.Since(start))
		s.metrics.FetchFinished()

		s.loop.Post(func() {
			s.deliver(ref, record, photo, onCreated)
		})
	})
}

// deliver runs on the interactive loop.
func (s *shortcutService) deliver(ref string, record *entity.AddressRecord, photo entity.PhotoBlob, onCreated usecase.OnShortcutCreated) {
	start := time.Now()
	payload := s.composer.Compose(record, photo)
	elapsed := time.Since(start)

	s.metrics.ObserveCompose(elapsed)
	s.metrics.CountOutcome(service.OutcomeCreated)
	s.logger.Info("Shortcut created",
		slog.String("ref", ref),
		slog.Bool("found", record.Found),
		slog.Bool("photo", photo != nil),
		slog.Duration("compose", elapsed),
	)

	if onCreated != nil {
		onCreated(ref, payload)
	}
}

// PickAndCreate asks the picker for a reference and creates its shortcut
func (s *shortcutService) PickAndCreate(ctx context.Context, picker usecase.Picker, onCreated usecase.OnShortcutCreated, onAborted usecase.OnShortcutAborted) error {
	ref, err := picker.Pick(ctx)
	if err != nil {
		s.metrics.CountOutcome(service.OutcomeAborted)
		s.loop.Post(func() {
			if onAborted != nil {
				onAborted()
			}
		})

		if errors.Is(err, usecase.ErrPickCancelled) {
			s.logger.Info("Shortcut pick cancelled")

			return nil
		}

		return errors.Wrap(err, "failed to pick address")
	}

	s.CreateNavigationShortcut(ctx, ref, onCreated)

	return nil
}

// BuildNavigationShortcut creates a shortcut and waits for its payload
func (s *shortcutService) BuildNavigationShortcut(ctx context.Context, ref string) (*entity.ShortcutPayload, error) {
	done := make(chan *entity.ShortcutPayload, 1)
	s.CreateNavigationShortcut(ctx, ref, func(_ string, payload *entity.ShortcutPayload) {
		done <- payload
	})

	select {
	case payload := <-done:
		return payload, nil
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), "shortcut not delivered")
	}
}

// Wait blocks until every submitted fetch has finished
func (s *shortcutService) Wait() {
	s.inflight.Wait()
	// Every Go call has returned once inflight drains.
	_ = s.pool.Wait()
}

// submit hands task to the pool without blocking the caller when the pool is saturated.
func (s *shortcutService) submit(task func()) {
	s.inflight.Add(1)
	run := func() error {
		defer s.inflight.Done()
		task()

		return nil
	}

	if s.pool.TryGo(run) {
		return
	}
	go s.pool.Go(run)
}
