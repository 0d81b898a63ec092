// Package looper provides the interactive thread: a single goroutine draining a FIFO task queue.
package looper

import (
	"context"
	"log/slog"
	"sync/atomic"

	"navshortcut/internal/errors"
)

// ErrAlreadyRunning is returned when Run is called while another Run is active.
var ErrAlreadyRunning = errors.New("looper is already running")

// Task is a unit of work executed on the looper goroutine.
type Task = func()

// Looper executes posted tasks one at a time, in posting order, on whichever goroutine
// calls Run. Anything a task touches is therefore confined to that goroutine.
type Looper struct {
	tasks   chan Task
	running atomic.Bool
	logger  *slog.Logger
}

// New creates a looper whose queue holds up to queueSize tasks. Post blocks while the queue is full.
func New(queueSize int, logger *slog.Logger) *Looper {
	if queueSize <= 0 {
		queueSize = 1
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Looper{
		tasks:  make(chan Task, queueSize),
		logger: logger,
	}
}

// Post enqueues task. It may be called from any goroutine.
func (l *Looper) Post(task Task) {
	if task == nil {
		return
	}
	l.tasks <- task
}

// Pending reports how many tasks are queued and not yet started.
func (l *Looper) Pending() int {
	return len(l.tasks)
}

// Run drains the queue on the calling goroutine until ctx is done.
// Tasks still queued at that point stay queued.
func (l *Looper) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer l.running.Store(false)

	l.logger.Debug("Looper started")
	defer l.logger.Debug("Looper stopped", slog.Int("pending", l.Pending()))

	for {
		// A cancelled context wins over queued work.
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		select {
		case <-ctx.Done():
			return nil
		case task := <-l.tasks:
			task()
		}
	}
}
