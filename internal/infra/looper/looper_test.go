package looper

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLooper(size int) *Looper {
	return New(size, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLooper_RunsTasksInOrderOnCallingGoroutine(t *testing.T) {
	l := newTestLooper(8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// order is only touched by tasks and, after Run returns, by this goroutine.
	var order []int
	for i := range 5 {
		l.Post(func() { order = append(order, i) })
	}
	l.Post(cancel)

	require.Equal(t, 6, l.Pending())
	require.NoError(t, l.Run(ctx))

	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
	assert.Zero(t, l.Pending())
}

func TestLooper_TasksPostedFromOtherGoroutines(t *testing.T) {
	l := newTestLooper(2)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	const producers = 10
	seen := 0
	for range producers {
		go l.Post(func() {
			seen++
			if seen == producers {
				cancel()
			}
		})
	}

	require.NoError(t, l.Run(ctx))
	assert.Equal(t, producers, seen)
}

func TestLooper_StopsWithQueuedTasks(t *testing.T) {
	l := newTestLooper(4)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	l.Post(func() { ran = true })

	require.NoError(t, l.Run(ctx))
	assert.False(t, ran)
	assert.Equal(t, 1, l.Pending())
}

func TestLooper_RejectsSecondRun(t *testing.T) {
	l := newTestLooper(1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	started := make(chan struct{})
	l.Post(func() { close(started) })

	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()
	<-started

	assert.ErrorIs(t, l.Run(ctx), ErrAlreadyRunning)

	cancel()
	assert.NoError(t, <-done)
}

func TestLooper_IgnoresNilTask(t *testing.T) {
	l := newTestLooper(1)
	l.Post(nil)
	assert.Zero(t, l.Pending())
}
