package service

import "time"

// Shortcut request outcomes reported to PipelineMetrics.
const (
	OutcomeCreated = "created"
	OutcomeAborted = "aborted"
)

// InteractiveLoop runs posted tasks one at a time on a single dedicated goroutine.
type InteractiveLoop interface {
	// Post enqueues task for execution on the loop goroutine
	Post(task func())
}

// PipelineMetrics records shortcut pipeline measurements
type PipelineMetrics interface {
	// ObserveResolve records one address fetch and whether the store had a row for it
	ObserveResolve(found bool, elapsed time.Duration)

	// ObserveCompose records one icon composition
	ObserveCompose(elapsed time.Duration)

	// CountOutcome counts a finished shortcut request
	CountOutcome(outcome string)

	// FetchStarted and FetchFinished bracket a background fetch
	FetchStarted()
	FetchFinished()
}
