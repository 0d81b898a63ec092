package usecase

import (
	"context"

	"navshortcut/internal/domain/entity"
	"navshortcut/internal/errors"
)

// ErrPickCancelled is returned by a Picker when the user dismissed it without choosing.
var ErrPickCancelled = errors.New("address pick cancelled")

// OnShortcutCreated receives the finished payload together with the reference it was requested for.
// It is always invoked on the interactive loop.
type OnShortcutCreated func(ref string, payload *entity.ShortcutPayload)

// OnShortcutAborted is invoked on the interactive loop when a pick was cancelled.
type OnShortcutAborted func()

// Picker lets the user choose an address reference
type Picker interface {
	// Pick returns the chosen reference, or ErrPickCancelled
	Pick(ctx context.Context) (string, error)
}

// AddressResolver fetches the fields of an address and its contact photo.
// Store failures and missing rows are absorbed: the record simply lacks the affected fields.
type AddressResolver interface {
	Resolve(ctx context.Context, ref string) (*entity.AddressRecord, entity.PhotoBlob)
}

// ShortcutUsecase defines the navigation shortcut creation use cases
type ShortcutUsecase interface {
	// CreateNavigationShortcut fetches the address in the background, then composes the payload and
	// calls onCreated on the interactive loop. It returns immediately and is never cancelled.
	CreateNavigationShortcut(ctx context.Context, ref string, onCreated OnShortcutCreated)

	// PickAndCreate asks picker for a reference and creates its shortcut. A cancelled pick posts
	// onAborted to the interactive loop and produces no payload.
	PickAndCreate(ctx context.Context, picker Picker, onCreated OnShortcutCreated, onAborted OnShortcutAborted) error

	// BuildNavigationShortcut runs CreateNavigationShortcut and waits for its payload or for ctx to end.
	// The request itself keeps running when ctx ends first.
	BuildNavigationShortcut(ctx context.Context, ref string) (*entity.ShortcutPayload, error)

	// Wait blocks until every started fetch has been handed to the interactive loop
	Wait()
}
