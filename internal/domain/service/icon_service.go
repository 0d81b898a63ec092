package service

import "navshortcut/internal/domain/entity"

// IconComposer renders shortcut icons and assembles shortcut payloads.
// Implementations are synchronous and must only be used from one goroutine at a time.
type IconComposer interface {
	// Compose renders the icon for record and photo and returns the complete payload.
	// A nil or undecodable photo falls back to the default silhouette.
	Compose(record *entity.AddressRecord, photo entity.PhotoBlob) *entity.ShortcutPayload
}
