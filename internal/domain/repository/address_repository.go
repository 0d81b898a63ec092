// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"navshortcut/internal/domain/entity"
	"navshortcut/internal/errors"
)

// Domain-specific errors for address store access.
var (
	// ErrInvalidReference is returned when a reference does not point at a structured postal address.
	ErrInvalidReference = errors.New("invalid address reference")
	// ErrUnknownColumn is returned when a query asks for a column the store does not expose.
	ErrUnknownColumn = errors.New("unknown address column")
)

// Cursor iterates over the zero-or-one rows a store query yields.
// Every cursor must be closed once the caller is done with it, whatever the outcome.
type Cursor interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// AddressStore is the read-only structured-address store consumed by the shortcut pipeline.
type AddressStore interface {
	// QueryAddress selects the given logical columns of the address identified by ref.
	QueryAddress(ctx context.Context, ref string, columns []string) (Cursor, error)

	// QueryPhoto selects the raw photo bytes (entity.ColumnPhoto) of the photo with the given identifier.
	QueryPhoto(ctx context.Context, photoID int64) (Cursor, error)
}

// ContactImport describes one contact to be written into the store.
type ContactImport struct {
	DisplayName string
	Photo       entity.PhotoBlob
	Addresses   []AddressImport
}

// AddressImport describes one postal address of an imported contact.
type AddressImport struct {
	FormattedAddress string
	Type             entity.AddressType
	Label            string
}

// AddressCatalog lists and seeds addresses. Pickers use it to present choices.
type AddressCatalog interface {
	// ListAddresses returns every stored postal address ordered by contact name.
	ListAddresses(ctx context.Context) ([]*entity.AddressSummary, error)

	// ImportContacts inserts contacts with their photos and addresses atomically and
	// returns the references of the created addresses.
	ImportContacts(ctx context.Context, contacts []ContactImport) ([]string, error)
}
