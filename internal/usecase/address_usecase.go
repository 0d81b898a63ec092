package usecase

import (
	"context"

	"navshortcut/internal/domain/entity"
	"navshortcut/internal/domain/repository"
)

// AddressUsecase defines the address catalog use cases
type AddressUsecase interface {
	// ListAddresses returns all selectable addresses
	ListAddresses(ctx context.Context) ([]*entity.AddressSummary, error)

	// ImportContacts stores contacts and returns the references of their addresses
	ImportContacts(ctx context.Context, contacts []repository.ContactImport) ([]string, error)

	// NavigationIntent resolves ref and returns its launch intent without rendering an icon
	NavigationIntent(ctx context.Context, ref string) entity.LaunchIntent

	// NavigationQRCode returns a PNG QR code of the launch intent URI of ref
	NavigationQRCode(ctx context.Context, ref string) ([]byte, error)
}
