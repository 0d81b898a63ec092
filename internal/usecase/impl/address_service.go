package impl

import (
	"context"
	"strconv"
	"strings"

	"navshortcut/internal/domain/entity"
	domainerrors "navshortcut/internal/domain/errors"
	"navshortcut/internal/domain/repository"
	"navshortcut/internal/domain/service"
	"navshortcut/internal/errors"
	"navshortcut/internal/usecase"
)

type addressService struct {
	catalog  repository.AddressCatalog
	resolver usecase.AddressResolver
	qrcode   service.QRCodeService
	scheme   string
}

// NewAddressService creates a new address service instance
func NewAddressService(
	catalog repository.AddressCatalog,
	resolver usecase.AddressResolver,
	qrcode service.QRCodeService,
	scheme string,
) usecase.AddressUsecase {
	return &addressService{
		catalog:  catalog,
		resolver: resolver,
		qrcode:   qrcode,
		scheme:   scheme,
	}
}

// ListAddresses returns all selectable addresses
func (s *addressService) ListAddresses(ctx context.Context) ([]*entity.AddressSummary, error) {
	summaries, err := s.catalog.ListAddresses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return summaries, nil
}

// ImportContacts validates and stores contacts
func (s *addressService) ImportContacts(ctx context.Context, contacts []repository.ContactImport) ([]string, error) {
	if len(contacts) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("no contacts to import")
	}

	for i, contact := range contacts {
		if len(contact.Addresses) == 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails(
				"contact " + describeContact(i, contact) + " has no addresses")
		}
		for _, address := range contact.Addresses {
			if !address.Type.IsValid() {
				return nil, domainerrors.ErrValidationFailed.WithDetails(
					"contact " + describeContact(i, contact) + " has an address of unknown type")
			}
		}
	}

	refs, err := s.catalog.ImportContacts(ctx, contacts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to import contacts")
	}

	return refs, nil
}

// NavigationIntent resolves ref and returns its launch intent
func (s *addressService) NavigationIntent(ctx context.Context, ref string) entity.LaunchIntent {
	record, _ := s.resolver.Resolve(ctx, ref)

	return entity.NewNavigationIntent(s.scheme, record.FormattedAddress)
}

// NavigationQRCode renders the launch intent URI of ref as a QR code
func (s *addressService) NavigationQRCode(ctx context.Context, ref string) ([]byte, error) {
	intent := s.NavigationIntent(ctx, ref)

	png, err := s.qrcode.GenerateNavigationQR(intent.URI)
	if err != nil {
		return nil, domainerrors.ErrQRCodeFailed.WrapMessage(err.Error())
	}

	return png, nil
}

func describeContact(index int, contact repository.ContactImport) string {
	if name := strings.TrimSpace(contact.DisplayName); name != "" {
		return `"` + name + `"`
	}

	return "#" + strconv.Itoa(index+1)
}
