package impl

import (
	"context"
	"testing"

	"navshortcut/internal/domain/entity"
	domainerrors "navshortcut/internal/domain/errors"
	"navshortcut/internal/domain/repository"
	mockRepo "navshortcut/internal/mocks/repository"
	mockService "navshortcut/internal/mocks/service"
	"navshortcut/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type addressServiceFixtures struct {
	service usecase.AddressUsecase
	catalog *mockRepo.MockAddressCatalog
	qrcode  *mockService.MockQRCodeService
}

func createTestAddressService(t *testing.T, resolver usecase.AddressResolver) addressServiceFixtures {
	catalog := mockRepo.NewMockAddressCatalog(t)
	qrcode := mockService.NewMockQRCodeService(t)

	return addressServiceFixtures{
		service: NewAddressService(catalog, resolver, qrcode, "google.navigation"),
		catalog: catalog,
		qrcode:  qrcode,
	}
}

func notFoundResolver() resolverFunc {
	return func(_ context.Context, ref string) (*entity.AddressRecord, entity.PhotoBlob) {
		return &entity.AddressRecord{Ref: ref}, nil
	}
}

func TestAddressService_ListAddresses(t *testing.T) {
	fx := createTestAddressService(t, notFoundResolver())
	ctx := context.Background()

	summaries := []*entity.AddressSummary{{Ref: testRef, DisplayName: "Jane Doe"}}
	fx.catalog.EXPECT().ListAddresses(ctx).Return(summaries, nil)

	got, err := fx.service.ListAddresses(ctx)
	require.NoError(t, err)
	assert.Equal(t, summaries, got)
}

func TestAddressService_ListAddresses_Error(t *testing.T) {
	fx := createTestAddressService(t, notFoundResolver())
	ctx := context.Background()

	fx.catalog.EXPECT().ListAddresses(ctx).Return(nil, errors.New("database is locked"))

	_, err := fx.service.ListAddresses(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list addresses")
}

func TestAddressService_ImportContacts(t *testing.T) {
	fx := createTestAddressService(t, notFoundResolver())
	ctx := context.Background()

	contacts := []repository.ContactImport{
		{DisplayName: "Jane Doe", Addresses: []repository.AddressImport{{FormattedAddress: "1 Main St", Type: entity.AddressTypeHome}}},
	}
	fx.catalog.EXPECT().ImportContacts(ctx, contacts).Return([]string{testRef}, nil)

	refs, err := fx.service.ImportContacts(ctx, contacts)
	require.NoError(t, err)
	assert.Equal(t, []string{testRef}, refs)
}

func TestAddressService_ImportContacts_Validation(t *testing.T) {
	tests := []struct {
		name     string
		contacts []repository.ContactImport
		details  string
	}{
		{name: "empty", contacts: nil, details: "no contacts to import"},
		{
			name:     "contact without addresses",
			contacts: []repository.ContactImport{{DisplayName: "Jane Doe"}},
			details:  `contact "Jane Doe" has no addresses`,
		},
		{
			name: "unknown type",
			contacts: []repository.ContactImport{
				{Addresses: []repository.AddressImport{{FormattedAddress: "x", Type: entity.AddressType(9)}}},
			},
			details: "contact #1 has an address of unknown type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAddressService(t, notFoundResolver())

			_, err := fx.service.ImportContacts(context.Background(), tt.contacts)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
			assert.Equal(t, tt.details, appErr.Details())
			fx.catalog.AssertNotCalled(t, "ImportContacts", mock.Anything, mock.Anything)
		})
	}
}

func TestAddressService_NavigationQRCode(t *testing.T) {
	resolver := resolverFunc(func(_ context.Context, ref string) (*entity.AddressRecord, entity.PhotoBlob) {
		return foundRecord(ref), nil
	})
	fx := createTestAddressService(t, resolver)

	fx.qrcode.EXPECT().GenerateNavigationQR("google.navigation:q=1 Main St").Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.NavigationQRCode(context.Background(), testRef)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}

func TestAddressService_NavigationQRCode_NotFound(t *testing.T) {
	fx := createTestAddressService(t, notFoundResolver())

	fx.qrcode.EXPECT().GenerateNavigationQR("google.navigation:q=null").Return(nil, errors.New("boom"))

	_, err := fx.service.NavigationQRCode(context.Background(), testRef)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "QRCODE_FAILED", appErr.ErrorCode())
}

func TestAddressService_NavigationIntent(t *testing.T) {
	fx := createTestAddressService(t, resolverFunc(func(_ context.Context, ref string) (*entity.AddressRecord, entity.PhotoBlob) {
		return foundRecord(ref), nil
	}))

	intent := fx.service.NavigationIntent(context.Background(), testRef)
	assert.Equal(t, "google.navigation:q=1 Main St", intent.URI)
	assert.Equal(t, []string{entity.IntentFlagClearTop}, intent.Flags)
}
