package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"

	"navshortcut/internal/domain/entity"
	domainerrors "navshortcut/internal/domain/errors"
	"navshortcut/internal/domain/repository"
	"navshortcut/internal/errors"
	mockUsecase "navshortcut/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAddressHandler(t *testing.T) (*AddressHandler, *mockUsecase.MockAddressUsecase) {
	addressUC := mockUsecase.NewMockAddressUsecase(t)

	return NewAddressHandler(AddressHandlerParams{
		AddressUC: addressUC,
		Logger:    slog.New(slog.DiscardHandler),
	}), addressUC
}

func TestAddressHandler_ListAddresses(t *testing.T) {
	tests := []struct {
		name       string
		summaries  []*entity.AddressSummary
		err        error
		wantStatus int
		wantCount  int
		wantCode   string
	}{
		{
			name: "addresses listed",
			summaries: []*entity.AddressSummary{
				{Ref: testRef, DisplayName: "Ada", FormattedAddress: "1 Main St", Type: entity.AddressTypeHome},
			},
			wantStatus: http.StatusOK,
			wantCount:  1,
		},
		{name: "empty store lists nothing", wantStatus: http.StatusOK},
		{
			name:       "store failure",
			err:        errors.Wrap(domainerrors.NewDatabaseExecuteError(errors.New("disk I/O error"), "list"), "failed to list addresses"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "DATABASE_EXECUTE_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, addressUC := newTestAddressHandler(t)
			addressUC.EXPECT().ListAddresses(mock.Anything).Return(tt.summaries, tt.err)

			c, rec := newJSONContext(newTestEcho(), http.MethodGet, "/api/v1/addresses", "")
			require.NoError(t, h.ListAddresses(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			env := decodeEnvelope(t, rec)
			if tt.wantCode != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)

				return
			}

			var got []*entity.AddressSummary
			require.NoError(t, json.Unmarshal(env.Data, &got))
			require.NotNil(t, got, "an empty list is [] rather than null")
			assert.Len(t, got, tt.wantCount)
		})
	}
}

func TestAddressHandler_ImportContacts(t *testing.T) {
	h, addressUC := newTestAddressHandler(t)
	addressUC.EXPECT().
		ImportContacts(mock.Anything, mock.MatchedBy(func(contacts []repository.ContactImport) bool {
			if len(contacts) != 1 || len(contacts[0].Addresses) != 3 {
				return false
			}
			addresses := contacts[0].Addresses

			return contacts[0].DisplayName == "Ada" &&
				string(contacts[0].Photo) == "raw" &&
				addresses[0].Type == entity.AddressTypeHome &&
				addresses[1].Type == entity.AddressTypeCustom && addresses[1].Label == "Cabin" &&
				addresses[2].Type == entity.AddressTypeOther
		})).
		Return([]string{"content://contacts/data/1", "content://contacts/data/2", "content://contacts/data/3"}, nil)

	body := requestBody(ImportContactsRequest{Contacts: []ContactRequest{{
		DisplayName: "Ada",
		Photo:       []byte("raw"),
		Addresses: []AddressRequest{
			{FormattedAddress: "1 Main St", Type: "home"},
			{FormattedAddress: "2 Lake Rd", Type: "custom", Label: "Cabin"},
			{FormattedAddress: "3 Elm St"},
		},
	}}})

	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/api/v1/contacts", body)
	require.NoError(t, h.ImportContacts(c))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var got ImportContactsResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	assert.Len(t, got.Refs, 3)
}

func TestAddressHandler_ImportContacts_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantDetails string
	}{
		{name: "no contacts", body: `{"contacts":[]}`, wantDetails: "Contacts"},
		{name: "contact without name", body: `{"contacts":[{"addresses":[{"formattedAddress":"x"}]}]}`, wantDetails: "DisplayName"},
		{name: "contact without addresses", body: `{"contacts":[{"displayName":"Ada","addresses":[]}]}`, wantDetails: "Addresses"},
		{name: "unknown type", body: `{"contacts":[{"displayName":"Ada","addresses":[{"formattedAddress":"x","type":"boat"}]}]}`, wantDetails: "Type"},
		{name: "custom without label", body: `{"contacts":[{"displayName":"Ada","addresses":[{"formattedAddress":"x","type":"custom"}]}]}`, wantDetails: "Label"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestAddressHandler(t)

			c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/api/v1/contacts", tt.body)
			require.NoError(t, h.ImportContacts(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			env := decodeEnvelope(t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
			assert.Contains(t, string(env.Error.Details), tt.wantDetails)
		})
	}
}

func TestAddressHandler_ImportContacts_RejectedByUsecase(t *testing.T) {
	h, addressUC := newTestAddressHandler(t)
	addressUC.EXPECT().ImportContacts(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrValidationFailed.WithDetails(`contact "Ada" has no addresses`))

	body := `{"contacts":[{"displayName":"Ada","addresses":[{"formattedAddress":"x"}]}]}`
	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/api/v1/contacts", body)
	require.NoError(t, h.ImportContacts(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Contains(t, string(env.Error.Details), "has no addresses")
}
