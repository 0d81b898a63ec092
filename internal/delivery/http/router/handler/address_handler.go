package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "navshortcut/internal/delivery/context"
	"navshortcut/internal/delivery/http/response"
	"navshortcut/internal/delivery/http/validator"
	"navshortcut/internal/domain/entity"
	"navshortcut/internal/domain/repository"
	"navshortcut/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	Logger    *slog.Logger
}

// AddressHandler serves the address catalog a picker chooses from
type AddressHandler struct {
	addressUC usecase.AddressUsecase
	logger    *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

// ImportContactsRequest represents the request body for importing contacts
type ImportContactsRequest struct {
	Contacts []ContactRequest `json:"contacts" validate:"required,min=1,dive"`
}

// ContactRequest is one contact of an import request. Photo is base64 encoded image data.
type ContactRequest struct {
	DisplayName string           `json:"displayName" validate:"required,max=256"`
	Photo       []byte           `json:"photo"`
	Addresses   []AddressRequest `json:"addresses" validate:"required,min=1,dive"`
}

// AddressRequest is one postal address of an imported contact
type AddressRequest struct {
	FormattedAddress string `json:"formattedAddress" validate:"required,max=1024"`
	Type             string `json:"type" validate:"omitempty,oneof=home work other custom"`
	Label            string `json:"label" validate:"required_if=Type custom,max=128"`
}

// ImportContactsResponse lists the references of the created addresses
type ImportContactsResponse struct {
	Refs []string `json:"refs"`
}

// ListAddresses returns every selectable address
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	addresses, err := h.addressUC.ListAddresses(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if addresses == nil {
		addresses = []*entity.AddressSummary{}
	}

	return response.Success(c, http.StatusOK, addresses)
}

// ImportContacts stores the contacts of the request body
func (h *AddressHandler) ImportContacts(c echo.Context) error {
	var req ImportContactsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", validator.Messages(err))
	}

	contacts := make([]repository.ContactImport, 0, len(req.Contacts))
	for _, contact := range req.Contacts {
		imported := repository.ContactImport{
			DisplayName: contact.DisplayName,
			Photo:       contact.Photo,
		}
		for _, address := range contact.Addresses {
			addressType, _ := entity.ParseAddressType(address.Type)
			imported.Addresses = append(imported.Addresses, repository.AddressImport{
				FormattedAddress: address.FormattedAddress,
				Type:             addressType,
				Label:            address.Label,
			})
		}
		contacts = append(contacts, imported)
	}

	refs, err := h.addressUC.ImportContacts(c.Request().Context(), contacts)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.Logger(c.Request().Context(), h.logger).Info("Imported contacts",
		slog.Int("contacts", len(contacts)),
		slog.Int("addresses", len(refs)),
	)

	return response.Success(c, http.StatusCreated, ImportContactsResponse{Refs: refs})
}
