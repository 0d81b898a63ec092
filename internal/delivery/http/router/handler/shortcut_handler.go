package handler

import (
	"context"
	"log/slog"
	"net/http"

	deliverycontext "navshortcut/internal/delivery/context"
	"navshortcut/internal/delivery/http/response"
	"navshortcut/internal/delivery/http/validator"
	"navshortcut/internal/domain/entity"
	domainerrors "navshortcut/internal/domain/errors"
	"navshortcut/internal/usecase"
	"navshortcut/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShortcutHandlerParams holds dependencies for ShortcutHandler, injected by Fx.
type ShortcutHandlerParams struct {
	fx.In

	ShortcutUC usecase.ShortcutUsecase
	AddressUC  usecase.AddressUsecase
	Logger     *slog.Logger
}

// ShortcutHandler exposes the shortcut composition pipeline
type ShortcutHandler struct {
	shortcutUC usecase.ShortcutUsecase
	addressUC  usecase.AddressUsecase
	logger     *slog.Logger
}

// NewShortcutHandler is the constructor for ShortcutHandler
func NewShortcutHandler(params ShortcutHandlerParams) *ShortcutHandler {
	return &ShortcutHandler{
		shortcutUC: params.ShortcutUC,
		addressUC:  params.AddressUC,
		logger:     params.Logger,
	}
}

// CreateShortcutRequest represents the request body for creating a shortcut
type CreateShortcutRequest struct {
	Ref string `json:"ref" validate:"required,max=512"`
}

// ShortcutQuery selects the address of the icon, intent and QR code endpoints
type ShortcutQuery struct {
	Ref string `query:"ref" validate:"required,max=512"`
}

// ShortcutResponse is the JSON form of a shortcut payload
type ShortcutResponse struct {
	Ref         string              `json:"ref"`
	DisplayName *string             `json:"displayName"`
	Intent      entity.LaunchIntent `json:"intent"`
	Icon        IconResponse        `json:"icon"`
}

// IconResponse carries the PNG icon base64 encoded
type IconResponse struct {
	Size int    `json:"size"`
	ETag string `json:"etag"`
	PNG  []byte `json:"png"`
}

// CreateShortcut composes the shortcut payload of an address
func (h *ShortcutHandler) CreateShortcut(c echo.Context) error {
	var req CreateShortcutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shortcut input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", validator.Messages(err))
	}

	payload, err := h.build(c.Request().Context(), req.Ref)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := payload.Icon.PNG()
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrIconEncodingFailed.WrapMessage(err.Error()))
	}

	return response.Success(c, http.StatusCreated, ShortcutResponse{
		Ref:         req.Ref,
		DisplayName: payload.DisplayName,
		Intent:      payload.Intent,
		Icon: IconResponse{
			Size: payload.Icon.Size(),
			ETag: util.ETag(png),
			PNG:  png,
		},
	})
}

// GetIcon returns the shortcut icon of an address as PNG
func (h *ShortcutHandler) GetIcon(c echo.Context) error {
	ref, err := h.bindQuery(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	payload, err := h.build(c.Request().Context(), ref)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := payload.Icon.PNG()
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrIconEncodingFailed.WrapMessage(err.Error()))
	}

	etag := util.ETag(png)
	c.Response().Header().Set(echo.HeaderCacheControl, "no-cache")
	c.Response().Header().Set("ETag", etag)
	if c.Request().Header.Get("If-None-Match") == etag {
		return c.NoContent(http.StatusNotModified)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// GetIntent returns the launch intent of an address without rendering an icon
func (h *ShortcutHandler) GetIntent(c echo.Context) error {
	ref, err := h.bindQuery(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.addressUC.NavigationIntent(c.Request().Context(), ref))
}

// GetQRCode returns the launch intent URI of an address as a QR code PNG
func (h *ShortcutHandler) GetQRCode(c echo.Context) error {
	ref, err := h.bindQuery(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.addressUC.NavigationQRCode(c.Request().Context(), ref)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *ShortcutHandler) bindQuery(c echo.Context) (string, error) {
	var query ShortcutQuery
	if err := c.Bind(&query); err != nil {
		return "", domainerrors.ErrValidationFailed.WithDetails("invalid query")
	}
	if err := c.Validate(&query); err != nil {
		return "", domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return query.Ref, nil
}

func (h *ShortcutHandler) build(ctx context.Context, ref string) (*entity.ShortcutPayload, error) {
	payload, err := h.shortcutUC.BuildNavigationShortcut(ctx, ref)
	if err != nil {
		deliverycontext.Logger(ctx, h.logger).Warn("Shortcut not delivered",
			slog.String("ref", ref),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrShortcutAborted.WrapMessage(err.Error())
	}

	return payload, nil
}
