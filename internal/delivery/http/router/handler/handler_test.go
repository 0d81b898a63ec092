package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"net/http/httptest"
	"strings"
	"testing"

	"navshortcut/internal/delivery/http/validator"
	"navshortcut/internal/domain/entity"
	"navshortcut/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testRef = "content://contacts/data/7"

// envelope mirrors response.SuccessResponse and response.ErrorResponse.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

// shortcutUsecaseStub answers BuildNavigationShortcut with a fixed result.
type shortcutUsecaseStub struct {
	payload *entity.ShortcutPayload
	err     error
	refs    []string
}

func (s *shortcutUsecaseStub) CreateNavigationShortcut(context.Context, string, usecase.OnShortcutCreated) {
}

func (s *shortcutUsecaseStub) PickAndCreate(context.Context, usecase.Picker, usecase.OnShortcutCreated, usecase.OnShortcutAborted) error {
	return nil
}

func (s *shortcutUsecaseStub) BuildNavigationShortcut(_ context.Context, ref string) (*entity.ShortcutPayload, error) {
	s.refs = append(s.refs, ref)

	return s.payload, s.err
}

func (s *shortcutUsecaseStub) Wait() {}

func testPayload(address string) *entity.ShortcutPayload {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	img.Set(3, 3, color.RGBA{R: 0x20, A: 0xFF})
	name := "Ada Lovelace"

	return &entity.ShortcutPayload{
		DisplayName: &name,
		Icon:        entity.NewComposedIcon(img),
		Intent:      entity.NewNavigationIntent("geo", &address),
	}
}

func requestBody(v any) string {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(v)

	return buf.String()
}
