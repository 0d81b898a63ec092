package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"navshortcut/config"
	deliverycontext "navshortcut/internal/delivery/context"
	"navshortcut/internal/delivery/http/router"
	"navshortcut/internal/delivery/http/router/handler"
	"navshortcut/internal/domain/entity"
	"navshortcut/internal/errors"
	mockUsecase "navshortcut/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, rateLimit float64) (*echo.Echo, *mockUsecase.MockAddressUsecase, *prometheus.Registry) {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cfg.HTTP.RateLimit = rateLimit

	logger := slog.New(slog.DiscardHandler)
	addressUC := mockUsecase.NewMockAddressUsecase(t)
	registry := prometheus.NewRegistry()
	requests := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_requests_total", Help: "test"})
	registry.MustRegister(requests)
	requests.Inc()

	e := NewEcho(cfg, logger, router.RouterParams{
		AddressHandler: handler.NewAddressHandler(handler.AddressHandlerParams{AddressUC: addressUC, Logger: logger}),
		ShortcutHandler: handler.NewShortcutHandler(handler.ShortcutHandlerParams{
			AddressUC: addressUC,
			Logger:    logger,
		}),
		Gatherer: registry,
		Config:   cfg,
	})

	return e, addressUC, registry
}

func serve(e *echo.Echo, method, target string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	req.RemoteAddr = "192.0.2.10:5555"
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestServer_Health(t *testing.T) {
	e, _, _ := newTestServer(t, 10)

	rec := serve(e, http.MethodGet, "/health", map[string]string{deliverycontext.HeaderXRequestID: "health-1"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "health-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.Contains(t, rec.Body.String(), `"request_id":"health-1"`)
}

func TestServer_Metrics(t *testing.T) {
	e, _, _ := newTestServer(t, 10)

	rec := serve(e, http.MethodGet, "/metrics", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test_requests_total 1")
}

func TestServer_UnknownRoute(t *testing.T) {
	e, _, _ := newTestServer(t, 10)

	rec := serve(e, http.MethodGet, "/nope", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
		Meta struct {
			RequestID string `json:"request_id"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
	assert.NotEmpty(t, body.Meta.RequestID)
}

func TestServer_UnhandledErrorIsGeneric(t *testing.T) {
	e, addressUC, _ := newTestServer(t, 10)
	addressUC.EXPECT().ListAddresses(mock.Anything).Return(nil, errors.New("secret connection string"))

	rec := serve(e, http.MethodGet, "/api/v1/addresses", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestServer_ShortcutRoutesRateLimited(t *testing.T) {
	e, addressUC, _ := newTestServer(t, 1)
	addressUC.EXPECT().NavigationIntent(mock.Anything, "content://contacts/data/1").
		Return(entity.NewNavigationIntent("geo", nil)).Once()

	first := serve(e, http.MethodGet, "/api/v1/shortcuts/intent?ref=content://contacts/data/1", nil)
	second := serve(e, http.MethodGet, "/api/v1/shortcuts/intent?ref=content://contacts/data/1", nil)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.True(t, strings.Contains(second.Body.String(), "RATE_LIMITED"))
}
