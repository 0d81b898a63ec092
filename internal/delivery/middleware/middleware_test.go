package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "navshortcut/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(logger *slog.Logger, debug bool) *echo.Echo {
	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, debug).Handle)

	return e
}

func TestRequestIDMiddleware(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	tests := []struct {
		name     string
		clientID string
	}{
		{name: "generated when absent"},
		{name: "client value reused", clientID: "client-supplied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho(logger, false)

			var seenEcho, seenCtx string
			var scoped *slog.Logger
			e.GET("/", func(c echo.Context) error {
				seenEcho = deliverycontext.RequestID(c)
				seenCtx = deliverycontext.RequestIDFrom(c.Request().Context())
				scoped = deliverycontext.Logger(c.Request().Context(), nil)

				return c.NoContent(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.clientID != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.clientID)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.NotEmpty(t, seenEcho)
			assert.Equal(t, seenEcho, seenCtx)
			assert.Equal(t, seenEcho, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.NotNil(t, scoped)
			if tt.clientID != "" {
				assert.Equal(t, tt.clientID, seenEcho)
			}
		})
	}
}

func TestLoggerMiddleware_Levels(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		status  int
		wantLog string
	}{
		{name: "success hidden outside debug", status: http.StatusOK},
		{name: "success logged in debug", debug: true, status: http.StatusOK, wantLog: "level=INFO"},
		{name: "client error", status: http.StatusBadRequest, wantLog: "level=WARN"},
		{name: "server error", status: http.StatusInternalServerError, wantLog: "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
			e := newTestEcho(logger, tt.debug)
			e.GET("/", func(c echo.Context) error {
				return c.NoContent(tt.status)
			})

			e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/?ref=x", nil))

			if tt.wantLog == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.wantLog)
			assert.Contains(t, buf.String(), "request_id=")
			assert.Contains(t, buf.String(), "ref=x")
		})
	}
}

func TestLoggerMiddleware_LogsFinalErrorStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	e := newTestEcho(logger, false)
	e.GET("/", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Contains(t, buf.String(), "status=418")
}
