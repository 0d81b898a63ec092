package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestID_EchoContext(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Empty(t, RequestID(c))

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", RequestID(c))
}

func TestRequestID_StdContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RequestIDFrom(ctx))

	ctx = WithRequestID(ctx, "req-2")
	assert.Equal(t, "req-2", RequestIDFrom(ctx))
}

func TestLogger_Fallback(t *testing.T) {
	fallback := slog.Default()
	scoped := slog.New(slog.DiscardHandler)

	assert.Same(t, fallback, Logger(context.Background(), fallback))
	assert.Same(t, scoped, Logger(WithLogger(context.Background(), scoped), fallback))
}
