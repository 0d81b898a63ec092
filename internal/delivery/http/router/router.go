// Package router contains routing for the HTTP delivery.
package router

import (
	"navshortcut/config"
	"navshortcut/internal/delivery/http/middleware"
	"navshortcut/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AddressHandler  *handler.AddressHandler
	ShortcutHandler *handler.ShortcutHandler
	Gatherer        prometheus.Gatherer
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	addressHandler  *handler.AddressHandler
	shortcutHandler *handler.ShortcutHandler
	gatherer        prometheus.Gatherer
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		addressHandler:  params.AddressHandler,
		shortcutHandler: params.ShortcutHandler,
		gatherer:        params.Gatherer,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})))

	apiV1 := e.Group("/api/v1")

	addressesGroup := apiV1.Group("/addresses")
	{
		addressesGroup.GET("", r.addressHandler.ListAddresses)
	}

	contactsGroup := apiV1.Group("/contacts")
	{
		contactsGroup.POST("", r.addressHandler.ImportContacts)
	}

	// Composition is the expensive path, so only the shortcut routes are rate limited.
	shortcutsGroup := apiV1.Group("/shortcuts")
	shortcutsGroup.Use(middleware.NewRateLimiter(r.config.HTTP.RateLimit))
	{
		shortcutsGroup.POST("", r.shortcutHandler.CreateShortcut)
		shortcutsGroup.GET("/icon", r.shortcutHandler.GetIcon)
		shortcutsGroup.GET("/intent", r.shortcutHandler.GetIntent)
		shortcutsGroup.GET("/qrcode", r.shortcutHandler.GetQRCode)
	}
}
