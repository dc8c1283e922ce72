// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cabradar/config"
	"cabradar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and config the router needs, injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	LocationHandler *handler.LocationHandler
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	locationHandler *handler.LocationHandler
	basePath        string
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		locationHandler: params.LocationHandler,
		basePath:        params.Config.HTTP.BasePath,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group(r.basePath)

	// Auth routes
	{
		api.POST("/register", r.authHandler.Register)
		api.POST("/login", r.authHandler.Login)
		api.GET("/verify", r.authHandler.Verify)
	}

	// Location routes
	{
		api.GET("/cars", r.locationHandler.ListCars)
		api.POST("/search", r.locationHandler.Search)
	}
}
