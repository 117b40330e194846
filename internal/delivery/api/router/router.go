// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"chess/internal/delivery/api/middleware"
	"chess/internal/delivery/api/router/handler"
	"chess/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	AuthMiddleware *middleware.AuthMiddleware
	Registry       *prometheus.Registry
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	authMiddleware *middleware.AuthMiddleware
	registry       *prometheus.Registry
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		authMiddleware: params.AuthMiddleware,
		registry:       params.Registry,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(r.registry)))

	users := e.Group("/api/users")
	users.Use(r.authMiddleware.Authenticate)

	// Registration only needs a verified token; the subject has no account yet.
	users.POST("/register", r.accountHandler.Register)

	registered := users.Group("", r.authMiddleware.RequireAccount)
	{
		registered.GET("/me", r.accountHandler.Me)
		registered.GET("", r.accountHandler.ListAccounts)
		registered.GET("/:id", r.accountHandler.GetAccount)
		registered.PUT("/:id", r.accountHandler.UpdateAccount)
		registered.DELETE("/:id", r.accountHandler.DeleteAccount)
	}
}
