// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"addressconv/internal/delivery/http/middleware"
	"addressconv/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AddressHandler      *handler.AddressHandler
	ErrorMiddleware     *middleware.ErrorMiddleware
	LoggerMiddleware    *middleware.LoggerMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	addressHandler      *handler.AddressHandler
	errorMiddleware     *middleware.ErrorMiddleware
	loggerMiddleware    *middleware.LoggerMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		addressHandler:      params.AddressHandler,
		errorMiddleware:     params.ErrorMiddleware,
		loggerMiddleware:    params.LoggerMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.HTTPErrorHandler = r.errorMiddleware.HandleHTTPError
	e.Use(r.requestIDMiddleware.Handle)
	e.Use(r.loggerMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	addressGroup := e.Group("/addresses")
	{
		addressGroup.POST("", r.addressHandler.SaveAddress)
		addressGroup.GET("/:id", r.addressHandler.GetAddress)
		addressGroup.PUT("/:id", r.addressHandler.UpdateAddress)
		addressGroup.DELETE("/:id", r.addressHandler.DeleteAddress)
	}

	e.POST("/conversions", r.addressHandler.ConvertAddress)
}
