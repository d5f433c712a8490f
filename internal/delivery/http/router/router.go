// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"taskhive/internal/delivery/http/middleware"
	"taskhive/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	TaskHandler         *handler.TaskHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	taskHandler         *handler.TaskHandler
	adminHandler        *handler.AdminHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		taskHandler:         params.TaskHandler,
		adminHandler:        params.AdminHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes; register and login are rate limited per client IP
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register, r.rateLimitMiddleware.Limit("register"))
		authGroup.POST("/login", r.authHandler.Login, r.rateLimitMiddleware.Limit("login"))
	}

	// User routes that require authentication
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.authHandler.Me)
	}

	// Task routes that require authentication
	taskGroup := e.Group("/tasks")
	taskGroup.Use(r.authMiddleware.Authenticate)
	{
		taskGroup.POST("", r.taskHandler.Create)
		taskGroup.GET("", r.taskHandler.List)
		taskGroup.GET("/:id", r.taskHandler.Get)
		taskGroup.PATCH("/:id", r.taskHandler.Update)
		taskGroup.DELETE("/:id", r.taskHandler.Delete)
	}

	// Admin routes that require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole("admin"))
	{
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.GET("/users/:id", r.adminHandler.GetUser)
	}
}
