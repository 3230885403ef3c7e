// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/delivery/http/router/handler"
	"jobmatch/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SearchHandler  *handler.SearchHandler
	MatchHandler   *handler.MatchHandler
	TestHandler    *handler.TestHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	searchHandler  *handler.SearchHandler
	matchHandler   *handler.MatchHandler
	testHandler    *handler.TestHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		searchHandler:  params.SearchHandler,
		matchHandler:   params.MatchHandler,
		testHandler:    params.TestHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Middleware smoke-test endpoints
	e.GET("/test/public", r.testHandler.TestPublicEndpoint)
	e.GET("/test/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate)

	// Search routes require authentication; each side is role-gated.
	searchGroup := e.Group("/search")
	searchGroup.Use(r.authMiddleware.Authenticate)
	{
		searchGroup.GET("/candidates", r.searchHandler.SearchCandidates,
			r.authMiddleware.RequireRole(entity.RoleEmployer.String()))
		searchGroup.GET("/jobs", r.searchHandler.SearchJobs,
			r.authMiddleware.RequireRole(entity.RoleJobSeeker.String()))
	}

	// Persisted match rankings are employer-only.
	jobGroup := e.Group("/jobs")
	jobGroup.Use(r.authMiddleware.Authenticate)
	jobGroup.Use(r.authMiddleware.RequireRole(entity.RoleEmployer.String()))
	{
		jobGroup.GET("/:id/matches", r.matchHandler.GetJobMatches)
	}
}
