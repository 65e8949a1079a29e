// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"quill/config"
	"quill/internal/delivery/http/middleware"
	"quill/internal/delivery/http/router/handler"
	"quill/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config         *config.Config
	AuthHandler    *handler.AuthHandler
	SessionHandler *handler.SessionHandler
	PostHandler    *handler.PostHandler
	SeriesHandler  *handler.SeriesHandler
	ProjectHandler *handler.ProjectHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg            *config.Config
	authHandler    *handler.AuthHandler
	sessionHandler *handler.SessionHandler
	postHandler    *handler.PostHandler
	seriesHandler  *handler.SeriesHandler
	projectHandler *handler.ProjectHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:            params.Config,
		authHandler:    params.AuthHandler,
		sessionHandler: params.SessionHandler,
		postHandler:    params.PostHandler,
		seriesHandler:  params.SeriesHandler,
		projectHandler: params.ProjectHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/send-otp", r.authHandler.SendOTP)
		authGroup.POST("/verify-otp", r.authHandler.VerifyOTP)
		authGroup.GET("/peek-otp", r.authHandler.PeekOTP)
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/init", r.authHandler.Init)
		authGroup.POST("/cleanup", r.adminHandler.CleanupSessions,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleAdmin))
	}

	// Unauthenticated cleanup trigger for local development only.
	if r.cfg.Env.Debug {
		e.POST("/debug/cleanup-sessions", r.adminHandler.CleanupSessions)
	}

	// Session management requires a valid access token
	sessionGroup := e.Group("/auth/sessions")
	sessionGroup.Use(r.authMiddleware.Authenticate)
	{
		sessionGroup.GET("", r.sessionHandler.ListSessions)
		sessionGroup.DELETE("/:id", r.sessionHandler.RevokeSession)
		sessionGroup.DELETE("", r.sessionHandler.RevokeAllSessions)
	}

	// Public reading surface; viewer identity is optional
	postGroup := e.Group("/posts")
	{
		postGroup.GET("", r.postHandler.ListPosts)
		postGroup.GET("/:slug", r.postHandler.GetPost, r.authMiddleware.OptionalAuthenticate)
		postGroup.GET("/:slug/qrcode", r.postHandler.ShareQR)
		postGroup.POST("/:id/like", r.postHandler.ToggleLike, r.authMiddleware.Authenticate)
	}

	seriesGroup := e.Group("/series")
	{
		seriesGroup.GET("", r.seriesHandler.ListSeries)
		seriesGroup.GET("/:slug", r.seriesHandler.GetSeries)
	}

	projectGroup := e.Group("/projects")
	{
		projectGroup.GET("", r.projectHandler.ListProjects)
		projectGroup.GET("/:slug", r.projectHandler.GetProject)
	}

	// Admin routes require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/posts", r.adminHandler.CreatePost)
		adminGroup.PUT("/posts/:id", r.adminHandler.UpdatePost)
		adminGroup.DELETE("/posts/:id", r.adminHandler.DeletePost)
		adminGroup.POST("/posts/:id/publish", r.adminHandler.SetPublished)

		adminGroup.POST("/series", r.adminHandler.CreateSeries)
		adminGroup.PUT("/series/:id", r.adminHandler.UpdateSeries)
		adminGroup.DELETE("/series/:id", r.adminHandler.DeleteSeries)

		adminGroup.POST("/projects", r.adminHandler.CreateProject)
		adminGroup.PUT("/projects/:id", r.adminHandler.UpdateProject)
		adminGroup.DELETE("/projects/:id", r.adminHandler.DeleteProject)

		adminGroup.POST("/media", r.adminHandler.UploadMedia)
		adminGroup.POST("/sessions/cleanup", r.adminHandler.CleanupSessions)
	}
}
