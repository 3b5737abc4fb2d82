package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/campushub/resource-gateway/internal/api/handler"
	"github.com/campushub/resource-gateway/internal/api/middleware"
	"github.com/campushub/resource-gateway/internal/core/service"
	"github.com/campushub/resource-gateway/internal/infrastructure/backend"
	"github.com/campushub/resource-gateway/internal/infrastructure/config"
	"github.com/campushub/resource-gateway/internal/infrastructure/session"
)

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, backendClient *backend.Client, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("resourcehub"))

	// --- Dependencies ---
	authAPI := backend.NewAuthClient(backendClient)
	resourceAPI := backend.NewResourceClient(backendClient)
	adminAPI := backend.NewAdminClient(backendClient)

	authService := service.NewAuthService(authAPI, log)
	directoryService := service.NewDirectoryService(resourceAPI, log)
	reviewService := service.NewReviewService(resourceAPI, adminAPI, log)

	store := session.NewRedisStore(rdb, cfg.Session.TTL)
	resolver := middleware.NewSessionResolver(store, authService, cfg.Session.CookieName, log)
	e.Use(resolver.Resolve())

	authHandler := handler.NewAuthHandler(authService, store, handler.CookieOptions{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Production(),
	})
	resourceHandler := handler.NewResourceHandler(directoryService)
	adminHandler := handler.NewAdminHandler(reviewService)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", authHandler.Me)
	auth.POST("/register", authHandler.Register)
	auth.POST("/request-password-reset", authHandler.RequestPasswordReset)
	auth.POST("/reset-password", authHandler.ResetPassword)

	// --- Directory routes ---
	e.GET("/resources", resourceHandler.List)
	e.POST("/resources/suggest", resourceHandler.Suggest, middleware.Guard(true, false))

	// --- Admin routes ---
	admin := e.Group("/admin", middleware.Guard(true, true))
	admin.GET("/resources", adminHandler.ListResources)
	admin.GET("/resources/status/:status", adminHandler.ListByStatus)
	admin.POST("/resources", adminHandler.CreateResource)
	admin.PUT("/resources/:id", adminHandler.UpdateResource)
	admin.DELETE("/resources/:id", adminHandler.DeleteResource)
	admin.PUT("/resources/:id/review", adminHandler.Review)
	admin.GET("/users", adminHandler.ListUsers)
	admin.PUT("/users/:id/role", adminHandler.SetUserRole)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(rdb, backendClient)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
