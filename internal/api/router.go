package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/minusd/favorite-places/internal/api/handler"
	"github.com/minusd/favorite-places/internal/api/middleware"
	"github.com/minusd/favorite-places/internal/core/domain"
	"github.com/minusd/favorite-places/internal/core/ports"
)

// Dependencies groups everything the HTTP layer needs.
type Dependencies struct {
	Logger zerolog.Logger

	Auth   ports.AuthService
	Tokens ports.TokenVerifier
	Places ports.PlaceService
	Users  ports.UserService

	// RateLimitStore limits sign-up and sign-in per client IP. Nil disables it.
	RateLimitStore echomiddleware.RateLimiterStore

	// TrustProxyHeaders resolves the client IP from X-Forwarded-For instead
	// of the connection's remote address.
	TrustProxyHeaders bool

	ReadinessChecks map[string]handler.Check

	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	if deps.Registerer == nil {
		deps.Registerer = prometheus.DefaultRegisterer
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)
	e.IPExtractor = echo.ExtractIPDirect()
	if deps.TrustProxyHeaders {
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.Shield())
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "places",
		Registerer: deps.Registerer,
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	placeHandler := handler.NewPlaceHandler(deps.Places)
	userHandler := handler.NewUserHandler(deps.Users)
	requireAuth := middleware.Auth(deps.Tokens)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	if deps.RateLimitStore != nil {
		auth.Use(middleware.AuthRateLimit(deps.RateLimitStore))
	}
	auth.POST("/sign-up", authHandler.SignUp)
	auth.POST("/sign-in", authHandler.SignIn)

	// --- User routes ---
	users := e.Group("/api/users", requireAuth)
	users.GET("", userHandler.List, middleware.RBAC(domain.RoleAdmin))
	users.GET("/profile", userHandler.Profile)

	// --- Place routes ---
	places := e.Group("/api/places", requireAuth)
	places.GET("", placeHandler.List)
	places.POST("", placeHandler.Create)
	places.PUT("/:id", placeHandler.Update)
	places.DELETE("/:id", placeHandler.Delete)

	// --- Health probes & metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.ReadinessChecks)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: deps.Gatherer,
	}))

	return e
}
