package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/travel-journal/journal-api/docs"
	"github.com/travel-journal/journal-api/internal/api/handler"
	"github.com/travel-journal/journal-api/internal/api/middleware"
	"github.com/travel-journal/journal-api/internal/core/ports"
)

// Deps carries everything the router needs. Readiness may be nil in tests.
// A nil Registry means the process-wide Prometheus registry.
type Deps struct {
	EntryService   ports.EntryService
	UserService    ports.UserService
	Readiness      *handler.HealthDependenciesHandler
	JWTSecret      string
	AllowedOrigins []string
	Logger         zerolog.Logger
	Registry       *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if deps.Registry != nil {
		registerer, gatherer = deps.Registry, deps.Registry
	}

	origins := deps.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: origins,
		AllowHeaders: []string{
			echo.HeaderOrigin,
			"X-Requested-With",
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
		},
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "journal",
		Registerer: registerer,
	}))

	// --- Dependencies ---
	entryHandler := handler.NewEntryHandler(deps.EntryService)
	userHandler := handler.NewUserHandler(deps.UserService)
	auth := middleware.Auth(deps.JWTSecret)

	api := e.Group("/api")

	// --- Entry routes ---
	entries := api.Group("/entries")
	entries.GET("/user/:userId", entryHandler.ListByUser)
	entries.GET("/:id", entryHandler.GetByID)
	entries.POST("", entryHandler.Create, auth)
	entries.PATCH("/:id", entryHandler.Update, auth)
	entries.DELETE("/:id", entryHandler.Delete, auth)

	// --- User routes ---
	users := api.Group("/users")
	users.GET("", userHandler.List)
	users.POST("/signup", userHandler.Signup)
	users.POST("/login", userHandler.Login)

	// --- Health probes (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	if deps.Readiness != nil {
		e.GET("/health/ready", deps.Readiness.Readiness)
	}

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
