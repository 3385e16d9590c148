package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/elibrary/library-system/internal/api/handler"
	"github.com/elibrary/library-system/internal/api/middleware"
	"github.com/elibrary/library-system/internal/core/domain"
	"github.com/elibrary/library-system/internal/core/ports"
	"github.com/elibrary/library-system/internal/infrastructure/kv"
)

// Dependencies carries everything the router needs. Store is only used by
// the readiness probe; all data access goes through the services.
type Dependencies struct {
	Catalog   ports.CatalogService
	Auth      ports.AuthService
	Themes    ports.ThemeStore
	Store     kv.Store
	JWTSecret string
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("library"))

	authHandler := handler.NewAuthHandler(deps.Auth)
	catalogHandler := handler.NewCatalogHandler(deps.Catalog)
	themeHandler := handler.NewThemeHandler(deps.Themes)
	requireAuth := middleware.Auth(deps.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, requireAuth)
	e.GET("/auth/session", authHandler.Session)

	// --- Catalog routes (session required) ---
	v1 := e.Group("/v1", requireAuth)
	v1.GET("/books", catalogHandler.List)
	v1.POST("/books", catalogHandler.Add, middleware.RBAC(domain.RoleAdmin))
	v1.POST("/books/:id/issue", catalogHandler.Issue)
	v1.POST("/books/:id/return", catalogHandler.Return)
	v1.GET("/dashboard", catalogHandler.Dashboard)

	// --- Theme preference (no auth, mirrors the original page toggle) ---
	e.GET("/theme", themeHandler.Get)
	e.PUT("/theme", themeHandler.Set)
	e.POST("/theme/toggle", themeHandler.Toggle)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Store)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the backing store up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
