package api

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/filmcatalog/film-api/internal/api/handler"
	"github.com/filmcatalog/film-api/internal/api/middleware"
	"github.com/filmcatalog/film-api/internal/core/domain"
	"github.com/filmcatalog/film-api/internal/core/service"
	"github.com/filmcatalog/film-api/internal/infrastructure/db/postgres"
)

const tokenTTL = time.Hour

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sqlx.DB, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("filmapi"))

	// --- Dependencies ---
	tokenService := service.NewTokenService(jwtSecret, tokenTTL)

	userRepo := postgres.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, tokenService, log)
	authHandler := handler.NewAuthHandler(authService)

	movieRepo := postgres.NewMovieRepository(db)
	movieService := service.NewMovieService(movieRepo, log)
	movieHandler := handler.NewMovieHandler(movieService, log)

	directorRepo := postgres.NewDirectorRepository(db)
	directorService := service.NewDirectorService(directorRepo, log)
	directorHandler := handler.NewDirectorHandler(directorService)

	requireAuth := middleware.Auth(tokenService)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/register-admin", authHandler.RegisterAdmin)
	e.POST("/auth/login", authHandler.Login)

	// --- Movies ---
	e.GET("/movies", movieHandler.List)
	e.GET("/movies/:id", movieHandler.Get)
	e.POST("/movies", movieHandler.Create, requireAuth)
	e.PUT("/movies/:id", movieHandler.Update, requireAuth, adminOnly)
	e.DELETE("/movies/:id", movieHandler.Delete, requireAuth, adminOnly)

	// --- Directors (same guard pattern as movies) ---
	e.GET("/directors", directorHandler.List)
	e.GET("/directors/:id", directorHandler.Get)
	e.POST("/directors", directorHandler.Create, requireAuth)
	e.PUT("/directors/:id", directorHandler.Update, requireAuth, adminOnly)
	e.DELETE("/directors/:id", directorHandler.Delete, requireAuth, adminOnly)

	// --- Ops surface (no auth required) ---
	statusHandler := handler.NewStatusHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/status", statusHandler.Status)
	e.GET("/status/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
