package server

import (
	"time"

	"lindash/internal/config"
	"lindash/internal/handlers"
	"lindash/internal/ingest"
	"lindash/internal/models"
	"lindash/internal/snapshot"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Server represents the application server
type Server struct {
	echo   *echo.Echo
	store  *snapshot.Store
	config *config.Config
	logger zerolog.Logger
	ingest *ingest.Service
}

// New creates a new server instance
func New(cfg *config.Config, store *snapshot.Store, svc *ingest.Service, logger zerolog.Logger) *Server {
	return &Server{
		config: cfg,
		store:  store,
		logger: logger,
		ingest: svc,
	}
}

// zerologMiddleware creates a zerolog-based logging middleware for Echo
func (s *Server) zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			req := c.Request()
			res := c.Response()

			s.logger.Info().
				Str("method", req.Method).
				Str("uri", req.RequestURI).
				Str("remote_ip", c.RealIP()).
				Int("status", res.Status).
				Int64("latency_ms", time.Since(start).Milliseconds()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			return err
		}
	}
}

// Initialize sets up the Echo framework with middleware and routes
func (s *Server) Initialize() {
	s.echo = echo.New()

	// Middleware
	s.echo.Use(s.zerologMiddleware())
	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.CORS())

	// Hide Echo banner
	s.echo.HideBanner = true

	// Setup routes
	s.setupRoutes()
}

// setupRoutes configures all the application routes
func (s *Server) setupRoutes() {
	// API group with /api prefix
	api := s.echo.Group("/api")

	// Swagger documentation
	s.echo.GET("/swagger/*", echoSwagger.WrapHandler)

	// Health endpoints (keep at root level for monitoring)
	s.echo.GET("/healthz", handlers.HealthHandler(s.config.Version))
	s.echo.GET("/healthz/db", handlers.StoreHealthHandler(s.store))

	// API endpoints under /api prefix
	api.GET("/", handlers.RootHandler(s.config.Version))
	api.POST("/upload", handlers.UploadHandler(s.ingest, s.config, s.logger))
	api.GET("/stats", handlers.StatsHandler(s.ingest))
	api.GET("/invitations", handlers.RecordsHandler(s.ingest, models.KindInvitations))
	api.GET("/jobs", handlers.RecordsHandler(s.ingest, models.KindJobs))
	api.GET("/messages", handlers.RecordsHandler(s.ingest, models.KindMessages))
	api.GET("/rich-media", handlers.RecordsHandler(s.ingest, models.KindRichMedia))
	api.GET("/connections", handlers.RecordsHandler(s.ingest, models.KindConnections))

	// Serve static files (this should be last to avoid conflicts)
	s.echo.Static("/", "static")
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info().Str("port", s.config.Port).Msg("Server starting")
	return s.echo.Start(":" + s.config.Port)
}
