package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/route-trajectory-service/internal/config"
	"github.com/route-trajectory-service/internal/delivery/http/handler"
	"github.com/route-trajectory-service/internal/delivery/http/middleware"
	"github.com/route-trajectory-service/internal/pkg/errors"
	"go.uber.org/zap"
)

// Server is the fiber HTTP surface the presentation layer talks to.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	lineHandler   *handler.LineHandler
	exportHandler *handler.ExportHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	lineHandler *handler.LineHandler,
	exportHandler *handler.ExportHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Route Trajectory Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:           app,
		config:        cfg,
		logger:        logger,
		lineHandler:   lineHandler,
		exportHandler: exportHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Line and shape lookups
	api.Get("/lines/:id", s.lineHandler.GetLine)
	api.Get("/shapes/:id", s.lineHandler.GetShape)

	// Trajectory export
	api.Get("/lines/:id/patterns/:patternId/gpx", s.exportHandler.DownloadGPX)
	api.Get("/selection", s.exportHandler.GetSelection)
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    errors.CodeInternal,
				"message": err.Error(),
			},
		})
	}
}
