package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/route-trajectory-service/internal/config"
	httpDelivery "github.com/route-trajectory-service/internal/delivery/http"
	"github.com/route-trajectory-service/internal/delivery/http/handler"
	"github.com/route-trajectory-service/internal/infrastructure/transit"
	"github.com/route-trajectory-service/internal/pkg/logger"
	"github.com/route-trajectory-service/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Route Trajectory Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("transit_api", cfg.Transit.BaseURL),
	)

	// 3. Initialize transit API client
	transitRepo := transit.NewClient(&cfg.Transit, log)
	log.Info("Transit API client initialized")

	// 4. Initialize use cases
	routeUC := usecase.NewRouteUseCase(transitRepo, log)
	exportUC := usecase.NewExportUseCase(cfg.Export.Creator)
	selection := usecase.NewSelectionManager(transitRepo, log)

	log.Info("Use cases initialized")

	// 5. Initialize HTTP handlers
	lineHandler := handler.NewLineHandler(routeUC, log)
	exportHandler := handler.NewExportHandler(routeUC, exportUC, selection, log)

	log.Info("HTTP handlers initialized")

	// 6. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		lineHandler,
		exportHandler,
	)

	// 7. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
