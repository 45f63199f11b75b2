package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/piresc/dispatch/internal/pkg/config"
	"github.com/piresc/dispatch/internal/pkg/database"
	"github.com/piresc/dispatch/internal/pkg/health"
	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/middleware"
	nrpkg "github.com/piresc/dispatch/internal/pkg/newrelic"
	"github.com/piresc/dispatch/internal/pkg/server"
	"github.com/piresc/dispatch/services/history/handler"
	nsqHandler "github.com/piresc/dispatch/services/history/handler/nsq"
	"github.com/piresc/dispatch/services/history/repository"
	"github.com/piresc/dispatch/services/history/usecase"
)

func main() {
	appName := "history-service"
	configs := config.InitConfig(os.Getenv("CONFIG_PATH"))

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize repository
	historyRepo := repository.NewHistoryRepository(configs, postgresClient.GetDB())

	// Initialize usecase and start the interval flusher
	historyUC := usecase.NewHistoryUC(configs, historyRepo)
	historyUC.Start(context.Background())

	// Initialize and start the queue consumer
	historyConsumer := nsqHandler.NewHistoryConsumer(configs, historyUC)
	if err := historyConsumer.Start(context.Background()); err != nil {
		zapLogger.Fatal("Failed to start history consumer", logger.Err(err))
	}

	// Initialize handlers
	historyHandler := handler.NewHandler(historyUC, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.NewRelicMiddleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)
	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("writer", health.HealthCheckerFunc(func(ctx context.Context) error {
		return historyUC.Healthy()
	}))
	health.RegisterEnhancedHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	historyHandler.RegisterRoutes(e)

	// Register component shutdown: stop taking messages first, then drain
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		historyConsumer.Stop()
		return nil
	})
	shutdownManager.Register(historyUC.Stop)

	// Start server and block until a shutdown signal arrives
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server shutdown with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(ctx); err != nil {
		zapLogger.Error("Component shutdown failed", logger.Err(err))
	}
}
