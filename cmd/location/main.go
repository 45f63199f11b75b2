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
	nsqpkg "github.com/piresc/dispatch/internal/pkg/nsq"
	"github.com/piresc/dispatch/internal/pkg/server"
	"github.com/piresc/dispatch/services/location/gateway"
	"github.com/piresc/dispatch/services/location/handler"
	"github.com/piresc/dispatch/services/location/repository"
	"github.com/piresc/dispatch/services/location/usecase"
)

func main() {
	appName := "location-service"
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

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NSQ producer for the history queue
	nsqProducer, err := nsqpkg.NewProducer(configs.NSQ.NSQDAddress)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	defer nsqProducer.Stop()

	// Initialize repository
	locationRepo := repository.NewLocationRepository(configs, redisClient)

	// Initialize gateway
	locationGW := gateway.NewLocationGW(nsqProducer)

	// Initialize usecase and start the coalescing buffer
	locationUC := usecase.NewLocationUC(configs, locationRepo, locationGW)
	if err := locationUC.Start(context.Background()); err != nil {
		zapLogger.Fatal("Failed to start location buffer", logger.Err(err))
	}

	// Initialize handlers
	locationHandler := handler.NewHandler(locationUC, configs)

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
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	health.RegisterEnhancedHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	locationHandler.RegisterRoutes(e)

	// Register component shutdown
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(locationUC.Stop)

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
