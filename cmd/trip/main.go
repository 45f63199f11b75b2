package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/piresc/dispatch/internal/pkg/config"
	"github.com/piresc/dispatch/internal/pkg/constants"
	"github.com/piresc/dispatch/internal/pkg/database"
	"github.com/piresc/dispatch/internal/pkg/health"
	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/middleware"
	natspkg "github.com/piresc/dispatch/internal/pkg/nats"
	nrpkg "github.com/piresc/dispatch/internal/pkg/newrelic"
	"github.com/piresc/dispatch/internal/pkg/server"
	"github.com/piresc/dispatch/services/trip/gateway"
	"github.com/piresc/dispatch/services/trip/handler"
	"github.com/piresc/dispatch/services/trip/repository"
	"github.com/piresc/dispatch/services/trip/usecase"
)

func main() {
	appName := "trip-service"
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

	// Initialize NATS client
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Ensure the trip stream exists before the relay publishes to it
	streamCtx, streamCancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = natsClient.CreateStream(streamCtx, natspkg.StreamConfig{
		Name:      constants.TripStreamName,
		Subjects:  []string{constants.SubjectTripOffer},
		Retention: jetstream.LimitsPolicy,
		Storage:   jetstream.FileStorage,
		Replicas:  1,
		MaxAge:    24 * time.Hour,
	})
	streamCancel()
	if err != nil {
		zapLogger.Fatal("Failed to create trip stream", logger.Err(err))
	}

	// Initialize repository
	tripRepo := repository.NewTripRepository(configs, postgresClient.GetDB())

	// Initialize gateway
	tripGW := gateway.NewTripGW(natsClient)

	// Initialize usecase and start the outbox relay
	tripUC := usecase.NewTripUC(configs, tripRepo, tripGW)
	tripUC.StartOutboxRelay(context.Background())

	// Initialize handlers
	tripHandler := handler.NewHandler(tripUC, configs)

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
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterEnhancedHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	tripHandler.RegisterRoutes(e)

	// Register component shutdown
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(tripUC.StopOutboxRelay)

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
