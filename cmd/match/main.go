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
	wspkg "github.com/piresc/dispatch/internal/pkg/websocket"
	"github.com/piresc/dispatch/services/match/gateway"
	"github.com/piresc/dispatch/services/match/handler"
	natsHandler "github.com/piresc/dispatch/services/match/handler/nats"
	wsHandler "github.com/piresc/dispatch/services/match/handler/websocket"
	"github.com/piresc/dispatch/services/match/repository"
	"github.com/piresc/dispatch/services/match/usecase"
)

func main() {
	appName := "match-service"
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

	// Initialize NATS client
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Ensure the trip stream exists before the consumer binds to it
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

	// Initialize WebSocket manager for driver sessions
	wsManager := wspkg.NewManager(configs.JWT)

	// Initialize repository
	matchRepo := repository.NewMatchRepository(redisClient)

	// Initialize gateway
	matchGW := gateway.NewMatchGW(wsManager)

	// Initialize usecase
	matchUC := usecase.NewMatchUC(configs, matchRepo, matchGW)

	// Initialize and start the offer consumer
	offerConsumer := natsHandler.NewOfferConsumer(configs, matchUC, natsClient)
	if err := offerConsumer.Start(context.Background()); err != nil {
		zapLogger.Fatal("Failed to start offer consumer", logger.Err(err))
	}
	defer offerConsumer.Stop()

	// Initialize handlers
	driverWS := wsHandler.NewDriverSessionHandler(wsManager)
	matchHandler := handler.NewHandler(matchUC, driverWS, configs)

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
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterEnhancedHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	matchHandler.RegisterRoutes(e)

	// Start server and block until a shutdown signal arrives
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server shutdown with error", logger.Err(err))
	}
}
