package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/piresc/dispatch/internal/pkg/middleware"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/services/trip"
	httpHandler "github.com/piresc/dispatch/services/trip/handler/http"
)

// Handler combines all handlers for the trip service
type Handler struct {
	tripHTTP *httpHandler.TripHandler
	cfg      *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(tripUC trip.TripUC, cfg *models.Config) *Handler {
	return &Handler{
		tripHTTP: httpHandler.NewTripHandler(tripUC),
		cfg:      cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	trips := e.Group("/trips", middleware.JWTAuthMiddleware(h.cfg.JWT))
	trips.POST("", h.tripHTTP.CreateTrip)
	trips.GET("/:id", h.tripHTTP.GetTrip)

	// Internal routes for monitoring
	internal := e.Group("/internal")
	internal.GET("/stats/outbox", h.tripHTTP.OutboxStats)
}
