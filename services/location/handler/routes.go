package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/dispatch/internal/pkg/middleware"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/services/location"
	httpHandler "github.com/piresc/dispatch/services/location/handler/http"
)

// Handler combines all handlers for the location service
type Handler struct {
	locationHTTP *httpHandler.LocationHandler
	cfg          *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(locationUC location.LocationUC, cfg *models.Config) *Handler {
	return &Handler{
		locationHTTP: httpHandler.NewLocationHandler(locationUC),
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	drivers := e.Group("/drivers", middleware.JWTAuthMiddleware(h.cfg.JWT))
	drivers.POST("/:id/location", h.locationHTTP.UpdateLocation)
	drivers.GET("/:id/location", h.locationHTTP.GetLocation)
	drivers.PUT("/:id/status", h.locationHTTP.UpdateStatus)
	drivers.GET("/nearby", h.locationHTTP.GetNearbyDrivers)

	// Internal routes for monitoring and service-to-service calls
	internal := e.Group("/internal")
	internal.GET("/stats/buffer", h.locationHTTP.BufferStats)
}
