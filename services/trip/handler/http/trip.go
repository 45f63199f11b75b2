package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/internal/utils"
	"github.com/piresc/dispatch/services/trip"
)

// TripHandler handles HTTP requests for trip operations
type TripHandler struct {
	tripUC trip.TripUC
}

// NewTripHandler creates a new trip HTTP handler
func NewTripHandler(tripUC trip.TripUC) *TripHandler {
	return &TripHandler{tripUC: tripUC}
}

// CreateTrip handles POST /trips
func (h *TripHandler) CreateTrip(c echo.Context) error {
	var req models.CreateTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload")
	}

	t, err := h.tripUC.CreateTrip(c.Request().Context(), &req)
	if err != nil {
		if isValidationError(err) {
			return utils.BadRequestResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, "failed to create trip")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "trip created", t)
}

// GetTrip handles GET /trips/:id
func (h *TripHandler) GetTrip(c echo.Context) error {
	id := c.Param("id")
	t, err := h.tripUC.GetTrip(c.Request().Context(), id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") || strings.Contains(err.Error(), "invalid trip id") {
			return utils.NotFoundResponse(c, "trip not found")
		}
		return utils.InternalServerErrorResponse(c, "failed to get trip")
	}
	return utils.SuccessResponse(c, http.StatusOK, "trip retrieved", t)
}

// OutboxStats handles GET /internal/stats/outbox
func (h *TripHandler) OutboxStats(c echo.Context) error {
	stats := h.tripUC.OutboxStats(c.Request().Context())
	return utils.SuccessResponse(c, http.StatusOK, "outbox stats", stats)
}

func isValidationError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "required") ||
		strings.Contains(msg, "out of range") ||
		strings.Contains(msg, "must not be negative")
}
