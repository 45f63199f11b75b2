package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/internal/utils"
	"github.com/piresc/dispatch/services/location"
)

// LocationHandler handles HTTP requests for driver location operations
type LocationHandler struct {
	locationUC location.LocationUC
}

// NewLocationHandler creates a new location HTTP handler
func NewLocationHandler(locationUC location.LocationUC) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
	}
}

// ownsDriverID verifies the authenticated caller is the driver it is
// writing. Drivers may only touch their own record; internal callers
// carry the admin role.
func ownsDriverID(c echo.Context, driverID string) bool {
	userID, _ := c.Get("user_id").(string)
	role, _ := c.Get("user_role").(string)
	if role == "admin" {
		return true
	}
	return userID != "" && userID == driverID
}

// UpdateLocation ingests a driver position. A body carrying a locations
// array is treated as a client-side batch for the same driver.
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	driverID := c.Param("id")
	if driverID == "" {
		return utils.BadRequestResponse(c, "driver_id is required")
	}
	if !ownsDriverID(c, driverID) {
		return utils.ForbiddenResponse(c, "cannot update another driver's location")
	}

	var req models.LocationUpdateRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind location request", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	ctx := c.Request().Context()

	var err error
	if len(req.Locations) > 0 {
		err = h.locationUC.IngestBatch(ctx, driverID, req.Locations)
	} else {
		err = h.locationUC.IngestUpdate(ctx, driverID, &req)
	}

	if err != nil {
		logger.Warn("Rejected location update",
			logger.String("driver_id", driverID),
			logger.ErrorField(err))
		return utils.BadRequestResponse(c, err.Error())
	}

	// Accepted into the buffer; storage happens on the next flush
	return utils.SuccessResponse(c, http.StatusAccepted, "Location update accepted", nil)
}

// GetLocation returns the live position record for a driver
func (h *LocationHandler) GetLocation(c echo.Context) error {
	driverID := c.Param("id")
	if driverID == "" {
		return utils.BadRequestResponse(c, "driver_id is required")
	}

	loc, err := h.locationUC.GetDriverLocation(c.Request().Context(), driverID)
	if err != nil {
		return utils.NotFoundResponse(c, "no location found for driver")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver location retrieved", loc)
}

// GetNearbyDrivers returns drivers near a point, nearest first
func (h *LocationHandler) GetNearbyDrivers(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "lat is required and must be a number")
	}

	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "lng is required and must be a number")
	}

	radiusKm, _ := strconv.ParseFloat(c.QueryParam("radius_km"), 64)
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	drivers, err := h.locationUC.GetNearbyDrivers(c.Request().Context(), lat, lng, radiusKm, limit)
	if err != nil {
		logger.Error("Failed to query nearby drivers", logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "failed to query nearby drivers")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby drivers retrieved", drivers)
}

// UpdateStatus updates a driver's availability
func (h *LocationHandler) UpdateStatus(c echo.Context) error {
	driverID := c.Param("id")
	if driverID == "" {
		return utils.BadRequestResponse(c, "driver_id is required")
	}
	if !ownsDriverID(c, driverID) {
		return utils.ForbiddenResponse(c, "cannot update another driver's status")
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.locationUC.SetDriverStatus(c.Request().Context(), driverID, req.Status); err != nil {
		logger.Error("Failed to update driver status",
			logger.String("driver_id", driverID),
			logger.ErrorField(err))
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver status updated", map[string]string{
		"driver_id": driverID,
		"status":    req.Status,
	})
}

// BufferStats exposes the coalescing buffer counters for monitoring
func (h *LocationHandler) BufferStats(c echo.Context) error {
	stats := h.locationUC.BufferStats()

	payload := map[string]interface{}{
		"buffer": stats,
	}
	if active, err := h.locationUC.ActiveDrivers(c.Request().Context()); err == nil {
		payload["active_drivers"] = active
	}

	return utils.SuccessResponse(c, http.StatusOK, "Buffer statistics", payload)
}
