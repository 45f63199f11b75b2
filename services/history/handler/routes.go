package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/internal/utils"
	"github.com/piresc/dispatch/services/history"
)

// Handler aggregates the history service transports
type Handler struct {
	historyUC history.HistoryUC
	cfg       *models.Config
}

// NewHandler creates a new history service handler
func NewHandler(historyUC history.HistoryUC, cfg *models.Config) *Handler {
	return &Handler{
		historyUC: historyUC,
		cfg:       cfg,
	}
}

// RegisterRoutes registers the history service routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Internal routes for monitoring
	internal := e.Group("/internal")
	internal.GET("/stats/writer", h.writerStats)
}

func (h *Handler) writerStats(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "history writer stats", h.historyUC.Stats())
}
