package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/internal/utils"
	"github.com/piresc/dispatch/services/match"
	wsHandler "github.com/piresc/dispatch/services/match/handler/websocket"
)

// Handler combines all handlers for the match service
type Handler struct {
	matchUC match.MatchUC
	wsDrv   *wsHandler.DriverSessionHandler
	cfg     *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(matchUC match.MatchUC, wsDrv *wsHandler.DriverSessionHandler, cfg *models.Config) *Handler {
	return &Handler{
		matchUC: matchUC,
		wsDrv:   wsDrv,
		cfg:     cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws/drivers", h.wsDrv.HandleWebSocket)

	internal := e.Group("/internal")
	internal.GET("/stats/match", func(c echo.Context) error {
		return utils.SuccessResponse(c, http.StatusOK, "Match statistics", h.matchUC.Stats())
	})
}
