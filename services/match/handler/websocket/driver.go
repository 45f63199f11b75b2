package websocket

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/dispatch/internal/pkg/constants"
	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/models"
	pkgws "github.com/piresc/dispatch/internal/pkg/websocket"
)

// DriverSessionHandler hosts driver WebSocket sessions. A registered
// session is the delivery channel for trip offers on this instance.
type DriverSessionHandler struct {
	manager *pkgws.Manager
}

// NewDriverSessionHandler creates a new driver session handler
func NewDriverSessionHandler(manager *pkgws.Manager) *DriverSessionHandler {
	return &DriverSessionHandler{
		manager: manager,
	}
}

// HandleWebSocket handles new driver WebSocket connections
func (h *DriverSessionHandler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, h.handleClientConnection)
}

// handleClientConnection registers the session and runs the read loop
func (h *DriverSessionHandler) handleClientConnection(client *models.WebSocketClient, ws *websocket.Conn) error {
	client.Conn = ws
	h.manager.AddClient(client)
	defer h.manager.RemoveClient(client.UserID)

	logger.Info("Driver session connected",
		logger.String("driver_id", client.UserID))
	defer logger.Info("Driver session closed",
		logger.String("driver_id", client.UserID))

	return h.messageLoop(client)
}

func (h *DriverSessionHandler) messageLoop(client *models.WebSocketClient) error {
	for {
		_, msg, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("Driver session read error",
					logger.String("driver_id", client.UserID),
					logger.Err(err))
			}
			return err
		}

		if err := h.handleMessage(client, msg); err != nil {
			logger.Warn("Error handling driver message",
				logger.String("driver_id", client.UserID),
				logger.Err(err))
		}
	}
}

func (h *DriverSessionHandler) handleMessage(client *models.WebSocketClient, msg []byte) error {
	var wsMsg models.WSMessage
	if err := json.Unmarshal(msg, &wsMsg); err != nil {
		return h.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "Invalid message format")
	}

	switch wsMsg.Event {
	case constants.EventPing:
		return h.manager.SendMessage(client.Conn, constants.EventPong, nil)
	default:
		return h.manager.SendErrorMessage(client.Conn, constants.ErrorInvalidFormat, "Unknown event type")
	}
}
