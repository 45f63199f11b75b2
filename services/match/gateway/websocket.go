package gateway

import (
	"github.com/piresc/dispatch/internal/pkg/constants"
	"github.com/piresc/dispatch/internal/pkg/models"
	wspkg "github.com/piresc/dispatch/internal/pkg/websocket"
	"github.com/piresc/dispatch/services/match"
)

type matchGW struct {
	manager *wspkg.Manager
}

// NewMatchGW creates a gateway delivering offers over driver WebSocket
// sessions hosted by this instance.
func NewMatchGW(manager *wspkg.Manager) match.MatchGW {
	return &matchGW{
		manager: manager,
	}
}

// NotifyDriver pushes a trip offer event to the driver's session
func (g *matchGW) NotifyDriver(driverID string, offer *models.TripOfferNotification) bool {
	return g.manager.NotifyClient(driverID, constants.EventTripOffer, offer)
}
