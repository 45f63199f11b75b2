package match

import (
	"github.com/piresc/dispatch/internal/pkg/models"
)

// MatchGW defines the interface for driver-facing offer delivery
type MatchGW interface {
	// NotifyDriver pushes an offer to a driver session. Returns false
	// when the driver has no live session on this instance.
	NotifyDriver(driverID string, offer *models.TripOfferNotification) bool
}
