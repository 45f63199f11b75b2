package location

import (
	"context"

	"github.com/piresc/dispatch/internal/pkg/models"
)

// LocationGW defines the interface for location gateway operations
type LocationGW interface {
	// PublishLocationHistory emits accepted updates to the history queue
	PublishLocationHistory(ctx context.Context, events []models.LocationHistoryEvent) error
}
