package match

import (
	"context"

	"github.com/piresc/dispatch/internal/pkg/models"
)

// MatchRepo defines the interface for match candidate lookups
type MatchRepo interface {
	// GetNearbyDrivers returns drivers within radiusKm of the pickup
	// point, nearest first, with their availability attached.
	GetNearbyDrivers(ctx context.Context, lat, lng, radiusKm float64, limit int) ([]*models.NearbyDriver, error)
}
