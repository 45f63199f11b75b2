package location

import (
	"context"

	"github.com/piresc/dispatch/internal/pkg/models"
)

// LocationRepo defines the interface for driver location data access
type LocationRepo interface {
	// ApplyUpdates writes a flushed batch of driver positions to the geo
	// index and metadata hashes in a single pipeline.
	ApplyUpdates(ctx context.Context, updates []*models.DriverLocation) error

	// GetLastPositions returns the delta-filter baselines for the given
	// drivers. Drivers with no baseline are absent from the result.
	GetLastPositions(ctx context.Context, driverIDs []string) (map[string]*models.LastPosition, error)

	// GetDriverLocation returns the live position record for a driver
	GetDriverLocation(ctx context.Context, driverID string) (*models.DriverLocation, error)

	// GetNearbyDrivers returns drivers within radiusKm of the point,
	// nearest first, capped at limit.
	GetNearbyDrivers(ctx context.Context, lat, lng, radiusKm float64, limit int) ([]*models.NearbyDriver, error)

	// SetDriverStatus updates a driver's availability. Going offline
	// removes the driver from the geo index.
	SetDriverStatus(ctx context.Context, driverID, status string) error

	// GetDriverStatus returns the stored availability for a driver
	GetDriverStatus(ctx context.Context, driverID string) (string, error)

	// ActiveDriverCount returns the number of drivers currently in the
	// geo index
	ActiveDriverCount(ctx context.Context) (int64, error)
}
