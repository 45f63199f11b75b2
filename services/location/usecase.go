package location

import (
	"context"

	"github.com/piresc/dispatch/internal/pkg/models"
)

// LocationUC defines the interface for location business logic
type LocationUC interface {
	// IngestUpdate accepts a single driver position into the coalescing
	// buffer. It never blocks on storage.
	IngestUpdate(ctx context.Context, driverID string, req *models.LocationUpdateRequest) error

	// IngestBatch accepts a client-side batch of positions for one driver
	IngestBatch(ctx context.Context, driverID string, reqs []models.LocationUpdateRequest) error

	// GetDriverLocation returns the live position record for a driver
	GetDriverLocation(ctx context.Context, driverID string) (*models.DriverLocation, error)

	// GetNearbyDrivers returns drivers near a point, nearest first
	GetNearbyDrivers(ctx context.Context, lat, lng, radiusKm float64, limit int) ([]*models.NearbyDriver, error)

	// SetDriverStatus updates a driver's availability
	SetDriverStatus(ctx context.Context, driverID, status string) error

	// BufferStats returns a monitoring snapshot of the coalescing buffer
	BufferStats() models.BufferStats

	// ActiveDrivers returns the number of drivers in the geo index
	ActiveDrivers(ctx context.Context) (int64, error)

	// Start launches the periodic buffer flush loop
	Start(ctx context.Context) error

	// Stop flushes remaining entries and stops the flush loop
	Stop(ctx context.Context) error
}
