package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/services/location"
)

type locationUC struct {
	cfg    *models.Config
	repo   location.LocationRepo
	gw     location.LocationGW
	buffer *locationBuffer
}

// NewLocationUC creates the location use case with its coalescing buffer
func NewLocationUC(cfg *models.Config, repo location.LocationRepo, gw location.LocationGW) location.LocationUC {
	uc := &locationUC{
		cfg:  cfg,
		repo: repo,
		gw:   gw,
	}
	uc.buffer = newLocationBuffer(cfg.Location, uc.flushBatch)
	return uc
}

// Start launches the buffer flush loop
func (uc *locationUC) Start(ctx context.Context) error {
	uc.buffer.Start(ctx)
	logger.Info("Location ingest started",
		logger.Int("flush_interval_ms", uc.cfg.Location.FlushIntervalMs),
		logger.Int("flush_threshold", uc.cfg.Location.FlushThreshold))
	return nil
}

// Stop drains and stops the buffer
func (uc *locationUC) Stop(ctx context.Context) error {
	uc.buffer.Stop()
	logger.Info("Location ingest stopped")
	return nil
}

// IngestUpdate validates a single position and hands it to the buffer
func (uc *locationUC) IngestUpdate(ctx context.Context, driverID string, req *models.LocationUpdateRequest) error {
	update, err := buildUpdate(driverID, req)
	if err != nil {
		return err
	}

	uc.buffer.Add(update)
	return nil
}

// IngestBatch accepts a client-side batch for one driver. Entries are
// applied in order so the last one wins in the buffer.
func (uc *locationUC) IngestBatch(ctx context.Context, driverID string, reqs []models.LocationUpdateRequest) error {
	if len(reqs) == 0 {
		return fmt.Errorf("empty location batch")
	}

	for i := range reqs {
		update, err := buildUpdate(driverID, &reqs[i])
		if err != nil {
			return err
		}
		uc.buffer.Add(update)
	}

	return nil
}

func buildUpdate(driverID string, req *models.LocationUpdateRequest) (*models.DriverLocation, error) {
	if driverID == "" {
		return nil, fmt.Errorf("driver ID is required")
	}
	if req.Latitude == nil || req.Longitude == nil {
		return nil, fmt.Errorf("latitude and longitude are required")
	}

	lat, lng := *req.Latitude, *req.Longitude
	if lat < -90 || lat > 90 {
		return nil, fmt.Errorf("latitude out of range: %f", lat)
	}
	if lng < -180 || lng > 180 {
		return nil, fmt.Errorf("longitude out of range: %f", lng)
	}
	if req.Heading < 0 || req.Heading >= 360 {
		return nil, fmt.Errorf("heading out of range: %d", req.Heading)
	}

	return &models.DriverLocation{
		DriverID:  driverID,
		Latitude:  lat,
		Longitude: lng,
		Heading:   req.Heading,
		Speed:     req.Speed,
		Accuracy:  req.Accuracy,
		TripID:    req.TripID,
		UpdatedAt: time.Now(),
	}, nil
}

// flushBatch is the buffer's flush function: filter for significance,
// write survivors to the geo index and emit them to the history queue.
func (uc *locationUC) flushBatch(ctx context.Context, updates []*models.DriverLocation) error {
	accepted := uc.filterSignificant(ctx, updates)
	if len(accepted) == 0 {
		return nil
	}

	if err := uc.repo.ApplyUpdates(ctx, accepted); err != nil {
		return fmt.Errorf("failed to apply batch: %w", err)
	}

	events := make([]models.LocationHistoryEvent, 0, len(accepted))
	for _, update := range accepted {
		events = append(events, models.LocationHistoryEvent{
			DriverID:   update.DriverID,
			Latitude:   update.Latitude,
			Longitude:  update.Longitude,
			Heading:    update.Heading,
			Speed:      update.Speed,
			Accuracy:   update.Accuracy,
			TripID:     update.TripID,
			RecordedAt: update.UpdatedAt,
		})
	}

	// History is best effort: the live index already has the positions
	// and the history writer is idempotent on redelivery.
	if err := uc.gw.PublishLocationHistory(ctx, events); err != nil {
		logger.Warn("Failed to publish location history events",
			logger.Int("count", len(events)),
			logger.Err(err))
	}

	logger.Debug("Flushed location batch",
		logger.Int("received", len(updates)),
		logger.Int("accepted", len(accepted)))

	return nil
}

// GetDriverLocation returns the live position record for a driver
func (uc *locationUC) GetDriverLocation(ctx context.Context, driverID string) (*models.DriverLocation, error) {
	return uc.repo.GetDriverLocation(ctx, driverID)
}

// GetNearbyDrivers returns drivers near a point, nearest first
func (uc *locationUC) GetNearbyDrivers(ctx context.Context, lat, lng, radiusKm float64, limit int) ([]*models.NearbyDriver, error) {
	if radiusKm <= 0 {
		radiusKm = uc.cfg.Match.SearchRadiusKm
	}
	if limit <= 0 {
		limit = uc.cfg.Match.SearchLimit
	}
	return uc.repo.GetNearbyDrivers(ctx, lat, lng, radiusKm, limit)
}

// SetDriverStatus updates a driver's availability
func (uc *locationUC) SetDriverStatus(ctx context.Context, driverID, status string) error {
	switch status {
	case models.DriverStatusOnline, models.DriverStatusOffline, models.DriverStatusOnTrip:
	default:
		return fmt.Errorf("invalid driver status: %s", status)
	}

	if err := uc.repo.SetDriverStatus(ctx, driverID, status); err != nil {
		return err
	}

	logger.Info("Driver status updated",
		logger.String("driver_id", driverID),
		logger.String("status", status))
	return nil
}

// BufferStats returns a monitoring snapshot of the coalescing buffer
func (uc *locationUC) BufferStats() models.BufferStats {
	return uc.buffer.Stats()
}

// ActiveDrivers returns the number of drivers in the geo index
func (uc *locationUC) ActiveDrivers(ctx context.Context) (int64, error) {
	return uc.repo.ActiveDriverCount(ctx)
}
