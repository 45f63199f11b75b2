package usecase

import (
	"context"

	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/internal/utils"
)

// filterSignificant drops updates whose movement is below both the
// distance and heading thresholds. Drivers with no stored baseline are
// always accepted. When the baseline lookup fails the whole batch passes
// through unfiltered; a redundant write is cheaper than a lost position.
func (uc *locationUC) filterSignificant(ctx context.Context, updates []*models.DriverLocation) []*models.DriverLocation {
	driverIDs := make([]string, 0, len(updates))
	for _, update := range updates {
		driverIDs = append(driverIDs, update.DriverID)
	}

	baselines, err := uc.repo.GetLastPositions(ctx, driverIDs)
	if err != nil {
		logger.Warn("Delta baseline lookup failed, accepting full batch",
			logger.Int("batch_size", len(updates)),
			logger.Err(err))
		return updates
	}

	accepted := make([]*models.DriverLocation, 0, len(updates))
	for _, update := range updates {
		baseline, ok := baselines[update.DriverID]
		if !ok {
			// First update for this driver
			accepted = append(accepted, update)
			continue
		}

		if uc.isSignificantMove(update, baseline) {
			accepted = append(accepted, update)
		}
	}

	return accepted
}

// isSignificantMove reports whether an update moved far enough or turned
// sharply enough from the baseline to be worth writing.
func (uc *locationUC) isSignificantMove(update *models.DriverLocation, baseline *models.LastPosition) bool {
	distance := utils.DistanceMeters(
		utils.GeoPoint{Latitude: baseline.Latitude, Longitude: baseline.Longitude},
		utils.GeoPoint{Latitude: update.Latitude, Longitude: update.Longitude},
	)
	if distance >= uc.cfg.Location.DeltaDistanceMeters {
		return true
	}

	headingDelta := utils.HeadingDelta(float64(baseline.Heading), float64(update.Heading))
	return headingDelta >= uc.cfg.Location.DeltaHeadingDegrees
}
