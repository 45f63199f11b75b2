package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/services/match"
)

type matchUC struct {
	cfg  *models.Config
	repo match.MatchRepo
	gw   match.MatchGW

	mu    sync.Mutex
	stats models.MatchStats

	// now is swappable in tests
	now func() time.Time
}

// NewMatchUC creates the trip-offer matching use case
func NewMatchUC(cfg *models.Config, repo match.MatchRepo, gw match.MatchGW) match.MatchUC {
	return &matchUC{
		cfg:  cfg,
		repo: repo,
		gw:   gw,
		now:  time.Now,
	}
}

// ProcessOffer enforces the offer budget, finds candidates near the
// pickup point and pushes the offer with the remaining budget attached.
func (uc *matchUC) ProcessOffer(ctx context.Context, event *models.TripOfferEvent) (match.OfferOutcome, error) {
	uc.mu.Lock()
	uc.stats.Received++
	uc.stats.LastProcessedAt = uc.now()
	uc.mu.Unlock()

	ttl := time.Duration(uc.cfg.Match.OfferTTLMs) * time.Millisecond
	elapsed := uc.now().Sub(event.CreatedAt)

	// Queue lag can eat the whole budget; a stale offer is dropped, not
	// redelivered, so the passenger is not matched long after giving up.
	if elapsed > ttl {
		uc.mu.Lock()
		uc.stats.Expired++
		uc.mu.Unlock()

		logger.Warn("Trip offer expired before processing",
			logger.String("trip_id", event.TripID),
			logger.Duration("elapsed", elapsed),
			logger.Duration("ttl", ttl))
		return match.OutcomeExpired, nil
	}

	remaining := ttl - elapsed

	candidates, err := uc.repo.GetNearbyDrivers(ctx,
		event.PickupLat, event.PickupLng,
		uc.cfg.Match.SearchRadiusKm, uc.cfg.Match.SearchLimit)
	if err != nil {
		uc.mu.Lock()
		uc.stats.Errors++
		uc.mu.Unlock()
		return 0, err
	}

	offer := &models.TripOfferNotification{
		TripID:      event.TripID,
		Pickup:      event.Pickup,
		Destination: event.Destination,
		PickupLat:   event.PickupLat,
		PickupLng:   event.PickupLng,
		Fare:        event.Fare,
		TimeoutMs:   remaining.Milliseconds(),
	}

	notified := 0
	for _, candidate := range candidates {
		if candidate.Status != models.DriverStatusOnline || candidate.TripID != "" {
			continue
		}
		if uc.gw.NotifyDriver(candidate.DriverID, offer) {
			notified++
		}
	}

	if notified == 0 {
		uc.mu.Lock()
		uc.stats.Empty++
		uc.mu.Unlock()

		logger.Info("No available drivers for trip offer",
			logger.String("trip_id", event.TripID),
			logger.Int("candidates", len(candidates)),
			logger.Float64("radius_km", uc.cfg.Match.SearchRadiusKm))
		return match.OutcomeNoDrivers, nil
	}

	uc.mu.Lock()
	uc.stats.Matched++
	uc.mu.Unlock()

	logger.Info("Trip offer dispatched",
		logger.String("trip_id", event.TripID),
		logger.Int("notified", notified),
		logger.Int64("timeout_ms", offer.TimeoutMs))

	return match.OutcomeNotified, nil
}

// Stats returns a monitoring snapshot of the matching consumer
func (uc *matchUC) Stats() models.MatchStats {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.stats
}
