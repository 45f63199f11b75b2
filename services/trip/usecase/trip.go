package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/services/trip"
)

// tripUC implements the trip.TripUC interface
type tripUC struct {
	cfg  *models.Config
	repo trip.TripRepo
	gw   trip.TripGW

	mu     sync.Mutex
	stats  trip.OutboxStats
	cancel context.CancelFunc
	doneCh chan struct{}
}

// NewTripUC creates a new trip usecase
func NewTripUC(cfg *models.Config, repo trip.TripRepo, gw trip.TripGW) trip.TripUC {
	return &tripUC{
		cfg:  cfg,
		repo: repo,
		gw:   gw,
	}
}

// CreateTrip validates the request, persists the trip in SEARCHING state and
// stages its TRIP_OFFER event in the same transaction.
func (uc *tripUC) CreateTrip(ctx context.Context, req *models.CreateTripRequest) (*models.Trip, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	now := time.Now()
	t := &models.Trip{
		ID:          uuid.New(),
		PassengerID: req.PassengerID,
		Pickup:      req.Pickup,
		Destination: req.Destination,
		PickupLat:   req.PickupLat,
		PickupLng:   req.PickupLng,
		Fare:        req.Fare,
		Status:      models.TripStatusSearching,
		CreatedAt:   now,
	}

	offer := models.TripOfferEvent{
		TripID:      t.ID.String(),
		PassengerID: t.PassengerID,
		Pickup:      t.Pickup,
		Destination: t.Destination,
		PickupLat:   t.PickupLat,
		PickupLng:   t.PickupLng,
		Fare:        t.Fare,
		CreatedAt:   now,
	}
	payload, err := json.Marshal(offer)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal offer payload: %w", err)
	}

	event := &models.OutboxEvent{
		ID:            uuid.New(),
		AggregateType: "trip",
		AggregateID:   t.ID.String(),
		EventType:     models.EventTypeTripOffer,
		Payload:       payload,
		Status:        models.OutboxStatusPending,
		CreatedAt:     now,
	}

	if err := uc.repo.CreateTripWithOutbox(ctx, t, event); err != nil {
		return nil, err
	}
	return t, nil
}

// GetTrip returns a trip by ID
func (uc *tripUC) GetTrip(ctx context.Context, id string) (*models.Trip, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid trip id: %s", id)
	}
	return uc.repo.GetTripByID(ctx, id)
}

func validateCreateRequest(req *models.CreateTripRequest) error {
	if req.PassengerID == "" {
		return fmt.Errorf("passenger_id is required")
	}
	if req.PickupLat < -90 || req.PickupLat > 90 {
		return fmt.Errorf("pickup_lat out of range: %f", req.PickupLat)
	}
	if req.PickupLng < -180 || req.PickupLng > 180 {
		return fmt.Errorf("pickup_lng out of range: %f", req.PickupLng)
	}
	if req.Fare < 0 {
		return fmt.Errorf("fare must not be negative")
	}
	return nil
}
