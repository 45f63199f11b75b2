package trip

import (
	"context"
	"time"

	"github.com/piresc/dispatch/internal/pkg/models"
)

// OutboxStats tracks the relay's publishing progress
type OutboxStats struct {
	Polls          int64     `json:"polls"`
	Claimed        int64     `json:"claimed"`
	Published      int64     `json:"published"`
	Failed         int64     `json:"failed"`
	LastPollAt     time.Time `json:"last_poll_at"`
	PendingBacklog int64     `json:"pending_backlog"`
}

// TripUC defines the interface for trip business logic
type TripUC interface {
	// CreateTrip persists a new trip request and stages its offer event
	// for publication
	CreateTrip(ctx context.Context, req *models.CreateTripRequest) (*models.Trip, error)

	// GetTrip returns a trip by ID
	GetTrip(ctx context.Context, id string) (*models.Trip, error)

	// StartOutboxRelay launches the background publisher loop
	StartOutboxRelay(ctx context.Context)

	// StopOutboxRelay stops the publisher loop and waits for the
	// in-flight poll to finish
	StopOutboxRelay(ctx context.Context) error

	// OutboxStats reports relay counters
	OutboxStats(ctx context.Context) OutboxStats
}
