package trip

import (
	"context"

	"github.com/google/uuid"

	"github.com/piresc/dispatch/internal/pkg/models"
)

// TripRepo defines the interface for trip and outbox data access
type TripRepo interface {
	// CreateTripWithOutbox inserts the trip row and its TRIP_OFFER
	// outbox event in one transaction. Either both are durable or
	// neither is.
	CreateTripWithOutbox(ctx context.Context, trip *models.Trip, event *models.OutboxEvent) error

	// GetTripByID returns a trip by its identifier
	GetTripByID(ctx context.Context, id string) (*models.Trip, error)

	// ClaimPendingEvents locks up to limit pending outbox rows for this
	// publisher, skipping rows already claimed by a concurrent one. The
	// rows stay locked until fn returns; the IDs fn reports as published
	// are deleted before commit, the rest are released untouched for the
	// next poll.
	ClaimPendingEvents(ctx context.Context, limit int, fn func(ctx context.Context, events []*models.OutboxEvent) []uuid.UUID) (int, error)

	// CountPendingEvents returns the current outbox backlog
	CountPendingEvents(ctx context.Context) (int64, error)
}
