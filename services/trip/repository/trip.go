package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/piresc/dispatch/internal/pkg/models"
)

// TripRepo handles trip and outbox persistence
type TripRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(cfg *models.Config, db *sqlx.DB) *TripRepo {
	return &TripRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateTripWithOutbox inserts the trip and its offer event in one
// transaction so a committed trip always has a publishable event.
func (r *TripRepo) CreateTripWithOutbox(ctx context.Context, trip *models.Trip, event *models.OutboxEvent) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	tripQuery := `
		INSERT INTO trips (id, passenger_id, driver_id, pickup, destination, pickup_lat, pickup_lng, fare, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err = tx.ExecContext(ctx, tripQuery,
		trip.ID,
		trip.PassengerID,
		trip.DriverID,
		trip.Pickup,
		trip.Destination,
		trip.PickupLat,
		trip.PickupLng,
		trip.Fare,
		trip.Status,
		trip.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}

	outboxQuery := `
		INSERT INTO outbox_events (id, aggregate_type, aggregate_id, event_type, payload, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = tx.ExecContext(ctx, outboxQuery,
		event.ID,
		event.AggregateType,
		event.AggregateID,
		event.EventType,
		event.Payload,
		event.Status,
		event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert outbox event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetTripByID returns a trip by its identifier
func (r *TripRepo) GetTripByID(ctx context.Context, id string) (*models.Trip, error) {
	query := `
		SELECT id, passenger_id, driver_id, pickup, destination, pickup_lat, pickup_lng, fare, status, created_at
		FROM trips
		WHERE id = $1`

	var trip models.Trip
	if err := r.db.GetContext(ctx, &trip, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("trip not found: %s", id)
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return &trip, nil
}

// ClaimPendingEvents locks up to limit pending outbox rows with
// FOR UPDATE SKIP LOCKED so concurrent publishers never double-claim,
// hands them to fn, deletes the IDs fn reports as published and commits.
// Unreported rows keep their PENDING status and surface on the next poll.
func (r *TripRepo) ClaimPendingEvents(ctx context.Context, limit int, fn func(ctx context.Context, events []*models.OutboxEvent) []uuid.UUID) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	claimQuery := `
		SELECT id, aggregate_type, aggregate_id, event_type, payload, status, created_at
		FROM outbox_events
		WHERE status = $1
		ORDER BY created_at
		LIMIT $2
		FOR UPDATE SKIP LOCKED`

	var events []*models.OutboxEvent
	if err := tx.SelectContext(ctx, &events, claimQuery, models.OutboxStatusPending, limit); err != nil {
		return 0, fmt.Errorf("failed to claim outbox events: %w", err)
	}
	if len(events) == 0 {
		return 0, tx.Commit()
	}

	published := fn(ctx, events)
	if len(published) > 0 {
		deleteQuery, args, err := sqlx.In(`DELETE FROM outbox_events WHERE id IN (?)`, published)
		if err != nil {
			return 0, fmt.Errorf("failed to build delete query: %w", err)
		}
		deleteQuery = tx.Rebind(deleteQuery)
		if _, err := tx.ExecContext(ctx, deleteQuery, args...); err != nil {
			return 0, fmt.Errorf("failed to delete published events: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit claim: %w", err)
	}
	return len(published), nil
}

// CountPendingEvents returns the outbox backlog size
func (r *TripRepo) CountPendingEvents(ctx context.Context) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM outbox_events WHERE status = $1`
	if err := r.db.GetContext(ctx, &count, query, models.OutboxStatusPending); err != nil {
		return 0, fmt.Errorf("failed to count pending events: %w", err)
	}
	return count, nil
}
