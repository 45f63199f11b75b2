package repository_test

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/services/trip/repository"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func sampleTripAndEvent() (*models.Trip, *models.OutboxEvent) {
	now := time.Now()
	trip := &models.Trip{
		ID:          uuid.New(),
		PassengerID: "passenger-1",
		Pickup:      "Jl. Sudirman 10",
		Destination: "Jl. Thamrin 5",
		PickupLat:   -6.2,
		PickupLng:   106.8,
		Fare:        45000,
		Status:      models.TripStatusSearching,
		CreatedAt:   now,
	}
	payload, _ := json.Marshal(models.TripOfferEvent{TripID: trip.ID.String(), CreatedAt: now})
	event := &models.OutboxEvent{
		ID:            uuid.New(),
		AggregateType: "trip",
		AggregateID:   trip.ID.String(),
		EventType:     models.EventTypeTripOffer,
		Payload:       payload,
		Status:        models.OutboxStatusPending,
		CreatedAt:     now,
	}
	return trip, event
}

func TestCreateTripWithOutbox_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(&models.Config{}, db)

	trip, event := sampleTripAndEvent()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO trips")).
		WithArgs(trip.ID, trip.PassengerID, trip.DriverID, trip.Pickup, trip.Destination,
			trip.PickupLat, trip.PickupLng, trip.Fare, trip.Status, trip.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_events")).
		WithArgs(event.ID, event.AggregateType, event.AggregateID, event.EventType,
			[]byte(event.Payload), event.Status, event.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.CreateTripWithOutbox(context.Background(), trip, event)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTripWithOutbox_OutboxInsertFailureRollsBack(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(&models.Config{}, db)

	trip, event := sampleTripAndEvent()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO trips")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_events")).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.CreateTripWithOutbox(context.Background(), trip, event)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert outbox event")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimPendingEvents_DeletesOnlyPublished(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(&models.Config{}, db)

	id1 := uuid.New()
	id2 := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "aggregate_type", "aggregate_id", "event_type", "payload", "status", "created_at"}).
		AddRow(id1, "trip", "trip-1", models.EventTypeTripOffer, []byte(`{}`), models.OutboxStatusPending, now).
		AddRow(id2, "trip", "trip-2", models.EventTypeTripOffer, []byte(`{}`), models.OutboxStatusPending, now)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE SKIP LOCKED")).
		WithArgs(models.OutboxStatusPending, 50).
		WillReturnRows(rows)
	// only id1 gets deleted, id2 failed to publish
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM outbox_events WHERE id IN")).
		WithArgs(id1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	published, err := repo.ClaimPendingEvents(context.Background(), 50, func(ctx context.Context, events []*models.OutboxEvent) []uuid.UUID {
		assert.Len(t, events, 2)
		return []uuid.UUID{id1}
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, published)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimPendingEvents_EmptyBatchSkipsCallback(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(&models.Config{}, db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE SKIP LOCKED")).
		WithArgs(models.OutboxStatusPending, 50).
		WillReturnRows(sqlmock.NewRows([]string{"id", "aggregate_type", "aggregate_id", "event_type", "payload", "status", "created_at"}))
	mock.ExpectCommit()

	called := false
	published, err := repo.ClaimPendingEvents(context.Background(), 50, func(ctx context.Context, events []*models.OutboxEvent) []uuid.UUID {
		called = true
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 0, published)
	assert.False(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimPendingEvents_NothingPublishedRollsForwardWithoutDelete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(&models.Config{}, db)

	id1 := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "aggregate_type", "aggregate_id", "event_type", "payload", "status", "created_at"}).
		AddRow(id1, "trip", "trip-1", models.EventTypeTripOffer, []byte(`{}`), models.OutboxStatusPending, time.Now())

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE SKIP LOCKED")).
		WithArgs(models.OutboxStatusPending, 50).
		WillReturnRows(rows)
	mock.ExpectCommit()

	published, err := repo.ClaimPendingEvents(context.Background(), 50, func(ctx context.Context, events []*models.OutboxEvent) []uuid.UUID {
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 0, published)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTripByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(&models.Config{}, db)

	id := uuid.New().String()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, passenger_id, driver_id")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	trip, err := repo.GetTripByID(context.Background(), id)
	assert.Error(t, err)
	assert.Nil(t, trip)
	assert.Contains(t, err.Error(), "trip not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountPendingEvents(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTripRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM outbox_events")).
		WithArgs(models.OutboxStatusPending).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountPendingEvents(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(7), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
