package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/services/history/repository"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func TestInsertBatch_MultiRowInsert(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewHistoryRepository(&models.Config{}, db)

	now := time.Now()
	events := []*models.LocationHistoryEvent{
		{DriverID: "driver-1", Latitude: -6.2, Longitude: 106.8, Heading: 90, Speed: 10, Accuracy: 5, RecordedAt: now},
		{DriverID: "driver-2", Latitude: -6.3, Longitude: 106.7, Heading: 180, Speed: 8, Accuracy: 4, TripID: "trip-1", RecordedAt: now},
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO driver_location_history")).
		WithArgs(
			"driver-1", -6.2, 106.8, 90, 10.0, 5.0, "", now,
			"driver-2", -6.3, 106.7, 180, 8.0, 4.0, "trip-1", now,
		).
		WillReturnResult(sqlmock.NewResult(0, 2))

	inserted, err := repo.InsertBatch(context.Background(), events)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertBatch_ConflictRowsAreSkipped(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewHistoryRepository(&models.Config{}, db)

	now := time.Now()
	events := []*models.LocationHistoryEvent{
		{DriverID: "driver-1", RecordedAt: now},
		{DriverID: "driver-1", RecordedAt: now}, // redelivered duplicate
	}

	// ON CONFLICT DO NOTHING: only one row affected
	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (driver_id, recorded_at) DO NOTHING")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	inserted, err := repo.InsertBatch(context.Background(), events)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertBatch_EmptyBatchSkipsDatabase(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewHistoryRepository(&models.Config{}, db)

	inserted, err := repo.InsertBatch(context.Background(), nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertBatch_DatabaseError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewHistoryRepository(&models.Config{}, db)

	events := []*models.LocationHistoryEvent{{DriverID: "driver-1", RecordedAt: time.Now()}}
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO driver_location_history")).
		WillReturnError(errors.New("connection refused"))

	inserted, err := repo.InsertBatch(context.Background(), events)
	assert.Error(t, err)
	assert.Equal(t, int64(0), inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
