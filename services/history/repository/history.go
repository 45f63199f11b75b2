package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/piresc/dispatch/internal/pkg/models"
)

// HistoryRepo handles location-history persistence
type HistoryRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(cfg *models.Config, db *sqlx.DB) *HistoryRepo {
	return &HistoryRepo{
		cfg: cfg,
		db:  db,
	}
}

// InsertBatch writes all events in one multi-row insert. The unique key on
// (driver_id, recorded_at) plus ON CONFLICT DO NOTHING makes redelivered
// batches a no-op, so the queue can deliver at-least-once safely.
func (r *HistoryRepo) InsertBatch(ctx context.Context, events []*models.LocationHistoryEvent) (int64, error) {
	if len(events) == 0 {
		return 0, nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO driver_location_history (driver_id, latitude, longitude, heading, speed, accuracy, trip_id, recorded_at) VALUES `)

	args := make([]interface{}, 0, len(events)*8)
	for i, e := range events {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 8
		sb.WriteString(fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8))
		args = append(args,
			e.DriverID,
			e.Latitude,
			e.Longitude,
			e.Heading,
			e.Speed,
			e.Accuracy,
			e.TripID,
			e.RecordedAt,
		)
	}
	sb.WriteString(` ON CONFLICT (driver_id, recorded_at) DO NOTHING`)

	result, err := r.db.ExecContext(ctx, sb.String(), args...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert history batch: %w", err)
	}
	inserted, err := result.RowsAffected()
	if err != nil {
		// driver without RowsAffected support, treat the whole batch as new
		return int64(len(events)), nil
	}
	return inserted, nil
}
