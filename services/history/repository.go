package history

import (
	"context"

	"github.com/piresc/dispatch/internal/pkg/models"
)

// HistoryRepo defines the interface for location-history persistence
type HistoryRepo interface {
	// InsertBatch writes one batch of history rows. Rows that already
	// exist (same driver and recorded_at) are silently skipped so
	// queue redelivery never duplicates history. Returns the number of
	// rows actually inserted.
	InsertBatch(ctx context.Context, events []*models.LocationHistoryEvent) (int64, error)
}
