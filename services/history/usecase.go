package history

import (
	"context"
	"time"

	"github.com/piresc/dispatch/internal/pkg/models"
)

// WriterStats is the monitoring snapshot exposed by the batch writer.
type WriterStats struct {
	Enqueued     int64     `json:"enqueued"`
	Inserted     int64     `json:"inserted"`
	Deduplicated int64     `json:"deduplicated"`
	Dropped      int64     `json:"dropped"`
	Requeued     int64     `json:"requeued"`
	FlushCount   int64     `json:"flush_count"`
	FailedFlush  int64     `json:"failed_flush"`
	LastFlushAt  time.Time `json:"last_flush_at"`
	PendingSize  int       `json:"pending_size"`
}

// HistoryUC defines the interface for the location-history batch writer
type HistoryUC interface {
	// Enqueue adds one event to the pending batch. A full batch is
	// flushed inline so the queue consumer applies backpressure.
	Enqueue(ctx context.Context, event *models.LocationHistoryEvent) error

	// Start launches the interval flusher
	Start(ctx context.Context)

	// Stop flushes what is pending and stops the flusher
	Stop(ctx context.Context) error

	// Stats reports writer counters
	Stats() WriterStats

	// Healthy reports false when the writer looks stuck: no successful
	// flush for the staleness window while work is pending, or the
	// recent flush error rate is too high.
	Healthy() error
}
