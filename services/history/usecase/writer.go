package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/services/history"
)

const (
	// FailurePolicyDrop discards a batch after a failed insert.
	FailurePolicyDrop = "drop"
	// FailurePolicyRequeue merges a failed batch back for the next flush.
	FailurePolicyRequeue = "requeue"

	// staleThreshold marks the writer unhealthy when pending work has not
	// flushed successfully for this long.
	staleThreshold = 5 * time.Minute
	// errorRateThreshold marks the writer unhealthy when this share of
	// recent flushes failed.
	errorRateThreshold = 0.10
	// outcomeWindow is how many recent flush outcomes feed the error rate.
	outcomeWindow = 50
)

// historyUC implements the history.HistoryUC interface
type historyUC struct {
	cfg  *models.Config
	repo history.HistoryRepo

	mu          sync.Mutex
	pending     []*models.LocationHistoryEvent
	stats       history.WriterStats
	lastSuccess time.Time
	outcomes    []bool // ring of recent flush results, true = success
	outcomeIdx  int

	cancel context.CancelFunc
	doneCh chan struct{}
}

// NewHistoryUC creates a new history batch writer
func NewHistoryUC(cfg *models.Config, repo history.HistoryRepo) history.HistoryUC {
	return &historyUC{
		cfg:         cfg,
		repo:        repo,
		pending:     make([]*models.LocationHistoryEvent, 0, cfg.History.BatchSize),
		lastSuccess: time.Now(),
	}
}

// Enqueue adds an event to the pending batch and flushes inline once the
// batch is full. The inline flush runs on the consumer goroutine, so a slow
// database naturally slows consumption instead of growing memory.
func (uc *historyUC) Enqueue(ctx context.Context, event *models.LocationHistoryEvent) error {
	uc.mu.Lock()
	uc.pending = append(uc.pending, event)
	uc.stats.Enqueued++
	full := len(uc.pending) >= uc.cfg.History.BatchSize
	uc.mu.Unlock()

	if full {
		return uc.flush(ctx)
	}
	return nil
}

// Start launches the interval flusher
func (uc *historyUC) Start(ctx context.Context) {
	flushCtx, cancel := context.WithCancel(ctx)
	uc.mu.Lock()
	uc.cancel = cancel
	uc.doneCh = make(chan struct{})
	uc.mu.Unlock()

	go uc.flushLoop(flushCtx)
	logger.Info("History writer started",
		logger.Int("batch_size", uc.cfg.History.BatchSize),
		logger.Int("flush_interval_ms", uc.cfg.History.FlushIntervalMs),
		logger.String("failure_policy", uc.cfg.History.FailurePolicy),
	)
}

// Stop flushes remaining events and stops the flusher
func (uc *historyUC) Stop(ctx context.Context) error {
	uc.mu.Lock()
	cancel := uc.cancel
	done := uc.doneCh
	uc.mu.Unlock()

	if cancel != nil {
		cancel()
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return uc.flush(ctx)
}

func (uc *historyUC) flushLoop(ctx context.Context) {
	defer close(uc.doneCh)

	interval := time.Duration(uc.cfg.History.FlushIntervalMs) * time.Millisecond
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := uc.flush(context.Background()); err != nil {
				logger.Warn("History flush failed", logger.Err(err))
			}
		}
	}
}

// flush writes the pending batch. On failure the configured policy decides:
// drop discards the batch, requeue puts it back in front of newer events.
func (uc *historyUC) flush(ctx context.Context) error {
	uc.mu.Lock()
	if len(uc.pending) == 0 {
		uc.mu.Unlock()
		return nil
	}
	batch := uc.pending
	uc.pending = make([]*models.LocationHistoryEvent, 0, uc.cfg.History.BatchSize)
	uc.mu.Unlock()

	inserted, err := uc.repo.InsertBatch(ctx, batch)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.stats.FlushCount++
	uc.stats.LastFlushAt = time.Now()
	uc.recordOutcome(err == nil)

	if err != nil {
		uc.stats.FailedFlush++
		if uc.cfg.History.FailurePolicy == FailurePolicyRequeue {
			uc.pending = append(batch, uc.pending...)
			uc.stats.Requeued += int64(len(batch))
		} else {
			uc.stats.Dropped += int64(len(batch))
		}
		return fmt.Errorf("failed to flush %d history events: %w", len(batch), err)
	}

	uc.lastSuccess = time.Now()
	uc.stats.Inserted += inserted
	uc.stats.Deduplicated += int64(len(batch)) - inserted
	return nil
}

func (uc *historyUC) recordOutcome(ok bool) {
	if len(uc.outcomes) < outcomeWindow {
		uc.outcomes = append(uc.outcomes, ok)
		return
	}
	uc.outcomes[uc.outcomeIdx] = ok
	uc.outcomeIdx = (uc.outcomeIdx + 1) % outcomeWindow
}

// Stats reports writer counters
func (uc *historyUC) Stats() history.WriterStats {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	stats := uc.stats
	stats.PendingSize = len(uc.pending)
	return stats
}

// Healthy reports an error when the writer is stale or failing too often
func (uc *historyUC) Healthy() error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if len(uc.pending) > 0 && time.Since(uc.lastSuccess) > staleThreshold {
		return fmt.Errorf("no successful flush for %s with %d events pending", time.Since(uc.lastSuccess).Round(time.Second), len(uc.pending))
	}

	if len(uc.outcomes) > 0 {
		failed := 0
		for _, ok := range uc.outcomes {
			if !ok {
				failed++
			}
		}
		rate := float64(failed) / float64(len(uc.outcomes))
		if rate > errorRateThreshold {
			return fmt.Errorf("flush error rate %.0f%% over last %d flushes", rate*100, len(uc.outcomes))
		}
	}
	return nil
}
