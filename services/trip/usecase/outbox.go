package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/services/trip"
)

// StartOutboxRelay launches the background loop that drains the outbox table
// to the stream. Safe to call once per process.
func (uc *tripUC) StartOutboxRelay(ctx context.Context) {
	relayCtx, cancel := context.WithCancel(ctx)
	uc.mu.Lock()
	uc.cancel = cancel
	uc.doneCh = make(chan struct{})
	uc.mu.Unlock()

	go uc.relayLoop(relayCtx)
	logger.Info("Outbox relay started",
		logger.Int("poll_interval_ms", uc.cfg.Outbox.PollIntervalMs),
		logger.Int("batch_size", uc.cfg.Outbox.BatchSize),
	)
}

// StopOutboxRelay stops the relay and waits for the in-flight poll
func (uc *tripUC) StopOutboxRelay(ctx context.Context) error {
	uc.mu.Lock()
	cancel := uc.cancel
	done := uc.doneCh
	uc.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (uc *tripUC) relayLoop(ctx context.Context) {
	defer close(uc.doneCh)

	interval := time.Duration(uc.cfg.Outbox.PollIntervalMs) * time.Millisecond
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			uc.drainOnce(ctx)
		}
	}
}

// drainOnce claims one batch of pending events, publishes each and deletes
// only the ones that made it to the stream. Failed rows stay PENDING and are
// retried next poll; the message ID makes the retry a stream-side no-op when
// the first publish actually landed.
func (uc *tripUC) drainOnce(ctx context.Context) {
	uc.mu.Lock()
	uc.stats.Polls++
	uc.stats.LastPollAt = time.Now()
	uc.mu.Unlock()

	published, err := uc.repo.ClaimPendingEvents(ctx, uc.cfg.Outbox.BatchSize, func(ctx context.Context, events []*models.OutboxEvent) []uuid.UUID {
		uc.mu.Lock()
		uc.stats.Claimed += int64(len(events))
		uc.mu.Unlock()

		done := make([]uuid.UUID, 0, len(events))
		for _, event := range events {
			if err := uc.gw.PublishOfferEvent(ctx, event); err != nil {
				uc.mu.Lock()
				uc.stats.Failed++
				uc.mu.Unlock()
				logger.WarnCtx(ctx, "Failed to publish outbox event, leaving pending",
					logger.String("event_id", event.ID.String()),
					logger.String("event_type", event.EventType),
					logger.Err(err),
				)
				continue
			}
			done = append(done, event.ID)
		}
		return done
	})
	if err != nil {
		logger.ErrorCtx(ctx, "Outbox poll failed", logger.Err(err))
		return
	}

	if published > 0 {
		uc.mu.Lock()
		uc.stats.Published += int64(published)
		uc.mu.Unlock()
		logger.DebugCtx(ctx, "Outbox batch published", logger.Int("count", published))
	}
}

// OutboxStats reports relay counters and the current backlog
func (uc *tripUC) OutboxStats(ctx context.Context) trip.OutboxStats {
	uc.mu.Lock()
	stats := uc.stats
	uc.mu.Unlock()

	if backlog, err := uc.repo.CountPendingEvents(ctx); err == nil {
		stats.PendingBacklog = backlog
	}
	return stats
}
