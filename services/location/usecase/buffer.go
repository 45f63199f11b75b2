package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/models"
)

// FlushFunc receives a drained batch of coalesced positions. A non-nil
// error requeues the batch into the buffer without clobbering entries
// that arrived while the flush was in flight.
type FlushFunc func(ctx context.Context, updates []*models.DriverLocation) error

// locationBuffer coalesces high-frequency position updates per driver so
// each flush writes at most one position per driver. Adds never block on
// storage; the flush loop drains the buffer on an interval and a size
// threshold forces an early drain.
type locationBuffer struct {
	mu      sync.Mutex
	entries map[string]*models.DriverLocation

	flushInterval  time.Duration
	flushThreshold int
	maxSize        int
	flushFn        FlushFunc

	flushSignal chan struct{}
	stopCh      chan struct{}
	doneCh      chan struct{}
	started     bool

	// stats, guarded by mu
	totalReceived     int64
	totalFlushed      int64
	totalCoalesced    int64
	totalOverflow     int64
	flushCount        int64
	lastFlushTime     time.Time
	lastFlushDuration time.Duration
}

func newLocationBuffer(cfg models.LocationConfig, flushFn FlushFunc) *locationBuffer {
	return &locationBuffer{
		entries:        make(map[string]*models.DriverLocation),
		flushInterval:  time.Duration(cfg.FlushIntervalMs) * time.Millisecond,
		flushThreshold: cfg.FlushThreshold,
		maxSize:        cfg.MaxBufferSize,
		flushFn:        flushFn,
		flushSignal:    make(chan struct{}, 1),
		stopCh:         make(chan struct{}),
		doneCh:         make(chan struct{}),
	}
}

// Add inserts or overwrites the buffered position for a driver. A newer
// update for an already-buffered driver replaces the old one, which is
// the entire point of the buffer.
func (b *locationBuffer) Add(update *models.DriverLocation) {
	b.mu.Lock()
	b.totalReceived++

	if _, exists := b.entries[update.DriverID]; exists {
		b.totalCoalesced++
		b.entries[update.DriverID] = update
	} else if b.maxSize > 0 && len(b.entries) >= b.maxSize {
		// At capacity with an unseen driver: drop and account for it
		b.totalOverflow++
		b.mu.Unlock()
		return
	} else {
		b.entries[update.DriverID] = update
	}

	size := len(b.entries)
	b.mu.Unlock()

	if b.flushThreshold > 0 && size >= b.flushThreshold {
		select {
		case b.flushSignal <- struct{}{}:
		default:
		}
	}
}

// Start launches the periodic flush loop
func (b *locationBuffer) Start(ctx context.Context) {
	b.mu.Lock()
	if b.started {
		b.mu.Unlock()
		return
	}
	b.started = true
	b.mu.Unlock()

	go b.flushLoop(ctx)
}

func (b *locationBuffer) flushLoop(ctx context.Context) {
	defer close(b.doneCh)

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			b.Flush(ctx)
		case <-b.flushSignal:
			b.Flush(ctx)
		case <-b.stopCh:
			// Final drain so nothing buffered is lost on shutdown
			b.Flush(ctx)
			return
		case <-ctx.Done():
			b.Flush(context.Background())
			return
		}
	}
}

// Stop drains the buffer and stops the flush loop
func (b *locationBuffer) Stop() {
	b.mu.Lock()
	if !b.started {
		b.mu.Unlock()
		return
	}
	b.started = false
	b.mu.Unlock()

	close(b.stopCh)
	<-b.doneCh
}

// Flush drains the buffer and hands the batch to the flush function. On
// failure entries are merged back, losing to any newer update that
// arrived during the flush.
func (b *locationBuffer) Flush(ctx context.Context) {
	b.mu.Lock()
	if len(b.entries) == 0 {
		b.mu.Unlock()
		return
	}

	batch := make([]*models.DriverLocation, 0, len(b.entries))
	for _, entry := range b.entries {
		batch = append(batch, entry)
	}
	b.entries = make(map[string]*models.DriverLocation)
	b.mu.Unlock()

	start := time.Now()
	err := b.flushFn(ctx, batch)
	duration := time.Since(start)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.flushCount++
	b.lastFlushTime = start
	b.lastFlushDuration = duration

	if err != nil {
		logger.Error("Location buffer flush failed, requeueing batch",
			logger.Int("batch_size", len(batch)),
			logger.Err(err))

		for _, entry := range batch {
			if _, exists := b.entries[entry.DriverID]; !exists {
				b.entries[entry.DriverID] = entry
			}
		}
		return
	}

	b.totalFlushed += int64(len(batch))
}

// Stats returns a monitoring snapshot
func (b *locationBuffer) Stats() models.BufferStats {
	b.mu.Lock()
	defer b.mu.Unlock()

	stats := models.BufferStats{
		CurrentSize:       len(b.entries),
		TotalReceived:     b.totalReceived,
		TotalFlushed:      b.totalFlushed,
		TotalCoalesced:    b.totalCoalesced,
		TotalOverflow:     b.totalOverflow,
		FlushCount:        b.flushCount,
		LastFlushTime:     b.lastFlushTime,
		LastFlushDuration: b.lastFlushDuration,
	}

	if b.totalReceived > 0 {
		stats.CoalescingRate = float64(b.totalCoalesced) / float64(b.totalReceived)
	}
	if b.flushCount > 0 {
		stats.AvgFlushSize = float64(b.totalFlushed) / float64(b.flushCount)
	}

	return stats
}
