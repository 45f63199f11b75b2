package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func testBufferConfig() models.LocationConfig {
	return models.LocationConfig{
		FlushIntervalMs: 100,
		FlushThreshold:  500,
		MaxBufferSize:   10000,
	}
}

func makeUpdate(driverID string, lat, lng float64) *models.DriverLocation {
	return &models.DriverLocation{
		DriverID:  driverID,
		Latitude:  lat,
		Longitude: lng,
		UpdatedAt: time.Now(),
	}
}

func TestBuffer_CoalescesSameDriver(t *testing.T) {
	var flushed [][]*models.DriverLocation
	buf := newLocationBuffer(testBufferConfig(), func(ctx context.Context, updates []*models.DriverLocation) error {
		flushed = append(flushed, updates)
		return nil
	})

	// Two updates for the same driver before any flush: the newer wins
	buf.Add(makeUpdate("driver-1", -6.2000, 106.8000))
	buf.Add(makeUpdate("driver-1", -6.2010, 106.8010))
	buf.Add(makeUpdate("driver-2", -6.3000, 106.9000))

	buf.Flush(context.Background())

	assert.Len(t, flushed, 1)
	assert.Len(t, flushed[0], 2)

	byDriver := map[string]*models.DriverLocation{}
	for _, u := range flushed[0] {
		byDriver[u.DriverID] = u
	}
	assert.InDelta(t, -6.2010, byDriver["driver-1"].Latitude, 1e-9)

	stats := buf.Stats()
	assert.Equal(t, int64(3), stats.TotalReceived)
	assert.Equal(t, int64(1), stats.TotalCoalesced)
	assert.Equal(t, int64(2), stats.TotalFlushed)
	assert.Equal(t, int64(1), stats.FlushCount)
	assert.InDelta(t, 1.0/3.0, stats.CoalescingRate, 1e-9)
}

func TestBuffer_EmptyFlushIsNoop(t *testing.T) {
	calls := 0
	buf := newLocationBuffer(testBufferConfig(), func(ctx context.Context, updates []*models.DriverLocation) error {
		calls++
		return nil
	})

	buf.Flush(context.Background())

	assert.Equal(t, 0, calls)
	assert.Equal(t, int64(0), buf.Stats().FlushCount)
}

func TestBuffer_RequeueOnFlushFailure(t *testing.T) {
	fail := true
	var lastBatch []*models.DriverLocation
	buf := newLocationBuffer(testBufferConfig(), func(ctx context.Context, updates []*models.DriverLocation) error {
		lastBatch = updates
		if fail {
			return errors.New("redis unavailable")
		}
		return nil
	})

	buf.Add(makeUpdate("driver-1", -6.2000, 106.8000))
	buf.Flush(context.Background())

	assert.Len(t, lastBatch, 1)
	assert.Equal(t, 1, buf.Stats().CurrentSize, "failed batch should be requeued")
	assert.Equal(t, int64(0), buf.Stats().TotalFlushed)

	fail = false
	buf.Flush(context.Background())

	assert.Equal(t, 0, buf.Stats().CurrentSize)
	assert.Equal(t, int64(1), buf.Stats().TotalFlushed)
}

func TestBuffer_RequeueDoesNotClobberNewerEntry(t *testing.T) {
	buf := newLocationBuffer(testBufferConfig(), nil)
	release := make(chan struct{})
	started := make(chan struct{})

	buf.flushFn = func(ctx context.Context, updates []*models.DriverLocation) error {
		close(started)
		<-release
		return errors.New("flush failed")
	}

	buf.Add(makeUpdate("driver-1", -6.2000, 106.8000))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		buf.Flush(context.Background())
	}()

	// A newer position arrives while the flush is in flight
	<-started
	buf.Add(makeUpdate("driver-1", -6.5000, 106.5000))
	close(release)
	wg.Wait()

	buf.mu.Lock()
	entry := buf.entries["driver-1"]
	buf.mu.Unlock()

	assert.NotNil(t, entry)
	assert.InDelta(t, -6.5000, entry.Latitude, 1e-9, "requeue must not overwrite the newer position")
}

func TestBuffer_OverflowDropsUnseenDrivers(t *testing.T) {
	cfg := testBufferConfig()
	cfg.MaxBufferSize = 2
	buf := newLocationBuffer(cfg, func(ctx context.Context, updates []*models.DriverLocation) error {
		return nil
	})

	buf.Add(makeUpdate("driver-1", 1, 1))
	buf.Add(makeUpdate("driver-2", 2, 2))
	buf.Add(makeUpdate("driver-3", 3, 3)) // over capacity, dropped
	buf.Add(makeUpdate("driver-1", 4, 4)) // existing driver still coalesces

	stats := buf.Stats()
	assert.Equal(t, 2, stats.CurrentSize)
	assert.Equal(t, int64(1), stats.TotalOverflow)
	assert.Equal(t, int64(1), stats.TotalCoalesced)
}

func TestBuffer_ThresholdSignalsFlush(t *testing.T) {
	cfg := testBufferConfig()
	cfg.FlushThreshold = 3
	buf := newLocationBuffer(cfg, func(ctx context.Context, updates []*models.DriverLocation) error {
		return nil
	})

	buf.Add(makeUpdate("driver-1", 1, 1))
	buf.Add(makeUpdate("driver-2", 2, 2))
	select {
	case <-buf.flushSignal:
		t.Fatal("flush should not be signaled below threshold")
	default:
	}

	buf.Add(makeUpdate("driver-3", 3, 3))
	select {
	case <-buf.flushSignal:
	default:
		t.Fatal("flush should be signaled at threshold")
	}
}

func TestBuffer_StopDrainsRemaining(t *testing.T) {
	var mu sync.Mutex
	total := 0
	buf := newLocationBuffer(testBufferConfig(), func(ctx context.Context, updates []*models.DriverLocation) error {
		mu.Lock()
		total += len(updates)
		mu.Unlock()
		return nil
	})

	buf.Start(context.Background())
	buf.Add(makeUpdate("driver-1", 1, 1))
	buf.Stop()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, total, "pending entries must be flushed on shutdown")
}
