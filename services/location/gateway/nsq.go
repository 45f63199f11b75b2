package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/dispatch/internal/pkg/constants"
	"github.com/piresc/dispatch/internal/pkg/models"
	"github.com/piresc/dispatch/internal/pkg/nsq"
	"github.com/piresc/dispatch/internal/pkg/retry"
	"github.com/piresc/dispatch/services/location"
)

type locationGW struct {
	producer *nsq.Producer
	retrier  *retry.Retrier
}

// NewLocationGW creates a new location gateway publishing to NSQ
func NewLocationGW(producer *nsq.Producer) location.LocationGW {
	return &locationGW{
		producer: producer,
		// short retry budget, the caller treats history publishing as
		// best-effort and must not stall the flush loop
		retrier: retry.New(retry.Config{
			MaxRetries: 2,
			BaseDelay:  50 * time.Millisecond,
			MaxDelay:   500 * time.Millisecond,
			Multiplier: 2.0,
			Jitter:     true,
		}),
	}
}

// PublishLocationHistory emits each accepted update to the history topic
func (g *locationGW) PublishLocationHistory(ctx context.Context, events []models.LocationHistoryEvent) error {
	for i := range events {
		event := events[i]
		err := g.retrier.Execute(ctx, func(ctx context.Context) error {
			return g.producer.Publish(constants.TopicLocationHistory, event)
		})
		if err != nil {
			return fmt.Errorf("failed to publish history event for driver %s: %w",
				event.DriverID, err)
		}
	}
	return nil
}
