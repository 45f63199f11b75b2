package nsq

import (
	"context"
	"fmt"

	"github.com/piresc/dispatch/internal/pkg/constants"
	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/models"
	nsqpkg "github.com/piresc/dispatch/internal/pkg/nsq"
	"github.com/piresc/dispatch/services/history"
)

// HistoryConsumer consumes location-history events off the queue and feeds
// the batch writer.
type HistoryConsumer struct {
	cfg       *models.Config
	historyUC history.HistoryUC
	consumer  *nsqpkg.Consumer
}

// NewHistoryConsumer creates a new history queue consumer
func NewHistoryConsumer(cfg *models.Config, historyUC history.HistoryUC) *HistoryConsumer {
	return &HistoryConsumer{
		cfg:       cfg,
		historyUC: historyUC,
	}
}

// Start connects to the queue and begins consuming
func (h *HistoryConsumer) Start(ctx context.Context) error {
	consumer, err := nsqpkg.NewConsumer(
		constants.TopicLocationHistory,
		constants.ChannelHistoryWriter,
		h.cfg.NSQ.NSQDAddress,
		h.cfg.NSQ.MaxInFlight,
		h.handleMessage,
	)
	if err != nil {
		return fmt.Errorf("failed to start history consumer: %w", err)
	}
	h.consumer = consumer

	if h.cfg.NSQ.LookupdAddress != "" {
		if err := consumer.ConnectToLookupd([]string{h.cfg.NSQ.LookupdAddress}); err != nil {
			logger.Warn("Failed to connect to nsqlookupd, staying on direct nsqd connection",
				logger.String("lookupd", h.cfg.NSQ.LookupdAddress),
				logger.Err(err))
		}
	}

	logger.Info("History consumer started",
		logger.String("topic", constants.TopicLocationHistory),
		logger.String("channel", constants.ChannelHistoryWriter),
	)
	return nil
}

// handleMessage parses one event and hands it to the writer. Parse failures
// are dropped: a malformed payload never parses, requeueing cannot help.
// A flush failure is owned by the writer's failure policy, so the message is
// finished either way; the inline flush still slows consumption while the
// database is struggling.
func (h *HistoryConsumer) handleMessage(message []byte) error {
	var event models.LocationHistoryEvent
	if err := nsqpkg.UnmarshalMessage(message, &event); err != nil {
		logger.Warn("Dropping malformed history event", logger.Err(err))
		return nil
	}
	if event.DriverID == "" {
		logger.Warn("Dropping history event without driver_id")
		return nil
	}
	if err := h.historyUC.Enqueue(context.Background(), &event); err != nil {
		logger.Warn("History batch flush failed", logger.Err(err))
	}
	return nil
}

// Stop stops the consumer
func (h *HistoryConsumer) Stop() {
	if h.consumer != nil {
		h.consumer.Stop()
	}
}
