package nats

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/piresc/dispatch/internal/pkg/constants"
	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/models"
	natspkg "github.com/piresc/dispatch/internal/pkg/nats"
	"github.com/piresc/dispatch/services/match"
)

// OfferConsumer pulls trip offers from JetStream and drives them through
// the matching use case. The AckWait lease acts as the visibility
// timeout: a crash mid-offer redelivers the message to another instance.
type OfferConsumer struct {
	cfg      *models.Config
	matchUC  match.MatchUC
	client   *natspkg.Client
	consumer *natspkg.Consumer

	cancel context.CancelFunc
	doneCh chan struct{}
}

// NewOfferConsumer creates the trip-offer pull consumer
func NewOfferConsumer(cfg *models.Config, matchUC match.MatchUC, client *natspkg.Client) *OfferConsumer {
	return &OfferConsumer{
		cfg:     cfg,
		matchUC: matchUC,
		client:  client,
		doneCh:  make(chan struct{}),
	}
}

// Start creates the durable consumer and launches the fetch loop
func (c *OfferConsumer) Start(ctx context.Context) error {
	consumer, err := natspkg.NewJetStreamPullConsumer(c.client, natspkg.ConsumerConfig{
		StreamName:    constants.TripStreamName,
		ConsumerName:  constants.TripOfferConsumerName,
		FilterSubject: constants.SubjectTripOffer,
		DeliverPolicy: jetstream.DeliverAllPolicy,
		AckWait:       time.Duration(c.cfg.Match.VisibilityTimeout) * time.Second,
		MaxDeliver:    3,
		ReplayPolicy:  jetstream.ReplayInstantPolicy,
		MaxAckPending: 1000,
	})
	if err != nil {
		return err
	}
	c.consumer = consumer

	loopCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	go c.fetchLoop(loopCtx)

	logger.Info("Trip offer consumer started",
		logger.String("stream", constants.TripStreamName),
		logger.String("consumer", constants.TripOfferConsumerName))
	return nil
}

func (c *OfferConsumer) fetchLoop(ctx context.Context) {
	defer close(c.doneCh)

	batch := c.cfg.Match.FetchBatch
	maxWait := time.Duration(c.cfg.Match.FetchMaxWaitSec) * time.Second

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		msgs, err := c.consumer.Fetch(batch, maxWait)
		if err != nil {
			logger.Warn("Trip offer fetch failed", logger.Err(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Second):
			}
			continue
		}

		for _, msg := range msgs {
			c.handleMessage(ctx, msg)
		}
	}
}

// handleMessage maps use case dispositions onto JetStream acks: terminal
// outcomes ack, infrastructure failures nak for redelivery.
func (c *OfferConsumer) handleMessage(ctx context.Context, msg jetstream.Msg) {
	var event models.TripOfferEvent
	if err := json.Unmarshal(msg.Data(), &event); err != nil {
		logger.Error("Dropping malformed trip offer",
			logger.String("subject", msg.Subject()),
			logger.Err(err))
		// Malformed payloads never parse; redelivery cannot help
		if ackErr := msg.Ack(); ackErr != nil {
			logger.Error("Failed to ACK malformed message", logger.Err(ackErr))
		}
		return
	}

	_, err := c.matchUC.ProcessOffer(ctx, &event)
	if err != nil {
		logger.Error("Trip offer processing failed, requesting redelivery",
			logger.String("trip_id", event.TripID),
			logger.Err(err))
		if nakErr := msg.Nak(); nakErr != nil {
			logger.Error("Failed to NAK message", logger.Err(nakErr))
		}
		return
	}

	if ackErr := msg.Ack(); ackErr != nil {
		logger.Error("Failed to ACK message",
			logger.String("trip_id", event.TripID),
			logger.Err(ackErr))
	}
}

// Stop halts the fetch loop and waits for in-flight messages
func (c *OfferConsumer) Stop() {
	if c.cancel != nil {
		c.cancel()
	}
	<-c.doneCh
	if c.consumer != nil {
		c.consumer.Stop()
	}
	logger.Info("Trip offer consumer stopped")
}
