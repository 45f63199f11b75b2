package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/piresc/dispatch/internal/pkg/logger"
)

// JetStreamMessageHandler is a function that processes JetStream messages with acknowledgment
type JetStreamMessageHandler func(msg jetstream.Msg) error

// Consumer handles consuming messages from JetStream
type Consumer struct {
	conn       *nats.Conn
	js         jetstream.JetStream
	consumer   jetstream.Consumer
	consumeCtx jetstream.ConsumeContext
	ctx        context.Context
	cancelFunc context.CancelFunc
}

// NewJetStreamPullConsumer creates a pull-based JetStream consumer. The
// caller drives delivery through Fetch, which keeps control over the
// AckWait lease for each batch.
func NewJetStreamPullConsumer(client *Client, config ConsumerConfig) (*Consumer, error) {
	if client == nil {
		return nil, fmt.Errorf("client cannot be nil")
	}

	// Pull consumers require explicit acknowledgment
	config.AckPolicy = jetstream.AckExplicitPolicy

	if err := client.CreateConsumer(config); err != nil {
		return nil, fmt.Errorf("failed to create consumer: %w", err)
	}

	consumer, exists := client.getConsumer(config.StreamName, config.ConsumerName)
	if !exists {
		return nil, fmt.Errorf("consumer %s:%s not found after creation",
			config.StreamName, config.ConsumerName)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Consumer{
		conn:       client.conn,
		js:         client.js,
		consumer:   consumer,
		ctx:        ctx,
		cancelFunc: cancel,
	}, nil
}

// NewJetStreamConsumer creates a push-style consumer that dispatches every
// message to the handler, acking on success and naking on error.
func NewJetStreamConsumer(client *Client, config ConsumerConfig, handler JetStreamMessageHandler) (*Consumer, error) {
	c, err := NewJetStreamPullConsumer(client, config)
	if err != nil {
		return nil, err
	}

	if err := c.startConsuming(handler); err != nil {
		c.cancelFunc()
		return nil, fmt.Errorf("failed to start consuming: %w", err)
	}

	return c, nil
}

// startConsuming starts consuming messages with the provided handler
func (c *Consumer) startConsuming(handler JetStreamMessageHandler) error {
	consumeCtx, err := c.consumer.Consume(func(msg jetstream.Msg) {
		if err := handler(msg); err != nil {
			logger.Error("Error processing JetStream message",
				logger.String("subject", msg.Subject()),
				logger.Err(err))

			if nakErr := msg.Nak(); nakErr != nil {
				logger.Error("Failed to NAK message", logger.Err(nakErr))
			}
			return
		}

		if ackErr := msg.Ack(); ackErr != nil {
			logger.Error("Failed to ACK message", logger.Err(ackErr))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	c.consumeCtx = consumeCtx

	go func() {
		<-c.ctx.Done()
		if c.consumeCtx != nil {
			c.consumeCtx.Stop()
		}
	}()

	return nil
}

// Fetch pulls up to maxMessages, long-polling up to timeout when the
// stream is empty.
func (c *Consumer) Fetch(maxMessages int, timeout time.Duration) ([]jetstream.Msg, error) {
	if c.consumer == nil {
		return nil, fmt.Errorf("consumer not initialized")
	}

	msgs, err := c.consumer.Fetch(maxMessages, jetstream.FetchMaxWait(timeout))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	var result []jetstream.Msg
	for msg := range msgs.Messages() {
		result = append(result, msg)
	}

	if msgs.Error() != nil {
		return result, fmt.Errorf("error during fetch: %w", msgs.Error())
	}

	return result, nil
}

// GetInfo returns consumer information
func (c *Consumer) GetInfo() (*jetstream.ConsumerInfo, error) {
	if c.consumer == nil {
		return nil, fmt.Errorf("consumer not initialized")
	}

	info, err := c.consumer.Info(c.ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get consumer info: %w", err)
	}

	return info, nil
}

// Stop gracefully stops the consumer
func (c *Consumer) Stop() {
	if c.consumeCtx != nil {
		c.consumeCtx.Stop()
		c.consumeCtx = nil
	}
	if c.cancelFunc != nil {
		c.cancelFunc()
	}
}
