package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/dispatch/internal/pkg/constants"
	"github.com/piresc/dispatch/internal/pkg/models"
	natspkg "github.com/piresc/dispatch/internal/pkg/nats"
	"github.com/piresc/dispatch/services/trip"
)

// tripGW publishes outbox events to the trip stream
type tripGW struct {
	client *natspkg.Client
}

// NewTripGW creates a new trip gateway
func NewTripGW(client *natspkg.Client) trip.TripGW {
	return &tripGW{client: client}
}

// PublishOfferEvent publishes the raw outbox payload on the offer subject.
// The outbox row ID is the message ID, so a row published twice (publish
// succeeded but the delete did not commit) deduplicates on the stream.
func (g *tripGW) PublishOfferEvent(ctx context.Context, event *models.OutboxEvent) error {
	if err := g.client.PublishWithMsgID(ctx, constants.SubjectTripOffer, event.Payload, event.ID.String()); err != nil {
		return fmt.Errorf("failed to publish offer event %s: %w", event.ID, err)
	}
	return nil
}
