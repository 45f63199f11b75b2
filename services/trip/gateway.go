package trip

import (
	"context"

	"github.com/piresc/dispatch/internal/pkg/models"
)

// TripGW defines the interface for publishing outbox events to the stream
type TripGW interface {
	// PublishOfferEvent publishes one TRIP_OFFER event. The outbox row ID
	// doubles as the message ID so redelivered rows deduplicate on the
	// stream side.
	PublishOfferEvent(ctx context.Context, event *models.OutboxEvent) error
}
