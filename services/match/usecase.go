package match

import (
	"context"

	"github.com/piresc/dispatch/internal/pkg/models"
)

// OfferOutcome is the disposition of one trip offer message
type OfferOutcome int

const (
	// OutcomeNotified means at least one driver received the offer
	OutcomeNotified OfferOutcome = iota
	// OutcomeExpired means the offer budget had already elapsed
	OutcomeExpired
	// OutcomeNoDrivers means no available driver was in range
	OutcomeNoDrivers
)

// MatchUC defines the interface for trip-offer matching logic
type MatchUC interface {
	// ProcessOffer dispatches one offer to nearby available drivers. A
	// non-nil error means infrastructure failed and the message should
	// be redelivered; any returned outcome is terminal for the offer.
	ProcessOffer(ctx context.Context, event *models.TripOfferEvent) (OfferOutcome, error)

	// Stats returns a monitoring snapshot of the matching consumer
	Stats() models.MatchStats
}
