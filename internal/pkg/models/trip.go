package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Trip lifecycle states. The dispatch core only moves a trip into SEARCHING;
// everything after that belongs to the trip-lifecycle collaborator.
const (
	TripStatusSearching = "SEARCHING"
	TripStatusAccepted  = "ACCEPTED"
	TripStatusCompleted = "COMPLETED"
	TripStatusCanceled  = "CANCELED"
)

// Outbox event states.
const (
	OutboxStatusPending   = "PENDING"
	OutboxStatusProcessed = "PROCESSED"
)

// EventTypeTripOffer is the outbox event type emitted on trip creation.
const EventTypeTripOffer = "TRIP_OFFER"

// Trip represents a trip row. Created together with its outbox event in one
// transaction.
type Trip struct {
	ID          uuid.UUID `db:"id" json:"id"`
	PassengerID string    `db:"passenger_id" json:"passenger_id"`
	DriverID    *string   `db:"driver_id" json:"driver_id,omitempty"`
	Pickup      string    `db:"pickup" json:"pickup"`
	Destination string    `db:"destination" json:"destination"`
	PickupLat   float64   `db:"pickup_lat" json:"pickup_lat"`
	PickupLng   float64   `db:"pickup_lng" json:"pickup_lng"`
	Fare        int64     `db:"fare" json:"fare"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// CreateTripRequest is the ingress payload for trip creation.
type CreateTripRequest struct {
	PassengerID string  `json:"passenger_id"`
	Pickup      string  `json:"pickup"`
	Destination string  `json:"destination"`
	PickupLat   float64 `json:"pickup_lat"`
	PickupLng   float64 `json:"pickup_lng"`
	Fare        int64   `json:"fare"`
}

// OutboxEvent is written in the same transaction as the domain change it
// announces and is only ever consumed by the outbox publisher.
type OutboxEvent struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	AggregateType string          `db:"aggregate_type" json:"aggregate_type"`
	AggregateID   string          `db:"aggregate_id" json:"aggregate_id"`
	EventType     string          `db:"event_type" json:"event_type"`
	Payload       json.RawMessage `db:"payload" json:"payload"`
	Status        string          `db:"status" json:"status"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
}

// TripOfferEvent is the queue message produced from a TRIP_OFFER outbox row.
// CreatedAt carries the implicit expiry: CreatedAt + offer TTL.
type TripOfferEvent struct {
	TripID      string    `json:"trip_id"`
	PassengerID string    `json:"passenger_id"`
	Pickup      string    `json:"pickup"`
	Destination string    `json:"destination"`
	PickupLat   float64   `json:"pickup_lat"`
	PickupLng   float64   `json:"pickup_lng"`
	Fare        int64     `json:"fare"`
	CreatedAt   time.Time `json:"created_at"`
}

// TripOfferNotification is pushed to each candidate driver session.
// TimeoutMs is the remaining offer budget so the client can render an
// accurate countdown.
type TripOfferNotification struct {
	TripID      string  `json:"trip_id"`
	Pickup      string  `json:"pickup"`
	Destination string  `json:"destination"`
	PickupLat   float64 `json:"pickup_lat"`
	PickupLng   float64 `json:"pickup_lng"`
	Fare        int64   `json:"fare"`
	TimeoutMs   int64   `json:"timeout_ms"`
}

// MatchStats is the monitoring snapshot exposed by the matching consumer.
type MatchStats struct {
	Received        int64     `json:"received"`
	Matched         int64     `json:"matched"`
	Expired         int64     `json:"expired"`
	Empty           int64     `json:"empty"`
	Errors          int64     `json:"errors"`
	LastProcessedAt time.Time `json:"last_processed_at"`
}
