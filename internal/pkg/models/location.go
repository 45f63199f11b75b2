package models

import "time"

// Driver availability states as stored by the status-update path. The
// dispatch core only ever reads these to filter match candidates.
const (
	DriverStatusOnline  = "online"
	DriverStatusOffline = "offline"
	DriverStatusOnTrip  = "on_trip"
)

// DriverLocation is the live position record for a single driver. At most
// one record exists per driver; any newer UpdatedAt supersedes it.
type DriverLocation struct {
	DriverID  string    `json:"driver_id"`
	Latitude  float64   `json:"lat"`
	Longitude float64   `json:"lng"`
	Heading   int       `json:"heading,omitempty"`
	Speed     float64   `json:"speed,omitempty"`
	Accuracy  float64   `json:"accuracy,omitempty"`
	TripID    string    `json:"trip_id,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LocationUpdateRequest is the ingress payload from driver clients. Clients
// may batch by sending Locations instead of the top-level coordinates.
type LocationUpdateRequest struct {
	Latitude  *float64                `json:"lat"`
	Longitude *float64                `json:"lng"`
	Heading   int                     `json:"heading"`
	Speed     float64                 `json:"speed"`
	Accuracy  float64                 `json:"accuracy"`
	TripID    string                  `json:"trip_id"`
	Locations []LocationUpdateRequest `json:"locations,omitempty"`
}

// LastPosition is the delta-filter baseline persisted alongside the live
// record.
type LastPosition struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Heading   int     `json:"heading"`
}

// NearbyDriver is one radius-query candidate, ordered by ascending distance.
type NearbyDriver struct {
	DriverID   string  `json:"driver_id"`
	Latitude   float64 `json:"lat"`
	Longitude  float64 `json:"lng"`
	DistanceKm float64 `json:"distance_km"`
	Status     string  `json:"status"`
	Heading    int     `json:"heading"`
	Speed      float64 `json:"speed"`
	TripID     string  `json:"trip_id,omitempty"`
}

// LocationHistoryEvent is the queue message emitted for every accepted
// update. The batch writer turns these into history rows; inserts are
// idempotent so redelivery is harmless.
type LocationHistoryEvent struct {
	DriverID   string    `json:"driver_id"`
	Latitude   float64   `json:"lat"`
	Longitude  float64   `json:"lng"`
	Heading    int       `json:"heading"`
	Speed      float64   `json:"speed"`
	Accuracy   float64   `json:"accuracy"`
	TripID     string    `json:"trip_id,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

// BufferStats is the monitoring snapshot exposed by the coalescing buffer.
type BufferStats struct {
	CurrentSize       int           `json:"current_size"`
	TotalReceived     int64         `json:"total_received"`
	TotalFlushed      int64         `json:"total_flushed"`
	TotalCoalesced    int64         `json:"total_coalesced"`
	TotalOverflow     int64         `json:"total_overflow"`
	FlushCount        int64         `json:"flush_count"`
	LastFlushTime     time.Time     `json:"last_flush_time"`
	LastFlushDuration time.Duration `json:"last_flush_duration"`
	CoalescingRate    float64       `json:"coalescing_rate"`
	AvgFlushSize      float64       `json:"avg_flush_size"`
}
