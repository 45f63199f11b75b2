package constants

// Redis key formats
const (
	// Geo set holding every live driver position
	KeyDriversGeo = "drivers:locations"

	KeyDriverLocation = "driver:location:%s" // Format: driver:location:{driver_id}
	KeyDriverLastPos  = "driver:lastpos:%s"  // Format: driver:lastpos:{driver_id}
	KeyDriverStatus   = "driver:status:%s"   // Format: driver:status:{driver_id}
)

// Redis hash fields for driver location metadata
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldHeading   = "heading"
	FieldSpeed     = "speed"
	FieldAccuracy  = "accuracy"
	FieldTripID    = "trip_id"
	FieldGeohash   = "geohash"
	FieldUpdatedAt = "updated_at"
)
