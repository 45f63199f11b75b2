package constants

// NATS JetStream subjects and streams
const (
	TripStreamName   = "TRIP_STREAM"
	SubjectTripOffer = "trip.offer"

	TripOfferConsumerName = "trip_offer_match"
)

// NSQ topics and channels
const (
	TopicLocationHistory = "driver.location.history"
	ChannelHistoryWriter = "history-writer"
)
