package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	Location LocationConfig
	Match    MatchConfig
	Outbox   OutboxConfig
	History  HistoryConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	NSQDAddress    string
	LookupdAddress string
	MaxInFlight    int
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// LocationConfig contains driver-location ingestion configuration
type LocationConfig struct {
	FlushIntervalMs     int     // periodic buffer flush interval
	FlushThreshold      int     // buffer size that forces an early flush
	MaxBufferSize       int     // hard cap on distinct drivers buffered
	DeltaDistanceMeters float64 // minimum movement before a write is applied
	DeltaHeadingDegrees float64 // minimum heading change before a write is applied
	LocationTTLSeconds  int     // metadata TTL so abandoned sessions self-heal
}

// MatchConfig contains trip-offer matching configuration
type MatchConfig struct {
	OfferTTLMs        int     // how long an offer stays dispatchable
	SearchRadiusKm    float64 // radius for candidate driver lookup
	SearchLimit       int     // maximum candidates per offer
	FetchBatch        int     // messages pulled per consumer cycle
	FetchMaxWaitSec   int     // long-poll wait when the stream is empty
	VisibilityTimeout int     // AckWait lease in seconds
}

// OutboxConfig contains outbox publisher configuration
type OutboxConfig struct {
	PollIntervalMs int
	BatchSize      int
}

// HistoryConfig contains location-history batch writer configuration
type HistoryConfig struct {
	BatchSize       int
	FlushIntervalMs int
	// FailurePolicy selects what happens to a batch after a failed insert:
	// "drop" discards it (throughput over completeness, the reference
	// behavior) and "requeue" merges it back for retry.
	FailurePolicy string
}

// NewRelicConfig contains New Relic observability configuration
type NewRelicConfig struct {
	LicenseKey string
	AppName    string
	Enabled    bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
