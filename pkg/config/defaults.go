package config

import "time"

const (
	StoreMemory = "memory"
	StoreMongo  = "mongo"
)

const (
	DefaultStoreBackend      = StoreMemory
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "turfly"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	// Development key only. Production deployments must set TOKEN_SECRET.
	DefaultTokenSecret = "lfQVRuulcL2iOhOJ2r8BYTweoSKwVAJnIF9U+AL+M60="

	DefaultRateLimitRequests = 30
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultSlotLockTTL  = 10 * time.Second
	DefaultOpeningHour  = 6
	DefaultClosingHour  = 24
	DefaultPhoneRegions = "BD"

	DefaultEventsEnabled         = false
	DefaultBookingEventsTopic    = "turfly.booking.events"
	DefaultBookingEventsDLQTopic = "turfly.booking.events.dlq"

	DefaultMetricsEnabled = true
)
