package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "frontdesk"
	DefaultMongoConnTimeout  = 10 * time.Second
	DefaultMongoQueryTimeout = 5 * time.Second

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	// Matches the season the guesthouse takes bookings for; guests'
	// date phrases carry no year of their own.
	DefaultReferenceYear = 2025

	// Flat rate in whole euros per night.
	DefaultNightlyRate = 50

	// WhatsApp's outbound body limit.
	DefaultMaxReplyLength = 1600

	DefaultPaymentLink = "[PayPal.me/ALBotExample]"

	DefaultRateLimitRequests = 10
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)
