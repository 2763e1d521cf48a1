package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"
	EnvMongoQueryTimeout = "MONGO_QUERY_TIMEOUT"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvReferenceYear  = "REFERENCE_YEAR"
	EnvNightlyRate    = "NIGHTLY_RATE_EUR"
	EnvMaxReplyLength = "MAX_REPLY_LENGTH"
	EnvPaymentLink    = "PAYMENT_LINK"

	EnvWhatsAppAppSecret  = "WHATSAPP_APP_SECRET"
	EnvWhatsAppAPIURL     = "WHATSAPP_API_URL"
	EnvWhatsAppAccountSID = "WHATSAPP_ACCOUNT_SID"
	EnvWhatsAppAuthToken  = "WHATSAPP_AUTH_TOKEN"
	EnvWhatsAppFromNumber = "WHATSAPP_FROM_NUMBER"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)
