package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	"frontdesk/pkg/client"
	"frontdesk/pkg/logger"
)

type Config struct {
	MongoURI          string
	MongoDatabaseName string
	MongoConnTimeout  time.Duration
	MongoQueryTimeout time.Duration

	Port string

	// ReferenceYear is the implicit year applied to every parsed date
	// phrase; request and stored records must share it for overlap
	// comparisons to be consistent.
	ReferenceYear  int
	NightlyRate    int
	MaxReplyLength int
	PaymentLink    string

	WhatsAppAppSecret  string
	WhatsAppAPIURL     string
	WhatsAppAccountSID string
	WhatsAppAuthToken  string
	WhatsAppFromNumber string

	RateLimitRequests int
	RateLimitWindow   time.Duration

	RequestTimeout time.Duration
	IdempotencyTTL time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	Log    *logger.Logger
	Client *client.Client
}

func Load(serviceName string) *Config {
	cfg := &Config{
		MongoURI:          getEnvStr(EnvMongoURI, DefaultMongoURI),
		MongoDatabaseName: getEnvStr(EnvMongoDatabaseName, DefaultMongoDatabaseName),
		MongoConnTimeout:  getEnvDuration(EnvMongoConnTimeout, DefaultMongoConnTimeout),
		MongoQueryTimeout: getEnvDuration(EnvMongoQueryTimeout, DefaultMongoQueryTimeout),

		Port: getEnvStr(EnvPort, DefaultPort),

		ReferenceYear:  getEnvNum(EnvReferenceYear, DefaultReferenceYear),
		NightlyRate:    getEnvNum(EnvNightlyRate, DefaultNightlyRate),
		MaxReplyLength: getEnvNum(EnvMaxReplyLength, DefaultMaxReplyLength),
		PaymentLink:    getEnvStr(EnvPaymentLink, DefaultPaymentLink),

		WhatsAppAppSecret:  getEnvStr(EnvWhatsAppAppSecret, ""),
		WhatsAppAPIURL:     getEnvStr(EnvWhatsAppAPIURL, ""),
		WhatsAppAccountSID: getEnvStr(EnvWhatsAppAccountSID, ""),
		WhatsAppAuthToken:  getEnvStr(EnvWhatsAppAuthToken, ""),
		WhatsAppFromNumber: getEnvStr(EnvWhatsAppFromNumber, ""),

		RateLimitRequests: getEnvNum(EnvRateLimitRequests, DefaultRateLimitRequests),
		RateLimitWindow:   getEnvDuration(EnvRateLimitWindow, DefaultRateLimitWindow),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		IdempotencyTTL: getEnvDuration(EnvIdempotencyTTL, DefaultIdempotencyTTL),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		Log: logger.New(logger.Config{
			Level:     getEnvStr(EnvLogLevel, DefaultLogLevel),
			Format:    logger.JSON,
			AddSource: true,
			Service:   serviceName,
		}),
		Client: client.NewClient(),
	}

	return cfg
}

func (cfg *Config) SetMongo() {
	cfg.Client.SetMongo(cfg.Log, cfg.MongoURI, cfg.MongoConnTimeout)
}

var mongoURIRegex = regexp.MustCompile(`^mongodb(\+srv)?://`)

func (cfg *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if cfg.MongoURI == "" {
		errs = append(errs, "MongoURI cannot be empty")
	} else if !mongoURIRegex.MatchString(cfg.MongoURI) {
		errs = append(errs, fmt.Sprintf("MongoURI must start with 'mongodb://' or 'mongodb+srv://', got: %s", cfg.MongoURI))
	}
	if cfg.MongoDatabaseName == "" {
		errs = append(errs, "MongoDatabaseName cannot be empty")
	}
	if cfg.MongoConnTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("MongoConnTimeout must be positive, got: %s", cfg.MongoConnTimeout))
	}
	if cfg.MongoQueryTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("MongoQueryTimeout must be positive, got: %s", cfg.MongoQueryTimeout))
	}

	if cfg.ReferenceYear < 2000 || cfg.ReferenceYear > 2100 {
		errs = append(errs, fmt.Sprintf("ReferenceYear must be between 2000 and 2100, got: %d", cfg.ReferenceYear))
	}
	if cfg.NightlyRate <= 0 {
		errs = append(errs, fmt.Sprintf("NightlyRate must be positive, got: %d", cfg.NightlyRate))
	}
	if cfg.MaxReplyLength < 10 {
		errs = append(errs, fmt.Sprintf("MaxReplyLength must be at least 10, got: %d", cfg.MaxReplyLength))
	}

	if cfg.RateLimitRequests <= 0 {
		errs = append(errs, fmt.Sprintf("RateLimitRequests must be positive, got: %d", cfg.RateLimitRequests))
	}
	if cfg.RateLimitWindow <= 0 {
		errs = append(errs, fmt.Sprintf("RateLimitWindow must be positive, got: %s", cfg.RateLimitWindow))
	}
	if cfg.RequestTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.IdempotencyTTL <= 0 {
		errs = append(errs, fmt.Sprintf("IdempotencyTTL must be positive, got: %s", cfg.IdempotencyTTL))
	}
	if cfg.MaxRequestSize <= 0 {
		errs = append(errs, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}
	if cfg.ReadTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}

	if len(errs) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, e := range errs {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, e)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"mongo_uri", redactMongoURI(cfg.MongoURI),
		"mongo_database", cfg.MongoDatabaseName,
		"mongo_conn_timeout", cfg.MongoConnTimeout,
		"mongo_query_timeout", cfg.MongoQueryTimeout,
		"port", cfg.Port,
		"reference_year", cfg.ReferenceYear,
		"nightly_rate_eur", cfg.NightlyRate,
		"max_reply_length", cfg.MaxReplyLength,
		"whatsapp_secret_set", cfg.WhatsAppAppSecret != "",
		"whatsapp_api_url", cfg.WhatsAppAPIURL,
		"whatsapp_from_number", cfg.WhatsAppFromNumber,
		"rate_limit_requests", cfg.RateLimitRequests,
		"rate_limit_window", cfg.RateLimitWindow,
		"request_timeout", cfg.RequestTimeout,
		"idempotency_ttl", cfg.IdempotencyTTL,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
	)
}

func redactMongoURI(uri string) string {
	credentialRegex := regexp.MustCompile(`(mongodb(\+srv)?://)[^:]+:[^@]+@`)
	return credentialRegex.ReplaceAllString(uri, "${1}***:***@")
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func (cfg *Config) GracefulShutdown() {
	cfg.Client.GracefulShutdown()
}
