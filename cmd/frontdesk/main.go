package main

import (
	"frontdesk/internal/assistant/handler"
	assistantrepo "frontdesk/internal/assistant/repository"
	assistantservice "frontdesk/internal/assistant/service"
	bookingsrepo "frontdesk/internal/bookings/repository"
	bookingsservice "frontdesk/internal/bookings/service"
	"frontdesk/internal/bookings/validator"
	"frontdesk/pkg/app"
	"frontdesk/pkg/config"
	"frontdesk/pkg/kafka"
	kafka_config "frontdesk/pkg/kafka/config"
)

const ServiceName = "frontdesk"

func main() {
	cfg := config.Load(ServiceName)

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal("Invalid configuration", "error", err)
	}

	cfg.LogConfiguration()
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting frontdesk service")

	producer := initProducer(cfg)
	defer func() {
		if err := producer.Close(); err != nil {
			cfg.Log.Error("Failed to close kafka producer", "error", err)
		}
	}()

	assistant := initServices(cfg, producer)
	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(handler.NewWebhookHandler(assistant, cfg.Log))
	serverApp.Run()
}

func initProducer(cfg *config.Config) *kafka.Producer {
	kafkaCfg := kafka_config.Load()
	producer, err := kafka.NewProducer(kafkaCfg, kafkaCfg.OutboundTopic, kafkaCfg.OutboundDLQTopic, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize kafka producer", "error", err)
	}
	cfg.Log.Info("Kafka producer initialized", "topic", kafkaCfg.OutboundTopic)
	return producer
}

func initServices(cfg *config.Config, producer *kafka.Producer) assistantservice.AssistantService {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)

	bookingRepo := bookingsrepo.NewMongoBookingRepository(db, cfg.MongoQueryTimeout)
	ledger := bookingsservice.NewLedgerService(
		bookingRepo,
		validator.NewBookingValidator(cfg.Log),
		cfg,
	)

	convRepo := assistantrepo.NewMongoConversationRepository(db, cfg.MongoQueryTimeout)
	assistant := assistantservice.NewAssistantService(ledger, convRepo, producer, cfg)

	cfg.Log.Info("Assistant service initialized", "database", cfg.MongoDatabaseName)
	return assistant
}
