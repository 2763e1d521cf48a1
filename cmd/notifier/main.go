package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	notifierservice "frontdesk/internal/notifier/service"
	"frontdesk/internal/notifier/whatsapp"
	"frontdesk/pkg/config"
	"frontdesk/pkg/kafka"
	kafka_config "frontdesk/pkg/kafka/config"
)

const ServiceName = "notifier"

func main() {
	cfg := config.Load(ServiceName)

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal("Invalid configuration", "error", err)
	}
	if cfg.WhatsAppAPIURL == "" || cfg.WhatsAppAccountSID == "" || cfg.WhatsAppAuthToken == "" {
		cfg.Log.Fatal("WhatsApp API credentials are required for the notifier")
	}

	cfg.LogConfiguration()
	cfg.Log.Info("Starting notifier service")

	sender := whatsapp.NewSender(
		cfg.WhatsAppAPIURL,
		cfg.WhatsAppAccountSID,
		cfg.WhatsAppAuthToken,
		cfg.WhatsAppFromNumber,
		cfg.Log,
	)
	delivery := notifierservice.NewDeliveryService(sender, cfg.Log)

	kafkaCfg := kafka_config.Load()
	consumer, err := kafka.NewConsumer(
		kafkaCfg,
		kafkaCfg.OutboundTopic,
		kafkaCfg.ConsumerGroupID,
		kafkaCfg.OutboundDLQTopic,
		delivery.Handle,
		cfg.Log,
	)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize kafka consumer", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-shutdown
		cfg.Log.Info("Shutdown signal received", "signal", sig)
		cancel()
	}()

	cfg.Log.Info("Consuming outbound messages",
		"topic", kafkaCfg.OutboundTopic,
		"group_id", kafkaCfg.ConsumerGroupID,
	)
	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		cfg.Log.Error("Consumer stopped with error", "error", err)
	}

	if err := consumer.Close(); err != nil {
		cfg.Log.Error("Failed to close kafka consumer", "error", err)
	}
	cfg.Log.Info("Notifier stopped gracefully")
}
