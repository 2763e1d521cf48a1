package main

import (
	"context"
	"time"

	migrations "frontdesk/internal/migrations/mongo"
	"frontdesk/pkg/config"
)

const ServiceName = "migrate"

func main() {
	cfg := config.Load(ServiceName)

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal("Invalid configuration", "error", err)
	}

	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := migrations.RunMigration(ctx, cfg.Client.Mongo, cfg.MongoDatabaseName); err != nil {
		cfg.Log.Fatal("Migration failed", "error", err)
	}

	cfg.Log.Info("Migrations completed", "database", cfg.MongoDatabaseName)
}
