package api

import (
	"context"

	"food-delivery/internal/browsing"
	"food-delivery/internal/common/cache"
	"food-delivery/internal/common/config"
	"food-delivery/internal/common/db"
	"food-delivery/internal/common/logger"
	"food-delivery/internal/common/metrics"
	"food-delivery/internal/common/mq"
	"food-delivery/internal/registration"
)

// Run wires the full server from config: Postgres-backed stores, the
// RabbitMQ publisher and the Redis menu cache. usersFile switches the
// account store from Postgres to the JSON file store.
func Run(ctx context.Context, cfg config.App, port int, usersFile string) error {
	lg := logger.New("api-server")

	conn, err := db.Connect(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer conn.Close()
	if err := db.Migrate(ctx, conn); err != nil {
		return err
	}

	restaurantStore := browsing.NewPGStore(conn)
	if err := restaurantStore.Seed(ctx); err != nil {
		return err
	}

	var userStore registration.UserStore = registration.NewPGStore(conn)
	if usersFile != "" {
		userStore = registration.NewFileStore(usersFile)
	}

	client, err := mq.Dial(cfg.Rabbit)
	if err != nil {
		return err
	}
	defer client.Close()
	if err := client.DeclareAll(); err != nil {
		return err
	}

	var menuCache cache.Cache = cache.Noop{}
	if cfg.Redis.Host != "" {
		menuCache = cache.NewRedis(cfg.Redis, "api-server")
	}

	server := NewServer(lg, Options{
		Registration: registration.NewService(userStore),
		Browsing:     browsing.New(restaurantStore),
		Publisher:    MQPublisher{Client: client},
		Cache:        menuCache,
		Metrics:      metrics.NewServerMetrics("api"),
	})
	return server.Run(ctx, port)
}
