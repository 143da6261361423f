package mongo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ucsb-cs156/campus-records-api/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// connectTimeout bounds the connect and ping made by Connect.
const connectTimeout = 10 * time.Second

// Connect opens a client for cfg.URL, applies the pool settings and pings
// the primary.
func Connect(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*mongo.Client, error) {
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URL).
		SetMaxPoolSize(uint64(cfg.MaxOpenConns)).
		SetMaxConnIdleTime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logger.Info("connected to MongoDB",
		"database", cfg.MongoDatabase,
		"max_pool_size", cfg.MaxOpenConns)
	return client, nil
}
