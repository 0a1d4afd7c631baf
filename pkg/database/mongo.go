// Package database owns the process-wide MongoDB connection.
//
// Connect is deliberately non-fatal for the caller: when DATABASE_URL or
// DATABASE_NAME is missing, or the server cannot be reached, DB stays nil and
// the catalog runs in degraded (static fallback) mode.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ctrlz-wear/ctrlz-api/config"
)

var (
	Client *mongo.Client
	DB     *mongo.Database
)

// Connect establishes the MongoDB connection from DATABASE_URL and
// DATABASE_NAME and verifies it with a ping.
func Connect() error {
	uri := config.DatabaseURL()
	name := config.DatabaseName()
	if uri == "" || name == "" {
		return fmt.Errorf("database: DATABASE_URL and DATABASE_NAME must both be set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOpts := options.Client().ApplyURI(uri).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return fmt.Errorf("database: connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return fmt.Errorf("database: ping: %w", err)
	}

	Client = client
	DB = client.Database(name)
	return nil
}

// Close disconnects from MongoDB. Safe to call when never connected.
func Close() {
	if Client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = Client.Disconnect(ctx)

	Client = nil
	DB = nil
}
