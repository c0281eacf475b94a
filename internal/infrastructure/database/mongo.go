package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotConnected is returned by every store operation when no database URL was configured.
var ErrNotConnected = errors.New("database not initialized")

// MongoConfig holds everything needed to open the MongoDB client.
type MongoConfig struct {
	URI  string // DATABASE_URL; empty leaves the store uninitialized
	Name string // DATABASE_NAME

	MaxPoolSize uint64
	MinPoolSize uint64

	// Retry Configuration
	MaxRetries     int
	RetryDelay     time.Duration
	ConnectTimeout time.Duration
}

// MongoDB owns the client handle and the selected database.
// A single instance is shared by every request; the driver is safe for concurrent use.
type MongoDB struct {
	Client *mongo.Client
	DB     *mongo.Database
	Config *MongoConfig
}

// NewMongoDB creates an unconnected wrapper. Call Connect before use.
func NewMongoDB(config *MongoConfig) *MongoDB {
	return &MongoDB{
		Config: config,
	}
}

func (m *MongoDB) clientOptions() *options.ClientOptions {
	opts := options.Client().
		ApplyURI(m.Config.URI).
		SetConnectTimeout(m.Config.ConnectTimeout).
		SetServerSelectionTimeout(m.Config.ConnectTimeout)

	if m.Config.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(m.Config.MaxPoolSize)
	}
	if m.Config.MinPoolSize > 0 {
		opts.SetMinPoolSize(m.Config.MinPoolSize)
	}
	return opts
}

// connectWithRetry pings the deployment until it answers, backing off exponentially
// between attempts: delay = RetryDelay * 2^(attempt-1).
func (m *MongoDB) connectWithRetry(ctx context.Context) (*mongo.Client, error) {
	var lastErr error

	attempts := m.Config.MaxRetries
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		log.Info().Int("attempt", attempt).Int("max", attempts).Msg("[DATABASE] Connection attempt")

		connectCtx, cancel := context.WithTimeout(ctx, m.Config.ConnectTimeout)
		client, err := mongo.Connect(connectCtx, m.clientOptions())
		if err == nil {
			err = client.Ping(connectCtx, nil)
			if err != nil {
				_ = client.Disconnect(context.Background())
			}
		}
		cancel()

		if err == nil {
			log.Info().Int("attempt", attempt).Msg("[DATABASE] Successfully connected")
			return client, nil
		}
		lastErr = err
		log.Warn().Err(err).Int("attempt", attempt).Msg("[DATABASE] Attempt failed")

		if attempt < attempts {
			delay := m.Config.RetryDelay * time.Duration(1<<uint(attempt-1))
			log.Info().Dur("delay", delay).Msg("[DATABASE] Retrying")

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, fmt.Errorf("connection cancelled: %w", ctx.Err())
			}
		}
	}

	return nil, fmt.Errorf("failed to connect after %d attempts: %w", attempts, lastErr)
}

// Connect opens the client and selects the configured database.
// With an empty URI it is a no-op and the wrapper stays uninitialized.
func (m *MongoDB) Connect(ctx context.Context) error {
	if m.Config.URI == "" {
		log.Warn().Msg("[DATABASE] DATABASE_URL not set, storage is not initialized")
		return nil
	}

	client, err := m.connectWithRetry(ctx)
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}

	m.Client = client
	m.DB = client.Database(m.Config.Name)

	log.Info().Str("database", m.Config.Name).Msg("[DATABASE] MongoDB connection established")
	return nil
}

// Initialized reports whether Connect produced a usable database handle.
func (m *MongoDB) Initialized() bool {
	return m != nil && m.DB != nil
}

// Name returns the selected database name.
func (m *MongoDB) Name() string {
	if !m.Initialized() {
		return ""
	}
	return m.DB.Name()
}

// ListCollectionNames lists the collections of the selected database.
func (m *MongoDB) ListCollectionNames(ctx context.Context) ([]string, error) {
	if !m.Initialized() {
		return nil, ErrNotConnected
	}
	return m.DB.ListCollectionNames(ctx, bson.D{})
}

// Close disconnects the client. Safe to call when never connected.
func (m *MongoDB) Close(ctx context.Context) error {
	if m.Client == nil {
		log.Info().Msg("[DATABASE] Client was never initialized")
		return nil
	}

	log.Info().Msg("[DATABASE] Closing MongoDB client...")
	if err := m.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect: %w", err)
	}

	m.Client = nil
	m.DB = nil
	log.Info().Msg("[DATABASE] MongoDB client closed")
	return nil
}
