package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"giftcard-backend/internal/infrastructure/database"
)

// LoadDatabaseConfig reads the MongoDB settings from the environment.
func LoadDatabaseConfig() (*database.MongoConfig, error) {
	maxRetries, err := strconv.Atoi(getEnv("DB_MAX_RETRIES", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_RETRIES: %w", err)
	}

	maxPool, err := strconv.ParseUint(getEnv("DB_MAX_POOL_SIZE", "100"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_POOL_SIZE: %w", err)
	}

	minPool, err := strconv.ParseUint(getEnv("DB_MIN_POOL_SIZE", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_POOL_SIZE: %w", err)
	}

	retryDelay, err := time.ParseDuration(getEnv("DB_RETRY_DELAY", "1s"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_RETRY_DELAY: %w", err)
	}

	connectTimeout, err := time.ParseDuration(getEnv("DB_CONNECT_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_CONNECT_TIMEOUT: %w", err)
	}

	return &database.MongoConfig{
		URI:            strings.TrimSpace(getEnv("DATABASE_URL", "")),
		Name:           getEnv("DATABASE_NAME", "giftcards"),
		MaxPoolSize:    maxPool,
		MinPoolSize:    minPool,
		MaxRetries:     maxRetries,
		RetryDelay:     retryDelay,
		ConnectTimeout: connectTimeout,
	}, nil
}
