// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"barbershop/config"

	"github.com/go-redis/redis/v8"
)

// SessionCacheClient backs wizard and cart sessions when Redis is configured.
var SessionCacheClient *redis.Client

// InitSessionCache connects to Redis using the session DB from AppConfig.
// It returns an error instead of exiting so the caller can fall back to the
// in-process session store.
func InitSessionCache() (*redis.Client, error) {
	if config.AppConfig.RedisAddr == "" {
		return nil, fmt.Errorf("redis address not configured")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis (Sessions): %w", err)
	}
	SessionCacheClient = client
	return client, nil
}

// GetSessionCacheClient returns the session cache client, or nil when Redis
// is not in use.
func GetSessionCacheClient() *redis.Client {
	return SessionCacheClient
}
