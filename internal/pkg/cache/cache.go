package cache

import (
	"context"
	"fmt"
	"log"

	"github.com/ManuelReschke/QuoteFox/internal/pkg/env"
	"github.com/redis/go-redis/v9"
)

// SetupCache connects to the Redis/Dragonfly server named by CACHE_HOST.
// Without CACHE_HOST no client is created and nil is returned; callers fall
// back to in-process storage.
func SetupCache() *redis.Client {
	host := env.GetEnv("CACHE_HOST", "")
	if host == "" {
		log.Printf("CACHE_HOST not set, running without cache")
		return nil
	}
	port := env.GetEnv("CACHE_PORT", "6379")

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: env.GetEnv("CACHE_PASSWORD", ""),
		DB:       0,
	})

	// Test the connection
	pong, err := client.Ping(context.Background()).Result()
	if err != nil {
		log.Printf("Warning: Could not connect to cache: %v", err)
	} else {
		log.Printf("Successfully connected to cache: %s", pong)
	}
	return client
}
