package utils

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/invicta-fest/festival-backend/config"
)

// InitRedis connects the shared Redis client used by the rate limiter.
// Returns nil when Redis is not configured; callers fall back to in-memory
// stores.
func InitRedis(cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		log.Println("Redis not configured, using in-memory rate limit store")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis ping failed (%v), using in-memory rate limit store", err)
		client.Close()
		return nil
	}

	log.Println("Redis connected:", cfg.RedisAddr)
	return client
}
