package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	ginlimiter "github.com/ulule/limiter/v3/drivers/middleware/gin"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
	memory "github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimiter returns a per-IP limiter middleware. When a Redis client is
// supplied the limit is shared across instances; otherwise an in-memory
// store is used.
func RateLimiter(redisClient *redis.Client) gin.HandlerFunc {
	rate := limiter.Rate{
		Period: 1 * time.Minute,
		Limit:  100,
	}

	var store limiter.Store
	if redisClient != nil {
		var err error
		store, err = sredis.NewStoreWithOptions(redisClient, limiter.StoreOptions{
			Prefix: "fest_ratelimit",
		})
		if err != nil {
			log.Printf("redis limiter store unavailable, falling back to memory: %v", err)
			store = memory.NewStore()
		}
	} else {
		store = memory.NewStore()
	}

	instance := limiter.New(store, rate)
	return ginlimiter.NewMiddleware(instance)
}
