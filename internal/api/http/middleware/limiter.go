package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	fiberredis "github.com/gofiber/storage/redis/v3"
	"github.com/redis/go-redis/v9"
)

const (
	// Front-desk tablets poll the schedule, so the cap is per half minute
	// rather than per second.
	limiterMax    = 40
	limiterWindow = 30 * time.Second
)

// NewLimiterWithRedis rate-limits per client IP with a sliding window
// backed by Redis, so limits hold across replicas.
func NewLimiterWithRedis(rdb *redis.Client) fiber.Handler {
	storage := fiberredis.NewFromConnection(rdb)
	return limiter.New(limiter.Config{
		Storage:           storage,
		Max:               limiterMax,
		Expiration:        limiterWindow,
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}
