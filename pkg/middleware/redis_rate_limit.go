package middleware

import (
	"strconv"
	"time"

	"github.com/TaskGlass/dreamvault/pkg/common"
	"github.com/TaskGlass/dreamvault/pkg/infra/metrics"
	infraRatelimit "github.com/TaskGlass/dreamvault/pkg/infra/ratelimit"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type redisRateLimitMiddleware struct {
	logger  *logrus.Logger
	limiter *infraRatelimit.RedisLimiter
	limit   int
	window  time.Duration
}

// NewRedisRateLimitMiddleware enforces a sliding window shared across all
// instances. Redis failures fail open: shedding load is the limiter's job,
// taking the API down with redis is not.
func NewRedisRateLimitMiddleware(
	logger *logrus.Logger,
	limiter *infraRatelimit.RedisLimiter,
	limit int,
	window time.Duration,
) Middleware {
	return &redisRateLimitMiddleware{
		logger:  logger,
		limiter: limiter,
		limit:   limit,
		window:  window,
	}
}

func (m *redisRateLimitMiddleware) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		identifier, _ := ctx.Locals(common.UserIDContextKey).(string)
		if identifier == "" {
			identifier = ctx.IP()
		}

		allowed, remaining, err := m.limiter.Allow(ctx.Context(), identifier, m.limit, m.window)
		if err != nil {
			m.logger.WithError(err).Warn("redis rate limiter unavailable, allowing request")
			return ctx.Next()
		}

		// Same header contract as the in-process limiter. A sliding window
		// has no fixed boundary, so reset reports when the whole window has
		// rolled over.
		ctx.Set("X-RateLimit-Limit", strconv.Itoa(m.limit))
		ctx.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		ctx.Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(m.window).Unix(), 10))

		if !allowed {
			metrics.RateLimited.WithLabelValues(ctx.Route().Path).Inc()
			ctx.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(m.window.Seconds())))
			return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "rate limit exceeded",
			})
		}

		return ctx.Next()
	}
}
