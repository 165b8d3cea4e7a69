package middleware

import (
	"strconv"
	"time"

	"github.com/TaskGlass/dreamvault/pkg/common"
	"github.com/TaskGlass/dreamvault/pkg/infra/metrics"
	"github.com/TaskGlass/dreamvault/pkg/ratelimit"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type rateLimitMiddleware struct {
	logger  *logrus.Logger
	limiter *ratelimit.Limiter
	limit   int
	window  time.Duration
}

func NewRateLimitMiddleware(
	logger *logrus.Logger,
	limiter *ratelimit.Limiter,
	limit int,
	window time.Duration,
) Middleware {
	return &rateLimitMiddleware{
		logger:  logger,
		limiter: limiter,
		limit:   limit,
		window:  window,
	}
}

// Middleware enforces a per-user fixed window, falling back to the client IP
// before authentication has run.
func (m *rateLimitMiddleware) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		identifier, _ := ctx.Locals(common.UserIDContextKey).(string)
		if identifier == "" {
			identifier = ctx.IP()
		}

		allowed := m.limiter.Allow(identifier, m.limit, m.window)
		headers := m.limiter.HeadersFor(identifier, m.limit, m.window)

		ctx.Set("X-RateLimit-Limit", strconv.Itoa(headers.Limit))
		ctx.Set("X-RateLimit-Remaining", strconv.Itoa(headers.Remaining))
		ctx.Set("X-RateLimit-Reset", strconv.FormatInt(headers.Reset.Unix(), 10))

		if !allowed {
			metrics.RateLimited.WithLabelValues(ctx.Route().Path).Inc()
			retryAfter := int(time.Until(headers.Reset).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			ctx.Set(fiber.HeaderRetryAfter, strconv.Itoa(retryAfter))
			m.logger.WithFields(logrus.Fields{
				"identifier": identifier,
				"path":       ctx.Path(),
			}).Debug("request rate limited")
			return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "rate limit exceeded",
			})
		}

		return ctx.Next()
	}
}
