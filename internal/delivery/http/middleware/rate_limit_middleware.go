package middleware

import (
	"log/slog"

	"taskhive/internal/delivery/http/response"
	"taskhive/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// RateLimitMiddleware throttles abuse-prone endpoints per client address.
type RateLimitMiddleware struct {
	limiter service.RateLimiter
	logger  *slog.Logger
}

// NewRateLimitMiddleware is the constructor for RateLimitMiddleware.
func NewRateLimitMiddleware(limiter service.RateLimiter, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		logger:  logger,
	}
}

// Limit returns a middleware that counts attempts against the given action,
// keyed "action:<client ip>" so register and login budgets stay separate.
func (m *RateLimitMiddleware) Limit(action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identifier := action + ":" + c.RealIP()

			if !m.limiter.Allow(identifier) {
				m.logger.Warn("Rate limit exceeded", "identifier", identifier, "path", c.Request().URL.Path)

				return response.TooManyRequests(c, "RATE_LIMITED", "Too many attempts, please try again later")
			}

			return next(c)
		}
	}
}
