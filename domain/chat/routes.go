package chat

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/venskie03/fokus/internal/config"
	"github.com/venskie03/fokus/pkg/metrics"
)

// RegisterRoutes registers chat routes with the Echo router
func RegisterRoutes(e *echo.Echo, h *Handler, cfg *config.Config) {
	g := e.Group("/api/v1/gemini")

	// Per-IP limit in front of the paid API
	if cfg.Chat.RateLimitRPS > 0 {
		g.Use(RateLimiter(cfg.Chat.RateLimitRPS))
	}

	g.POST("/chat", h.Chat)
}

// RateLimiter limits requests per client IP to rps with a burst of one second's worth
func RateLimiter(rps float64) echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStore(rate.Limit(rps)),
		ErrorHandler: func(c echo.Context, err error) error {
			return errRateLimited.WithInternal(err)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			metrics.ChatRequests.WithLabelValues(metrics.ResultLimited).Inc()
			return errRateLimited
		},
	})
}
