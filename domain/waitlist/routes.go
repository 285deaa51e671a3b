package waitlist

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers waitlist routes with the Echo router
func RegisterRoutes(e *echo.Echo, h *Handler) {
	g := e.Group("/api/v1/user")
	g.POST("/waitlist", h.Join)
}
