package waitlist

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler handles waitlist HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates a new waitlist handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Join handles POST /api/v1/user/waitlist
// @Summary      Join the waitlist
// @Description  Adds an email address to the waiting list. Emails are stored lowercase and must be unique.
// @Tags         waitlist
// @Accept       json
// @Produce      json
// @Param        request body JoinRequest true "Email to register"
// @Success      201 {object} JoinResponse "Added to the waiting list"
// @Failure      400 {object} map[string]any "Email is required or invalid"
// @Failure      409 {object} map[string]any "Email already exists"
// @Failure      500 {object} map[string]any "Internal server error"
// @Router       /api/v1/user/waitlist [post]
func (h *Handler) Join(c echo.Context) error {
	var req JoinRequest
	if err := c.Bind(&req); err != nil {
		return ErrEmailRequired
	}

	entry, err := h.svc.Join(c.Request().Context(), req.Email)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, JoinResponse{
		Message: "Successfully added to waiting list",
		Data:    entry,
	})
}
