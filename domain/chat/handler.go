package chat

import (
	"log/slog"
	"net/http"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	"github.com/venskie03/fokus/internal/config"
	"github.com/venskie03/fokus/pkg/apperror"
	"github.com/venskie03/fokus/pkg/logger"
	"github.com/venskie03/fokus/pkg/metrics"
)

var (
	errInputRequired = apperror.NewBadRequest("Input text is required").WithField("status", StatusError)
	errInputTooLong  = apperror.NewBadRequest("Input text is too long").WithField("status", StatusError)
	errUpstream      = apperror.ErrUpstream.WithField("status", StatusError)
	errRateLimited   = apperror.ErrTooManyRequests.WithField("status", StatusError)
)

// Handler handles chat HTTP requests
type Handler struct {
	svc           *Service
	maxInputChars int
	log           *slog.Logger
}

// NewHandler creates a new chat handler
func NewHandler(svc *Service, cfg *config.Config, log *slog.Logger) *Handler {
	return &Handler{
		svc:           svc,
		maxInputChars: cfg.Chat.MaxInputChars,
		log:           log.With(logger.Scope("chat.handler")),
	}
}

// Chat handles POST /api/v1/gemini/chat
// @Summary      Analyze text with Gemini
// @Description  Sends the input to Gemini with web search enabled and returns a summary, key points and action items
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        request body ChatRequest true "Text to analyze"
// @Success      200 {object} ChatResponse "Structured reply"
// @Failure      400 {object} map[string]any "Input text is required"
// @Failure      429 {object} map[string]any "Too many requests"
// @Failure      500 {object} map[string]any "Something went wrong"
// @Router       /api/v1/gemini/chat [post]
func (h *Handler) Chat(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil || req.Input == "" {
		metrics.ChatRequests.WithLabelValues(metrics.ResultInvalid).Inc()
		return errInputRequired
	}
	if h.maxInputChars > 0 && utf8.RuneCountInString(req.Input) > h.maxInputChars {
		metrics.ChatRequests.WithLabelValues(metrics.ResultInvalid).Inc()
		return errInputTooLong
	}

	reply, err := h.svc.Analyze(c.Request().Context(), req.Input)
	if err != nil {
		metrics.ChatRequests.WithLabelValues(metrics.ResultError).Inc()
		h.log.Error("chat request failed", logger.Error(err))
		return errUpstream.WithInternal(err)
	}

	metrics.ChatRequests.WithLabelValues(metrics.ResultSuccess).Inc()
	return c.JSON(http.StatusOK, ChatResponse{
		Result: reply,
		Status: StatusSuccess,
	})
}
