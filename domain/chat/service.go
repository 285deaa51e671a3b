package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/venskie03/fokus/pkg/llm"
	"github.com/venskie03/fokus/pkg/logger"
	"github.com/venskie03/fokus/pkg/metrics"
	"github.com/venskie03/fokus/pkg/tracing"
)

// Service turns free text into a StructuredReply using the configured model
type Service struct {
	provider llm.Provider
	log      *slog.Logger
}

// NewService creates a new chat service. provider may be nil when no API key is configured.
func NewService(provider llm.Provider, log *slog.Logger) *Service {
	return &Service{
		provider: provider,
		log:      log.With(logger.Scope("chat.svc")),
	}
}

// Analyze sends input to the model as a single turn and parses the full reply.
// The upstream call is attempted once.
func (s *Service) Analyze(ctx context.Context, input string) (StructuredReply, error) {
	ctx, span := tracing.Start(ctx, "chat.analyze",
		attribute.Int("fokus.chat.input_chars", len(input)),
	)
	defer span.End()

	raw, err := llm.Complete(ctx, s.provider, llm.Request{
		SystemInstruction: SystemInstruction,
		Prompt:            input,
	})
	if err != nil {
		tracing.RecordError(span, err)
		return StructuredReply{}, fmt.Errorf("generate reply: %w", err)
	}

	reply, ok := ParseReply(raw)
	if !ok {
		metrics.ChatReplyFallbacks.Inc()
		s.log.Warn("model reply is not structured JSON, returning raw text",
			slog.Int("reply_chars", len(raw)),
		)
	}
	span.SetAttributes(attribute.Bool("fokus.chat.structured", ok))

	return reply, nil
}

// wireReply detects absent and null fields
type wireReply struct {
	Summary     *string   `json:"summary"`
	KeyPoints   *[]string `json:"key_points"`
	ActionItems *[]string `json:"action_items"`
}

// ParseReply decodes raw as a single JSON object with all three fields of the right type.
// Anything else, including code fences and trailing text, yields FallbackReply(raw) and false.
func ParseReply(raw string) (StructuredReply, bool) {
	dec := json.NewDecoder(strings.NewReader(raw))

	var w wireReply
	if err := dec.Decode(&w); err != nil {
		return FallbackReply(raw), false
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return FallbackReply(raw), false
	}
	if w.Summary == nil || w.KeyPoints == nil || w.ActionItems == nil {
		return FallbackReply(raw), false
	}

	return StructuredReply{
		Summary:     *w.Summary,
		KeyPoints:   nonNil(*w.KeyPoints),
		ActionItems: nonNil(*w.ActionItems),
	}, true
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
