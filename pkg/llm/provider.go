// Package llm provides interfaces for language model providers.
package llm

import (
	"context"
	"errors"
	"iter"
	"strings"
)

// ErrNotConfigured is returned when a provider has no credentials
var ErrNotConfigured = errors.New("llm provider is not configured")

// Request is a single-turn generation request.
// Only the latest user text is sent; there is no conversation history.
type Request struct {
	// SystemInstruction constrains the model's behaviour
	SystemInstruction string

	// Prompt is the user turn (required)
	Prompt string
}

// Provider is an interface for streaming LLM providers
type Provider interface {
	// Stream returns the reply as a finite sequence of text chunks.
	// The sequence is consumed once; an error ends it.
	Stream(ctx context.Context, req Request) iter.Seq2[string, error]

	// IsConfigured returns true if the provider is properly configured
	IsConfigured() bool
}

// Collect folds every chunk of seq into one string.
// Nothing is returned on error, so callers never see a partial reply.
func Collect(seq iter.Seq2[string, error]) (string, error) {
	var sb strings.Builder
	for chunk, err := range seq {
		if err != nil {
			return "", err
		}
		sb.WriteString(chunk)
	}
	return sb.String(), nil
}

// Complete streams req from p and returns the accumulated text
func Complete(ctx context.Context, p Provider, req Request) (string, error) {
	if p == nil || !p.IsConfigured() {
		return "", ErrNotConfigured
	}
	return Collect(p.Stream(ctx, req))
}
