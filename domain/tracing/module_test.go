package tracing

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venskie03/fokus/internal/config"
)

func TestSampler(t *testing.T) {
	assert.Contains(t, Sampler(1).Description(), "AlwaysOnSampler")
	assert.Contains(t, Sampler(0).Description(), "AlwaysOffSampler")
	assert.Contains(t, Sampler(0.25).Description(), "TraceIDRatioBased{0.25}")
}

func TestSkipTracing(t *testing.T) {
	for _, p := range []string{"/health", "/healthz", "/ready", "/metrics", "/static/app.css"} {
		assert.True(t, skipTracing(p), p)
	}
	for _, p := range []string{"/", "/chat", "/api/v1/gemini/chat", "/api/v1/user/waitlist"} {
		assert.False(t, skipTracing(p), p)
	}
}

func TestNewTracerProvider_Disabled(t *testing.T) {
	res, err := NewTracerProvider(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	assert.Nil(t, res.SDKProvider)
}
