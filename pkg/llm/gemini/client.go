// Package gemini provides a Google Gemini streaming client backed by google.golang.org/genai.
package gemini

import (
	"context"
	"fmt"
	"iter"
	"log/slog"

	"google.golang.org/genai"

	"github.com/venskie03/fokus/pkg/llm"
)

const (
	// DefaultModel is the default chat model
	DefaultModel = "gemini-flash-latest"

	// DynamicThinkingBudget lets the model decide how much to think
	DynamicThinkingBudget int32 = -1
)

// Config holds the configuration for the Gemini client
type Config struct {
	APIKey         string
	Model          string
	WebSearch      bool
	ThinkingBudget int32
}

// contentStreamer is the subset of *genai.Models used by the client
type contentStreamer interface {
	GenerateContentStream(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) iter.Seq2[*genai.GenerateContentResponse, error]
}

// Client is a Gemini client implementing llm.Provider
type Client struct {
	models         contentStreamer
	model          string
	webSearch      bool
	thinkingBudget int32
	log            *slog.Logger
}

var _ llm.Provider = (*Client)(nil)

// ClientOption configures the Client
type ClientOption func(*Client)

// WithLogger sets the logger
func WithLogger(log *slog.Logger) ClientOption {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a new Gemini API client
func NewClient(ctx context.Context, cfg Config, opts ...ClientOption) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return newClient(gc.Models, cfg, opts...), nil
}

func newClient(models contentStreamer, cfg Config, opts ...ClientOption) *Client {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	c := &Client{
		models:         models,
		model:          cfg.Model,
		webSearch:      cfg.WebSearch,
		thinkingBudget: cfg.ThinkingBudget,
		log:            slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// IsConfigured returns true if the client can reach the API
func (c *Client) IsConfigured() bool {
	return c != nil && c.models != nil
}

// Model returns the configured model name
func (c *Client) Model() string {
	return c.model
}

// generateConfig builds the per-request generation config
func (c *Client) generateConfig(systemInstruction string) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr(c.thinkingBudget),
		},
	}
	if systemInstruction != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(systemInstruction)},
		}
	}
	if c.webSearch {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}
	return cfg
}

// Stream sends req as a single user turn and yields the text of each streamed chunk.
// Chunks without text (e.g. search grounding metadata) are skipped.
func (c *Client) Stream(ctx context.Context, req llm.Request) iter.Seq2[string, error] {
	contents := []*genai.Content{genai.NewContentFromText(req.Prompt, genai.RoleUser)}
	cfg := c.generateConfig(req.SystemInstruction)

	return func(yield func(string, error) bool) {
		c.log.Debug("streaming gemini completion",
			slog.String("model", c.model),
			slog.Int("prompt_chars", len(req.Prompt)),
			slog.Bool("web_search", c.webSearch),
		)

		chunks := 0
		for resp, err := range c.models.GenerateContentStream(ctx, c.model, contents, cfg) {
			if err != nil {
				yield("", fmt.Errorf("gemini stream: %w", err))
				return
			}
			text := resp.Text()
			if text == "" {
				continue
			}
			chunks++
			if !yield(text, nil) {
				return
			}
		}

		c.log.Debug("gemini stream finished", slog.Int("chunks", chunks))
	}
}
