package chat

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/venskie03/fokus/internal/config"
	"github.com/venskie03/fokus/pkg/llm"
	"github.com/venskie03/fokus/pkg/llm/gemini"
	"github.com/venskie03/fokus/pkg/logger"
)

// Module provides chat functionality
var Module = fx.Module("chat",
	fx.Provide(
		NewLLMClient,
		NewService,
		NewHandler,
	),
	fx.Invoke(RegisterRoutes),
)

// NewLLMClient creates a Gemini client if an API key is configured.
// Without one the server still starts and chat requests fail with 500.
func NewLLMClient(cfg *config.Config, log *slog.Logger) llm.Provider {
	scopedLog := log.With(logger.Scope("chat.llm"))

	if !cfg.LLM.IsEnabled() {
		scopedLog.Warn("Gemini API key not configured, chat is disabled")
		return nil
	}

	client, err := gemini.NewClient(context.Background(), gemini.Config{
		APIKey:         cfg.LLM.Key(),
		Model:          cfg.LLM.Model,
		WebSearch:      cfg.LLM.WebSearch,
		ThinkingBudget: cfg.LLM.ThinkingBudget,
	}, gemini.WithLogger(scopedLog))
	if err != nil {
		scopedLog.Error("failed to create Gemini client", logger.Error(err))
		return nil
	}

	scopedLog.Info("Gemini client initialized",
		slog.String("model", client.Model()),
		slog.Bool("web_search", cfg.LLM.WebSearch),
	)

	return client
}
