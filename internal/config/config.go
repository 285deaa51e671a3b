package config

import (
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Environment names a deployment target
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvStaging     Environment = "staging"
	EnvProduction  Environment = "production"
)

// Valid reports whether e is one of the known environments
func (e Environment) Valid() bool {
	switch e {
	case EnvDevelopment, EnvStaging, EnvProduction:
		return true
	}
	return false
}

// Config holds all application configuration
type Config struct {
	// Server settings
	ServerPort    int         `env:"PORT" envDefault:"5000"`
	ServerAddress string      `env:"SERVER_ADDRESS" envDefault:"0.0.0.0"`
	Environment   Environment `env:"APP_ENV" envDefault:"development"`
	LogLevel      string      `env:"LOG_LEVEL" envDefault:"info"`

	Database DatabaseConfig
	LLM      LLMConfig
	Chat     ChatConfig
	Otel     OtelConfig

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"120s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// IsDevelopment returns true for local development
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

// DatabaseConfig holds PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     int    `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD" envDefault:""`
	Database string `env:"DB_NAME" envDefault:"fokus"`

	// SSLMode overrides the per-environment default when set
	SSLMode string `env:"DB_SSL_MODE" envDefault:""`

	MaxConns       int           `env:"DB_MAX_CONNS" envDefault:"10"`
	IdleTimeout    time.Duration `env:"DB_IDLE_TIMEOUT" envDefault:"30s"`
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"2s"`
	QueryDebug     bool          `env:"DB_QUERY_DEBUG" envDefault:"false"`
	AutoMigrate    bool          `env:"DB_AUTO_MIGRATE" envDefault:"true"`
}

// DSN returns the PostgreSQL connection string
func (d *DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.Database,
		RawQuery: "sslmode=" + url.QueryEscape(d.SSLMode),
	}
	return u.String()
}

// sslModeFor returns the TLS mode used when DB_SSL_MODE is unset.
// "require" encrypts the connection without verifying the server certificate.
func sslModeFor(env Environment) string {
	if env == EnvDevelopment {
		return "disable"
	}
	return "require"
}

// LLMConfig holds Gemini configuration
type LLMConfig struct {
	APIKey string `env:"GEMINI_API_KEY" envDefault:""`

	// GoogleAPIKey is used when GEMINI_API_KEY is empty
	GoogleAPIKey string `env:"GOOGLE_API_KEY" envDefault:""`

	Model          string `env:"GEMINI_MODEL" envDefault:"gemini-flash-latest"`
	WebSearch      bool   `env:"GEMINI_WEB_SEARCH" envDefault:"true"`
	ThinkingBudget int32  `env:"GEMINI_THINKING_BUDGET" envDefault:"-1"`
}

// Key returns the API key to use, preferring GEMINI_API_KEY
func (l *LLMConfig) Key() string {
	if l.APIKey != "" {
		return l.APIKey
	}
	return l.GoogleAPIKey
}

// IsEnabled returns true if an API key is configured
func (l *LLMConfig) IsEnabled() bool {
	return l.Key() != ""
}

// ChatConfig holds limits applied in front of the paid AI API
type ChatConfig struct {
	// MaxInputChars rejects longer input; 0 disables the check
	MaxInputChars int `env:"CHAT_MAX_INPUT_CHARS" envDefault:"0"`

	// RateLimitRPS limits chat requests per client IP; 0 disables the limiter
	RateLimitRPS float64 `env:"CHAT_RATE_LIMIT_RPS" envDefault:"0"`
}

// NewConfig loads configuration from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.resolve(); err != nil {
		return nil, err
	}

	log.Info("configuration loaded",
		slog.String("environment", string(cfg.Environment)),
		slog.Int("port", cfg.ServerPort),
		slog.String("db_host", cfg.Database.Host),
		slog.String("db_ssl_mode", cfg.Database.SSLMode),
		slog.String("llm_model", cfg.LLM.Model),
		slog.Bool("llm_enabled", cfg.LLM.IsEnabled()),
	)

	return cfg, nil
}

// resolve validates the environment and fills environment-derived settings
func (c *Config) resolve() error {
	if !c.Environment.Valid() {
		return fmt.Errorf("unknown APP_ENV %q (want development, staging or production)", c.Environment)
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = sslModeFor(c.Environment)
	}
	if c.Database.MaxConns <= 0 {
		return fmt.Errorf("DB_MAX_CONNS must be positive, got %d", c.Database.MaxConns)
	}
	if c.Chat.MaxInputChars < 0 {
		return fmt.Errorf("CHAT_MAX_INPUT_CHARS must not be negative, got %d", c.Chat.MaxInputChars)
	}
	return nil
}
