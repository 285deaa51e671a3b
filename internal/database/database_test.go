package database

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/venskie03/fokus/internal/config"
)

func TestPoolConfig_Bounds(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:           "db.internal",
		Port:           5432,
		User:           "fokus",
		Password:       "secret",
		Database:       "fokus",
		SSLMode:        "disable",
		MaxConns:       10,
		IdleTimeout:    30 * time.Second,
		ConnectTimeout: 2 * time.Second,
	}

	pc, err := PoolConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, int32(10), pc.MaxConns)
	assert.Equal(t, 30*time.Second, pc.MaxConnIdleTime)
	assert.Equal(t, 2*time.Second, pc.ConnConfig.ConnectTimeout)
	assert.Equal(t, "db.internal", pc.ConnConfig.Host)
	assert.Nil(t, pc.ConnConfig.TLSConfig, "sslmode=disable must not configure TLS")
}

func TestPoolConfig_RequireSkipsVerification(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "fokus",
		Database: "fokus",
		SSLMode:  "require",
		MaxConns: 10,
	}

	pc, err := PoolConfig(cfg)
	require.NoError(t, err)

	require.NotNil(t, pc.ConnConfig.TLSConfig)
	assert.True(t, pc.ConnConfig.TLSConfig.InsecureSkipVerify)
}

func TestPoolConfig_PasswordWithReservedCharacters(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "app",
		Password: "p@ss/w#rd?x",
		Database: "fokus",
		SSLMode:  "disable",
		MaxConns: 1,
	}

	pc, err := PoolConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", pc.ConnConfig.Host)
	assert.Equal(t, uint16(5432), pc.ConnConfig.Port)
	assert.Equal(t, "app", pc.ConnConfig.User)
	assert.Equal(t, "p@ss/w#rd?x", pc.ConnConfig.Password)
	assert.Equal(t, "fokus", pc.ConnConfig.Database)
}

func TestPoolConfig_InvalidSSLMode(t *testing.T) {
	cfg := &config.DatabaseConfig{Host: "localhost", Port: 5432, SSLMode: "sometimes", MaxConns: 1}

	_, err := PoolConfig(cfg)
	require.Error(t, err)
}

func TestQueryLoggingHook(t *testing.T) {
	var buf bytes.Buffer
	hook := &queryLoggingHook{log: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))}

	hook.AfterQuery(context.Background(), &bun.QueryEvent{
		Query:     "INSERT INTO waiting_list",
		StartTime: time.Now(),
		Err:       errors.New("boom"),
	})
	assert.Contains(t, buf.String(), "query error")

	buf.Reset()
	hook.AfterQuery(context.Background(), &bun.QueryEvent{
		Query:     "SELECT 1",
		StartTime: time.Now().Add(-2 * slowQueryThreshold),
	})
	assert.Contains(t, buf.String(), "slow query")

	buf.Reset()
	hook.AfterQuery(context.Background(), &bun.QueryEvent{Query: "SELECT 1", StartTime: time.Now()})
	assert.Contains(t, buf.String(), "level=DEBUG")
}
