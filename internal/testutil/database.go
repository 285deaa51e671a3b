// Package testutil provides shared helpers for database-backed tests.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"github.com/venskie03/fokus/internal/migrate"
)

// DSNEnv names the variable holding the test database connection string
const DSNEnv = "TEST_DATABASE_DSN"

// ErrNoTestDatabase is returned when DSNEnv is unset
var ErrNoTestDatabase = errors.New(DSNEnv + " is not set")

// TestDB holds test database resources
type TestDB struct {
	Pool *pgxpool.Pool
	DB   *bun.DB
}

// Close releases test database resources
func (t *TestDB) Close() {
	_ = t.DB.Close()
	t.Pool.Close()
}

// Truncate removes every waitlist row
func (t *TestDB) Truncate(ctx context.Context) error {
	_, err := t.DB.NewTruncateTable().Table("waiting_list").Exec(ctx)
	return err
}

// SetupTestDB connects to the database named by TEST_DATABASE_DSN and applies
// all migrations. The database must already exist.
func SetupTestDB(ctx context.Context) (*TestDB, error) {
	dsn := os.Getenv(DSNEnv)
	if dsn == "" {
		return nil, ErrNoTestDatabase
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect to test db: %w", err)
	}

	sqldb := stdlib.OpenDBFromPool(pool)
	if err := migrate.RunWithDB(ctx, sqldb); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrate test db: %w", err)
	}

	return &TestDB{
		Pool: pool,
		DB:   bun.NewDB(sqldb, pgdialect.New()),
	}, nil
}
