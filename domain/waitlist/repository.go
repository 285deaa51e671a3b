package waitlist

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/uptrace/bun"

	"github.com/venskie03/fokus/pkg/logger"
)

// Repository handles waiting_list database operations
type Repository struct {
	db  bun.IDB
	log *slog.Logger
}

// NewRepository creates a new waitlist repository
func NewRepository(db bun.IDB, log *slog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With(logger.Scope("waitlist.repo")),
	}
}

// Insert adds email and returns the stored row.
// Duplicates are rejected by the waiting_list_email_key constraint; no pre-check is made.
func (r *Repository) Insert(ctx context.Context, email string) (*Entry, error) {
	entry := &Entry{Email: email}

	_, err := r.db.NewInsert().
		Model(entry).
		Column("email").
		Returning("id, email, created_at, updated_at").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("insert waitlist entry: %w", err)
	}

	return entry, nil
}

// Count returns the number of stored entries
func (r *Repository) Count(ctx context.Context) (int, error) {
	n, err := r.db.NewSelect().Model((*Entry)(nil)).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count waitlist entries: %w", err)
	}
	return n, nil
}
