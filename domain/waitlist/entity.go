package waitlist

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Entry represents a row of the waiting_list table.
// Rows are created once and never updated or deleted.
type Entry struct {
	bun.BaseModel `bun:"table:waiting_list"`

	ID        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Email     string    `bun:"email,notnull" json:"email"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"-"`
}

// JoinRequest is the request body for POST /api/v1/user/waitlist
type JoinRequest struct {
	Email string `json:"email"`
}

// JoinResponse is the 201 body for POST /api/v1/user/waitlist
type JoinResponse struct {
	Message string `json:"message"`
	Data    *Entry `json:"data"`
}
