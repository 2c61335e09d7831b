// Package sessions provides the PostgreSQL-backed repository for login
// sessions. Rows outlive nothing: they are created at login, deleted at
// logout, and reaped once expired.
package sessions

import (
	"context"
	"time"

	"github.com/zaidasim/swadesh/internal/server/models"
)

type Repository interface {
	// Insert persists a new session row.
	Insert(ctx context.Context, session *models.Session) error

	// GetByID returns the session or common.ErrorNotFound. Expiry is the
	// caller's concern.
	GetByID(ctx context.Context, id string) (*models.Session, error)

	// Delete removes the row. common.ErrorNotFound when it does not exist.
	Delete(ctx context.Context, id string) error

	// DeleteExpired removes every session expiring at or before now and
	// reports how many rows were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
