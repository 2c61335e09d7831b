// Package users provides the PostgreSQL-backed repository for user records.
package users

import (
	"context"

	"github.com/zaidasim/swadesh/internal/server/models"
)

// Repository persists user rows keyed by the identity provider's subject.
type Repository interface {
	// Upsert creates the user on first login and refreshes the profile
	// fields on every subsequent login. Idempotent by user id.
	Upsert(ctx context.Context, profile *models.UserProfile) (*models.User, error)

	// GetByID returns the user or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// SetSetupCompleted flips the setup flag. common.ErrorNotFound when the
	// user does not exist.
	SetSetupCompleted(ctx context.Context, id string, completed bool) error
}
