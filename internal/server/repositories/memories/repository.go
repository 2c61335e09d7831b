// Package memories provides the PostgreSQL-backed repository for memory
// records. Ownership decisions live in the service layer; this package only
// reads and writes rows.
package memories

import (
	"context"

	"github.com/zaidasim/swadesh/internal/server/models"
)

type Repository interface {
	// SelectByUser returns all memories owned by userID, oldest first, so
	// listings are stable across calls absent mutation.
	SelectByUser(ctx context.Context, userID string) ([]*models.Memory, error)

	// Insert persists a new memory. The caller supplies the id; timestamps
	// come back from the database.
	Insert(ctx context.Context, memory *models.Memory) (*models.Memory, error)

	// GetByID returns the memory regardless of owner, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.Memory, error)

	// UpdateContent replaces the content and refreshes updated_at.
	UpdateContent(ctx context.Context, id string, content string) (*models.Memory, error)

	// Delete removes the row. common.ErrorNotFound when it does not exist.
	Delete(ctx context.Context, id string) error
}
