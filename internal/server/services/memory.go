package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/zaidasim/swadesh/internal/common"
	"github.com/zaidasim/swadesh/internal/server/models"
	"github.com/zaidasim/swadesh/internal/server/repositories/repomanager"
)

// MemoryService owns the per-user memory records. Every mutation goes
// through loadOwned, which collapses "absent" and "owned by someone else"
// into the same not-found answer so callers cannot probe for foreign ids.
type MemoryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewMemoryService constructs a MemoryService over the shared DB handle.
func NewMemoryService(db *sql.DB, m repomanager.RepositoryManager) *MemoryService {
	return &MemoryService{db: db, repomanager: m}
}

// List returns all memories owned by userID, oldest first.
func (s *MemoryService) List(ctx context.Context, userID string) ([]*models.Memory, error) {
	repo := s.repomanager.Memories(s.db)
	result, err := repo.SelectByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error selecting memories: %w", err)
	}
	return result, nil
}

// Create persists a new memory owned by userID. Whitespace-only content is
// a validation error; an empty category falls back to the default.
func (s *MemoryService) Create(ctx context.Context, userID, content, category string) (*models.Memory, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: content must not be empty", common.ErrorValidation)
	}
	if strings.TrimSpace(category) == "" {
		category = common.DefaultMemoryCategory
	}

	memory := &models.Memory{
		ID:       uuid.NewString(),
		UserID:   userID,
		Content:  content,
		Category: category,
	}

	repo := s.repomanager.Memories(s.db)
	created, err := repo.Insert(ctx, memory)
	if err != nil {
		return nil, fmt.Errorf("error creating memory: %w", err)
	}
	return created, nil
}

// Update replaces the content of a memory owned by userID and refreshes its
// updatedAt. A missing or foreign id yields common.ErrorNotFound.
func (s *MemoryService) Update(ctx context.Context, id, userID, content string) (*models.Memory, error) {
	if _, err := s.loadOwned(ctx, id, userID); err != nil {
		return nil, err
	}

	repo := s.repomanager.Memories(s.db)
	updated, err := repo.UpdateContent(ctx, id, content)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error updating memory: %w", err)
	}
	return updated, nil
}

// Delete removes a memory owned by userID. Returns false (not an error)
// when the id is missing or owned by another user, so a repeated delete
// reports success=false.
func (s *MemoryService) Delete(ctx context.Context, id, userID string) (bool, error) {
	if _, err := s.loadOwned(ctx, id, userID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		return false, err
	}

	repo := s.repomanager.Memories(s.db)
	if err := repo.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("error deleting memory: %w", err)
	}
	return true, nil
}

// loadOwned fetches a memory and verifies ownership. Absent records and
// records owned by another user are both reported as common.ErrorNotFound.
func (s *MemoryService) loadOwned(ctx context.Context, id, userID string) (*models.Memory, error) {
	repo := s.repomanager.Memories(s.db)
	memory, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error loading memory: %w", err)
	}
	if memory.UserID != userID {
		return nil, common.ErrorNotFound
	}
	return memory, nil
}
