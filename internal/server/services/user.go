// Package services contains server-side business logic. This file implements
// UserService: login-time profile upserts and the one-way setup flag.
package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/zaidasim/swadesh/internal/server/models"
	"github.com/zaidasim/swadesh/internal/server/repositories/repomanager"
)

// UserService provides user-profile operations:
// - Get: fetch the current user record
// - UpsertFromProfile: create-or-refresh a user from a provider profile
// - CompleteSetup: flip the setupCompleted flag (false→true, idempotent)
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewUserService constructs a UserService over the shared DB handle.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, repomanager: m}
}

// Get returns the user record or common.ErrorNotFound.
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	return repo.GetByID(ctx, id)
}

// UpsertFromProfile creates the user on first login and refreshes the
// profile fields on every later login. The provider subject is the row key,
// so repeated logins never create duplicates.
func (s *UserService) UpsertFromProfile(ctx context.Context, profile *models.UserProfile) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	u, err := repo.Upsert(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("error upserting user: %w", err)
	}
	return u, nil
}

// CompleteSetup marks first-run setup as done. Calling it again is a no-op
// at the data level (the flag only ever goes false→true).
func (s *UserService) CompleteSetup(ctx context.Context, id string) error {
	repo := s.repomanager.Users(s.db)
	return repo.SetSetupCompleted(ctx, id, true)
}
