package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/zaidasim/swadesh/internal/common"
	"github.com/zaidasim/swadesh/internal/dbx"
	"github.com/zaidasim/swadesh/internal/server/auth"
	"github.com/zaidasim/swadesh/internal/server/config"
	"github.com/zaidasim/swadesh/internal/server/models"
	"github.com/zaidasim/swadesh/internal/server/repositories/repomanager"
)

// SessionService implements the auth gate: it turns a verified provider
// profile into a user row plus a session row, resolves incoming tokens to
// live sessions, and revokes sessions at logout.
type SessionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	secret      []byte
	ttl         time.Duration
}

// NewSessionService constructs a SessionService using server config.
func NewSessionService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *SessionService {
	return &SessionService{
		db:          db,
		repomanager: m,
		secret:      []byte(cfg.SessionSecret),
		ttl:         cfg.SessionTTL,
	}
}

// Login upserts the user from the provider profile and starts a session,
// both inside one transaction so a failed session insert never leaves a
// half-finished login. Returns the user and the signed session token for
// the cookie.
func (s *SessionService) Login(ctx context.Context, profile *models.UserProfile) (*models.User, string, error) {
	var user *models.User
	var token string

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		u, err := s.repomanager.Users(tx).Upsert(ctx, profile)
		if err != nil {
			return fmt.Errorf("error upserting user: %w", err)
		}

		session := &models.Session{
			ID:        uuid.NewString(),
			UserID:    u.ID,
			ExpiresAt: time.Now().Add(s.ttl),
		}
		if err := s.repomanager.Sessions(tx).Insert(ctx, session); err != nil {
			return fmt.Errorf("error creating session: %w", err)
		}

		token, err = auth.GenerateToken(session.ID, s.secret, s.ttl)
		if err != nil {
			return common.ErrorInternal
		}

		user = u
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Resolve verifies the cookie token and loads the session row behind it.
// A bad token, a missing row, or an elapsed TTL all yield
// common.ErrorUnauthorized; expired rows are reaped on the way out.
func (s *SessionService) Resolve(ctx context.Context, token string) (*models.Session, error) {
	sessionID, err := auth.GetSessionIDFromToken(token, s.secret)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	repo := s.repomanager.Sessions(s.db)
	session, err := repo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if session.Expired(time.Now()) {
		_ = repo.Delete(ctx, session.ID)
		return nil, common.ErrorUnauthorized
	}

	return session, nil
}

// Logout destroys the session behind the token. Best effort: an invalid
// token or an already-deleted row is not an error, logout is idempotent.
func (s *SessionService) Logout(ctx context.Context, token string) error {
	sessionID, err := auth.GetSessionIDFromToken(token, s.secret)
	if err != nil {
		return nil
	}

	repo := s.repomanager.Sessions(s.db)
	if err := repo.Delete(ctx, sessionID); err != nil && !errors.Is(err, common.ErrorNotFound) {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}

// PurgeExpired removes all expired session rows. Called once at startup.
func (s *SessionService) PurgeExpired(ctx context.Context) (int64, error) {
	repo := s.repomanager.Sessions(s.db)
	return repo.DeleteExpired(ctx, time.Now())
}
