// Package repomanager vends repository implementations bound to a DBTX so
// services can run the same code against *sql.DB or an open transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/zaidasim/swadesh/internal/dbx"
	"github.com/zaidasim/swadesh/internal/server/repositories/memories"
	"github.com/zaidasim/swadesh/internal/server/repositories/sessions"
	"github.com/zaidasim/swadesh/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Memories(db dbx.DBTX) memories.Repository
	Sessions(db dbx.DBTX) sessions.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
