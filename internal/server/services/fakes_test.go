package services

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/zaidasim/swadesh/internal/common"
	"github.com/zaidasim/swadesh/internal/dbx"
	"github.com/zaidasim/swadesh/internal/server/models"
	memrepo "github.com/zaidasim/swadesh/internal/server/repositories/memories"
	sessrepo "github.com/zaidasim/swadesh/internal/server/repositories/sessions"
	userrepo "github.com/zaidasim/swadesh/internal/server/repositories/users"
)

// fakeClock hands out strictly increasing timestamps so tests can assert
// "updatedAt is strictly later" without sleeping.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) tick() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

type fakeUsers struct {
	clock *fakeClock
	rows  map[string]*models.User
}

func (f *fakeUsers) Upsert(ctx context.Context, p *models.UserProfile) (*models.User, error) {
	now := f.clock.tick()
	u, ok := f.rows[p.ID]
	if !ok {
		u = &models.User{ID: p.ID, CreatedAt: now}
		f.rows[p.ID] = u
	}
	u.Email = p.Email
	u.FirstName = p.FirstName
	u.LastName = p.LastName
	u.ProfileImageURL = p.ProfileImageURL
	u.UpdatedAt = now
	copy := *u
	return &copy, nil
}

func (f *fakeUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := f.rows[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	copy := *u
	return &copy, nil
}

func (f *fakeUsers) SetSetupCompleted(ctx context.Context, id string, completed bool) error {
	u, ok := f.rows[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.SetupCompleted = completed
	u.UpdatedAt = f.clock.tick()
	return nil
}

type fakeMemories struct {
	clock *fakeClock
	rows  map[string]*models.Memory
}

func (f *fakeMemories) SelectByUser(ctx context.Context, userID string) ([]*models.Memory, error) {
	var result []*models.Memory
	for _, m := range f.rows {
		if m.UserID == userID {
			copy := *m
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (f *fakeMemories) Insert(ctx context.Context, m *models.Memory) (*models.Memory, error) {
	now := f.clock.tick()
	stored := *m
	stored.CreatedAt = now
	stored.UpdatedAt = now
	f.rows[m.ID] = &stored
	copy := stored
	return &copy, nil
}

func (f *fakeMemories) GetByID(ctx context.Context, id string) (*models.Memory, error) {
	m, ok := f.rows[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	copy := *m
	return &copy, nil
}

func (f *fakeMemories) UpdateContent(ctx context.Context, id string, content string) (*models.Memory, error) {
	m, ok := f.rows[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	m.Content = content
	m.UpdatedAt = f.clock.tick()
	copy := *m
	return &copy, nil
}

func (f *fakeMemories) Delete(ctx context.Context, id string) error {
	if _, ok := f.rows[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.rows, id)
	return nil
}

type fakeSessions struct {
	clock *fakeClock
	rows  map[string]*models.Session
}

func (f *fakeSessions) Insert(ctx context.Context, s *models.Session) error {
	stored := *s
	stored.CreatedAt = f.clock.tick()
	f.rows[s.ID] = &stored
	return nil
}

func (f *fakeSessions) GetByID(ctx context.Context, id string) (*models.Session, error) {
	s, ok := f.rows[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	copy := *s
	return &copy, nil
}

func (f *fakeSessions) Delete(ctx context.Context, id string) error {
	if _, ok := f.rows[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeSessions) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	var n int64
	for id, s := range f.rows {
		if !s.ExpiresAt.After(now) {
			delete(f.rows, id)
			n++
		}
	}
	return n, nil
}

// fakeRepoManager vends the same in-memory repositories regardless of the
// DBTX handle, which makes transactional code paths testable without a DB.
type fakeRepoManager struct {
	clock    *fakeClock
	users    *fakeUsers
	memories *fakeMemories
	sessions *fakeSessions
}

func newFakeRepoManager() *fakeRepoManager {
	clock := newFakeClock()
	return &fakeRepoManager{
		clock:    clock,
		users:    &fakeUsers{clock: clock, rows: map[string]*models.User{}},
		memories: &fakeMemories{clock: clock, rows: map[string]*models.Memory{}},
		sessions: &fakeSessions{clock: clock, rows: map[string]*models.Session{}},
	}
}

func (f *fakeRepoManager) Users(db dbx.DBTX) userrepo.Repository        { return f.users }
func (f *fakeRepoManager) Memories(db dbx.DBTX) memrepo.Repository     { return f.memories }
func (f *fakeRepoManager) Sessions(db dbx.DBTX) sessrepo.Repository    { return f.sessions }
func (f *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }
