package httpapi

import (
	"context"
	"io"
	"time"

	"github.com/zaidasim/swadesh/internal/common"
	"github.com/zaidasim/swadesh/internal/logging"
	"github.com/zaidasim/swadesh/internal/server/ai"
	"github.com/zaidasim/swadesh/internal/server/config"
	"github.com/zaidasim/swadesh/internal/server/models"
)

type stubSessions struct {
	byToken map[string]*models.Session
}

func (s *stubSessions) Login(_ context.Context, profile *models.UserProfile) (*models.User, string, error) {
	session := &models.Session{ID: "sess-1", UserID: profile.ID, ExpiresAt: time.Now().Add(time.Hour)}
	s.byToken["token-1"] = session
	return &models.User{ID: profile.ID, Email: profile.Email}, "token-1", nil
}

func (s *stubSessions) Resolve(_ context.Context, token string) (*models.Session, error) {
	if session, ok := s.byToken[token]; ok {
		return session, nil
	}
	return nil, common.ErrorUnauthorized
}

func (s *stubSessions) Logout(_ context.Context, token string) error {
	delete(s.byToken, token)
	return nil
}

type stubUsers struct {
	users map[string]*models.User
}

func (s *stubUsers) Get(_ context.Context, id string) (*models.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (s *stubUsers) CompleteSetup(_ context.Context, id string) error {
	u, ok := s.users[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.SetupCompleted = true
	return nil
}

type stubMemories struct {
	byUser map[string][]*models.Memory
	err    error
}

func (s *stubMemories) List(_ context.Context, userID string) ([]*models.Memory, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byUser[userID], nil
}

func (s *stubMemories) Create(_ context.Context, userID, content, category string) (*models.Memory, error) {
	if s.err != nil {
		return nil, s.err
	}
	if category == "" {
		category = common.DefaultMemoryCategory
	}
	m := &models.Memory{ID: "mem-1", UserID: userID, Content: content, Category: category}
	s.byUser[userID] = append(s.byUser[userID], m)
	return m, nil
}

func (s *stubMemories) Update(_ context.Context, id, userID, content string) (*models.Memory, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, m := range s.byUser[userID] {
		if m.ID == id {
			m.Content = content
			return m, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (s *stubMemories) Delete(_ context.Context, id, userID string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	list := s.byUser[userID]
	for i, m := range list {
		if m.ID == id {
			s.byUser[userID] = append(list[:i], list[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// stubAssistant records the last call so tests can assert on what the
// handlers forwarded.
type stubAssistant struct {
	out      string
	err      error
	lastCall string
	lastArgs []any
}

func (a *stubAssistant) record(call string, args ...any) {
	a.lastCall = call
	a.lastArgs = args
}

func (a *stubAssistant) Chat(_ context.Context, message, personality, contextText string, mode ai.ChatMode) (string, error) {
	a.record("chat", message, personality, contextText, mode)
	return a.out, a.err
}

func (a *stubAssistant) AnalyzeDocument(_ context.Context, content, action, targetLanguage string) (string, error) {
	a.record("document", content, action, targetLanguage)
	return a.out, a.err
}

func (a *stubAssistant) AnalyzeCode(_ context.Context, code, action, language, prompt string) (string, error) {
	a.record("code", code, action, language, prompt)
	return a.out, a.err
}

func (a *stubAssistant) StudyAssistant(_ context.Context, topic, action, grade, subject string) (string, error) {
	a.record("study", topic, action, grade, subject)
	return a.out, a.err
}

func (a *stubAssistant) Translate(_ context.Context, text, sourceLang, targetLang string, transliterate bool) (string, error) {
	a.record("language", text, sourceLang, targetLang, transliterate)
	return a.out, a.err
}

func (a *stubAssistant) SearchAndSummarize(_ context.Context, query, searchType string) (*ai.SearchResult, error) {
	a.record("search", query, searchType)
	if a.err != nil {
		return nil, a.err
	}
	return &ai.SearchResult{Summary: a.out, Sources: []ai.SearchSource{{Title: "t", URL: "u", Snippet: "s"}}}, nil
}

func (a *stubAssistant) AnalyzeImage(_ context.Context, imageBase64, action string) (string, error) {
	a.record("image", imageBase64, action)
	return a.out, a.err
}

func (a *stubAssistant) CreativeContent(_ context.Context, contentType, prompt, language string) (string, error) {
	a.record("creative", contentType, prompt, language)
	return a.out, a.err
}

type testEnv struct {
	server    *Server
	sessions  *stubSessions
	users     *stubUsers
	memories  *stubMemories
	assistant *stubAssistant
}

func newTestEnv(cfg *config.Config) *testEnv {
	if cfg == nil {
		cfg = &config.Config{}
		cfg.LoadDefaults()
	}
	env := &testEnv{
		sessions:  &stubSessions{byToken: map[string]*models.Session{}},
		users:     &stubUsers{users: map[string]*models.User{}},
		memories:  &stubMemories{byUser: map[string][]*models.Memory{}},
		assistant: &stubAssistant{out: "answer"},
	}
	env.server = NewServer(cfg, logging.NewJSON(io.Discard),
		env.sessions, env.users, env.memories, env.assistant)
	return env
}

// loggedIn registers a session for user u1 and returns its cookie token.
func (e *testEnv) loggedIn() string {
	e.sessions.byToken["token-1"] = &models.Session{
		ID: "sess-1", UserID: "u1", ExpiresAt: time.Now().Add(time.Hour),
	}
	e.users.users["u1"] = &models.User{ID: "u1", Email: "u1@example.com"}
	return "token-1"
}
