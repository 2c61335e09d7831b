// Package httpapi exposes the Swadesh services over HTTP JSON: auth routes,
// memory CRUD and the AI tool endpoints.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/zaidasim/swadesh/internal/logging"
	"github.com/zaidasim/swadesh/internal/server/ai"
	"github.com/zaidasim/swadesh/internal/server/config"
	"github.com/zaidasim/swadesh/internal/server/models"
)

// SessionService is the auth gate the transport depends on.
type SessionService interface {
	Login(ctx context.Context, profile *models.UserProfile) (*models.User, string, error)
	Resolve(ctx context.Context, token string) (*models.Session, error)
	Logout(ctx context.Context, token string) error
}

// UserService provides user lookups and the setup flag.
type UserService interface {
	Get(ctx context.Context, id string) (*models.User, error)
	CompleteSetup(ctx context.Context, id string) error
}

// MemoryService provides the per-user memory records.
type MemoryService interface {
	List(ctx context.Context, userID string) ([]*models.Memory, error)
	Create(ctx context.Context, userID, content, category string) (*models.Memory, error)
	Update(ctx context.Context, id, userID, content string) (*models.Memory, error)
	Delete(ctx context.Context, id, userID string) (bool, error)
}

// Assistant is the AI feature surface.
type Assistant interface {
	Chat(ctx context.Context, message, personality, contextText string, mode ai.ChatMode) (string, error)
	AnalyzeDocument(ctx context.Context, content, action, targetLanguage string) (string, error)
	AnalyzeCode(ctx context.Context, code, action, language, prompt string) (string, error)
	StudyAssistant(ctx context.Context, topic, action, grade, subject string) (string, error)
	Translate(ctx context.Context, text, sourceLang, targetLang string, transliterate bool) (string, error)
	SearchAndSummarize(ctx context.Context, query, searchType string) (*ai.SearchResult, error)
	AnalyzeImage(ctx context.Context, imageBase64, action string) (string, error)
	CreativeContent(ctx context.Context, contentType, prompt, language string) (string, error)
}

type Server struct {
	cfg       *config.Config
	logger    logging.Logger
	sessions  SessionService
	users     UserService
	memories  MemoryService
	assistant Assistant
}

func NewServer(cfg *config.Config, l logging.Logger, sessions SessionService,
	users UserService, memories MemoryService, assistant Assistant) *Server {
	return &Server{
		cfg:       cfg,
		logger:    l.With("module", "http_server"),
		sessions:  sessions,
		users:     users,
		memories:  memories,
		assistant: assistant,
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.cfg.EndpointAddr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.cfg.EndpointAddr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
