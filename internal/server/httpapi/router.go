package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(s.logRequests)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.corsOrigins(),
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Set-Cookie"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// account and memory routes need a live session
	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Get("/api/auth/user", s.handleCurrentUser)
		r.Post("/api/user/setup", s.handleCompleteSetup)
		r.Get("/api/memories", s.handleListMemories)
		r.Post("/api/memories", s.handleCreateMemory)
		r.Patch("/api/memories/{id}", s.handleUpdateMemory)
		r.Delete("/api/memories/{id}", s.handleDeleteMemory)
	})

	// conversational routes work anonymously but personalize when a
	// session is present
	r.Group(func(r chi.Router) {
		r.Use(s.optionalAuth)
		r.Post("/api/chat", s.handleChat)
		r.Post("/api/voice-chat", s.handleVoiceChat)
	})

	r.Post("/api/tools/document", s.handleDocumentTool)
	r.Post("/api/tools/code", s.handleCodeTool)
	r.Post("/api/tools/study", s.handleStudyTool)
	r.Post("/api/tools/language", s.handleLanguageTool)
	r.Post("/api/tools/search", s.handleSearchTool)
	r.Post("/api/tools/image", s.handleImageTool)
	r.Post("/api/tools/creative", s.handleCreativeTool)

	if s.cfg.AuthConfigured() {
		s.registerAuthRoutes(r)
	} else {
		s.logger.Warn(context.Background(),
			"Google OAuth is not configured, login routes disabled")
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	return r
}

// corsOrigins splits the configured comma-separated origin list.
func (s *Server) corsOrigins() []string {
	var origins []string
	for _, part := range strings.Split(s.cfg.CORSOrigin, ",") {
		if origin := strings.TrimRight(strings.TrimSpace(part), "/"); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
