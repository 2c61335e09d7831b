package httpapi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/zaidasim/swadesh/internal/common"
)

type createMemoryRequest struct {
	Content  string `json:"content"`
	Category string `json:"category"`
}

type updateMemoryRequest struct {
	Content string `json:"content"`
}

func (s *Server) handleListMemories(w http.ResponseWriter, r *http.Request) {
	session, _ := sessionFrom(r.Context())

	memories, err := s.memories.List(r.Context(), session.UserID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, memories)
}

func (s *Server) handleCreateMemory(w http.ResponseWriter, r *http.Request) {
	session, _ := sessionFrom(r.Context())

	var req createMemoryRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	memory, err := s.memories.Create(r.Context(), session.UserID, req.Content, req.Category)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, memory)
}

func (s *Server) handleUpdateMemory(w http.ResponseWriter, r *http.Request) {
	session, _ := sessionFrom(r.Context())

	var req updateMemoryRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Content == "" {
		s.writeError(w, r, fmt.Errorf("%w: content is required", common.ErrorValidation))
		return
	}

	memory, err := s.memories.Update(r.Context(), chi.URLParam(r, "id"), session.UserID, req.Content)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, memory)
}

func (s *Server) handleDeleteMemory(w http.ResponseWriter, r *http.Request) {
	session, _ := sessionFrom(r.Context())

	ok, err := s.memories.Delete(r.Context(), chi.URLParam(r, "id"), session.UserID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": ok})
}
