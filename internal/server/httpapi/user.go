package httpapi

import "net/http"

func (s *Server) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	session, _ := sessionFrom(r.Context())

	user, err := s.users.Get(r.Context(), session.UserID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleCompleteSetup(w http.ResponseWriter, r *http.Request) {
	session, _ := sessionFrom(r.Context())

	if err := s.users.CompleteSetup(r.Context(), session.UserID); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
