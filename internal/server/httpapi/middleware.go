package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/zaidasim/swadesh/internal/common"
	"github.com/zaidasim/swadesh/internal/server/models"
)

type ctxKey int

const sessionCtxKey ctxKey = iota

// sessionFrom returns the session resolved by the auth middleware, if any.
func sessionFrom(ctx context.Context) (*models.Session, bool) {
	session, ok := ctx.Value(sessionCtxKey).(*models.Session)
	return session, ok
}

// resolveSession reads the session cookie and verifies it. Absent cookie and
// invalid session are reported the same way.
func (s *Server) resolveSession(r *http.Request) (*models.Session, error) {
	cookie, err := r.Cookie(common.SessionCookieName)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}
	return s.sessions.Resolve(r.Context(), cookie.Value)
}

// requireAuth rejects requests without a live session.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := s.resolveSession(r)
		if err != nil {
			s.writeError(w, r, common.ErrorUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), sessionCtxKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// optionalAuth attaches the session when one is present and lets anonymous
// requests through untouched. Chat endpoints use it to personalize answers
// for logged-in callers.
func (s *Server) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if session, err := s.resolveSession(r); err == nil {
			r = r.WithContext(context.WithValue(r.Context(), sessionCtxKey, session))
		}
		next.ServeHTTP(w, r)
	})
}

// logRequests emits one structured line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).String(),
		)
	})
}
