package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/zaidasim/swadesh/internal/common"
	"github.com/zaidasim/swadesh/internal/server/models"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	stateCookieName = "swadesh_oauth_state"
	stateTTL        = 10 * time.Minute
	userinfoURL     = "https://www.googleapis.com/oauth2/v2/userinfo"
	loginErrorURL   = "/login?error=auth_failed"
)

// googleUserinfo is the subset of the userinfo payload the app consumes.
type googleUserinfo struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
}

func (s *Server) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     s.cfg.GoogleClientID,
		ClientSecret: s.cfg.GoogleClientSecret,
		RedirectURL:  s.cfg.BaseURL + "/api/auth/callback/google",
		Scopes:       []string{"openid", "profile", "email"},
		Endpoint:     google.Endpoint,
	}
}

func (s *Server) registerAuthRoutes(r chi.Router) {
	r.Get("/api/login", s.handleLogin)
	r.Get("/api/auth/callback/google", s.handleOAuthCallback)
	r.Get("/api/logout", s.handleLogout)
}

// handleLogin starts the code flow: a random state value goes into a
// short-lived cookie and into the redirect URL.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	state, err := common.MakeRandHexString(16)
	if err != nil {
		s.writeError(w, r, fmt.Errorf("error generating state: %w", err))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/",
		MaxAge:   int(stateTTL.Seconds()),
		HttpOnly: true,
		Secure:   s.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, s.oauthConfig().AuthCodeURL(state), http.StatusFound)
}

// handleOAuthCallback finishes the code flow: state check, code exchange,
// profile fetch, then user upsert + session start in one service call. Any
// failure sends the browser back to the login page rather than leaking an
// error payload.
func (s *Server) handleOAuthCallback(w http.ResponseWriter, r *http.Request) {
	stateCookie, err := r.Cookie(stateCookieName)
	if err != nil || stateCookie.Value == "" || r.URL.Query().Get("state") != stateCookie.Value {
		s.logger.Warn(r.Context(), "oauth callback with bad state")
		http.Redirect(w, r, loginErrorURL, http.StatusFound)
		return
	}

	conf := s.oauthConfig()
	token, err := conf.Exchange(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		s.logger.Warn(r.Context(), "oauth code exchange failed", "error", err.Error())
		http.Redirect(w, r, loginErrorURL, http.StatusFound)
		return
	}

	info, err := fetchUserinfo(r, conf, token)
	if err != nil {
		s.logger.Warn(r.Context(), "userinfo fetch failed", "error", err.Error())
		http.Redirect(w, r, loginErrorURL, http.StatusFound)
		return
	}

	_, sessionToken, err := s.sessions.Login(r.Context(), &models.UserProfile{
		ID:              info.ID,
		Email:           info.Email,
		FirstName:       info.GivenName,
		LastName:        info.FamilyName,
		ProfileImageURL: info.Picture,
	})
	if err != nil {
		s.logger.Error(r.Context(), "login failed", "error", err.Error())
		http.Redirect(w, r, loginErrorURL, http.StatusFound)
		return
	}

	s.setSessionCookie(w, sessionToken, int(s.cfg.SessionTTL.Seconds()))
	http.Redirect(w, r, "/", http.StatusFound)
}

// handleLogout revokes the session row and clears the cookie. Safe to call
// without a session.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(common.SessionCookieName); err == nil {
		if err := s.sessions.Logout(r.Context(), cookie.Value); err != nil {
			s.logger.Error(r.Context(), "logout failed", "error", err.Error())
		}
	}
	s.setSessionCookie(w, "", -1)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) setSessionCookie(w http.ResponseWriter, value string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func fetchUserinfo(r *http.Request, conf *oauth2.Config, token *oauth2.Token) (*googleUserinfo, error) {
	resp, err := conf.Client(r.Context(), token).Get(userinfoURL)
	if err != nil {
		return nil, fmt.Errorf("error requesting userinfo: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo returned status %d", resp.StatusCode)
	}

	var info googleUserinfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("error decoding userinfo: %w", err)
	}
	if info.ID == "" {
		return nil, fmt.Errorf("userinfo payload missing subject id")
	}
	return &info, nil
}
