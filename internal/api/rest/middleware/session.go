// Package middleware provides various middleware functionality.
package middleware

import (
	"context"
	"net/http"

	"github.com/Igbinosa-Christian/scissorapp/internal/config"
	"github.com/Igbinosa-Christian/scissorapp/internal/service/secretary"
)

type usernameKey struct{}

// SessionHandler sets object structure.
type SessionHandler struct {
	sec secretary.Secretary
	cfg *config.SecretConfig
}

// NewSessionHandler initializes a new session handler.
func NewSessionHandler(sec secretary.Secretary, cfg *config.SecretConfig) (*SessionHandler, error) {
	return &SessionHandler{
		sec: sec,
		cfg: cfg,
	}, nil
}

// SessionHandle decodes the session cookie and injects the signed-in username into the request context.
// Requests without a valid cookie pass through anonymously.
func (s *SessionHandler) SessionHandle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(s.cfg.SessionID)
		if err == nil {
			username, err := s.sec.Decode(cookie.Value)
			if err == nil && username != "" {
				ctx := context.WithValue(r.Context(), usernameKey{}, username)
				r = r.WithContext(ctx)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuth redirects anonymous requests to the login page.
func (s *SessionHandler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUsername(r); !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SetSession writes an encrypted session cookie for the given username.
func (s *SessionHandler) SetSession(w http.ResponseWriter, username string) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.SessionID,
		Value:    s.sec.Encode(username),
		Path:     "/",
		HttpOnly: true,
	})
}

// ClearSession expires the session cookie.
func (s *SessionHandler) ClearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.SessionID,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// GetUsername extracts the signed-in username from the request context.
func GetUsername(r *http.Request) (string, bool) {
	username, ok := r.Context().Value(usernameKey{}).(string)
	return username, ok
}
