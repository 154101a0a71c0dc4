package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/lead-cms/internal/session"
	"github.com/xavierca1/lead-cms/internal/usecase"
)

// SessionSource is the slice of session.Manager the gate needs.
type SessionSource interface {
	Current() (session.Identity, bool)
}

func deny(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": code})
}

// RequireAuth rejects anonymous requests.
func RequireAuth(sessions SessionSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := sessions.Current(); !ok {
				deny(w, http.StatusUnauthorized, "UNAUTHENTICATED")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireSection gates a route group on the static role/section table. This
// is the server-side twin of the console's sidebar filtering.
func RequireSection(sessions SessionSource, section usecase.Section) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := sessions.Current()
			if !ok {
				deny(w, http.StatusUnauthorized, "UNAUTHENTICATED")
				return
			}
			if !usecase.CanAccess(identity.Role, section) {
				deny(w, http.StatusForbidden, "FORBIDDEN")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
