// Package auth enforces teacher-session authentication on incoming
// requests.
package auth

import (
	"encoding/json"
	"net/http"

	"example.com/mergington/internal/session"
)

// TokenHeader carries the opaque session token on guarded requests.
const TokenHeader = "X-Teacher-Token"

// Middleware resolves the session token header before guarded handlers
// run. An absent or unknown token always yields the same generic 401.
type Middleware struct {
	sessions *session.Store
}

// NewMiddleware constructs Middleware backed by the session store.
func NewMiddleware(sessions *session.Store) Middleware {
	return Middleware{sessions: sessions}
}

// Wrap attaches authentication handling to an http.Handler. On success
// the teacher's username is stored in the request context.
func (m Middleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(TokenHeader)
		username, err := m.sessions.Validate(token)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"type":   "unauthorized",
				"detail": "Teacher login required",
			})
			return
		}
		ctx := WithTeacher(r.Context(), username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
