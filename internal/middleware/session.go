package middleware

import (
	"context"
	"net/http"
	"time"

	"healthmate-api/internal/auth"
	"healthmate-api/internal/model"
	"healthmate-api/internal/store"
)

type ctxKey string

const userKey ctxKey = "user"

// Sessions resolves session cookies against the sessions table.
type Sessions struct {
	Store  *store.Store
	Secret string
}

// Resolve returns the user behind the request's session cookie, or nil.
// Missing, malformed, expired and revoked sessions all resolve to nil;
// resolution never errors.
func (s *Sessions) Resolve(r *http.Request) *model.User {
	c, err := r.Cookie(auth.CookieName)
	if err != nil || c.Value == "" {
		return nil
	}
	claims, err := auth.ParseSessionToken(c.Value, s.Secret)
	if err != nil {
		return nil
	}
	sess, err := s.Store.SessionByTokenHash(r.Context(), auth.HashSessionID(claims.SessionID))
	if err != nil {
		return nil
	}
	// expiry is enforced here, not trusted from the token
	if sess.UserID != claims.UserID || time.Now().After(sess.ExpiresAt) {
		return nil
	}
	u, err := s.Store.UserByID(r.Context(), sess.UserID)
	if err != nil {
		return nil
	}
	return u
}

// RequireSession guards API routes; unauthenticated calls get 401 JSON.
func (s *Sessions) RequireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u := s.Resolve(r)
		if u == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"Not authenticated"}`))
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, u)))
	}
}

// RequirePage guards page routes; unauthenticated visits bounce to login.
func (s *Sessions) RequirePage(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u := s.Resolve(r)
		if u == nil {
			http.Redirect(w, r, "/auth/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, u)))
	}
}

// UserFromContext returns the user placed by RequireSession/RequirePage.
func UserFromContext(ctx context.Context) *model.User {
	u, _ := ctx.Value(userKey).(*model.User)
	return u
}
