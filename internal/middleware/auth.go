// internal/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/rushilcs/data-viewer/internal/auth"
	"github.com/rushilcs/data-viewer/internal/model"
	"github.com/rushilcs/data-viewer/internal/repository"
	"github.com/rushilcs/data-viewer/internal/service"
)

type contextKey string

const userKey = contextKey("authenticated_user")

// UserFromContext returns the authenticated user loaded by the auth
// middleware, or nil when the request carried no valid session.
func UserFromContext(ctx context.Context) *model.User {
	user, _ := ctx.Value(userKey).(*model.User)
	return user
}

// RequireAuth validates the bearer token and loads the active user row into
// the request context. Requests without a valid session are rejected.
func RequireAuth(tokenManager *auth.TokenManager, users repository.UserRepositoryIface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := resolveUser(r, tokenManager, users)
			if !ok {
				respondWithError(w, http.StatusUnauthorized, "invalid or missing credentials")
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, user)))
		})
	}
}

// OptionalAuth loads the user when a valid session is present but lets the
// request through either way. The upload and stream endpoints use it: they
// accept a capability token in place of a session.
func OptionalAuth(tokenManager *auth.TokenManager, users repository.UserRepositoryIface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user, ok := resolveUser(r, tokenManager, users); ok {
				r = r.WithContext(context.WithValue(r.Context(), userKey, user))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func resolveUser(r *http.Request, tokenManager *auth.TokenManager, users repository.UserRepositoryIface) (*model.User, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims, err := tokenManager.Validate(parts[1])
	if err != nil {
		return nil, false
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, false
	}
	orgID, err := uuid.Parse(claims.OrgID)
	if err != nil {
		return nil, false
	}

	// The row is reloaded on every request so deactivation and role changes
	// take effect before the token expires.
	user, err := users.FindActiveByID(r.Context(), userID, orgID)
	if err != nil {
		return nil, false
	}
	return user, true
}

// RequestMetadata stashes the caller's IP and user agent for audit trails.
func RequestMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := r.Header.Get("X-Forwarded-For")
		if ip == "" {
			ip = r.RemoteAddr
		} else if i := strings.IndexByte(ip, ','); i >= 0 {
			ip = strings.TrimSpace(ip[:i])
		}
		ctx := context.WithValue(r.Context(), service.ContextKeyIP, ip)
		ctx = context.WithValue(ctx, service.ContextKeyUserAgent, r.UserAgent())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
