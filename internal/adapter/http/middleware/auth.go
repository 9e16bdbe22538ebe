package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/iskender/paycore/internal/infrastructure/auth"
)

// ContextKey is the type for context keys.
type ContextKey string

const (
	// CallerIDContextKey is the context key for the authenticated caller.
	CallerIDContextKey ContextKey = "caller_id"
)

// Header names for caller-supplied identity and idempotency.
const (
	HeaderCorrelationID = "X-Correlation-ID"
	HeaderUserID        = "X-User-Id"
)

// CallerID extracts the authenticated caller id from ctx. Returns an
// empty string when no identity was established.
func CallerID(ctx context.Context) string {
	id, _ := ctx.Value(CallerIDContextKey).(string)
	return id
}

// AuthMiddleware authenticates requests with a Bearer JWT and stores
// the caller id in the request context.
func AuthMiddleware(jwtManager *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "missing authorization header", http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "invalid authorization header format", http.StatusUnauthorized)
				return
			}

			claims, err := jwtManager.Verify(parts[1])
			if err != nil {
				http.Error(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), CallerIDContextKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// HeaderIdentity trusts the X-User-Id header as the caller identity.
// Meant for deployments behind a gateway that authenticates upstream
// and for local runs with auth disabled.
func HeaderIdentity() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userID := r.Header.Get(HeaderUserID); userID != "" {
				ctx := context.WithValue(r.Context(), CallerIDContextKey, userID)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}
