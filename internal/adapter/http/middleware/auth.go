package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/kioko/vaultledger/internal/infrastructure/auth"
)

// ContextKey is the type for context keys.
type ContextKey string

const (
	// OperatorContextKey is the context key for the authenticated operator.
	OperatorContextKey ContextKey = "operator"
)

// Operator is the authenticated back-office user attached to the request.
type Operator struct {
	ID   string
	Name string
	Role string
}

// AuthMiddleware verifies the bearer token and tracks session activity. A
// token that sat idle past the inactivity window is rejected even if the JWT
// itself has not expired.
func AuthMiddleware(jwtManager *auth.JWTManager, sessions *auth.SessionManager) func(http.Handler) http.Handler {
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

			if sessions != nil {
				if err := sessions.Touch(claims.OperatorID); err != nil {
					http.Error(w, "session expired", http.StatusUnauthorized)
					return
				}
			}

			operator := &Operator{
				ID:   claims.OperatorID,
				Name: claims.Name,
				Role: claims.Role,
			}

			ctx := context.WithValue(r.Context(), OperatorContextKey, operator)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole checks that the authenticated operator holds one of the given
// roles.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			operator, ok := r.Context().Value(OperatorContextKey).(*Operator)
			if !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			for _, role := range roles {
				if operator.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			http.Error(w, "insufficient permissions", http.StatusForbidden)
		})
	}
}

// GetOperatorFromContext extracts the authenticated operator from context.
func GetOperatorFromContext(ctx context.Context) (*Operator, bool) {
	operator, ok := ctx.Value(OperatorContextKey).(*Operator)
	return operator, ok
}
