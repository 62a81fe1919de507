package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/claydesk/flowtest-api/internal/api/shared"
	"github.com/claydesk/flowtest-api/internal/redact"
	"github.com/claydesk/flowtest-api/internal/service/auth"
)

// AuthMiddleware provides bearer-token authentication for routes.
type AuthMiddleware struct {
	tokenService auth.TokenService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(tokenService auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate validates bearer tokens from the Authorization header and
// adds the resolved principal to the request context for authorized
// requests. Every validation failure surfaces as a 401; the response does
// not distinguish expired from invalid tokens.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		// Check Bearer prefix
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		token := parts[1]

		claims, err := m.tokenService.VerifyToken(r.Context(), token)
		if err != nil {
			switch err {
			case auth.ErrExpiredToken, auth.ErrInvalidToken:
				// Uniform message: callers learn nothing about why the
				// token was rejected.
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			default:
				slog.Error("failed to validate token", "error", redact.Error(err))
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		ctx := shared.WithPrincipal(r.Context(), claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetPrincipal extracts the authenticated username from the request context.
// Returns the username and a boolean indicating if it was found.
func GetPrincipal(r *http.Request) (string, bool) {
	return shared.PrincipalFromContext(r.Context())
}
