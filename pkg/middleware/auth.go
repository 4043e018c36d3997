package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/launchbase/launchbase/pkg/auth"
	"github.com/launchbase/launchbase/pkg/response"
)

type authKey struct{}

// AuthMiddleware validates the bearer token and stores the claims in the
// request context for handlers and role checks downstream.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")

		if token == "" || token == header {
			response.Unauthorized(w, "Missing bearer token")
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), authKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromCtx returns the verified token claims, if the request passed
// AuthMiddleware.
func ClaimsFromCtx(r *http.Request) (*auth.Claims, bool) {
	claims, ok := r.Context().Value(authKey{}).(*auth.Claims)
	return claims, ok
}

// UserIDFromCtx returns the authenticated user's id.
func UserIDFromCtx(r *http.Request) (uint, bool) {
	claims, ok := ClaimsFromCtx(r)
	if !ok {
		return 0, false
	}
	return claims.UserID, true
}

// RoleFromCtx returns the authenticated user's role.
func RoleFromCtx(r *http.Request) (string, bool) {
	claims, ok := ClaimsFromCtx(r)
	if !ok {
		return "", false
	}
	return claims.Role, true
}
