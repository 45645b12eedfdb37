package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/fuzzleprime/ad-serving-api/internal/usecases/authenticating"
	"github.com/fuzzleprime/ad-serving-api/pkg/apiErrors"
)

type contextKey string

const (
	// ContextKeyAdmin guarda as claims do administrador autenticado no contexto
	ContextKeyAdmin contextKey = "admin"
)

// AdminOnly restringe a rota a portadores de um token JWT de administração válido
func AdminOnly(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Authorization header is required", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Bearer token is required", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Invalid token", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyAdmin, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
