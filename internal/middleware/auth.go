package middleware

import (
	"context"
	"net/http"
	"strings"

	"lucky_wheel/internal/converter"
	"lucky_wheel/internal/model"
	"lucky_wheel/pkg/token"
)

type ctxKey int

const claimsKey ctxKey = iota

// Auth проверяет Bearer access токен и кладет claims в контекст
func Auth(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				converter.WriteError(w, model.ErrUnauthorized)
				return
			}

			claims, err := token.VerifyToken(strings.TrimPrefix(header, "Bearer "), secretKey)
			if err != nil {
				converter.WriteError(w, model.ErrUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// OwnerOnly пропускает только токены с ролью owner. Ставится после Auth
func OwnerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			converter.WriteError(w, model.ErrUnauthorized)
			return
		}
		if claims.Role != model.RoleOwner {
			converter.WriteError(w, model.ErrForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func WithClaims(ctx context.Context, claims *model.PlayerClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

func ClaimsFromContext(ctx context.Context) (*model.PlayerClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(*model.PlayerClaims)
	return claims, ok
}

// PlayerFromContext адрес игрока из токена
func PlayerFromContext(ctx context.Context) (string, bool) {
	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return "", false
	}
	return claims.Subject, true
}
