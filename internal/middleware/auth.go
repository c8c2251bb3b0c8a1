package middleware

import (
	"context"
	"net/http"
	"strings"

	"NotesBro/internal/auth"
)

type contextKey string

const claimsContextKey contextKey = "auth_claims"

// WithAuth разбирает заголовок Authorization: Bearer <token> и при валидном
// токене кладёт claims в контекст запроса. Отсутствующий или невалидный
// токен НЕ прерывает запрос: анонимные чтения разрешены, решение о доступе
// принимают хендлеры мутирующих операций.
func WithAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := bearerToken(r); token != "" {
				if claims, err := auth.ParseToken(token, secret); err == nil {
					ctx := context.WithValue(r.Context(), claimsContextKey, claims)
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken достаёт токен из заголовка Authorization.
func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(h) > len(prefix) && strings.EqualFold(h[:len(prefix)], prefix) {
		return h[len(prefix):]
	}
	return ""
}

// GetClaimsFromContext возвращает claims аутентифицированного запроса.
func GetClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*auth.Claims)
	return claims, ok
}
