// Package middleware содержит HTTP middleware сервера.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/IvanChernomyrdin/go-auth-service/internal/server/crypto"
)

// ctxKey используется как тип ключа для хранения значений в context.Context.
// Отдельный тип предотвращает коллизии ключей между пакетами.
type ctxKey string

// userIDKey — ключ контекста, под которым хранится ID аутентифицированного пользователя.
const userIDKey ctxKey = "user_id"

// tokenIDKey — ключ контекста, под которым хранится ID предъявленного токена.
const tokenIDKey ctxKey = "token_id"

// TokenVerifier инкапсулирует параметры проверки bearer-токенов.
//
// Middleware проверяет только подпись и claims (быстро, без БД);
// существование записи токена проверяет сервис при whoami.
type TokenVerifier struct {
	cfg crypto.TokenConfig
}

// NewTokenVerifier создаёт новый TokenVerifier с заданными параметрами.
func NewTokenVerifier(signingKey, issuer, audience string) *TokenVerifier {
	return &TokenVerifier{cfg: crypto.TokenConfig{
		SigningKey: signingKey,
		Issuer:     issuer,
		Audience:   audience,
	}}
}

// UserIDFromContext извлекает userID аутентифицированного пользователя из контекста.
//
// Возвращает:
//   - userID
//   - false, если пользователь не аутентифицирован
func UserIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(userIDKey)
	s, ok := v.(string)
	return s, ok
}

// TokenIDFromContext извлекает ID предъявленного токена (jti) из контекста.
func TokenIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(tokenIDKey)
	s, ok := v.(string)
	return s, ok
}

// AuthMiddleware возвращает HTTP middleware для проверки bearer-токенов.
//
// Middleware:
//   - ожидает заголовок Authorization: Bearer <token>
//   - валидирует подпись и claims токена
//   - сохраняет userID (sub) и tokenID (jti) в context.Context
//
// В случае ошибки возвращает HTTP 401 Unauthorized. Текст ответа намеренно
// одинаковый для всех причин отказа, чтобы не подсказывать атакующему.
func (v *TokenVerifier) AuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := ExtractBearer(r.Header.Get("Authorization"))
			if tokenStr == "" {
				unauthorized(w)
				return
			}

			claims, err := crypto.ParseAccessToken(tokenStr, v.cfg)
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			ctx = context.WithValue(ctx, tokenIDKey, claims.TokenID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// единый 401 ответ в формате API
func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"status":"failed","message":"Unauthorized"}`))
}

// ExtractBearer извлекает токен из заголовка Authorization.
//
// Ожидаемый формат:
//
//	Authorization: Bearer <token>
//
// Возвращает пустую строку, если формат некорректен.
func ExtractBearer(h string) string {
	h = strings.TrimSpace(h)
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
