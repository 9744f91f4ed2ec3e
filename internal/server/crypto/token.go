// Package crypto содержит криптографические примитивы сервера:
// хэширование паролей (argon2id) и подпись bearer-токенов.
//
// Bearer-токен — это подписанный JWT, у которого:
//   - jti указывает на запись в таблице access_tokens;
//   - sub содержит id пользователя.
//
// Срок жизни у токена не задаётся (exp отсутствует): токен действует,
// пока существует его запись в БД.
package crypto

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenConfig описывает параметры подписи bearer-токенов.
type TokenConfig struct {
	// Issuer — значение поля iss (кто выдал токен).
	Issuer string
	// Audience — значение поля aud (для кого предназначен токен).
	Audience string
	// SigningKey — секретный ключ для подписи токена (HS256).
	// Должен быть достаточно длинным и случайным.
	SigningKey string
}

// TokenClaims — расшифрованные данные токена после проверки подписи.
type TokenClaims struct {
	// TokenID — id записи в access_tokens (jti).
	TokenID string
	// UserID — id владельца токена (sub).
	UserID string
}

// NewAccessToken создаёт и подписывает bearer-токен.
//
// Токен содержит стандартные RegisteredClaims:
//   - iss (Issuer)
//   - aud (Audience)
//   - sub (userID)
//   - jti (tokenID — id записи токена в БД)
//   - iat (IssuedAt)
//
// exp намеренно не проставляется. Используется алгоритм подписи HS256.
func NewAccessToken(tokenID, userID string, cfg TokenConfig) (string, error) {
	claims := jwt.RegisteredClaims{
		Issuer:   cfg.Issuer,
		Audience: []string{cfg.Audience},
		Subject:  userID,
		ID:       tokenID,
		IssuedAt: jwt.NewNumericDate(time.Now()),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(cfg.SigningKey))
}

// ParseAccessToken проверяет подпись и claims токена и возвращает TokenClaims.
//
// Проверяется:
//   - алгоритм подписи (только HS256)
//   - подпись
//   - iss и aud, если заданы в конфиге
//   - непустые jti и sub
//
// Любая проблема превращается в непустую ошибку; детали наружу не отдаются.
func ParseAccessToken(tokenStr string, cfg TokenConfig) (TokenClaims, error) {
	claims := &jwt.RegisteredClaims{}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	_, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return []byte(cfg.SigningKey), nil
	})
	if err != nil {
		return TokenClaims{}, err
	}

	if cfg.Issuer != "" && claims.Issuer != cfg.Issuer {
		return TokenClaims{}, errors.New("invalid token issuer")
	}

	if cfg.Audience != "" {
		ok := false
		for _, aud := range claims.Audience {
			if aud == cfg.Audience {
				ok = true
				break
			}
		}
		if !ok {
			return TokenClaims{}, errors.New("invalid token audience")
		}
	}

	tokenID := strings.TrimSpace(claims.ID)
	userID := strings.TrimSpace(claims.Subject)
	if tokenID == "" || userID == "" {
		return TokenClaims{}, errors.New("invalid token claims")
	}

	return TokenClaims{TokenID: tokenID, UserID: userID}, nil
}
