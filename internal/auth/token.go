package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"NotesBro/internal/model"
)

// TokenTTL — срок жизни выданного токена.
const TokenTTL = 24 * time.Hour

// ErrInvalidToken возвращается при любой неуспешной проверке токена:
// битая подпись, истёкший срок, неожиданный алгоритм. Причина наружу не раскрывается.
var ErrInvalidToken = errors.New("invalid token")

// Claims — полезная нагрузка токена. Роль берётся только отсюда,
// т.к. она криптографически привязана подписью.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// IsAdmin сообщает, даёт ли токен право на мутации каталога.
func (c *Claims) IsAdmin() bool { return c.Role == model.RoleAdmin }

// GenerateToken выпускает подписанный HS256-токен для пользователя со сроком TokenTTL.
func GenerateToken(u *model.User, secret string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
		UserID:   u.ID,
		Username: u.Username,
		Role:     u.Role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseToken проверяет подпись и срок действия и возвращает claims.
// Единственный путь верификации: никаких обходных токенов.
func ParseToken(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		// принимаем только HMAC, иначе подпись можно подделать alg=none/RS256-трюками
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
