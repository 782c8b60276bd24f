package token

import (
	"casino_platform/internal/model"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateAccessToken - короткоживущий access токен игрока.
// В claims кладется только ID: баланс и логин живут в БД,
// токен их не дублирует
func GenerateAccessToken(user *model.User, secretKey []byte, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := model.UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        strconv.Itoa(user.ID),
			Subject:   user.Login,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secretKey)
}

// VerifyToken - проверяет подпись и срок действия access токена
func VerifyToken(tokenStr string, secretKey []byte) (*model.UserClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &model.UserClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected token signing method")
		}
		return secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid access token: %w", err)
	}

	claims, ok := parsed.Claims.(*model.UserClaims)
	if !ok {
		return nil, errors.New("invalid access token claims")
	}

	return claims, nil
}
