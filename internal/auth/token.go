package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken покрывает все причины отклонения предъявленного токена:
// битая подпись, чужой секрет, истёкший срок, мусор вместо JWT.
var ErrInvalidToken = errors.New("auth: invalid token")

// Claims — структура утверждений: стандартные плюс идентификатор
// и email владельца.
type Claims struct {
	jwt.RegisteredClaims
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
}

// TokenIssuer выпускает и проверяет bearer‑токены. Секрет и TTL фиксируются
// при старте процесса и далее только читаются.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer создаёт эмитент токенов. Пустой секрет — ошибка конфигурации,
// с которой процесс не должен подниматься.
func NewTokenIssuer(secret string, ttl time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, errors.New("auth: signing secret is required")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}, nil
}

// Issue подписывает токен HS256 с user_id, email, iat и exp = iat + TTL.
func (i *TokenIssuer) Issue(userID uint, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		UserID: userID,
		Email:  email,
	})
	return token.SignedString(i.secret)
}

// Verify проверяет подпись и срок действия. Детали ошибок библиотеки наружу
// не выходят — только ErrInvalidToken.
func (i *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
