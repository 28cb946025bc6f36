package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pms/internal/domain/users"
)

var ErrInvalidToken = errors.New("invalid session token")

// Session is the self-declared role and user a client acts as.
type Session struct {
	Role     users.Role `json:"role"`
	UserID   int64      `json:"userId"`
	UserName string     `json:"userName"`
}

type Claims struct {
	UserID   int64  `json:"uid"`
	UserName string `json:"name"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func GenerateToken(secret string, s Session, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	expires := now.Add(ttl)
	claims := Claims{
		UserID:   s.UserID,
		UserName: s.UserName,
		Role:     string(s.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expires, nil
}

func ParseToken(secret, tokenString string) (Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Session{}, errors.Join(ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Session{}, ErrInvalidToken
	}
	role, err := users.ParseRole(claims.Role)
	if err != nil || claims.UserID <= 0 {
		return Session{}, ErrInvalidToken
	}
	return Session{Role: role, UserID: claims.UserID, UserName: claims.UserName}, nil
}
