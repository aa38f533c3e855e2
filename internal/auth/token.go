// Package auth issues and verifies the JWTs used as session tokens.
package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenLifetime is how long an issued session token stays valid.
const TokenLifetime = 24 * time.Hour

var ErrTokenInvalid = errors.New("the session token is invalid or expired")

// Claims is the JWT payload. The subject is the user ID.
type Claims struct {
	UserID uuid.UUID `json:"userId"`
	jwt.RegisteredClaims
}

// Secret returns the signing secret for session tokens.
//
// It is read from the JWT_SECRET environment variable. The fallback is only
// acceptable for local development, production deployments must set it.
func Secret() []byte {
	if s, ok := os.LookupEnv("JWT_SECRET"); ok {
		return []byte(s)
	}

	return []byte("spendbase-dev-secret")
}

// GenerateToken signs a session token for the user.
func GenerateToken(secret []byte, userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken verifies a session token and returns its claims.
func ParseToken(secret []byte, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
