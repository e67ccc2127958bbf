// Package jwt issues and checks the bearer tokens that identify forum users.
package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid or malformed token")
	ErrExpiredToken = errors.New("token has expired")
)

// clockSkew tolerated on exp/iat between the issuer and this service.
const clockSkew = 30 * time.Second

// Claims carries the forum uid.
type Claims struct {
	UID string `json:"uid"`
	jwt.RegisteredClaims
}

// GenerateAccessToken signs an HS256 token for uid valid for expiry.
func GenerateAccessToken(uid, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	return jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UID: uid,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   uid,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}).SignedString([]byte(secret))
}

// VerifyToken checks the signature and expiry of an HS256 token. Expired
// tokens return ErrExpiredToken; every other failure is ErrInvalidToken.
func VerifyToken(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (interface{}, error) { return []byte(secret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(clockSkew),
	)
	switch {
	case err == nil:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	default:
		return nil, ErrInvalidToken
	}
}
