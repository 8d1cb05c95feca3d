package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrNoCredential means the request carried no bearer token at all.
	ErrNoCredential = errors.New("no bearer credential supplied")
	// ErrInvalidCredential covers malformed, tampered and expired tokens alike.
	ErrInvalidCredential = errors.New("invalid or expired token")
)

// Claims represents the JWT claims for Skycast authentication.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

// IssueToken creates a signed JWT for the given user.
func IssueToken(userID int64, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "skycast",
			Audience:  jwt.ClaimStrings{"skycast-api"},
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyToken parses and validates a token string, returning the claims if valid.
// Expired and malformed tokens are not distinguished; both fail verification.
func VerifyToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidCredential
		}
		return []byte(secret), nil
	}, jwt.WithIssuer("skycast"), jwt.WithAudience("skycast-api"))
	if err != nil {
		return nil, ErrInvalidCredential
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidCredential
	}

	return claims, nil
}

// FromHeader resolves a raw Authorization header value to a user id.
// A missing or non-bearer header yields ErrNoCredential; a present but
// unverifiable token yields ErrInvalidCredential.
func FromHeader(authHeader, secret string) (int64, error) {
	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if authHeader == "" || !found || token == "" {
		return 0, ErrNoCredential
	}

	claims, err := VerifyToken(token, secret)
	if err != nil {
		return 0, err
	}

	return claims.UserID, nil
}
