// Package auth implements the admin session gate: one shared password, a
// boolean outcome, and a short-lived session token on success. There is
// deliberately no user identity, lockout or rate limiting; the only
// hardening over the original scheme is that the comparison happens
// server-side and in constant time, so the secret never ships to the
// browser.
package auth

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/elrefaeey/ahmedelrefaey/internal/config"
)

type Gate struct {
	password []byte
	secret   []byte
	ttl      time.Duration
}

func NewGate(cfg *config.Config) *Gate {
	return &Gate{
		password: []byte(cfg.AdminPassword),
		secret:   []byte(cfg.SessionSecret),
		ttl:      cfg.SessionTTL,
	}
}

// AttemptLogin compares the supplied password against the configured secret.
// A correct password always returns true, so repeated correct submissions
// are idempotent; a wrong one changes nothing.
func (g *Gate) AttemptLogin(password string) bool {
	return subtle.ConstantTimeCompare([]byte(password), g.password) == 1
}

// IssueToken mints a session token for a freshly authenticated admin. The
// jti doubles as the key of the admin controller session.
func (g *Gate) IssueToken() (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin",
		ID:        uuid.New().String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
	})
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// VerifyToken checks signature and expiry and returns the session id (jti).
func (g *Gate) VerifyToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return g.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return "", fmt.Errorf("invalid session token: %w", err)
	}
	if !token.Valid || claims.ID == "" {
		return "", fmt.Errorf("invalid session token")
	}
	return claims.ID, nil
}
