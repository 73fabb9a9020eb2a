// Package auth signs and verifies the session cookie value.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims is the verified content of a session token.
type SessionClaims struct {
	SessionID uuid.UUID
	UserID    uuid.UUID
	ExpiresAt time.Time
}

// JWTManager issues and validates HS256 session tokens. A token only proves
// that the server issued it; the session it names must still be looked up.
type JWTManager struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		issuer: issuer,
		now:    time.Now,
	}
}

// GenerateSessionToken creates a signed token with the session id as jti and
// the user id as subject.
func (m *JWTManager) GenerateSessionToken(sessionID, userID uuid.UUID, expiresAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:        sessionID.String(),
		Subject:   userID.String(),
		Issuer:    m.issuer,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(m.now()),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateSessionToken parses and validates a session token.
func (m *JWTManager) ValidateSessionToken(tokenString string) (SessionClaims, error) {
	if tokenString == "" {
		return SessionClaims{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return SessionClaims{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return SessionClaims{}, fmt.Errorf("invalid token claims")
	}

	sessionID, err := uuid.Parse(claims.ID)
	if err != nil {
		return SessionClaims{}, fmt.Errorf("invalid session id: %w", err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return SessionClaims{}, fmt.Errorf("invalid subject UUID: %w", err)
	}

	return SessionClaims{
		SessionID: sessionID,
		UserID:    userID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
