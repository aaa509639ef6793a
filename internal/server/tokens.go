package server

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/server/middleware"
)

// Claims represents session token claims.
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// GetSessionID returns the session ID from the claims.
// This implements the middleware.SessionIDGetter interface.
func (c *Claims) GetSessionID() string {
	return c.SessionID
}

// AsTokenValidator returns a TokenValidator adapter for this TokenService.
// This allows the TokenService to be used with middleware without creating import cycles.
func (s *TokenService) AsTokenValidator() middleware.TokenValidator {
	return &tokenServiceValidator{service: s}
}

// tokenServiceValidator adapts TokenService to middleware.TokenValidator interface.
type tokenServiceValidator struct {
	service *TokenService
}

func (v *tokenServiceValidator) ValidateToken(tokenString string) (middleware.SessionIDGetter, error) {
	claims, err := v.service.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// TokenService issues and validates the bearer tokens bound to wizard sessions.
type TokenService struct {
	config *config.SessionConfig
	now    func() time.Time
}

// NewTokenService creates a new token service with the given configuration.
func NewTokenService(cfg *config.SessionConfig) *TokenService {
	return &TokenService{config: cfg, now: time.Now}
}

// GenerateToken generates a token for sessionID and returns it with its expiry.
func (s *TokenService) GenerateToken(sessionID string) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.config.TTL())

	claims := &Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a token and returns the claims.
func (s *TokenService) ValidateToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token string is empty")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, fmt.Errorf("invalid token signature: %w", err)
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, fmt.Errorf("token expired: %w", err)
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, fmt.Errorf("malformed token: %w", err)
		}
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid || claims.SessionID == "" {
		return nil, fmt.Errorf("token is not valid")
	}

	return claims, nil
}
