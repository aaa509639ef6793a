// Package middleware provides HTTP middleware for session token authentication.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// sessionIDKey is the context key for storing the authenticated session ID.
const sessionIDKey ContextKey = "sessionID"

// TokenValidator is an interface for validating session tokens.
// This allows the middleware to work with any token service implementation.
type TokenValidator interface {
	ValidateToken(tokenString string) (SessionIDGetter, error)
}

// SessionIDGetter is an interface for extracting the session ID from token claims.
type SessionIDGetter interface {
	GetSessionID() string
}

// AuthMiddleware creates middleware that validates bearer tokens and adds the
// session ID to the request context. When pathParam is set, the token's
// session must equal that path value.
func AuthMiddleware(validator TokenValidator, pathParam string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := bearerToken(r)
			if !ok {
				unauthorized(w)
				return
			}

			claims, err := validator.ValidateToken(tokenString)
			if err != nil {
				unauthorized(w)
				return
			}

			sessionID := claims.GetSessionID()
			if sessionID == "" {
				unauthorized(w)
				return
			}
			if pathParam != "" && r.PathValue(pathParam) != sessionID {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from a case-insensitive "Bearer" Authorization header.
func bearerToken(r *http.Request) (string, bool) {
	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], parts[1] != ""
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="sessions"`)
	http.Error(w, "Unauthorized", http.StatusUnauthorized)
}

// GetSessionID extracts the authenticated session ID from the request context.
func GetSessionID(r *http.Request) (string, error) {
	sessionID, ok := r.Context().Value(sessionIDKey).(string)
	if !ok || sessionID == "" {
		return "", fmt.Errorf("session ID not found in request context")
	}
	return sessionID, nil
}
