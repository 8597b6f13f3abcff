// Package auth authenticates staff requests with bearer JWTs and puts
// the caller's identity in the request context.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/attesto/attesto/internal/adjustment"
)

// Staff is the authenticated caller. Role gates the financial
// operations, everything else only needs the ID for audit trails.
type Staff struct {
	ID   string
	Role adjustment.Role
}

type claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

type ctxKey struct{}

func WithStaff(ctx context.Context, s Staff) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func FromContext(ctx context.Context) (Staff, bool) {
	s, ok := ctx.Value(ctxKey{}).(Staff)
	return s, ok
}

func Middleware(secret string) func(http.Handler) http.Handler {
	key := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			var c claims

			_, err := jwt.ParseWithClaims(raw, &c, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
				}

				return key, nil
			})
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			if c.Subject == "" {
				http.Error(w, "token has no subject", http.StatusUnauthorized)
				return
			}

			staff := Staff{ID: c.Subject, Role: adjustment.Role(c.Role)}

			next.ServeHTTP(w, r.WithContext(WithStaff(r.Context(), staff)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")

	const prefix = "Bearer "
	if !strings.HasPrefix(h, prefix) {
		return "", false
	}

	return strings.TrimPrefix(h, prefix), true
}
