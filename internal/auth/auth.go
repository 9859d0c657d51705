// Package auth verifies the bearer tokens issued by the hosted identity
// provider and attaches the authenticated user to the request context.
// Tokens are HS256-signed JWTs carrying the user id in "sub", the address
// in "email", and a free-form "user_metadata" object.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/safariswap/backend/internal/domain"
)

// ErrUnauthorized is returned for missing, malformed, expired, or
// badly-signed tokens. Handlers map it to 401.
var ErrUnauthorized = errors.New("unauthorized")

type contextKey struct{}

var userKey contextKey

// claims is the subset of the identity provider's token payload we read.
type claims struct {
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
	jwt.RegisteredClaims
}

// Verifier validates bearer tokens against a shared HS256 secret.
type Verifier struct {
	secret []byte
}

// NewVerifier constructs a Verifier for the given signing secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify parses and validates a raw token string and returns the user it
// identifies. Any failure comes back wrapping ErrUnauthorized — callers
// never learn whether the signature, expiry, or shape was at fault.
func (v *Verifier) Verify(tokenString string) (domain.User, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return domain.User{}, fmt.Errorf("auth.Verifier.Verify: %w", ErrUnauthorized)
	}
	if c.Subject == "" {
		return domain.User{}, fmt.Errorf("auth.Verifier.Verify: token has no subject: %w", ErrUnauthorized)
	}
	return domain.User{
		ID:       c.Subject,
		Email:    c.Email,
		Metadata: c.UserMetadata,
	}, nil
}

// RequireUser is the route middleware guarding the admin surface. It
// extracts the bearer token, verifies it, and stores the user in the
// request context; requests without a valid token get 401 and never reach
// the handler.
func (v *Verifier) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := bearerToken(r)
		if !ok {
			unauthorized(w)
			return
		}
		user, err := v.Verify(raw)
		if err != nil {
			unauthorized(w)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

// WithUser returns a context carrying the authenticated user.
func WithUser(ctx context.Context, u domain.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// UserFrom extracts the authenticated user from ctx. The second return is
// false outside a RequireUser-guarded route.
func UserFrom(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(userKey).(domain.User)
	return u, ok
}

// bearerToken pulls the raw token out of the Authorization header.
func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return "", false
	}
	return h[len(prefix):], true
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
}
