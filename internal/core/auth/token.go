package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/coworkia/coworking-api/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// ErrInvalidToken is returned by Verify for every verification failure.
// Bad signature, expiry, and malformed input are deliberately not
// distinguished to callers; the wrapped cause stays available for logs.
var ErrInvalidToken = domain.NewUnauthorized("invalid or expired token")

type claims struct {
	Name    string   `json:"name"`
	IsAdmin bool     `json:"is_admin"`
	Roles   []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies HS256 identity tokens. The secret is
// process-wide and loaded once; validity is purely signature plus expiry,
// there is no revocation.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager requires a non-empty signing secret; absence is a fatal
// startup error for the caller.
func NewTokenManager(secret string, ttl time.Duration) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("auth: signing secret must not be empty")
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}, nil
}

// TTL returns the lifetime applied to issued tokens.
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// Create issues a signed token embedding payload with an expiry of now+TTL.
func (m *TokenManager) Create(payload domain.TokenPayload) (string, error) {
	now := time.Now().UTC()
	c := claims{
		Name:    payload.Name,
		IsAdmin: payload.IsAdmin,
		Roles:   payload.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   payload.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := t.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry, returning the embedded payload on
// success and ErrInvalidToken (with the cause wrapped) on any failure.
func (m *TokenManager) Verify(token string) (*domain.TokenPayload, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, &domain.AppError{
			Kind:        domain.KindAuthentication,
			Message:     ErrInvalidToken.Message,
			Status:      ErrInvalidToken.Status,
			Operational: true,
			Err:         err,
		}
	}

	return &domain.TokenPayload{
		ID:      c.Subject,
		Name:    c.Name,
		IsAdmin: c.IsAdmin,
		Roles:   c.Roles,
	}, nil
}
