// Package auth holds the credential hashing and token issuance primitives
// shared by the identity service and the HTTP middleware.
package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"

	"github.com/coworkia/coworking-api/internal/core/domain"
)

const defaultMaxConcurrent = 4

// PasswordHasher wraps bcrypt with a fixed cost factor and a bound on how
// many hash computations may run at once. bcrypt is CPU-bound and its cost
// scales geometrically, so unbounded concurrent signups could starve every
// other request.
type PasswordHasher struct {
	cost int
	sem  *semaphore.Weighted
}

// NewPasswordHasher validates the cost factor eagerly. An out-of-range cost
// is a configuration error; callers treat it as fatal at startup.
func NewPasswordHasher(cost, maxConcurrent int) (*PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("auth: bcrypt cost %d outside [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrent
	}
	return &PasswordHasher{
		cost: cost,
		sem:  semaphore.NewWeighted(int64(maxConcurrent)),
	}, nil
}

// Hash derives a salted one-way hash of plaintext. Two calls with the same
// input produce different outputs; bcrypt embeds a fresh salt per call.
func (h *PasswordHasher) Hash(ctx context.Context, plaintext string) (string, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer h.sem.Release(1)

	out, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", domain.NewInternal(fmt.Errorf("hash password: %w", err))
	}
	return string(out), nil
}

// Compare reports whether plaintext matches the stored hash. A mismatch is
// (false, nil); a malformed or truncated stored hash is an internal error so
// operators can tell data corruption apart from a wrong password.
func (h *PasswordHasher) Compare(ctx context.Context, plaintext, hash string) (bool, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return false, err
	}
	defer h.sem.Release(1)

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, domain.NewInternal(fmt.Errorf("compare password hash: %w", err))
	}
}
