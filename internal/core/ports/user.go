package ports

import (
	"context"
	"time"

	"github.com/coworkia/coworking-api/internal/core/domain"
)

// UserRepository defines persistence for identity records.
//
// The store is the final arbiter of email uniqueness: Create must return a
// conflict error when the unique index on email (or document_number) is
// violated, so a signup race converges on the same outcome as the pre-check.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// List returns users whose name or email contains q; empty q returns all.
	List(ctx context.Context, q string) ([]*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id string) error
}

// ProfileCache is a read-through cache for user projections. Get returns
// (nil, nil) on a miss; cache failures are never fatal to a request.
type ProfileCache interface {
	Get(ctx context.Context, id string) (*UserProfile, error)
	Set(ctx context.Context, p *UserProfile) error
	Invalidate(ctx context.Context, id string) error
}

// SignUpInput carries the fields accepted at registration.
type SignUpInput struct {
	Name           string
	Email          string
	Password       string
	Phone          string
	DocumentType   string
	DocumentNumber string
	IsAdmin        bool
	Roles          []string
}

// UpdateUserInput is the partial-update shape: nil means "leave unchanged".
// No arbitrary keys exist; only these fields are mutable.
type UpdateUserInput struct {
	Name           *string
	Email          *string
	Password       *string
	Phone          *string
	DocumentType   *string
	DocumentNumber *string
	IsAdmin        *bool
	Roles          *[]string
}

// Empty reports whether the input carries no fields at all.
func (in UpdateUserInput) Empty() bool {
	return in.Name == nil && in.Email == nil && in.Password == nil &&
		in.Phone == nil && in.DocumentType == nil && in.DocumentNumber == nil &&
		in.IsAdmin == nil && in.Roles == nil
}

// UserProfile is the outward projection of a user. It never carries the
// credential hash.
type UserProfile struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	DocumentType   string    `json:"document_type,omitempty"`
	DocumentNumber string    `json:"document_number,omitempty"`
	IsAdmin        bool      `json:"is_admin"`
	Roles          []string  `json:"roles,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AuthResult is returned by signup and login, the only operations that mint tokens.
type AuthResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// UserService defines the identity use cases.
type UserService interface {
	SignUp(ctx context.Context, in SignUpInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GetByID(ctx context.Context, id string) (*UserProfile, error)
	// List requires an admin requester; q filters on name/email substring.
	List(ctx context.Context, q string, requester domain.TokenPayload) ([]*UserProfile, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (*UserProfile, error)
	Delete(ctx context.Context, id string) error
}
