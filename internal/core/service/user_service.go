package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/coworkia/coworking-api/internal/core/auth"
	"github.com/coworkia/coworking-api/internal/core/domain"
	"github.com/coworkia/coworking-api/internal/core/ports"
)

// UserService implements the identity use cases: signup, login, read,
// partial update and delete. It owns the uniqueness and privilege rules;
// the repository's unique indexes are the final arbiter for the signup race.
type UserService struct {
	repo   ports.UserRepository
	hasher *auth.PasswordHasher
	tokens *auth.TokenManager
	cache  ports.ProfileCache
	audit  ports.AuditTrail
	logger zerolog.Logger
	newID  func() string
}

func NewUserService(
	repo ports.UserRepository,
	hasher *auth.PasswordHasher,
	tokens *auth.TokenManager,
	cache ports.ProfileCache,
	audit ports.AuditTrail,
	logger zerolog.Logger,
) *UserService {
	return &UserService{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		cache:  cache,
		audit:  audit,
		logger: logger,
		newID:  uuid.NewString,
	}
}

func (s *UserService) SignUp(ctx context.Context, in ports.SignUpInput) (*ports.AuthResult, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.NewValidation("name, email and password are required")
	}

	// Advisory pre-check; the unique index catches the concurrent case.
	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.NewConflict("email already registered")
	} else if !domain.IsKind(err, domain.KindNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(ctx, in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:             s.newID(),
		Name:           in.Name,
		Email:          in.Email,
		PasswordHash:   hash,
		Phone:          in.Phone,
		DocumentType:   in.DocumentType,
		DocumentNumber: in.DocumentNumber,
		IsAdmin:        in.IsAdmin,
		Roles:          in.Roles,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Create(user.Payload())
	if err != nil {
		return nil, domain.NewInternal(err)
	}

	s.audit.Enqueue(ports.AuditEntry{UserID: user.ID, Action: ports.AuditSignup, Email: user.Email, At: now})
	s.logger.Info().Str("user_id", user.ID).Msg("user registered")

	return &ports.AuthResult{Message: "user created", Token: token}, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.NewValidation("email and password are required")
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	ok, err := s.hasher.Compare(ctx, password, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.NewBadRequest("invalid credentials")
	}

	token, err := s.tokens.Create(user.Payload())
	if err != nil {
		return nil, domain.NewInternal(err)
	}

	return &ports.AuthResult{Message: "login successful", Token: token}, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*ports.UserProfile, error) {
	if p, err := s.cache.Get(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("user_id", id).Msg("profile cache read failed")
	} else if p != nil {
		return p, nil
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p := profileOf(user)
	if err := s.cache.Set(ctx, p); err != nil {
		s.logger.Warn().Err(err).Str("user_id", id).Msg("profile cache write failed")
	}
	return p, nil
}

func (s *UserService) List(ctx context.Context, q string, requester domain.TokenPayload) ([]*ports.UserProfile, error) {
	if !requester.IsAdmin {
		return nil, domain.NewForbidden("admin privileges required")
	}

	users, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}

	profiles := make([]*ports.UserProfile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, profileOf(u))
	}
	return profiles, nil
}

func (s *UserService) Update(ctx context.Context, id string, in ports.UpdateUserInput) (*ports.UserProfile, error) {
	if in.Empty() {
		return nil, domain.NewValidation("no fields to update")
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := s.hasher.Hash(ctx, *in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.DocumentType != nil {
		user.DocumentType = *in.DocumentType
	}
	if in.DocumentNumber != nil {
		user.DocumentNumber = *in.DocumentNumber
	}
	if in.IsAdmin != nil {
		user.IsAdmin = *in.IsAdmin
	}
	if in.Roles != nil {
		user.Roles = *in.Roles
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("user_id", id).Msg("profile cache invalidation failed")
	}
	s.audit.Enqueue(ports.AuditEntry{UserID: id, Action: ports.AuditUpdate, Email: user.Email, At: user.UpdatedAt})

	return profileOf(user), nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user.IsAdmin {
		return domain.NewForbidden("cannot delete an admin account")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("user_id", id).Msg("profile cache invalidation failed")
	}
	s.audit.Enqueue(ports.AuditEntry{UserID: id, Action: ports.AuditDelete, Email: user.Email, At: time.Now().UTC()})

	return nil
}

func profileOf(u *domain.User) *ports.UserProfile {
	return &ports.UserProfile{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Phone:          u.Phone,
		DocumentType:   u.DocumentType,
		DocumentNumber: u.DocumentNumber,
		IsAdmin:        u.IsAdmin,
		Roles:          u.Roles,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
