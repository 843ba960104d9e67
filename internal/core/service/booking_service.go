package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/coworkia/coworking-api/internal/core/domain"
	"github.com/coworkia/coworking-api/internal/core/ports"
)

// BookingService implements booking use cases. Non-admin callers are scoped
// to their own bookings; status changes follow the booking state machine.
type BookingService struct {
	repo   ports.BookingRepository
	spaces ports.SpaceRepository
	logger zerolog.Logger
	newID  func() string
}

func NewBookingService(repo ports.BookingRepository, spaces ports.SpaceRepository, logger zerolog.Logger) *BookingService {
	return &BookingService{repo: repo, spaces: spaces, logger: logger, newID: uuid.NewString}
}

func (s *BookingService) Create(ctx context.Context, in ports.CreateBookingInput, requester domain.TokenPayload) (*domain.Booking, error) {
	if in.SpaceID == "" || in.StartTime.IsZero() || in.EndTime.IsZero() {
		return nil, domain.NewValidation("space_id, start_time and end_time are required")
	}
	if !in.EndTime.After(in.StartTime) {
		return nil, domain.NewValidation("end_time must be after start_time")
	}
	if _, err := s.spaces.FindByID(ctx, in.SpaceID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:         s.newID(),
		UserID:     requester.ID,
		SpaceID:    in.SpaceID,
		StartTime:  in.StartTime,
		EndTime:    in.EndTime,
		TotalPrice: in.TotalPrice,
		Status:     domain.BookingPending,
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.logger.Info().Str("booking_id", booking.ID).Str("space_id", booking.SpaceID).Msg("booking created")
	return booking, nil
}

func (s *BookingService) Get(ctx context.Context, id string, requester domain.TokenPayload) (*domain.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !requester.IsAdmin && booking.UserID != requester.ID {
		return nil, domain.NewForbidden("not your booking")
	}
	return booking, nil
}

func (s *BookingService) List(ctx context.Context, requester domain.TokenPayload) ([]*domain.Booking, error) {
	scope := requester.ID
	if requester.IsAdmin {
		scope = ""
	}
	return s.repo.List(ctx, scope)
}

func (s *BookingService) Update(ctx context.Context, id string, in ports.UpdateBookingInput, requester domain.TokenPayload) (*domain.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !requester.IsAdmin && booking.UserID != requester.ID {
		return nil, domain.NewForbidden("not your booking")
	}

	if in.StartTime != nil {
		booking.StartTime = *in.StartTime
	}
	if in.EndTime != nil {
		booking.EndTime = *in.EndTime
	}
	if !booking.EndTime.After(booking.StartTime) {
		return nil, domain.NewValidation("end_time must be after start_time")
	}
	if in.TotalPrice != nil {
		booking.TotalPrice = *in.TotalPrice
	}
	if in.Notes != nil {
		booking.Notes = *in.Notes
	}
	if in.Status != nil && *in.Status != booking.Status {
		if !domain.ValidBookingStatus(*in.Status) {
			return nil, domain.NewValidation("invalid booking status")
		}
		if !booking.Status.CanTransitionTo(*in.Status) {
			return nil, domain.NewValidation("invalid status transition from " + string(booking.Status) + " to " + string(*in.Status))
		}
		booking.Status = *in.Status
	}
	booking.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) Delete(ctx context.Context, id string, requester domain.TokenPayload) error {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !requester.IsAdmin && booking.UserID != requester.ID {
		return domain.NewForbidden("not your booking")
	}
	return s.repo.Delete(ctx, id)
}
