package ports

import (
	"context"
	"time"

	"github.com/coworkia/coworking-api/internal/core/domain"
)

// BookingRepository defines persistence for bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	// List returns bookings scoped to userID; empty userID returns all (admin).
	List(ctx context.Context, userID string) ([]*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, id string) error
}

// CreateBookingInput carries the fields accepted when creating a booking.
type CreateBookingInput struct {
	SpaceID    string
	StartTime  time.Time
	EndTime    time.Time
	TotalPrice float64
	Notes      string
}

// UpdateBookingInput is the partial-update shape for bookings. Status changes
// are validated against the booking state machine.
type UpdateBookingInput struct {
	StartTime  *time.Time
	EndTime    *time.Time
	TotalPrice *float64
	Status     *domain.BookingStatus
	Notes      *string
}

// BookingService defines the booking use cases. Every operation receives the
// caller's verified payload: non-admin callers only see and mutate their own
// bookings.
type BookingService interface {
	Create(ctx context.Context, in CreateBookingInput, requester domain.TokenPayload) (*domain.Booking, error)
	Get(ctx context.Context, id string, requester domain.TokenPayload) (*domain.Booking, error)
	List(ctx context.Context, requester domain.TokenPayload) ([]*domain.Booking, error)
	Update(ctx context.Context, id string, in UpdateBookingInput, requester domain.TokenPayload) (*domain.Booking, error)
	Delete(ctx context.Context, id string, requester domain.TokenPayload) error
}
