package domain

import "time"

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// validBookingTransitions defines the allowed state machine transitions.
var validBookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCompleted, BookingCancelled},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validBookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidBookingStatus reports whether s is one of the known booking statuses.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// Booking reserves a space for a user over a time window.
type Booking struct {
	ID         string        `json:"id" bson:"_id,omitempty"`
	UserID     string        `json:"user_id" bson:"user_id"`
	SpaceID    string        `json:"space_id" bson:"space_id"`
	StartTime  time.Time     `json:"start_time" bson:"start_time"`
	EndTime    time.Time     `json:"end_time" bson:"end_time"`
	TotalPrice float64       `json:"total_price" bson:"total_price"`
	Status     BookingStatus `json:"status" bson:"status"`
	Notes      string        `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt  time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at" bson:"updated_at"`
}
