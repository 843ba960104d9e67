package domain

import "testing"

func TestBookingStatus_Transitions(t *testing.T) {
	allowed := []struct{ from, to BookingStatus }{
		{BookingPending, BookingConfirmed},
		{BookingPending, BookingCancelled},
		{BookingConfirmed, BookingCompleted},
		{BookingConfirmed, BookingCancelled},
	}
	for _, tc := range allowed {
		if !tc.from.CanTransitionTo(tc.to) {
			t.Fatalf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to BookingStatus }{
		{BookingPending, BookingCompleted},
		{BookingCancelled, BookingConfirmed},
		{BookingCompleted, BookingPending},
		{BookingCancelled, BookingCancelled},
	}
	for _, tc := range denied {
		if tc.from.CanTransitionTo(tc.to) {
			t.Fatalf("expected %s -> %s to be denied", tc.from, tc.to)
		}
	}
}

func TestValidBookingStatus(t *testing.T) {
	for _, s := range []BookingStatus{BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted} {
		if !ValidBookingStatus(s) {
			t.Fatalf("%s should be valid", s)
		}
	}
	if ValidBookingStatus("shipped") {
		t.Fatalf("unknown status accepted")
	}
}
