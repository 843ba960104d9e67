package handler

import "time"

type createBookingRequest struct {
	SpaceID    string    `json:"space_id"    validate:"required"`
	StartTime  time.Time `json:"start_time"  validate:"required"`
	EndTime    time.Time `json:"end_time"    validate:"required"`
	TotalPrice float64   `json:"total_price" validate:"gte=0"`
	Notes      string    `json:"notes"`
}

type updateBookingRequest struct {
	StartTime  *time.Time `json:"start_time"`
	EndTime    *time.Time `json:"end_time"`
	TotalPrice *float64   `json:"total_price" validate:"omitempty,gte=0"`
	Status     *string    `json:"status"      validate:"omitempty,oneof=pending confirmed cancelled completed"`
	Notes      *string    `json:"notes"`
}
