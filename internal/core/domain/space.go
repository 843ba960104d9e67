package domain

import "time"

// SpaceStatus represents the availability state of a space.
type SpaceStatus string

const (
	SpaceAvailable   SpaceStatus = "available"
	SpaceMaintenance SpaceStatus = "maintenance"
	SpaceReserved    SpaceStatus = "reserved"
)

// ValidSpaceStatus reports whether s is one of the known space statuses.
func ValidSpaceStatus(s SpaceStatus) bool {
	switch s {
	case SpaceAvailable, SpaceMaintenance, SpaceReserved:
		return true
	}
	return false
}

// Space is a bookable room or desk area.
type Space struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	Name        string      `json:"name" bson:"name"`
	Capacity    int         `json:"capacity" bson:"capacity"`
	HourlyRate  float64     `json:"hourly_rate" bson:"hourly_rate"`
	Description string      `json:"description,omitempty" bson:"description,omitempty"`
	Amenities   string      `json:"amenities,omitempty" bson:"amenities,omitempty"`
	Status      SpaceStatus `json:"status" bson:"status"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" bson:"updated_at"`
}
