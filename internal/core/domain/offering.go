package domain

import "time"

// Offering is a bookable add-on service (cleaning, catering, printing).
// Exposed over HTTP as /services, matching the public contract.
type Offering struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	Name            string    `json:"name" bson:"name"`
	Description     string    `json:"description,omitempty" bson:"description,omitempty"`
	Price           float64   `json:"price" bson:"price"`
	DurationMinutes int       `json:"duration_minutes,omitempty" bson:"duration_minutes,omitempty"`
	Available       bool      `json:"available" bson:"available"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" bson:"updated_at"`
}
