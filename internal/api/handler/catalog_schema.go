package handler

// --- Space ---

type createSpaceRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Capacity    int     `json:"capacity"    validate:"required,gt=0"`
	HourlyRate  float64 `json:"hourly_rate" validate:"required,gt=0"`
	Description string  `json:"description"`
	Amenities   string  `json:"amenities"`
	Status      string  `json:"status"      validate:"omitempty,oneof=available maintenance reserved"`
}

type updateSpaceRequest struct {
	Name        *string  `json:"name"`
	Capacity    *int     `json:"capacity"    validate:"omitempty,gt=0"`
	HourlyRate  *float64 `json:"hourly_rate" validate:"omitempty,gt=0"`
	Description *string  `json:"description"`
	Amenities   *string  `json:"amenities"`
	Status      *string  `json:"status"      validate:"omitempty,oneof=available maintenance reserved"`
}

// --- Product ---

type createProductRequest struct {
	Name        string  `json:"name"      validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"     validate:"required,gt=0"`
	Stock       int     `json:"stock"     validate:"gte=0"`
	MinStock    int     `json:"min_stock" validate:"gte=0"`
}

type updateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"     validate:"omitempty,gt=0"`
	Stock       *int     `json:"stock"     validate:"omitempty,gte=0"`
	MinStock    *int     `json:"min_stock" validate:"omitempty,gte=0"`
}

// --- Offering (exposed as /services) ---

type createOfferingRequest struct {
	Name            string  `json:"name"             validate:"required"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"            validate:"required,gt=0"`
	DurationMinutes int     `json:"duration_minutes" validate:"omitempty,gt=0"`
	Available       bool    `json:"available"`
}

type updateOfferingRequest struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price"            validate:"omitempty,gt=0"`
	DurationMinutes *int     `json:"duration_minutes" validate:"omitempty,gt=0"`
	Available       *bool    `json:"available"`
}
