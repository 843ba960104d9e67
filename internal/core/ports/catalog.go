package ports

import (
	"context"

	"github.com/coworkia/coworking-api/internal/core/domain"
)

// SpaceRepository defines persistence for spaces.
type SpaceRepository interface {
	Create(ctx context.Context, s *domain.Space) error
	FindByID(ctx context.Context, id string) (*domain.Space, error)
	List(ctx context.Context) ([]*domain.Space, error)
	Update(ctx context.Context, s *domain.Space) error
	Delete(ctx context.Context, id string) error
}

// ProductRepository defines persistence for products.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
}

// OfferingRepository defines persistence for add-on service offerings.
type OfferingRepository interface {
	Create(ctx context.Context, o *domain.Offering) error
	FindByID(ctx context.Context, id string) (*domain.Offering, error)
	List(ctx context.Context) ([]*domain.Offering, error)
	Update(ctx context.Context, o *domain.Offering) error
	Delete(ctx context.Context, id string) error
}

// CreateSpaceInput carries the fields accepted when creating a space.
type CreateSpaceInput struct {
	Name        string
	Capacity    int
	HourlyRate  float64
	Description string
	Amenities   string
	Status      domain.SpaceStatus
}

// UpdateSpaceInput is the partial-update shape for spaces.
type UpdateSpaceInput struct {
	Name        *string
	Capacity    *int
	HourlyRate  *float64
	Description *string
	Amenities   *string
	Status      *domain.SpaceStatus
}

// CreateProductInput carries the fields accepted when creating a product.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	MinStock    int
}

// UpdateProductInput is the partial-update shape for products.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
	MinStock    *int
}

// CreateOfferingInput carries the fields accepted when creating an offering.
type CreateOfferingInput struct {
	Name            string
	Description     string
	Price           float64
	DurationMinutes int
	Available       bool
}

// UpdateOfferingInput is the partial-update shape for offerings.
type UpdateOfferingInput struct {
	Name            *string
	Description     *string
	Price           *float64
	DurationMinutes *int
	Available       *bool
}

// SpaceService defines the space use cases.
type SpaceService interface {
	Create(ctx context.Context, in CreateSpaceInput) (*domain.Space, error)
	Get(ctx context.Context, id string) (*domain.Space, error)
	List(ctx context.Context) ([]*domain.Space, error)
	Update(ctx context.Context, id string, in UpdateSpaceInput) (*domain.Space, error)
	Delete(ctx context.Context, id string) error
}

// ProductService defines the product use cases.
type ProductService interface {
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, id string, in UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

// OfferingService defines the offering use cases.
type OfferingService interface {
	Create(ctx context.Context, in CreateOfferingInput) (*domain.Offering, error)
	Get(ctx context.Context, id string) (*domain.Offering, error)
	List(ctx context.Context) ([]*domain.Offering, error)
	Update(ctx context.Context, id string, in UpdateOfferingInput) (*domain.Offering, error)
	Delete(ctx context.Context, id string) error
}
