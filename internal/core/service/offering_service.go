package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/coworkia/coworking-api/internal/core/domain"
	"github.com/coworkia/coworking-api/internal/core/ports"
)

// OfferingService is a thin CRUD layer over the offering repository.
type OfferingService struct {
	repo  ports.OfferingRepository
	newID func() string
}

func NewOfferingService(repo ports.OfferingRepository) *OfferingService {
	return &OfferingService{repo: repo, newID: uuid.NewString}
}

func (s *OfferingService) Create(ctx context.Context, in ports.CreateOfferingInput) (*domain.Offering, error) {
	now := time.Now().UTC()
	offering := &domain.Offering{
		ID:              s.newID(),
		Name:            in.Name,
		Description:     in.Description,
		Price:           in.Price,
		DurationMinutes: in.DurationMinutes,
		Available:       in.Available,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.Create(ctx, offering); err != nil {
		return nil, err
	}
	return offering, nil
}

func (s *OfferingService) Get(ctx context.Context, id string) (*domain.Offering, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *OfferingService) List(ctx context.Context) ([]*domain.Offering, error) {
	return s.repo.List(ctx)
}

func (s *OfferingService) Update(ctx context.Context, id string, in ports.UpdateOfferingInput) (*domain.Offering, error) {
	offering, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		offering.Name = *in.Name
	}
	if in.Description != nil {
		offering.Description = *in.Description
	}
	if in.Price != nil {
		offering.Price = *in.Price
	}
	if in.DurationMinutes != nil {
		offering.DurationMinutes = *in.DurationMinutes
	}
	if in.Available != nil {
		offering.Available = *in.Available
	}
	offering.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, offering); err != nil {
		return nil, err
	}
	return offering, nil
}

func (s *OfferingService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
