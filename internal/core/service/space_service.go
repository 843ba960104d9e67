package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/coworkia/coworking-api/internal/core/domain"
	"github.com/coworkia/coworking-api/internal/core/ports"
)

// SpaceService is a thin CRUD layer over the space repository.
type SpaceService struct {
	repo  ports.SpaceRepository
	newID func() string
}

func NewSpaceService(repo ports.SpaceRepository) *SpaceService {
	return &SpaceService{repo: repo, newID: uuid.NewString}
}

func (s *SpaceService) Create(ctx context.Context, in ports.CreateSpaceInput) (*domain.Space, error) {
	status := in.Status
	if status == "" {
		status = domain.SpaceAvailable
	}
	if !domain.ValidSpaceStatus(status) {
		return nil, domain.NewValidation("invalid space status")
	}

	now := time.Now().UTC()
	space := &domain.Space{
		ID:          s.newID(),
		Name:        in.Name,
		Capacity:    in.Capacity,
		HourlyRate:  in.HourlyRate,
		Description: in.Description,
		Amenities:   in.Amenities,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, space); err != nil {
		return nil, err
	}
	return space, nil
}

func (s *SpaceService) Get(ctx context.Context, id string) (*domain.Space, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *SpaceService) List(ctx context.Context) ([]*domain.Space, error) {
	return s.repo.List(ctx)
}

func (s *SpaceService) Update(ctx context.Context, id string, in ports.UpdateSpaceInput) (*domain.Space, error) {
	space, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		space.Name = *in.Name
	}
	if in.Capacity != nil {
		space.Capacity = *in.Capacity
	}
	if in.HourlyRate != nil {
		space.HourlyRate = *in.HourlyRate
	}
	if in.Description != nil {
		space.Description = *in.Description
	}
	if in.Amenities != nil {
		space.Amenities = *in.Amenities
	}
	if in.Status != nil {
		if !domain.ValidSpaceStatus(*in.Status) {
			return nil, domain.NewValidation("invalid space status")
		}
		space.Status = *in.Status
	}
	space.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, space); err != nil {
		return nil, err
	}
	return space, nil
}

func (s *SpaceService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
