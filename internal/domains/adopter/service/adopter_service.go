package service

import (
	"context"

	"shelter-backend/internal/domains/adopter"
)

type adopterService struct {
	repo adopter.Repository
}

func NewAdopterService(repo adopter.Repository) adopter.Service {
	return &adopterService{repo: repo}
}

func (s *adopterService) Create(ctx context.Context, req adopter.AdopterRequest) (*adopter.AdopterDTO, error) {
	if err := req.ValidateCreate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, req.ToEntity())
	if err != nil {
		return nil, err
	}

	dto := created.ToDTO()
	return &dto, nil
}

func (s *adopterService) GetByID(ctx context.Context, id int64) (*adopter.AdopterDTO, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := a.ToDTO()
	return &dto, nil
}

func (s *adopterService) List(ctx context.Context) ([]adopter.AdopterDTO, error) {
	adopters, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]adopter.AdopterDTO, len(adopters))
	for i, a := range adopters {
		dtos[i] = a.ToDTO()
	}
	return dtos, nil
}

func (s *adopterService) Update(ctx context.Context, id int64, req adopter.AdopterRequest) (*adopter.AdopterDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyUpdate(existing)

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	dto := updated.ToDTO()
	return &dto, nil
}

// Delete không cascade sang shelter_visits
func (s *adopterService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
