package service

import (
	"context"

	"shelter-backend/internal/domains/schedule"
)

type scheduleService struct {
	repo schedule.Repository
}

func NewScheduleService(repo schedule.Repository) schedule.Service {
	return &scheduleService{repo: repo}
}

func (s *scheduleService) Create(ctx context.Context, req schedule.ScheduleRequest) (*schedule.ScheduleDTO, error) {
	if err := req.ValidateCreate(); err != nil {
		return nil, err
	}

	entity, err := req.ToEntity()
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		return nil, err
	}

	dto := created.ToDTO()
	return &dto, nil
}

func (s *scheduleService) GetByID(ctx context.Context, id int64) (*schedule.ScheduleDTO, error) {
	found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := found.ToDTO()
	return &dto, nil
}

func (s *scheduleService) List(ctx context.Context) ([]schedule.ScheduleDTO, error) {
	schedules, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]schedule.ScheduleDTO, len(schedules))
	for i, sc := range schedules {
		dtos[i] = sc.ToDTO()
	}
	return dtos, nil
}

func (s *scheduleService) Update(ctx context.Context, id int64, req schedule.ScheduleRequest) (*schedule.ScheduleDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := req.ApplyUpdate(existing); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	dto := updated.ToDTO()
	return &dto, nil
}

func (s *scheduleService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
