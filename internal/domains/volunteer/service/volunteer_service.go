package service

import (
	"context"

	"shelter-backend/internal/domains/volunteer"
	"shelter-backend/internal/shared/utils"
)

type volunteerService struct {
	repo volunteer.Repository
}

func NewVolunteerService(repo volunteer.Repository) volunteer.Service {
	return &volunteerService{repo: repo}
}

// Create lưu schedule + volunteer cùng lúc; scheduleId do DB cấp
func (s *volunteerService) Create(ctx context.Context, req volunteer.VolunteerRequest) (*volunteer.VolunteerDTO, error) {
	if err := req.ValidateCreate(); err != nil {
		return nil, err
	}

	sched, err := req.ScheduleRequest.ToEntity()
	if err != nil {
		return nil, err
	}

	created, err := s.repo.CreateWithSchedule(ctx, &volunteer.Volunteer{Notes: utils.Deref(req.Notes)}, sched)
	if err != nil {
		return nil, err
	}

	dto := created.ToDTO()
	return &dto, nil
}

func (s *volunteerService) GetByID(ctx context.Context, id int64) (*volunteer.VolunteerDTO, error) {
	found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := found.ToDTO()
	return &dto, nil
}

func (s *volunteerService) List(ctx context.Context) ([]volunteer.VolunteerDTO, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]volunteer.VolunteerDTO, len(all))
	for i, w := range all {
		dtos[i] = w.ToDTO()
	}
	return dtos, nil
}

func (s *volunteerService) Update(ctx context.Context, id int64, req volunteer.VolunteerRequest) (*volunteer.VolunteerDTO, error) {
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

	updated, err := s.repo.UpdateWithSchedule(ctx, existing)
	if err != nil {
		return nil, err
	}

	dto := updated.ToDTO()
	return &dto, nil
}

func (s *volunteerService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

