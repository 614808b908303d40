package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"shelter-backend/internal/domains/adopter"
	"shelter-backend/internal/domains/animal"
	"shelter-backend/internal/domains/schedule"
	"shelter-backend/internal/domains/visit"
)

// listConcurrency giới hạn số visit được compose song song trong List
const listConcurrency = 8

type visitService struct {
	repo      visit.Repository
	schedules visit.ScheduleLookup
	animals   visit.AnimalLookup
	adopters  visit.AdopterLookup
}

func NewVisitService(
	repo visit.Repository,
	schedules visit.ScheduleLookup,
	animals visit.AnimalLookup,
	adopters visit.AdopterLookup,
) visit.Service {
	return &visitService{repo: repo, schedules: schedules, animals: animals, adopters: adopters}
}

// ════════════════════════════════════════════════════════════════
// SAVE (upsert)
// ════════════════════════════════════════════════════════════════

func (s *visitService) Save(ctx context.Context, req visit.ShelterVisitRequest) (*visit.ShelterVisitDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var entity *visit.ShelterVisit
	if req.IsUpdate() {
		existing, err := s.repo.GetByID(ctx, *req.ID)
		if err != nil {
			return nil, err
		}
		req.ApplyUpdate(existing)
		entity = existing
	} else {
		entity = req.ToEntity()
	}

	// reference phải resolve được trước khi ghi
	dto, err := s.compose(ctx, entity)
	if err != nil {
		return nil, err
	}

	var saved *visit.ShelterVisit
	if req.IsUpdate() {
		saved, err = s.repo.Update(ctx, entity)
	} else {
		saved, err = s.repo.Create(ctx, entity)
	}
	if err != nil {
		return nil, err
	}

	dto.ID = saved.ID
	return dto, nil
}

// ════════════════════════════════════════════════════════════════
// READ
// ════════════════════════════════════════════════════════════════

func (s *visitService) GetByID(ctx context.Context, id int64) (*visit.ShelterVisitDTO, error) {
	found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.compose(ctx, found)
}

// List bỏ qua visit có reference đã bị xóa
func (s *visitService) List(ctx context.Context) ([]visit.ShelterVisitDTO, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	composed := make([]*visit.ShelterVisitDTO, len(all))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(listConcurrency)
	for i := range all {
		i := i
		g.Go(func() error {
			dto, err := s.compose(gctx, &all[i])
			if errors.Is(err, visit.ErrBrokenReference) {
				log.Warn().Err(err).Int64("visit_id", all[i].ID).Msg("skipping shelter visit with broken reference")
				return nil
			}
			if err != nil {
				return err
			}
			composed[i] = dto
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]visit.ShelterVisitDTO, 0, len(composed))
	for _, dto := range composed {
		if dto != nil {
			out = append(out, *dto)
		}
	}
	return out, nil
}

func (s *visitService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// ════════════════════════════════════════════════════════════════
// COMPOSE: fan-out ba lookup, fan-in khi cả ba xong
// ════════════════════════════════════════════════════════════════

func (s *visitService) compose(ctx context.Context, v *visit.ShelterVisit) (*visit.ShelterVisitDTO, error) {
	// mỗi goroutine ghi một field riêng
	dto := visit.ShelterVisitDTO{ID: v.ID}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sc, err := s.schedules.GetByID(gctx, v.ScheduleID)
		if err != nil {
			return brokenReference("schedule", v.ScheduleID, err, schedule.ErrScheduleNotFound)
		}
		dto.Schedule = sc.ToDTO()
		return nil
	})

	g.Go(func() error {
		a, err := s.animals.GetByID(gctx, v.AnimalID)
		if err != nil {
			return brokenReference("animal", v.AnimalID, err, animal.ErrAnimalNotFound)
		}
		dto.Animal = a.ToDTO()
		return nil
	})

	g.Go(func() error {
		ad, err := s.adopters.GetByID(gctx, v.AdopterID)
		if err != nil {
			return brokenReference("adopter", v.AdopterID, err, adopter.ErrAdopterNotFound)
		}
		dto.Adopter = ad.ToDTO()
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dto, nil
}

// brokenReference: chỉ not-found mới thành ErrBrokenReference, lỗi DB giữ nguyên (500)
func brokenReference(kind string, id int64, err, notFound error) error {
	if errors.Is(err, notFound) {
		return fmt.Errorf("%w: %s %d: %w", visit.ErrBrokenReference, kind, id, err)
	}
	return fmt.Errorf("lookup %s %d: %w", kind, id, err)
}
