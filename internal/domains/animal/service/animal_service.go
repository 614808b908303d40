package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"shelter-backend/internal/domains/animal"
)

type animalService struct {
	repo    animal.Repository
	images  animal.ImageSaver
	remover animal.ImageRemover
}

func NewAnimalService(repo animal.Repository, images animal.ImageSaver, remover animal.ImageRemover) animal.Service {
	return &animalService{
		repo:    repo,
		images:  images,
		remover: remover,
	}
}

// ════════════════════════════════════════════════════════════════
// CREATE
// ════════════════════════════════════════════════════════════════

func (s *animalService) Create(ctx context.Context, req animal.AnimalRequest, image *animal.Upload) (*animal.AnimalDTO, error) {
	if err := req.ValidateCreate(); err != nil {
		return nil, err
	}

	entity := req.ToEntity()
	entity.Code = animal.GenerateCode()

	// 1. Upload ảnh trước, lỗi storage làm fail cả request
	if image != nil {
		url, err := s.images.SaveImage(ctx, image.Content, image.Filename)
		if err != nil {
			return nil, fmt.Errorf("store animal image: %w", err)
		}
		entity.ImageURL = url
	}

	// 2. Insert row
	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		// blob vừa upload không còn ai trỏ tới
		if entity.ImageURL != "" {
			s.remover.DeleteImage(ctx, entity.ImageURL)
		}
		return nil, err
	}

	log.Info().Int64("animal_id", created.ID).Str("code", created.Code).Msg("Animal created")

	dto := created.ToDTO()
	return &dto, nil
}

// ════════════════════════════════════════════════════════════════
// READ
// ════════════════════════════════════════════════════════════════

func (s *animalService) GetByID(ctx context.Context, id int64) (*animal.AnimalDTO, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := a.ToDTO()
	return &dto, nil
}

func (s *animalService) List(ctx context.Context) ([]animal.AnimalDTO, error) {
	animals, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(animals), nil
}

func (s *animalService) ListByAvailability(ctx context.Context, isAvailable bool) ([]animal.AnimalDTO, error) {
	animals, err := s.repo.ListByAvailability(ctx, isAvailable)
	if err != nil {
		return nil, err
	}
	return toDTOs(animals), nil
}

func toDTOs(animals []animal.Animal) []animal.AnimalDTO {
	dtos := make([]animal.AnimalDTO, len(animals))
	for i, a := range animals {
		dtos[i] = a.ToDTO()
	}
	return dtos
}

// ════════════════════════════════════════════════════════════════
// UPDATE
// ════════════════════════════════════════════════════════════════

// Update merges non-nil fields. Ảnh mới (nếu có) được upload trước,
// ảnh cũ chỉ bị xóa sau khi row đã trỏ sang ảnh mới.
func (s *animalService) Update(ctx context.Context, id int64, req animal.AnimalRequest, image *animal.Upload) (*animal.AnimalDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldImage := existing.ImageURL
	if image != nil {
		url, err := s.images.SaveImage(ctx, image.Content, image.Filename)
		if err != nil {
			return nil, fmt.Errorf("store animal image: %w", err)
		}
		existing.ImageURL = url
	}

	req.ApplyUpdate(existing)

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		if image != nil {
			s.remover.DeleteImage(ctx, existing.ImageURL)
		}
		return nil, err
	}

	// fire-and-forget
	if image != nil && oldImage != "" && oldImage != updated.ImageURL {
		s.remover.DeleteImage(ctx, oldImage)
	}

	dto := updated.ToDTO()
	return &dto, nil
}

// ════════════════════════════════════════════════════════════════
// DELETE
// ════════════════════════════════════════════════════════════════

// Delete removes the row only. The stored image and any visits
// referencing the animal are left as they are.
func (s *animalService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Int64("animal_id", id).Msg("Animal deleted")
	return nil
}
