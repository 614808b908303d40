package visit

import (
	"context"

	"shelter-backend/internal/domains/adopter"
	"shelter-backend/internal/domains/animal"
	"shelter-backend/internal/domains/schedule"
)

type Service interface {
	// Save: upsert theo id của request
	Save(ctx context.Context, req ShelterVisitRequest) (*ShelterVisitDTO, error)
	GetByID(ctx context.Context, id int64) (*ShelterVisitDTO, error)
	List(ctx context.Context) ([]ShelterVisitDTO, error)
	Delete(ctx context.Context, id int64) error
}

// Lookups dùng khi compose; repository của từng domain thỏa mãn trực tiếp
type ScheduleLookup interface {
	GetByID(ctx context.Context, id int64) (*schedule.Schedule, error)
}

type AnimalLookup interface {
	GetByID(ctx context.Context, id int64) (*animal.Animal, error)
}

type AdopterLookup interface {
	GetByID(ctx context.Context, id int64) (*adopter.Adopter, error)
}
