package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"shelter-backend/internal/domains/animal"
)

const animalColumns = `
        id, code, name, breed, arrival_date, image_url, gender, age,
        vaccinated, castrated, wormed, electronic_chip, illness, notes,
        is_available, has_been_adopted`

// postgresRepository implements animal.Repository
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) animal.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, a *animal.Animal) (*animal.Animal, error) {
	query := `
        INSERT INTO animals (
            code, name, breed, arrival_date, image_url, gender, age,
            vaccinated, castrated, wormed, electronic_chip, illness, notes,
            is_available, has_been_adopted
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
        RETURNING` + animalColumns

	created, err := scanAnimal(r.pool.QueryRow(ctx, query,
		a.Code, a.Name, a.Breed, a.ArrivalDate, a.ImageURL, string(a.Gender), a.Age,
		a.Vaccinated, a.Castrated, a.Wormed, a.ElectronicChip, a.Illness, a.Notes,
		a.IsAvailable, a.HasBeenAdopted,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create animal: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*animal.Animal, error) {
	query := `SELECT` + animalColumns + ` FROM animals WHERE id = $1`

	a, err := scanAnimal(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, animal.ErrAnimalNotFound
		}
		return nil, fmt.Errorf("failed to get animal by id: %w", err)
	}
	return a, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]animal.Animal, error) {
	return r.list(ctx, `SELECT`+animalColumns+` FROM animals ORDER BY id`)
}

func (r *postgresRepository) ListByAvailability(ctx context.Context, isAvailable bool) ([]animal.Animal, error) {
	return r.list(ctx, `SELECT`+animalColumns+` FROM animals WHERE is_available = $1 ORDER BY id`, isAvailable)
}

func (r *postgresRepository) list(ctx context.Context, query string, args ...any) ([]animal.Animal, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list animals: %w", err)
	}
	defer rows.Close()

	animals := make([]animal.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan animal: %w", err)
		}
		animals = append(animals, *a)
	}
	return animals, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, a *animal.Animal) (*animal.Animal, error) {
	query := `
        UPDATE animals SET
            code = $2, name = $3, breed = $4, arrival_date = $5, image_url = $6,
            gender = $7, age = $8, vaccinated = $9, castrated = $10, wormed = $11,
            electronic_chip = $12, illness = $13, notes = $14,
            is_available = $15, has_been_adopted = $16
        WHERE id = $1
        RETURNING` + animalColumns

	updated, err := scanAnimal(r.pool.QueryRow(ctx, query,
		a.ID, a.Code, a.Name, a.Breed, a.ArrivalDate, a.ImageURL,
		string(a.Gender), a.Age, a.Vaccinated, a.Castrated, a.Wormed,
		a.ElectronicChip, a.Illness, a.Notes,
		a.IsAvailable, a.HasBeenAdopted,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, animal.ErrAnimalNotFound
		}
		return nil, fmt.Errorf("failed to update animal: %w", err)
	}
	return updated, nil
}

// Delete không cascade: shelter_visits trỏ tới animal này vẫn còn
func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM animals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete animal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return animal.ErrAnimalNotFound
	}
	return nil
}

func scanAnimal(row pgx.Row) (*animal.Animal, error) {
	var (
		a      animal.Animal
		gender string
	)
	err := row.Scan(
		&a.ID, &a.Code, &a.Name, &a.Breed, &a.ArrivalDate, &a.ImageURL, &gender, &a.Age,
		&a.Vaccinated, &a.Castrated, &a.Wormed, &a.ElectronicChip, &a.Illness, &a.Notes,
		&a.IsAvailable, &a.HasBeenAdopted,
	)
	if err != nil {
		return nil, err
	}
	a.Gender = animal.Gender(gender)
	return &a, nil
}
