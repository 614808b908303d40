package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"shelter-backend/internal/domains/visit"
)

const visitColumns = `id, schedule_id, animal_id, adopter_id`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) visit.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, v *visit.ShelterVisit) (*visit.ShelterVisit, error) {
	query := `
        INSERT INTO shelter_visits (schedule_id, animal_id, adopter_id)
        VALUES ($1, $2, $3)
        RETURNING ` + visitColumns

	created, err := scanVisit(r.pool.QueryRow(ctx, query, v.ScheduleID, v.AnimalID, v.AdopterID))
	if err != nil {
		return nil, fmt.Errorf("failed to create shelter visit: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*visit.ShelterVisit, error) {
	found, err := scanVisit(r.pool.QueryRow(ctx, `SELECT `+visitColumns+` FROM shelter_visits WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, visit.ErrVisitNotFound
		}
		return nil, fmt.Errorf("failed to get shelter visit by id: %w", err)
	}
	return found, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]visit.ShelterVisit, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+visitColumns+` FROM shelter_visits ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list shelter visits: %w", err)
	}
	defer rows.Close()

	visits := make([]visit.ShelterVisit, 0)
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shelter visit: %w", err)
		}
		visits = append(visits, *v)
	}
	return visits, rows.Err()
}

// Update: last writer wins, không có version check
func (r *postgresRepository) Update(ctx context.Context, v *visit.ShelterVisit) (*visit.ShelterVisit, error) {
	query := `
        UPDATE shelter_visits
        SET schedule_id = $2, animal_id = $3, adopter_id = $4
        WHERE id = $1
        RETURNING ` + visitColumns

	updated, err := scanVisit(r.pool.QueryRow(ctx, query, v.ID, v.ScheduleID, v.AnimalID, v.AdopterID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, visit.ErrVisitNotFound
		}
		return nil, fmt.Errorf("failed to update shelter visit: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM shelter_visits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shelter visit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return visit.ErrVisitNotFound
	}
	return nil
}

func scanVisit(row pgx.Row) (*visit.ShelterVisit, error) {
	var v visit.ShelterVisit
	if err := row.Scan(&v.ID, &v.ScheduleID, &v.AnimalID, &v.AdopterID); err != nil {
		return nil, err
	}
	return &v, nil
}
