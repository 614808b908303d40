package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"shelter-backend/internal/domains/adopter"
)

const adopterColumns = `id, name, image_url, address, phone, email, process_number`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) adopter.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, a *adopter.Adopter) (*adopter.Adopter, error) {
	query := `
        INSERT INTO adopters (name, image_url, address, phone, email, process_number)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + adopterColumns

	created, err := scanAdopter(r.pool.QueryRow(ctx, query,
		a.Name, a.ImageURL, a.Address, a.Phone, a.Email, a.ProcessNumber,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create adopter: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*adopter.Adopter, error) {
	a, err := scanAdopter(r.pool.QueryRow(ctx, `SELECT `+adopterColumns+` FROM adopters WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, adopter.ErrAdopterNotFound
		}
		return nil, fmt.Errorf("failed to get adopter by id: %w", err)
	}
	return a, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]adopter.Adopter, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+adopterColumns+` FROM adopters ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list adopters: %w", err)
	}
	defer rows.Close()

	adopters := make([]adopter.Adopter, 0)
	for rows.Next() {
		a, err := scanAdopter(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan adopter: %w", err)
		}
		adopters = append(adopters, *a)
	}
	return adopters, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, a *adopter.Adopter) (*adopter.Adopter, error) {
	query := `
        UPDATE adopters
        SET name = $2, image_url = $3, address = $4, phone = $5, email = $6, process_number = $7
        WHERE id = $1
        RETURNING ` + adopterColumns

	updated, err := scanAdopter(r.pool.QueryRow(ctx, query,
		a.ID, a.Name, a.ImageURL, a.Address, a.Phone, a.Email, a.ProcessNumber,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, adopter.ErrAdopterNotFound
		}
		return nil, fmt.Errorf("failed to update adopter: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM adopters WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete adopter: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return adopter.ErrAdopterNotFound
	}
	return nil
}

func scanAdopter(row pgx.Row) (*adopter.Adopter, error) {
	var a adopter.Adopter
	if err := row.Scan(&a.ID, &a.Name, &a.ImageURL, &a.Address, &a.Phone, &a.Email, &a.ProcessNumber); err != nil {
		return nil, err
	}
	return &a, nil
}
