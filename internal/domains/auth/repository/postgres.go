package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"shelter-backend/internal/domains/auth"
)

const userColumns = `id, username, password_hash, friendly_name, roles`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) auth.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) FindByUsername(ctx context.Context, username string) (*auth.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}
	return u, nil
}

func (r *postgresRepository) Create(ctx context.Context, u *auth.User) (*auth.User, error) {
	query := `
        INSERT INTO users (username, password_hash, friendly_name, roles)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + userColumns

	created, err := scanUser(r.pool.QueryRow(ctx, query, u.Username, u.PasswordHash, u.FriendlyName, pq.Array(u.Roles)))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return nil, auth.ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return created, nil
}

func scanUser(row pgx.Row) (*auth.User, error) {
	var (
		u     auth.User
		roles pq.StringArray
	)
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.FriendlyName, &roles); err != nil {
		return nil, err
	}
	u.Roles = []string(roles)
	return &u, nil
}
