package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"shelter-backend/internal/domains/schedule"
	"shelter-backend/pkg/database"
)

const scheduleColumns = `id, days, start_time_hour, start_time_minute, end_time_hour, end_time_minute`

// postgresRepository implements schedule.Repository
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) schedule.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, s *schedule.Schedule) (*schedule.Schedule, error) {
	return Insert(ctx, r.pool, s)
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*schedule.Schedule, error) {
	return Get(ctx, r.pool, id)
}

func (r *postgresRepository) List(ctx context.Context) ([]schedule.Schedule, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+scheduleColumns+` FROM schedules ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	defer rows.Close()

	schedules := make([]schedule.Schedule, 0)
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, *s)
	}
	return schedules, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, s *schedule.Schedule) (*schedule.Schedule, error) {
	return Save(ctx, r.pool, s)
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}
	return nil
}

// ════════════════════════════════════════════════════════════════
// Querier-level helpers (volunteer repository gọi trong transaction)
// ════════════════════════════════════════════════════════════════

func Insert(ctx context.Context, q database.Querier, s *schedule.Schedule) (*schedule.Schedule, error) {
	query := `
        INSERT INTO schedules (days, start_time_hour, start_time_minute, end_time_hour, end_time_minute)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + scheduleColumns

	created, err := scanSchedule(q.QueryRow(ctx, query,
		pq.Array(schedule.DayNames(s.Days)),
		s.StartHour, s.StartMinute, s.EndHour, s.EndMinute,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}
	return created, nil
}

func Get(ctx context.Context, q database.Querier, id int64) (*schedule.Schedule, error) {
	s, err := scanSchedule(q.QueryRow(ctx, `SELECT `+scheduleColumns+` FROM schedules WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, schedule.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to get schedule by id: %w", err)
	}
	return s, nil
}

// Save updates the row in place; id never changes
func Save(ctx context.Context, q database.Querier, s *schedule.Schedule) (*schedule.Schedule, error) {
	query := `
        UPDATE schedules
        SET days = $2, start_time_hour = $3, start_time_minute = $4,
            end_time_hour = $5, end_time_minute = $6
        WHERE id = $1
        RETURNING ` + scheduleColumns

	updated, err := scanSchedule(q.QueryRow(ctx, query,
		s.ID, pq.Array(schedule.DayNames(s.Days)),
		s.StartHour, s.StartMinute, s.EndHour, s.EndMinute,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, schedule.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to update schedule: %w", err)
	}
	return updated, nil
}

func scanSchedule(row pgx.Row) (*schedule.Schedule, error) {
	var (
		s    schedule.Schedule
		days pq.StringArray
	)
	if err := row.Scan(&s.ID, &days, &s.StartHour, &s.StartMinute, &s.EndHour, &s.EndMinute); err != nil {
		return nil, err
	}

	parsed, err := schedule.ParseDays(days)
	if err != nil {
		return nil, fmt.Errorf("schedule %d: %w", s.ID, err)
	}
	s.Days = parsed
	return &s, nil
}
