package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"shelter-backend/internal/domains/schedule"
	schedulerepo "shelter-backend/internal/domains/schedule/repository"
	"shelter-backend/internal/domains/volunteer"
	"shelter-backend/pkg/database"
)

const joinedSelect = `
        SELECT v.id, v.notes, v.schedule_id,
               s.days, s.start_time_hour, s.start_time_minute, s.end_time_hour, s.end_time_minute
        FROM volunteers v
        JOIN schedules s ON s.id = v.schedule_id`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) volunteer.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) CreateWithSchedule(ctx context.Context, v *volunteer.Volunteer, s *schedule.Schedule) (*volunteer.WithSchedule, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*volunteer.WithSchedule, error) {
		// 1. Schedule trước để có id
		savedSchedule, err := schedulerepo.Insert(ctx, tx, s)
		if err != nil {
			return nil, err
		}

		// 2. Volunteer trỏ tới schedule vừa tạo
		created := volunteer.Volunteer{Notes: v.Notes, ScheduleID: savedSchedule.ID}
		err = tx.QueryRow(ctx,
			`INSERT INTO volunteers (notes, schedule_id) VALUES ($1, $2) RETURNING id`,
			created.Notes, created.ScheduleID,
		).Scan(&created.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to create volunteer: %w", err)
		}

		return &volunteer.WithSchedule{Volunteer: created, Schedule: *savedSchedule}, nil
	})
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*volunteer.WithSchedule, error) {
	w, err := scanJoined(r.pool.QueryRow(ctx, joinedSelect+` WHERE v.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, volunteer.ErrVolunteerNotFound
		}
		return nil, fmt.Errorf("failed to get volunteer by id: %w", err)
	}
	return w, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]volunteer.WithSchedule, error) {
	rows, err := r.pool.Query(ctx, joinedSelect+` ORDER BY v.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list volunteers: %w", err)
	}
	defer rows.Close()

	out := make([]volunteer.WithSchedule, 0)
	for rows.Next() {
		w, err := scanJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan volunteer: %w", err)
		}
		out = append(out, *w)
	}
	return out, rows.Err()
}

func (r *postgresRepository) UpdateWithSchedule(ctx context.Context, w *volunteer.WithSchedule) (*volunteer.WithSchedule, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*volunteer.WithSchedule, error) {
		tag, err := tx.Exec(ctx, `UPDATE volunteers SET notes = $2 WHERE id = $1`, w.Volunteer.ID, w.Volunteer.Notes)
		if err != nil {
			return nil, fmt.Errorf("failed to update volunteer: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return nil, volunteer.ErrVolunteerNotFound
		}

		// schedule sửa tại chỗ, id giữ nguyên
		w.Schedule.ID = w.Volunteer.ScheduleID
		savedSchedule, err := schedulerepo.Save(ctx, tx, &w.Schedule)
		if err != nil {
			return nil, err
		}

		return &volunteer.WithSchedule{Volunteer: w.Volunteer, Schedule: *savedSchedule}, nil
	})
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM volunteers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete volunteer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return volunteer.ErrVolunteerNotFound
	}
	return nil
}

func scanJoined(row pgx.Row) (*volunteer.WithSchedule, error) {
	var (
		w    volunteer.WithSchedule
		days pq.StringArray
	)
	err := row.Scan(
		&w.Volunteer.ID, &w.Volunteer.Notes, &w.Volunteer.ScheduleID,
		&days, &w.Schedule.StartHour, &w.Schedule.StartMinute, &w.Schedule.EndHour, &w.Schedule.EndMinute,
	)
	if err != nil {
		return nil, err
	}

	parsed, err := schedule.ParseDays(days)
	if err != nil {
		return nil, err
	}
	w.Schedule.ID = w.Volunteer.ScheduleID
	w.Schedule.Days = parsed
	return &w, nil
}
