package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"zapis/internal/domain"
)

type CalendarRepo struct {
	db *pgxpool.Pool
}

func NewCalendarRepository(db *pgxpool.Pool) *CalendarRepo {
	return &CalendarRepo{
		db: db,
	}
}

func (r *CalendarRepo) GetByStaffID(ctx context.Context, staffID int64) (*domain.WorkCalendar, error) {
	query := `
		SELECT staff_id, weekdays, work_start, work_end, lunch_start, lunch_end, created_at, updated_at
		FROM work_calendars
		WHERE staff_id = $1
	`

	var cal domain.WorkCalendar
	err := r.db.QueryRow(ctx, query, staffID).Scan(
		&cal.StaffID,
		&cal.Weekdays,
		&cal.WorkStart,
		&cal.WorkEnd,
		&cal.LunchStart,
		&cal.LunchEnd,
		&cal.CreatedAt,
		&cal.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения рабочего календаря: %w", err)
	}

	return &cal, nil
}

func (r *CalendarRepo) Upsert(ctx context.Context, cal domain.WorkCalendar) error {
	query := `
		INSERT INTO work_calendars (staff_id, weekdays, work_start, work_end, lunch_start, lunch_end, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		ON CONFLICT (staff_id) DO UPDATE SET
			weekdays = EXCLUDED.weekdays,
			work_start = EXCLUDED.work_start,
			work_end = EXCLUDED.work_end,
			lunch_start = EXCLUDED.lunch_start,
			lunch_end = EXCLUDED.lunch_end,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, query,
		cal.StaffID,
		cal.Weekdays,
		cal.WorkStart,
		cal.WorkEnd,
		cal.LunchStart,
		cal.LunchEnd,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("ошибка сохранения рабочего календаря: %w", err)
	}

	return nil
}
