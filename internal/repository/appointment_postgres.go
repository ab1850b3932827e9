package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"zapis/internal/domain"
)

type AppointmentRepo struct {
	db *pgxpool.Pool
}

func NewAppointmentRepository(db *pgxpool.Pool) *AppointmentRepo {
	return &AppointmentRepo{
		db: db,
	}
}

const appointmentColumns = `
	a.id, a.client_id, a.staff_id, a.service_id, a.date, a.start_minute,
	a.duration_minutes, a.status, a.created_at, a.updated_at,
	sv.name AS service_name, st.name AS staff_name
`

// Create вставляет запись, повторно проверяя пересечения по специалисту и по
// клиенту внутри той же транзакции. Проверка валидатором в сервисном слое
// совещательная: между её чтением и записью другой запрос мог успеть занять
// время, поэтому единственная авторитетная проверка — эта.
func (r *AppointmentRepo) Create(ctx context.Context, appt domain.Appointment) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := checkOverlapInTx(ctx, tx, appt, 0); err != nil {
		return 0, err
	}

	query := `
		INSERT INTO appointments (client_id, staff_id, service_id, date, start_minute, duration_minutes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING id
	`

	now := time.Now()
	var id int64
	err = tx.QueryRow(ctx, query,
		appt.ClientID,
		appt.StaffID,
		appt.ServiceID,
		appt.Date,
		appt.StartMinute,
		appt.DurationMinutes,
		appt.Status,
		now,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("ошибка создания записи: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("ошибка при коммите транзакции: %w", err)
	}

	return id, nil
}

// Reschedule переносит запись на новое время/специалиста/услугу с той же
// транзакционной перепроверкой пересечений, исключая саму запись.
func (r *AppointmentRepo) Reschedule(ctx context.Context, appt domain.Appointment) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := checkOverlapInTx(ctx, tx, appt, appt.ID); err != nil {
		return err
	}

	query := `
		UPDATE appointments
		SET staff_id = $1, service_id = $2, date = $3, start_minute = $4, duration_minutes = $5, updated_at = $6
		WHERE id = $7
	`

	tag, err := tx.Exec(ctx, query,
		appt.StaffID,
		appt.ServiceID,
		appt.Date,
		appt.StartMinute,
		appt.DurationMinutes,
		time.Now(),
		appt.ID,
	)
	if err != nil {
		return fmt.Errorf("ошибка переноса записи: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("ошибка при коммите транзакции: %w", err)
	}

	return nil
}

func checkOverlapInTx(ctx context.Context, tx pgx.Tx, appt domain.Appointment, excludeID int64) error {
	checkQuery := `
		SELECT COUNT(*)
		FROM appointments
		WHERE staff_id = $1
		AND date = $2
		AND status IN ('pending', 'confirmed')
		AND id != $5
		AND start_minute < $4 AND $3 < start_minute + duration_minutes
	`

	var count int
	err := tx.QueryRow(ctx, checkQuery,
		appt.StaffID, appt.Date, appt.StartMinute, appt.EndMinute(), excludeID,
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("ошибка проверки занятости специалиста: %w", err)
	}
	if count > 0 {
		return errors.New("выбранный слот времени уже занят")
	}

	clientQuery := `
		SELECT COUNT(*)
		FROM appointments
		WHERE client_id = $1
		AND date = $2
		AND status IN ('pending', 'confirmed')
		AND id != $5
		AND start_minute < $4 AND $3 < start_minute + duration_minutes
	`

	err = tx.QueryRow(ctx, clientQuery,
		appt.ClientID, appt.Date, appt.StartMinute, appt.EndMinute(), excludeID,
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("ошибка проверки занятости клиента: %w", err)
	}
	if count > 0 {
		return errors.New("у клиента уже есть запись на это время")
	}

	return nil
}

func (r *AppointmentRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments a
		JOIN services sv ON a.service_id = sv.id
		JOIN staff st ON a.staff_id = st.id
		WHERE a.id = $1
	`

	var appt domain.Appointment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&appt.ID,
		&appt.ClientID,
		&appt.StaffID,
		&appt.ServiceID,
		&appt.Date,
		&appt.StartMinute,
		&appt.DurationMinutes,
		&appt.Status,
		&appt.CreatedAt,
		&appt.UpdatedAt,
		&appt.ServiceName,
		&appt.StaffName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения записи: %w", err)
	}

	return &appt, nil
}

func (r *AppointmentRepo) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	query := `
		UPDATE appointments
		SET status = $1, updated_at = $2
		WHERE id = $3
	`

	tag, err := r.db.Exec(ctx, query, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("ошибка обновления статуса записи: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *AppointmentRepo) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments a
		JOIN services sv ON a.service_id = sv.id
		JOIN staff st ON a.staff_id = st.id
	`

	where, args := buildAppointmentFilter(filter)
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	query += fmt.Sprintf(" ORDER BY a.date, a.start_minute LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка записей: %w", err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

func (r *AppointmentRepo) CountByFilter(ctx context.Context, filter domain.AppointmentFilter) (int, error) {
	query := `SELECT COUNT(*) FROM appointments a`

	where, args := buildAppointmentFilter(filter)
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("ошибка получения количества записей: %w", err)
	}

	return count, nil
}

func buildAppointmentFilter(filter domain.AppointmentFilter) ([]string, []interface{}) {
	var where []string
	var args []interface{}

	if filter.ClientID != nil {
		args = append(args, *filter.ClientID)
		where = append(where, fmt.Sprintf("a.client_id = $%d", len(args)))
	}
	if filter.StaffID != nil {
		args = append(args, *filter.StaffID)
		where = append(where, fmt.Sprintf("a.staff_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where = append(where, fmt.Sprintf("a.status = $%d", len(args)))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		where = append(where, fmt.Sprintf("a.date >= $%d", len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		where = append(where, fmt.Sprintf("a.date <= $%d", len(args)))
	}

	return where, args
}

// ListByStaffAndDate возвращает все записи специалиста на дату, включая
// терминальные: фильтрация по статусу — дело агрегатора занятости.
func (r *AppointmentRepo) ListByStaffAndDate(ctx context.Context, staffID int64, date time.Time) ([]domain.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments a
		JOIN services sv ON a.service_id = sv.id
		JOIN staff st ON a.staff_id = st.id
		WHERE a.staff_id = $1 AND a.date = $2
		ORDER BY a.start_minute
	`

	rows, err := r.db.Query(ctx, query, staffID, date)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения записей специалиста: %w", err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// ListByClientAndDate возвращает записи клиента на дату ко всем специалистам.
func (r *AppointmentRepo) ListByClientAndDate(ctx context.Context, clientID int64, date time.Time) ([]domain.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments a
		JOIN services sv ON a.service_id = sv.id
		JOIN staff st ON a.staff_id = st.id
		WHERE a.client_id = $1 AND a.date = $2
		ORDER BY a.start_minute
	`

	rows, err := r.db.Query(ctx, query, clientID, date)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения записей клиента: %w", err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

func scanAppointments(rows pgx.Rows) ([]domain.Appointment, error) {
	var appts []domain.Appointment
	for rows.Next() {
		var appt domain.Appointment
		err := rows.Scan(
			&appt.ID,
			&appt.ClientID,
			&appt.StaffID,
			&appt.ServiceID,
			&appt.Date,
			&appt.StartMinute,
			&appt.DurationMinutes,
			&appt.Status,
			&appt.CreatedAt,
			&appt.UpdatedAt,
			&appt.ServiceName,
			&appt.StaffName,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка при сканировании записи: %w", err)
		}
		appts = append(appts, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при обработке результатов запроса: %w", err)
	}

	return appts, nil
}
