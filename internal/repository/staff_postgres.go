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

type StaffRepo struct {
	db *pgxpool.Pool
}

func NewStaffRepository(db *pgxpool.Pool) *StaffRepo {
	return &StaffRepo{
		db: db,
	}
}

func (r *StaffRepo) Create(ctx context.Context, dto domain.CreateStaffDTO) (int64, error) {
	query := `
		INSERT INTO staff (user_id, name, active, created_at, updated_at)
		VALUES ($1, $2, true, $3, $3)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query, dto.UserID, dto.Name, time.Now()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("ошибка создания сотрудника: %w", err)
	}

	return id, nil
}

func (r *StaffRepo) GetByID(ctx context.Context, id int64) (*domain.Staff, error) {
	return r.getByField(ctx, "id", id)
}

func (r *StaffRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Staff, error) {
	return r.getByField(ctx, "user_id", userID)
}

func (r *StaffRepo) getByField(ctx context.Context, field string, value int64) (*domain.Staff, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, name, active, created_at, updated_at
		FROM staff
		WHERE %s = $1
	`, field)

	var staff domain.Staff
	err := r.db.QueryRow(ctx, query, value).Scan(
		&staff.ID,
		&staff.UserID,
		&staff.Name,
		&staff.Active,
		&staff.CreatedAt,
		&staff.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения сотрудника: %w", err)
	}

	return &staff, nil
}

func (r *StaffRepo) Update(ctx context.Context, id int64, dto domain.UpdateStaffDTO) error {
	var updateFields []string
	var args []interface{}

	if dto.Name != nil {
		args = append(args, *dto.Name)
		updateFields = append(updateFields, fmt.Sprintf("name = $%d", len(args)))
	}
	if dto.Active != nil {
		args = append(args, *dto.Active)
		updateFields = append(updateFields, fmt.Sprintf("active = $%d", len(args)))
	}

	if len(updateFields) == 0 {
		return nil
	}

	args = append(args, time.Now())
	updateFields = append(updateFields, fmt.Sprintf("updated_at = $%d", len(args)))

	args = append(args, id)
	query := fmt.Sprintf("UPDATE staff SET %s WHERE id = $%d",
		strings.Join(updateFields, ", "), len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления сотрудника: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *StaffRepo) List(ctx context.Context, limit, offset int) ([]domain.Staff, int, error) {
	query := `
		SELECT id, user_id, name, active, created_at, updated_at
		FROM staff
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения списка сотрудников: %w", err)
	}
	defer rows.Close()

	var staffList []domain.Staff
	for rows.Next() {
		var staff domain.Staff
		err := rows.Scan(&staff.ID, &staff.UserID, &staff.Name, &staff.Active, &staff.CreatedAt, &staff.UpdatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("ошибка при сканировании сотрудника: %w", err)
		}
		staffList = append(staffList, staff)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ошибка при обработке результатов запроса: %w", err)
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM staff`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ошибка получения количества сотрудников: %w", err)
	}

	return staffList, total, nil
}
