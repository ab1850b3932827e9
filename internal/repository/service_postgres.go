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

type ServiceRepo struct {
	db *pgxpool.Pool
}

func NewServiceRepository(db *pgxpool.Pool) *ServiceRepo {
	return &ServiceRepo{
		db: db,
	}
}

func (r *ServiceRepo) Create(ctx context.Context, dto domain.CreateServiceDTO) (int64, error) {
	query := `
		INSERT INTO services (name, duration_minutes, active, created_at, updated_at)
		VALUES ($1, $2, true, $3, $3)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query, dto.Name, dto.DurationMinutes, time.Now()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("ошибка создания услуги: %w", err)
	}

	return id, nil
}

func (r *ServiceRepo) GetByID(ctx context.Context, id int64) (*domain.ServiceDefinition, error) {
	query := `
		SELECT id, name, duration_minutes, active, created_at, updated_at
		FROM services
		WHERE id = $1
	`

	var svc domain.ServiceDefinition
	err := r.db.QueryRow(ctx, query, id).Scan(
		&svc.ID,
		&svc.Name,
		&svc.DurationMinutes,
		&svc.Active,
		&svc.CreatedAt,
		&svc.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения услуги: %w", err)
	}

	return &svc, nil
}

func (r *ServiceRepo) Update(ctx context.Context, id int64, dto domain.UpdateServiceDTO) error {
	var updateFields []string
	var args []interface{}

	if dto.Name != nil {
		args = append(args, *dto.Name)
		updateFields = append(updateFields, fmt.Sprintf("name = $%d", len(args)))
	}
	if dto.DurationMinutes != nil {
		args = append(args, *dto.DurationMinutes)
		updateFields = append(updateFields, fmt.Sprintf("duration_minutes = $%d", len(args)))
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
	query := fmt.Sprintf("UPDATE services SET %s WHERE id = $%d",
		strings.Join(updateFields, ", "), len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления услуги: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// Delete деактивирует услугу. Физически строка остаётся: на неё ссылаются
// существующие записи.
func (r *ServiceRepo) Delete(ctx context.Context, id int64) error {
	query := `UPDATE services SET active = false, updated_at = $1 WHERE id = $2`

	tag, err := r.db.Exec(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("ошибка удаления услуги: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *ServiceRepo) List(ctx context.Context, onlyActive bool, limit, offset int) ([]domain.ServiceDefinition, int, error) {
	query := `
		SELECT id, name, duration_minutes, active, created_at, updated_at
		FROM services
	`
	countQuery := `SELECT COUNT(*) FROM services`

	if onlyActive {
		query += " WHERE active"
		countQuery += " WHERE active"
	}
	query += " ORDER BY name LIMIT $1 OFFSET $2"

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения списка услуг: %w", err)
	}
	defer rows.Close()

	var services []domain.ServiceDefinition
	for rows.Next() {
		var svc domain.ServiceDefinition
		err := rows.Scan(&svc.ID, &svc.Name, &svc.DurationMinutes, &svc.Active, &svc.CreatedAt, &svc.UpdatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("ошибка при сканировании услуги: %w", err)
		}
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ошибка при обработке результатов запроса: %w", err)
	}

	var total int
	if err := r.db.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ошибка получения количества услуг: %w", err)
	}

	return services, total, nil
}
