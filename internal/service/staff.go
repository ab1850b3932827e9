package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"zapis/internal/domain"
	"zapis/internal/repository"
)

type StaffServiceImpl struct {
	repo   repository.StaffRepository
	logger *zap.Logger
}

func NewStaffService(repo repository.StaffRepository, logger *zap.Logger) *StaffServiceImpl {
	return &StaffServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *StaffServiceImpl) Create(ctx context.Context, dto domain.CreateStaffDTO) (int64, error) {
	if strings.TrimSpace(dto.Name) == "" {
		return 0, errors.New("имя сотрудника не может быть пустым")
	}

	id, err := s.repo.Create(ctx, dto)
	if err != nil {
		s.logger.Error("ошибка создания сотрудника", zap.Error(err))
		return 0, fmt.Errorf("ошибка создания сотрудника: %w", err)
	}

	return id, nil
}

func (s *StaffServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Staff, error) {
	staff, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("специалист не найден: %w", domain.ErrNotFound)
		}
		s.logger.Error("ошибка получения сотрудника", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("ошибка получения сотрудника: %w", err)
	}
	return staff, nil
}

func (s *StaffServiceImpl) GetByUserID(ctx context.Context, userID int64) (*domain.Staff, error) {
	staff, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("профиль специалиста не найден: %w", domain.ErrNotFound)
		}
		s.logger.Error("ошибка получения сотрудника", zap.Int64("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("ошибка получения сотрудника: %w", err)
	}
	return staff, nil
}

func (s *StaffServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateStaffDTO) error {
	if dto.Name != nil && strings.TrimSpace(*dto.Name) == "" {
		return errors.New("имя сотрудника не может быть пустым")
	}

	if err := s.repo.Update(ctx, id, dto); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("специалист не найден: %w", domain.ErrNotFound)
		}
		s.logger.Error("ошибка обновления сотрудника", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("ошибка обновления сотрудника: %w", err)
	}

	return nil
}

func (s *StaffServiceImpl) List(ctx context.Context, limit, offset int) ([]domain.Staff, int, error) {
	staffList, total, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		s.logger.Error("ошибка получения списка сотрудников", zap.Error(err))
		return nil, 0, fmt.Errorf("ошибка получения списка сотрудников: %w", err)
	}
	return staffList, total, nil
}
