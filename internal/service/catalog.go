package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"zapis/internal/domain"
	"zapis/internal/repository"
)

type CatalogServiceImpl struct {
	repo   repository.ServiceRepository
	logger *zap.Logger
}

func NewCatalogService(repo repository.ServiceRepository, logger *zap.Logger) *CatalogServiceImpl {
	return &CatalogServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *CatalogServiceImpl) Create(ctx context.Context, dto domain.CreateServiceDTO) (int64, error) {
	if dto.DurationMinutes <= 0 {
		return 0, domain.ErrInvalidDuration
	}

	id, err := s.repo.Create(ctx, dto)
	if err != nil {
		s.logger.Error("ошибка создания услуги", zap.Error(err))
		return 0, fmt.Errorf("ошибка создания услуги: %w", err)
	}

	return id, nil
}

func (s *CatalogServiceImpl) GetByID(ctx context.Context, id int64) (*domain.ServiceDefinition, error) {
	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("услуга не найдена: %w", domain.ErrNotFound)
		}
		s.logger.Error("ошибка получения услуги", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("ошибка получения услуги: %w", err)
	}
	return svc, nil
}

func (s *CatalogServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateServiceDTO) error {
	if dto.DurationMinutes != nil && *dto.DurationMinutes <= 0 {
		return domain.ErrInvalidDuration
	}

	if err := s.repo.Update(ctx, id, dto); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("услуга не найдена: %w", domain.ErrNotFound)
		}
		s.logger.Error("ошибка обновления услуги", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("ошибка обновления услуги: %w", err)
	}

	return nil
}

func (s *CatalogServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("услуга не найдена: %w", domain.ErrNotFound)
		}
		s.logger.Error("ошибка удаления услуги", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("ошибка удаления услуги: %w", err)
	}
	return nil
}

func (s *CatalogServiceImpl) List(ctx context.Context, onlyActive bool, limit, offset int) ([]domain.ServiceDefinition, int, error) {
	services, total, err := s.repo.List(ctx, onlyActive, limit, offset)
	if err != nil {
		s.logger.Error("ошибка получения списка услуг", zap.Error(err))
		return nil, 0, fmt.Errorf("ошибка получения списка услуг: %w", err)
	}
	return services, total, nil
}
