package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"zapis/internal/domain"
	"zapis/internal/repository"
	"zapis/internal/scheduling"
)

type AvailabilityServiceImpl struct {
	calendarRepo repository.CalendarRepository
	apptRepo     repository.AppointmentRepository
	serviceRepo  repository.ServiceRepository
	staffRepo    repository.StaffRepository
	stepMinutes  int
	logger       *zap.Logger
}

func NewAvailabilityService(
	calendarRepo repository.CalendarRepository,
	apptRepo repository.AppointmentRepository,
	serviceRepo repository.ServiceRepository,
	staffRepo repository.StaffRepository,
	stepMinutes int,
	logger *zap.Logger,
) *AvailabilityServiceImpl {
	return &AvailabilityServiceImpl{
		calendarRepo: calendarRepo,
		apptRepo:     apptRepo,
		serviceRepo:  serviceRepo,
		staffRepo:    staffRepo,
		stepMinutes:  stepMinutes,
		logger:       logger,
	}
}

// GetDay строит полную сетку дня для специалиста и услуги. Сетка
// пересчитывается на каждый запрос: занятость меняется часто, а расчёт дешёв.
func (s *AvailabilityServiceImpl) GetDay(ctx context.Context, staffID int64, dateStr string, serviceID int64) (*domain.DayAvailability, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		s.logger.Warn("неверный формат даты", zap.String("date", dateStr), zap.Error(err))
		return nil, errors.New("неверный формат даты, ожидается YYYY-MM-DD")
	}

	if _, err := s.staffRepo.GetByID(ctx, staffID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("специалист не найден: %w", domain.ErrNotFound)
		}
		s.logger.Error("ошибка при получении данных специалиста", zap.Int64("staffID", staffID), zap.Error(err))
		return nil, fmt.Errorf("ошибка получения данных специалиста: %w", err)
	}

	svc, err := s.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("услуга не найдена: %w", domain.ErrNotFound)
		}
		s.logger.Error("ошибка при получении услуги", zap.Int64("serviceID", serviceID), zap.Error(err))
		return nil, fmt.Errorf("ошибка получения услуги: %w", err)
	}

	cal, err := s.calendarRepo.GetByStaffID(ctx, staffID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Отсутствие календаря — не выходной, а пробел в конфигурации.
			return nil, domain.ErrScheduleNotConfigured
		}
		s.logger.Error("ошибка получения рабочего календаря", zap.Int64("staffID", staffID), zap.Error(err))
		return nil, fmt.Errorf("ошибка получения рабочего календаря: %w", err)
	}

	windows, err := scheduling.ResolveDay(*cal, date)
	if err != nil {
		return nil, err
	}

	result := &domain.DayAvailability{
		StaffID: staffID,
		Date:    dateStr,
		Working: windows.Working,
		Slots:   []domain.TimeOption{},
	}

	if !windows.Working {
		return result, nil
	}

	appts, err := s.apptRepo.ListByStaffAndDate(ctx, staffID, date)
	if err != nil {
		s.logger.Error("ошибка получения записей специалиста", zap.Int64("staffID", staffID), zap.Error(err))
		return nil, fmt.Errorf("ошибка получения записей специалиста: %w", err)
	}

	busy := scheduling.StaffOccupancy(appts, windows.Break, date, 0)

	slots, err := scheduling.BuildGrid(*windows.Work, busy, svc.DurationMinutes, s.stepMinutes)
	if err != nil {
		return nil, err
	}
	if slots != nil {
		result.Slots = slots
	}

	return result, nil
}
