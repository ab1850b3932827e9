package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"zapis/internal/domain"
	"zapis/internal/repository"
	"zapis/internal/scheduling"
)

type CalendarServiceImpl struct {
	repo      repository.CalendarRepository
	staffRepo repository.StaffRepository
	logger    *zap.Logger
}

func NewCalendarService(
	repo repository.CalendarRepository,
	staffRepo repository.StaffRepository,
	logger *zap.Logger,
) *CalendarServiceImpl {
	return &CalendarServiceImpl{
		repo:      repo,
		staffRepo: staffRepo,
		logger:    logger,
	}
}

func (s *CalendarServiceImpl) GetByStaffID(ctx context.Context, staffID int64) (*domain.WorkCalendar, error) {
	cal, err := s.repo.GetByStaffID(ctx, staffID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("рабочий календарь не найден: %w", domain.ErrNotFound)
		}
		s.logger.Error("ошибка получения рабочего календаря", zap.Int64("staffID", staffID), zap.Error(err))
		return nil, fmt.Errorf("ошибка получения рабочего календаря: %w", err)
	}
	return cal, nil
}

// Upsert сохраняет недельный шаблон, предварительно проверив инварианты:
// конец позже начала, обед целиком внутри рабочего окна, либо обе границы
// обеда заданы, либо ни одной.
func (s *CalendarServiceImpl) Upsert(ctx context.Context, staffID int64, dto domain.UpsertWorkCalendarDTO) error {
	if _, err := s.staffRepo.GetByID(ctx, staffID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errors.New("специалист не найден")
		}
		s.logger.Error("ошибка при получении данных специалиста", zap.Int64("staffID", staffID), zap.Error(err))
		return fmt.Errorf("ошибка получения данных специалиста: %w", err)
	}

	if len(dto.Weekdays) == 0 {
		return errors.New("нужно указать хотя бы один рабочий день недели")
	}
	seen := make(map[int]bool)
	for _, d := range dto.Weekdays {
		if d < 0 || d > 6 {
			return errors.New("день недели должен быть от 0 (воскресенье) до 6 (суббота)")
		}
		if seen[d] {
			return errors.New("дни недели не должны повторяться")
		}
		seen[d] = true
	}

	workStart, err := scheduling.ToMinutes(dto.WorkStart)
	if err != nil {
		return err
	}
	workEnd, err := scheduling.ToMinutes(dto.WorkEnd)
	if err != nil {
		return err
	}
	if workEnd <= workStart {
		return errors.New("конец рабочего дня должен быть позже начала")
	}

	if (dto.LunchStart == nil) != (dto.LunchEnd == nil) {
		return errors.New("границы обеда задаются парой либо не задаются вовсе")
	}
	if dto.LunchStart != nil {
		lunchStart, err := scheduling.ToMinutes(*dto.LunchStart)
		if err != nil {
			return err
		}
		lunchEnd, err := scheduling.ToMinutes(*dto.LunchEnd)
		if err != nil {
			return err
		}
		if lunchEnd <= lunchStart {
			return errors.New("конец обеда должен быть позже начала")
		}
		if lunchStart < workStart || lunchEnd > workEnd {
			return errors.New("обед должен находиться внутри рабочего дня")
		}
	}

	cal := domain.WorkCalendar{
		StaffID:    staffID,
		Weekdays:   dto.Weekdays,
		WorkStart:  &dto.WorkStart,
		WorkEnd:    &dto.WorkEnd,
		LunchStart: dto.LunchStart,
		LunchEnd:   dto.LunchEnd,
	}

	if err := s.repo.Upsert(ctx, cal); err != nil {
		s.logger.Error("ошибка сохранения рабочего календаря", zap.Int64("staffID", staffID), zap.Error(err))
		return fmt.Errorf("ошибка сохранения рабочего календаря: %w", err)
	}

	return nil
}
