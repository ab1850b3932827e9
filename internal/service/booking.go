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

// BookingServiceImpl — путь записи: проверка конфликтов перед созданием или
// переносом. Проверка здесь читает занятость без блокировок, поэтому сама по
// себе не защищает от гонки двух одновременных бронирований: авторитетная
// перепроверка выполняется репозиторием внутри транзакции вставки/обновления.
type BookingServiceImpl struct {
	apptRepo     repository.AppointmentRepository
	calendarRepo repository.CalendarRepository
	serviceRepo  repository.ServiceRepository
	staffRepo    repository.StaffRepository
	logger       *zap.Logger
}

func NewBookingService(
	apptRepo repository.AppointmentRepository,
	calendarRepo repository.CalendarRepository,
	serviceRepo repository.ServiceRepository,
	staffRepo repository.StaffRepository,
	logger *zap.Logger,
) *BookingServiceImpl {
	return &BookingServiceImpl{
		apptRepo:     apptRepo,
		calendarRepo: calendarRepo,
		serviceRepo:  serviceRepo,
		staffRepo:    staffRepo,
		logger:       logger,
	}
}

func (s *BookingServiceImpl) Create(ctx context.Context, clientID int64, dto domain.CreateAppointmentDTO) (int64, error) {
	date, startMinute, err := parseDateTime(dto.Date, dto.StartTime)
	if err != nil {
		return 0, err
	}

	svc, err := s.resolveService(ctx, dto.ServiceID)
	if err != nil {
		return 0, err
	}

	if err := s.checkConflicts(ctx, dto.StaffID, clientID, date, startMinute, svc.DurationMinutes, 0); err != nil {
		return 0, err
	}

	appt := domain.Appointment{
		ClientID:        clientID,
		StaffID:         dto.StaffID,
		ServiceID:       dto.ServiceID,
		Date:            date,
		StartMinute:     startMinute,
		DurationMinutes: svc.DurationMinutes,
		Status:          domain.AppointmentStatusPending,
	}

	id, err := s.apptRepo.Create(ctx, appt)
	if err != nil {
		s.logger.Error("ошибка создания записи", zap.Error(err))
		return 0, fmt.Errorf("ошибка создания записи: %w", err)
	}

	return id, nil
}

// Validate — сухая проверка бронирования без записи в базу: тот же путь, что
// и при создании, включая правило исключения собственной записи при переносе.
func (s *BookingServiceImpl) Validate(ctx context.Context, clientID int64, dto domain.ValidateBookingDTO) error {
	date, startMinute, err := parseDateTime(dto.Date, dto.StartTime)
	if err != nil {
		return err
	}

	svc, err := s.resolveService(ctx, dto.ServiceID)
	if err != nil {
		return err
	}

	return s.checkConflicts(ctx, dto.StaffID, clientID, date, startMinute, svc.DurationMinutes, dto.ExcludeAppointmentID)
}

func (s *BookingServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("запись не найдена: %w", domain.ErrNotFound)
		}
		s.logger.Error("ошибка получения записи", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("ошибка получения записи: %w", err)
	}
	return appt, nil
}

func (s *BookingServiceImpl) Update(ctx context.Context, id int64, dto domain.UpdateAppointmentDTO) error {
	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("запись не найдена: %w", domain.ErrNotFound)
		}
		s.logger.Error("запись для обновления не найдена", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("ошибка получения записи: %w", err)
	}

	if dto.StaffID != nil || dto.ServiceID != nil || dto.Date != nil || dto.StartTime != nil {
		if err := s.reschedule(ctx, appt, dto); err != nil {
			return err
		}
	}

	if dto.Status != nil {
		if err := s.apptRepo.UpdateStatus(ctx, id, *dto.Status); err != nil {
			s.logger.Error("ошибка обновления статуса записи", zap.Int64("id", id), zap.Error(err))
			return fmt.Errorf("ошибка обновления статуса записи: %w", err)
		}
	}

	return nil
}

func (s *BookingServiceImpl) reschedule(ctx context.Context, appt *domain.Appointment, dto domain.UpdateAppointmentDTO) error {
	next := *appt

	if dto.StaffID != nil {
		next.StaffID = *dto.StaffID
	}
	if dto.ServiceID != nil {
		svc, err := s.resolveService(ctx, *dto.ServiceID)
		if err != nil {
			return err
		}
		next.ServiceID = svc.ID
		// Длительность фиксируется заново только при смене услуги.
		next.DurationMinutes = svc.DurationMinutes
	}
	if dto.Date != nil {
		date, err := time.Parse("2006-01-02", *dto.Date)
		if err != nil {
			return errors.New("неверный формат даты, ожидается YYYY-MM-DD")
		}
		next.Date = date
	}
	if dto.StartTime != nil {
		startMinute, err := scheduling.ToMinutes(*dto.StartTime)
		if err != nil {
			return err
		}
		next.StartMinute = startMinute
	}

	// Старое время самой записи не считается занятым: перенос на
	// пересекающийся со старым интервал допустим.
	if err := s.checkConflicts(ctx, next.StaffID, next.ClientID, next.Date, next.StartMinute, next.DurationMinutes, next.ID); err != nil {
		return err
	}

	if err := s.apptRepo.Reschedule(ctx, next); err != nil {
		s.logger.Error("ошибка переноса записи", zap.Int64("id", next.ID), zap.Error(err))
		return fmt.Errorf("ошибка переноса записи: %w", err)
	}

	return nil
}

func (s *BookingServiceImpl) Cancel(ctx context.Context, id int64) error {
	if _, err := s.apptRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("запись не найдена: %w", domain.ErrNotFound)
		}
		s.logger.Error("запись для отмены не найдена", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("ошибка получения записи: %w", err)
	}

	if err := s.apptRepo.UpdateStatus(ctx, id, domain.AppointmentStatusCancelled); err != nil {
		s.logger.Error("ошибка отмены записи", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("ошибка отмены записи: %w", err)
	}

	return nil
}

func (s *BookingServiceImpl) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, int, error) {
	appts, err := s.apptRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка получения списка записей", zap.Error(err))
		return nil, 0, fmt.Errorf("ошибка получения списка записей: %w", err)
	}

	count, err := s.apptRepo.CountByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка получения количества записей", zap.Error(err))
		return appts, 0, nil
	}

	return appts, count, nil
}

// checkConflicts — две независимые проверки, обе должны пройти: занятость
// специалиста (включая обед), затем занятость клиента по всем специалистам.
// Порядок влияет только на то, какая ошибка будет показана первой.
func (s *BookingServiceImpl) checkConflicts(ctx context.Context, staffID, clientID int64, date time.Time, startMinute, duration int, excludeID int64) error {
	if duration <= 0 {
		return domain.ErrInvalidDuration
	}

	staff, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errors.New("специалист не найден")
		}
		s.logger.Error("ошибка при получении данных специалиста", zap.Int64("staffID", staffID), zap.Error(err))
		return fmt.Errorf("ошибка получения данных специалиста: %w", err)
	}
	if !staff.Active {
		return errors.New("специалист не принимает записи")
	}

	cal, err := s.calendarRepo.GetByStaffID(ctx, staffID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrScheduleNotConfigured
		}
		s.logger.Error("ошибка получения рабочего календаря", zap.Int64("staffID", staffID), zap.Error(err))
		return fmt.Errorf("ошибка получения рабочего календаря: %w", err)
	}

	windows, err := scheduling.ResolveDay(*cal, date)
	if err != nil {
		return err
	}

	proposed := scheduling.Interval{Start: startMinute, End: startMinute + duration}
	dateStr := date.Format("2006-01-02")

	if !windows.Working || proposed.Start < windows.Work.Start || proposed.End > windows.Work.End {
		return &domain.ConflictError{
			Kind:      domain.ConflictStaff,
			Reason:    "нерабочее время специалиста",
			StaffName: staff.Name,
			Date:      dateStr,
			StartTime: scheduling.FromMinutes(proposed.Start),
			EndTime:   scheduling.FromMinutes(proposed.End),
		}
	}

	staffAppts, err := s.apptRepo.ListByStaffAndDate(ctx, staffID, date)
	if err != nil {
		s.logger.Error("ошибка получения записей специалиста", zap.Int64("staffID", staffID), zap.Error(err))
		return fmt.Errorf("ошибка получения записей специалиста: %w", err)
	}

	staffBusy := scheduling.StaffOccupancy(staffAppts, windows.Break, date, excludeID)
	if c := scheduling.FirstConflict(proposed, staffBusy); c != nil {
		return &domain.ConflictError{
			Kind:          domain.ConflictStaff,
			Reason:        c.Reason,
			AppointmentID: c.AppointmentID,
			ServiceName:   c.ServiceName,
			StaffName:     staff.Name,
			Date:          dateStr,
			StartTime:     scheduling.FromMinutes(c.Start),
			EndTime:       scheduling.FromMinutes(c.End),
		}
	}

	clientAppts, err := s.apptRepo.ListByClientAndDate(ctx, clientID, date)
	if err != nil {
		s.logger.Error("ошибка получения записей клиента", zap.Int64("clientID", clientID), zap.Error(err))
		return fmt.Errorf("ошибка получения записей клиента: %w", err)
	}

	clientBusy := scheduling.ClientOccupancy(clientAppts, date, excludeID)
	if c := scheduling.FirstConflict(proposed, clientBusy); c != nil {
		return &domain.ConflictError{
			Kind:          domain.ConflictClient,
			Reason:        c.Reason,
			AppointmentID: c.AppointmentID,
			ServiceName:   c.ServiceName,
			StaffName:     c.StaffName,
			Date:          dateStr,
			StartTime:     scheduling.FromMinutes(c.Start),
			EndTime:       scheduling.FromMinutes(c.End),
		}
	}

	return nil
}

func (s *BookingServiceImpl) resolveService(ctx context.Context, serviceID int64) (*domain.ServiceDefinition, error) {
	svc, err := s.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errors.New("услуга не найдена")
		}
		s.logger.Error("ошибка при получении услуги", zap.Int64("serviceID", serviceID), zap.Error(err))
		return nil, fmt.Errorf("ошибка получения услуги: %w", err)
	}
	if !svc.Active {
		return nil, errors.New("услуга недоступна для записи")
	}
	if svc.DurationMinutes <= 0 {
		return nil, domain.ErrInvalidDuration
	}
	return svc, nil
}

func parseDateTime(dateStr, timeStr string) (time.Time, int, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, 0, errors.New("неверный формат даты, ожидается YYYY-MM-DD")
	}

	startMinute, err := scheduling.ToMinutes(timeStr)
	if err != nil {
		return time.Time{}, 0, err
	}

	return date, startMinute, nil
}
