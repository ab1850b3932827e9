package service

import (
	"context"

	"go.uber.org/zap"

	"zapis/config"
	"zapis/internal/domain"
	"zapis/internal/repository"
)

type Deps struct {
	Repos  *repository.Repositories
	Logger *zap.Logger
	Config *config.Config
}

type Services struct {
	Availability AvailabilityService
	Booking      BookingService
	Calendar     CalendarService
	Catalog      CatalogService
	Staff        StaffService
}

func NewServices(deps Deps) *Services {
	return &Services{
		Availability: NewAvailabilityService(deps.Repos.Calendar, deps.Repos.Appointment, deps.Repos.Service, deps.Repos.Staff, deps.Config.Scheduling.SlotStepMinutes, deps.Logger),
		Booking:      NewBookingService(deps.Repos.Appointment, deps.Repos.Calendar, deps.Repos.Service, deps.Repos.Staff, deps.Logger),
		Calendar:     NewCalendarService(deps.Repos.Calendar, deps.Repos.Staff, deps.Logger),
		Catalog:      NewCatalogService(deps.Repos.Service, deps.Logger),
		Staff:        NewStaffService(deps.Repos.Staff, deps.Logger),
	}
}

type AvailabilityService interface {
	GetDay(ctx context.Context, staffID int64, date string, serviceID int64) (*domain.DayAvailability, error)
}

type BookingService interface {
	Create(ctx context.Context, clientID int64, dto domain.CreateAppointmentDTO) (int64, error)
	Validate(ctx context.Context, clientID int64, dto domain.ValidateBookingDTO) error
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Update(ctx context.Context, id int64, dto domain.UpdateAppointmentDTO) error
	Cancel(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, int, error)
}

type CalendarService interface {
	GetByStaffID(ctx context.Context, staffID int64) (*domain.WorkCalendar, error)
	Upsert(ctx context.Context, staffID int64, dto domain.UpsertWorkCalendarDTO) error
}

type CatalogService interface {
	Create(ctx context.Context, dto domain.CreateServiceDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.ServiceDefinition, error)
	Update(ctx context.Context, id int64, dto domain.UpdateServiceDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, onlyActive bool, limit, offset int) ([]domain.ServiceDefinition, int, error)
}

type StaffService interface {
	Create(ctx context.Context, dto domain.CreateStaffDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Staff, error)
	Update(ctx context.Context, id int64, dto domain.UpdateStaffDTO) error
	List(ctx context.Context, limit, offset int) ([]domain.Staff, int, error)
}
