package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"zapis/internal/domain"
)

type Repositories struct {
	Staff       StaffRepository
	Calendar    CalendarRepository
	Service     ServiceRepository
	Appointment AppointmentRepository
}

func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Staff:       NewStaffRepository(db),
		Calendar:    NewCalendarRepository(db),
		Service:     NewServiceRepository(db),
		Appointment: NewAppointmentRepository(db),
	}
}

type StaffRepository interface {
	Create(ctx context.Context, dto domain.CreateStaffDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Staff, error)
	Update(ctx context.Context, id int64, dto domain.UpdateStaffDTO) error
	List(ctx context.Context, limit, offset int) ([]domain.Staff, int, error)
}

type CalendarRepository interface {
	GetByStaffID(ctx context.Context, staffID int64) (*domain.WorkCalendar, error)
	Upsert(ctx context.Context, cal domain.WorkCalendar) error
}

type ServiceRepository interface {
	Create(ctx context.Context, dto domain.CreateServiceDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.ServiceDefinition, error)
	Update(ctx context.Context, id int64, dto domain.UpdateServiceDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, onlyActive bool, limit, offset int) ([]domain.ServiceDefinition, int, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, appt domain.Appointment) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Reschedule(ctx context.Context, appt domain.Appointment) error
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error)
	CountByFilter(ctx context.Context, filter domain.AppointmentFilter) (int, error)
	ListByStaffAndDate(ctx context.Context, staffID int64, date time.Time) ([]domain.Appointment, error)
	ListByClientAndDate(ctx context.Context, clientID int64, date time.Time) ([]domain.Appointment, error)
}
