package service

import (
	"context"
	"time"

	"zapis/internal/domain"
)

// Репозитории-заглушки в памяти: ядро планирования — чистая функция своих
// входов, поэтому сервисный слой тестируется без поднятия базы.

type fakeApptRepo struct {
	appts  map[int64]*domain.Appointment
	nextID int64
}

func newFakeApptRepo() *fakeApptRepo {
	return &fakeApptRepo{appts: make(map[int64]*domain.Appointment)}
}

func (f *fakeApptRepo) add(appt domain.Appointment) int64 {
	f.nextID++
	appt.ID = f.nextID
	f.appts[appt.ID] = &appt
	return appt.ID
}

func (f *fakeApptRepo) Create(_ context.Context, appt domain.Appointment) (int64, error) {
	return f.add(appt), nil
}

func (f *fakeApptRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.appts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *appt
	return &copied, nil
}

func (f *fakeApptRepo) Reschedule(_ context.Context, appt domain.Appointment) error {
	stored, ok := f.appts[appt.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.StaffID = appt.StaffID
	stored.ServiceID = appt.ServiceID
	stored.Date = appt.Date
	stored.StartMinute = appt.StartMinute
	stored.DurationMinutes = appt.DurationMinutes
	return nil
}

func (f *fakeApptRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	appt, ok := f.appts[id]
	if !ok {
		return domain.ErrNotFound
	}
	appt.Status = status
	return nil
}

func (f *fakeApptRepo) List(_ context.Context, _ domain.AppointmentFilter) ([]domain.Appointment, error) {
	var out []domain.Appointment
	for _, a := range f.appts {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeApptRepo) CountByFilter(_ context.Context, _ domain.AppointmentFilter) (int, error) {
	return len(f.appts), nil
}

func (f *fakeApptRepo) ListByStaffAndDate(_ context.Context, staffID int64, date time.Time) ([]domain.Appointment, error) {
	var out []domain.Appointment
	for _, a := range f.appts {
		if a.StaffID == staffID && sameDate(a.Date, date) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeApptRepo) ListByClientAndDate(_ context.Context, clientID int64, date time.Time) ([]domain.Appointment, error) {
	var out []domain.Appointment
	for _, a := range f.appts {
		if a.ClientID == clientID && sameDate(a.Date, date) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

type fakeCalendarRepo struct {
	calendars map[int64]*domain.WorkCalendar
}

func newFakeCalendarRepo() *fakeCalendarRepo {
	return &fakeCalendarRepo{calendars: make(map[int64]*domain.WorkCalendar)}
}

func (f *fakeCalendarRepo) GetByStaffID(_ context.Context, staffID int64) (*domain.WorkCalendar, error) {
	cal, ok := f.calendars[staffID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *cal
	return &copied, nil
}

func (f *fakeCalendarRepo) Upsert(_ context.Context, cal domain.WorkCalendar) error {
	f.calendars[cal.StaffID] = &cal
	return nil
}

type fakeServiceRepo struct {
	services map[int64]*domain.ServiceDefinition
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: make(map[int64]*domain.ServiceDefinition)}
}

func (f *fakeServiceRepo) Create(_ context.Context, dto domain.CreateServiceDTO) (int64, error) {
	id := int64(len(f.services) + 1)
	f.services[id] = &domain.ServiceDefinition{ID: id, Name: dto.Name, DurationMinutes: dto.DurationMinutes, Active: true}
	return id, nil
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id int64) (*domain.ServiceDefinition, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *svc
	return &copied, nil
}

func (f *fakeServiceRepo) Update(_ context.Context, id int64, dto domain.UpdateServiceDTO) error {
	svc, ok := f.services[id]
	if !ok {
		return domain.ErrNotFound
	}
	if dto.Name != nil {
		svc.Name = *dto.Name
	}
	if dto.DurationMinutes != nil {
		svc.DurationMinutes = *dto.DurationMinutes
	}
	if dto.Active != nil {
		svc.Active = *dto.Active
	}
	return nil
}

func (f *fakeServiceRepo) Delete(_ context.Context, id int64) error {
	svc, ok := f.services[id]
	if !ok {
		return domain.ErrNotFound
	}
	svc.Active = false
	return nil
}

func (f *fakeServiceRepo) List(_ context.Context, onlyActive bool, _, _ int) ([]domain.ServiceDefinition, int, error) {
	var out []domain.ServiceDefinition
	for _, svc := range f.services {
		if onlyActive && !svc.Active {
			continue
		}
		out = append(out, *svc)
	}
	return out, len(out), nil
}

type fakeStaffRepo struct {
	staff map[int64]*domain.Staff
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{staff: make(map[int64]*domain.Staff)}
}

func (f *fakeStaffRepo) Create(_ context.Context, dto domain.CreateStaffDTO) (int64, error) {
	id := int64(len(f.staff) + 1)
	f.staff[id] = &domain.Staff{ID: id, UserID: dto.UserID, Name: dto.Name, Active: true}
	return id, nil
}

func (f *fakeStaffRepo) GetByID(_ context.Context, id int64) (*domain.Staff, error) {
	st, ok := f.staff[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *st
	return &copied, nil
}

func (f *fakeStaffRepo) GetByUserID(_ context.Context, userID int64) (*domain.Staff, error) {
	for _, st := range f.staff {
		if st.UserID == userID {
			copied := *st
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeStaffRepo) Update(_ context.Context, id int64, dto domain.UpdateStaffDTO) error {
	st, ok := f.staff[id]
	if !ok {
		return domain.ErrNotFound
	}
	if dto.Name != nil {
		st.Name = *dto.Name
	}
	if dto.Active != nil {
		st.Active = *dto.Active
	}
	return nil
}

func (f *fakeStaffRepo) List(_ context.Context, _, _ int) ([]domain.Staff, int, error) {
	var out []domain.Staff
	for _, st := range f.staff {
		out = append(out, *st)
	}
	return out, len(out), nil
}
