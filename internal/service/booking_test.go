package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"zapis/internal/domain"
)

type bookingFixture struct {
	booking  *BookingServiceImpl
	appts    *fakeApptRepo
	cals     *fakeCalendarRepo
	services *fakeServiceRepo
	staff    *fakeStaffRepo
}

// 2025-06-02 — понедельник.
const testDate = "2025-06-02"

func testDay() time.Time {
	return time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	appts := newFakeApptRepo()
	cals := newFakeCalendarRepo()
	services := newFakeServiceRepo()
	staff := newFakeStaffRepo()

	// Два специалиста с одинаковым графиком: будни 09:00-18:00, обед 12:00-13:00.
	for userID := int64(100); userID <= 101; userID++ {
		name := "Анна"
		if userID == 101 {
			name = "Борис"
		}
		id, _ := staff.Create(context.Background(), domain.CreateStaffDTO{UserID: userID, Name: name})
		ws, we, ls, le := "09:00", "18:00", "12:00", "13:00"
		_ = cals.Upsert(context.Background(), domain.WorkCalendar{
			StaffID:    id,
			Weekdays:   []int{1, 2, 3, 4, 5},
			WorkStart:  &ws,
			WorkEnd:    &we,
			LunchStart: &ls,
			LunchEnd:   &le,
		})
	}

	_, _ = services.Create(context.Background(), domain.CreateServiceDTO{Name: "стрижка", DurationMinutes: 30})
	_, _ = services.Create(context.Background(), domain.CreateServiceDTO{Name: "окрашивание", DurationMinutes: 45})

	return &bookingFixture{
		booking:  NewBookingService(appts, cals, services, staff, zap.NewNop()),
		appts:    appts,
		cals:     cals,
		services: services,
		staff:    staff,
	}
}

func (f *bookingFixture) seedAppointment(staffID, clientID int64, start, dur int, status domain.AppointmentStatus) int64 {
	return f.appts.add(domain.Appointment{
		StaffID:         staffID,
		ClientID:        clientID,
		ServiceID:       1,
		Date:            testDay(),
		StartMinute:     start,
		DurationMinutes: dur,
		Status:          status,
		ServiceName:     "стрижка",
		StaffName:       "Анна",
	})
}

func TestCreateHappyPath(t *testing.T) {
	f := newBookingFixture(t)

	id, err := f.booking.Create(context.Background(), 7, domain.CreateAppointmentDTO{
		StaffID:   1,
		ServiceID: 1,
		Date:      testDate,
		StartTime: "10:00",
	})
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	appt, err := f.booking.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("запись не найдена: %v", err)
	}
	if appt.StartMinute != 600 || appt.DurationMinutes != 30 {
		t.Fatalf("неверные параметры записи: %+v", appt)
	}
	if appt.Status != domain.AppointmentStatusPending {
		t.Fatalf("новая запись должна быть pending, получено %s", appt.Status)
	}
}

// Точное совпадение интервала с существующей записью того же специалиста
// отклоняется; после отмены той записи то же время принимается.
func TestValidateExactOverlap(t *testing.T) {
	f := newBookingFixture(t)
	existing := f.seedAppointment(1, 2, 600, 30, domain.AppointmentStatusConfirmed)

	dto := domain.ValidateBookingDTO{StaffID: 1, ServiceID: 1, Date: testDate, StartTime: "10:00"}

	err := f.booking.Validate(context.Background(), 3, dto)
	ce, ok := domain.IsConflict(err)
	if !ok {
		t.Fatalf("ожидался конфликт, получено %v", err)
	}
	if ce.Kind != domain.ConflictStaff {
		t.Fatalf("ожидался конфликт специалиста, получен %s", ce.Kind)
	}
	if ce.AppointmentID != existing {
		t.Fatalf("конфликт должен ссылаться на запись %d: %+v", existing, ce)
	}

	if err := f.appts.UpdateStatus(context.Background(), existing, domain.AppointmentStatusCancelled); err != nil {
		t.Fatalf("не удалось отменить запись: %v", err)
	}
	if err := f.booking.Validate(context.Background(), 3, dto); err != nil {
		t.Fatalf("отменённая запись не занимает время: %v", err)
	}
}

// Пересечение с обедом — тоже конфликт специалиста, но без ссылки на запись.
func TestValidateLunchConflict(t *testing.T) {
	f := newBookingFixture(t)

	err := f.booking.Validate(context.Background(), 3, domain.ValidateBookingDTO{
		StaffID: 1, ServiceID: 1, Date: testDate, StartTime: "11:45",
	})
	ce, ok := domain.IsConflict(err)
	if !ok {
		t.Fatalf("ожидался конфликт, получено %v", err)
	}
	if ce.Kind != domain.ConflictStaff || ce.AppointmentID != 0 {
		t.Fatalf("ожидался конфликт с обедом: %+v", ce)
	}
}

// Запись клиента к другому специалисту на пересекающееся время отклоняется
// с деталями существующей записи.
func TestValidateClientDoubleBookedAcrossStaff(t *testing.T) {
	f := newBookingFixture(t)
	f.seedAppointment(1, 5, 840, 30, domain.AppointmentStatusConfirmed)

	err := f.booking.Validate(context.Background(), 5, domain.ValidateBookingDTO{
		StaffID: 2, ServiceID: 1, Date: testDate, StartTime: "14:15",
	})
	ce, ok := domain.IsConflict(err)
	if !ok {
		t.Fatalf("ожидался конфликт, получено %v", err)
	}
	if ce.Kind != domain.ConflictClient {
		t.Fatalf("ожидался конфликт клиента, получен %s", ce.Kind)
	}
	if ce.StaffName != "Анна" || ce.ServiceName != "стрижка" {
		t.Fatalf("конфликт должен ссылаться на существующую запись: %+v", ce)
	}
	if ce.StartTime != "14:00" || ce.EndTime != "14:30" {
		t.Fatalf("неверный интервал конфликта: %+v", ce)
	}

	// Другой клиент то же время у второго специалиста занять может.
	if err := f.booking.Validate(context.Background(), 6, domain.ValidateBookingDTO{
		StaffID: 2, ServiceID: 1, Date: testDate, StartTime: "14:15",
	}); err != nil {
		t.Fatalf("конфликт не ожидался: %v", err)
	}
}

// Перенос записи на интервал, пересекающийся с её же старым временем,
// допустим: собственный интервал исключается из проверки.
func TestRescheduleExcludesSelf(t *testing.T) {
	f := newBookingFixture(t)
	id := f.seedAppointment(1, 7, 600, 30, domain.AppointmentStatusConfirmed)

	newStart := "10:15"
	if err := f.booking.Update(context.Background(), id, domain.UpdateAppointmentDTO{StartTime: &newStart}); err != nil {
		t.Fatalf("перенос должен пройти: %v", err)
	}

	appt, err := f.booking.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("запись не найдена: %v", err)
	}
	if appt.StartMinute != 615 {
		t.Fatalf("запись не перенесена: %+v", appt)
	}
}

// Перенос на время чужой записи по-прежнему отклоняется.
func TestRescheduleStillChecksOthers(t *testing.T) {
	f := newBookingFixture(t)
	id := f.seedAppointment(1, 7, 600, 30, domain.AppointmentStatusConfirmed)
	f.seedAppointment(1, 8, 660, 30, domain.AppointmentStatusPending)

	newStart := "11:00"
	err := f.booking.Update(context.Background(), id, domain.UpdateAppointmentDTO{StartTime: &newStart})
	ce, ok := domain.IsConflict(err)
	if !ok {
		t.Fatalf("ожидался конфликт, получено %v", err)
	}
	if ce.Kind != domain.ConflictStaff {
		t.Fatalf("ожидался конфликт специалиста: %+v", ce)
	}
}

func TestValidateOutsideWorkingHours(t *testing.T) {
	f := newBookingFixture(t)

	cases := []string{"08:00", "17:45"}
	for _, start := range cases {
		err := f.booking.Validate(context.Background(), 3, domain.ValidateBookingDTO{
			StaffID: 1, ServiceID: 1, Date: testDate, StartTime: start,
		})
		ce, ok := domain.IsConflict(err)
		if !ok || ce.Kind != domain.ConflictStaff {
			t.Errorf("%s: ожидался конфликт специалиста, получено %v", start, err)
		}
	}
}

func TestValidateDayOff(t *testing.T) {
	f := newBookingFixture(t)

	// 2025-06-01 — воскресенье.
	err := f.booking.Validate(context.Background(), 3, domain.ValidateBookingDTO{
		StaffID: 1, ServiceID: 1, Date: "2025-06-01", StartTime: "10:00",
	})
	if _, ok := domain.IsConflict(err); !ok {
		t.Fatalf("запись в выходной должна отклоняться: %v", err)
	}
}

func TestValidateBadTime(t *testing.T) {
	f := newBookingFixture(t)

	err := f.booking.Validate(context.Background(), 3, domain.ValidateBookingDTO{
		StaffID: 1, ServiceID: 1, Date: testDate, StartTime: "25:00",
	})
	if !errors.Is(err, domain.ErrInvalidTimeFormat) {
		t.Fatalf("ожидалась ErrInvalidTimeFormat, получено %v", err)
	}
}

func TestValidateNoCalendar(t *testing.T) {
	f := newBookingFixture(t)
	staffID, _ := f.staff.Create(context.Background(), domain.CreateStaffDTO{UserID: 200, Name: "Вера"})

	err := f.booking.Validate(context.Background(), 3, domain.ValidateBookingDTO{
		StaffID: staffID, ServiceID: 1, Date: testDate, StartTime: "10:00",
	})
	if !errors.Is(err, domain.ErrScheduleNotConfigured) {
		t.Fatalf("ожидалась ErrScheduleNotConfigured, получено %v", err)
	}
}

func TestCancel(t *testing.T) {
	f := newBookingFixture(t)
	id := f.seedAppointment(1, 7, 600, 30, domain.AppointmentStatusConfirmed)

	if err := f.booking.Cancel(context.Background(), id); err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	appt, _ := f.booking.GetByID(context.Background(), id)
	if appt.Status != domain.AppointmentStatusCancelled {
		t.Fatalf("запись должна быть отменена: %+v", appt)
	}

	// Освободившееся время снова доступно.
	if err := f.booking.Validate(context.Background(), 3, domain.ValidateBookingDTO{
		StaffID: 1, ServiceID: 1, Date: testDate, StartTime: "10:00",
	}); err != nil {
		t.Fatalf("время отменённой записи должно быть свободно: %v", err)
	}
}
