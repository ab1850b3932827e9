package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"zapis/internal/domain"
)

type availabilityFixture struct {
	availability *AvailabilityServiceImpl
	appts        *fakeApptRepo
	cals         *fakeCalendarRepo
	services     *fakeServiceRepo
	staff        *fakeStaffRepo
}

func newAvailabilityFixture(t *testing.T, step int) *availabilityFixture {
	t.Helper()

	appts := newFakeApptRepo()
	cals := newFakeCalendarRepo()
	services := newFakeServiceRepo()
	staff := newFakeStaffRepo()

	_, _ = staff.Create(context.Background(), domain.CreateStaffDTO{UserID: 100, Name: "Анна"})
	_, _ = services.Create(context.Background(), domain.CreateServiceDTO{Name: "стрижка", DurationMinutes: 30})

	ws, we, ls, le := "09:00", "18:00", "12:00", "13:00"
	_ = cals.Upsert(context.Background(), domain.WorkCalendar{
		StaffID:    1,
		Weekdays:   []int{1, 2, 3, 4, 5},
		WorkStart:  &ws,
		WorkEnd:    &we,
		LunchStart: &ls,
		LunchEnd:   &le,
	})

	return &availabilityFixture{
		availability: NewAvailabilityService(cals, appts, services, staff, step, zap.NewNop()),
		appts:        appts,
		cals:         cals,
		services:     services,
		staff:        staff,
	}
}

func TestGetDayGrid(t *testing.T) {
	f := newAvailabilityFixture(t, 15)
	f.appts.add(domain.Appointment{
		StaffID: 1, ClientID: 2, ServiceID: 1,
		Date: testDay(), StartMinute: 600, DurationMinutes: 45,
		Status: domain.AppointmentStatusConfirmed,
		ServiceName: "стрижка", StaffName: "Анна",
	})

	day, err := f.availability.GetDay(context.Background(), 1, testDate, 1)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if !day.Working {
		t.Fatal("понедельник должен быть рабочим")
	}
	if len(day.Slots) != 36 {
		t.Fatalf("сетка 09:00-18:00 с шагом 15 — 36 слотов, получено %d", len(day.Slots))
	}

	byTime := make(map[string]domain.TimeOption)
	for _, s := range day.Slots {
		byTime[s.Time] = s
	}
	if !byTime["09:30"].Available {
		t.Errorf("09:30 должен быть доступен: %+v", byTime["09:30"])
	}
	if byTime["09:45"].Available {
		t.Errorf("09:45 пересекается с записью 10:00-10:45: %+v", byTime["09:45"])
	}
	if byTime["12:00"].Available {
		t.Errorf("12:00 приходится на обед: %+v", byTime["12:00"])
	}
	if byTime["17:45"].Available {
		t.Errorf("17:45 не вмещает услугу до конца дня: %+v", byTime["17:45"])
	}
}

// В выходной день сетка пуста независимо от записей и настроек часов.
func TestGetDayNotWorking(t *testing.T) {
	f := newAvailabilityFixture(t, 15)
	f.appts.add(domain.Appointment{
		StaffID: 1, ClientID: 2, ServiceID: 1,
		Date: testDay(), StartMinute: 600, DurationMinutes: 30,
		Status: domain.AppointmentStatusConfirmed,
	})

	day, err := f.availability.GetDay(context.Background(), 1, "2025-06-01", 1)
	if err != nil {
		t.Fatalf("выходной не должен быть ошибкой: %v", err)
	}
	if day.Working {
		t.Fatal("воскресенье — выходной")
	}
	if len(day.Slots) != 0 {
		t.Fatalf("в выходной слотов нет, получено %d", len(day.Slots))
	}
}

func TestGetDayNoCalendar(t *testing.T) {
	f := newAvailabilityFixture(t, 15)
	staffID, _ := f.staff.Create(context.Background(), domain.CreateStaffDTO{UserID: 200, Name: "Вера"})

	_, err := f.availability.GetDay(context.Background(), staffID, testDate, 1)
	if !errors.Is(err, domain.ErrScheduleNotConfigured) {
		t.Fatalf("ожидалась ErrScheduleNotConfigured, получено %v", err)
	}
}

func TestGetDayCustomStep(t *testing.T) {
	f := newAvailabilityFixture(t, 30)

	day, err := f.availability.GetDay(context.Background(), 1, testDate, 1)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if len(day.Slots) != 18 {
		t.Fatalf("шаг 30 минут даёт 18 слотов, получено %d", len(day.Slots))
	}
}

func TestGetDayBadDate(t *testing.T) {
	f := newAvailabilityFixture(t, 15)

	if _, err := f.availability.GetDay(context.Background(), 1, "02.06.2025", 1); err == nil {
		t.Fatal("ожидалась ошибка формата даты")
	}
}
