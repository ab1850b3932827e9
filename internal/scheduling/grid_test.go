package scheduling

import (
	"errors"
	"testing"

	"zapis/internal/domain"
)

func optionAt(t *testing.T, options []domain.TimeOption, timeStr string) domain.TimeOption {
	t.Helper()
	for _, o := range options {
		if o.Time == timeStr {
			return o
		}
	}
	t.Fatalf("слот %s отсутствует в сетке", timeStr)
	return domain.TimeOption{}
}

func countAvailable(options []domain.TimeOption) int {
	n := 0
	for _, o := range options {
		if o.Available {
			n++
		}
	}
	return n
}

// Рабочий день 09:00-18:00 с обедом 12:00-13:00, услуга 30 минут.
func TestBuildGridAroundLunch(t *testing.T) {
	work := Interval{Start: 540, End: 1080}
	lunch := &Interval{Start: 720, End: 780}
	busy := StaffOccupancy(nil, lunch, monday, 0)

	options, err := BuildGrid(work, busy, 30, 15)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	if len(options) != 36 {
		t.Fatalf("сетка должна покрывать всё окно: ожидалось 36 слотов, получено %d", len(options))
	}

	if o := optionAt(t, options, "09:00"); !o.Available {
		t.Errorf("09:00 должен быть доступен: %+v", o)
	}
	// Последний слот, успевающий закончиться до обеда.
	if o := optionAt(t, options, "11:30"); !o.Available {
		t.Errorf("11:30 должен быть доступен: %+v", o)
	}
	// 11:45-12:15 пересекается с обедом, как и всё до 12:45.
	for _, s := range []string{"11:45", "12:00", "12:15", "12:30", "12:45"} {
		o := optionAt(t, options, s)
		if o.Available {
			t.Errorf("%s пересекается с обедом, но доступен", s)
		}
		if o.Reason != ReasonLunch {
			t.Errorf("%s: причина %q, ожидалось %q", s, o.Reason, ReasonLunch)
		}
	}
	if o := optionAt(t, options, "13:00"); !o.Available {
		t.Errorf("13:00 должен быть доступен: %+v", o)
	}
	// 17:30 — последний старт, 17:45+30 выходит за 18:00.
	if o := optionAt(t, options, "17:30"); !o.Available {
		t.Errorf("17:30 должен быть доступен: %+v", o)
	}
	if o := optionAt(t, options, "17:45"); o.Available || o.Reason != ReasonOutsideHours {
		t.Errorf("17:45 должен выходить за рабочие часы: %+v", o)
	}
}

// Подтверждённая запись 10:00-10:45: слот 09:45 (окончание 10:15) занят,
// слот 09:30 (окончание 10:00) свободен.
func TestBuildGridAroundAppointment(t *testing.T) {
	work := Interval{Start: 540, End: 1080}
	appts := []domain.Appointment{
		appt(1, monday, 600, 45, domain.AppointmentStatusConfirmed),
	}
	busy := StaffOccupancy(appts, nil, monday, 0)

	options, err := BuildGrid(work, busy, 30, 15)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	if o := optionAt(t, options, "09:30"); !o.Available {
		t.Errorf("09:30 должен быть доступен: %+v", o)
	}
	if o := optionAt(t, options, "09:45"); o.Available || o.Reason != ReasonBooked {
		t.Errorf("09:45 должен быть занят записью: %+v", o)
	}
	if o := optionAt(t, options, "10:45"); !o.Available {
		t.Errorf("10:45 должен быть доступен: %+v", o)
	}
}

// Доступные слоты удовлетворяют обоим инвариантам: вписываются в рабочее окно
// и не пересекаются ни с одним занятым интервалом.
func TestBuildGridAvailableInvariants(t *testing.T) {
	work := Interval{Start: 540, End: 1080}
	appts := []domain.Appointment{
		appt(1, monday, 570, 60, domain.AppointmentStatusConfirmed),
		appt(2, monday, 900, 90, domain.AppointmentStatusPending),
	}
	lunch := &Interval{Start: 720, End: 780}
	busy := StaffOccupancy(appts, lunch, monday, 0)

	const duration = 45
	options, err := BuildGrid(work, busy, duration, 15)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	for _, o := range options {
		if !o.Available {
			continue
		}
		if o.StartMinute+duration > work.End {
			t.Errorf("доступный слот %s выходит за рабочее окно", o.Time)
		}
		proposed := Interval{Start: o.StartMinute, End: o.StartMinute + duration}
		for _, b := range busy {
			if Overlaps(proposed, b.Interval) {
				t.Errorf("доступный слот %s пересекается с %s", o.Time, b.Reason)
			}
		}
	}
}

// Число доступных слотов монотонно не растёт с ростом длительности услуги.
func TestBuildGridMonotoneInDuration(t *testing.T) {
	work := Interval{Start: 540, End: 1080}
	lunch := &Interval{Start: 720, End: 780}
	appts := []domain.Appointment{
		appt(1, monday, 600, 45, domain.AppointmentStatusConfirmed),
	}
	busy := StaffOccupancy(appts, lunch, monday, 0)

	prev := -1
	for duration := 15; duration <= 240; duration += 15 {
		options, err := BuildGrid(work, busy, duration, 15)
		if err != nil {
			t.Fatalf("длительность %d: %v", duration, err)
		}
		available := countAvailable(options)
		if prev >= 0 && available > prev {
			t.Fatalf("длительность %d: доступных слотов стало больше (%d > %d)", duration, available, prev)
		}
		prev = available
	}
}

// Окно короче длительности услуги — валидная пустая выдача, а не ошибка.
func TestBuildGridWindowTooShort(t *testing.T) {
	work := Interval{Start: 540, End: 570}

	options, err := BuildGrid(work, nil, 60, 15)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if countAvailable(options) != 0 {
		t.Fatal("в слишком коротком окне не может быть доступных слотов")
	}
	if len(options) != 2 {
		t.Fatalf("сетка всё равно покрывает окно: ожидалось 2 слота, получено %d", len(options))
	}
}

func TestBuildGridInvalidDuration(t *testing.T) {
	work := Interval{Start: 540, End: 1080}

	for _, duration := range []int{0, -30} {
		_, err := BuildGrid(work, nil, duration, 15)
		if !errors.Is(err, domain.ErrInvalidDuration) {
			t.Errorf("длительность %d: ожидалась ErrInvalidDuration, получено %v", duration, err)
		}
	}
}

func TestFirstConflictShortCircuit(t *testing.T) {
	busy := StaffOccupancy([]domain.Appointment{
		appt(1, monday, 600, 30, domain.AppointmentStatusConfirmed),
		appt(2, monday, 615, 30, domain.AppointmentStatusConfirmed),
	}, nil, monday, 0)

	conflict := FirstConflict(Interval{Start: 610, End: 640}, busy)
	if conflict == nil {
		t.Fatal("ожидался конфликт")
	}
	// Побеждает первый по порядку занятости.
	if conflict.AppointmentID != 1 {
		t.Fatalf("ожидалась запись 1, получена %d", conflict.AppointmentID)
	}

	if c := FirstConflict(Interval{Start: 700, End: 730}, busy); c != nil {
		t.Fatalf("конфликт не ожидался: %+v", c)
	}
}

func TestFirstConflictIgnoresZeroLength(t *testing.T) {
	busy := []BusyInterval{{Interval: Interval{Start: 600, End: 600}, Source: SourceAppointment}}

	if c := FirstConflict(Interval{Start: 590, End: 620}, busy); c != nil {
		t.Fatalf("интервал нулевой длины не конфликтует: %+v", c)
	}
}
