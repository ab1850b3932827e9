package scheduling

import (
	"testing"
	"time"

	"zapis/internal/domain"
)

func appt(id int64, date time.Time, start, dur int, status domain.AppointmentStatus) domain.Appointment {
	return domain.Appointment{
		ID:              id,
		Date:            date,
		StartMinute:     start,
		DurationMinutes: dur,
		Status:          status,
		ServiceName:     "стрижка",
		StaffName:       "Анна",
	}
}

func TestStaffOccupancyFiltersAndSorts(t *testing.T) {
	appts := []domain.Appointment{
		appt(1, monday, 840, 30, domain.AppointmentStatusConfirmed),
		appt(2, monday, 600, 45, domain.AppointmentStatusPending),
		appt(3, monday, 660, 30, domain.AppointmentStatusCancelled),
		appt(4, monday, 900, 30, domain.AppointmentStatusCompleted),
		appt(5, monday, 930, 30, domain.AppointmentStatusNoShow),
		appt(6, sunday, 600, 30, domain.AppointmentStatusConfirmed),
	}
	lunch := &Interval{Start: 720, End: 780}

	busy := StaffOccupancy(appts, lunch, monday, 0)

	if len(busy) != 3 {
		t.Fatalf("ожидалось 3 занятых интервала, получено %d", len(busy))
	}
	if busy[0].Start != 600 || busy[0].Source != SourceAppointment {
		t.Errorf("первый интервал: %+v", busy[0])
	}
	if busy[1].Start != 720 || busy[1].Source != SourceLunch {
		t.Errorf("второй интервал должен быть обедом: %+v", busy[1])
	}
	if busy[2].Start != 840 || busy[2].AppointmentID != 1 {
		t.Errorf("третий интервал: %+v", busy[2])
	}
}

func TestStaffOccupancyExclude(t *testing.T) {
	appts := []domain.Appointment{
		appt(7, monday, 600, 30, domain.AppointmentStatusConfirmed),
		appt(8, monday, 660, 30, domain.AppointmentStatusConfirmed),
	}

	busy := StaffOccupancy(appts, nil, monday, 7)

	if len(busy) != 1 {
		t.Fatalf("ожидался 1 интервал, получено %d", len(busy))
	}
	if busy[0].AppointmentID != 8 {
		t.Fatalf("исключена не та запись: %+v", busy[0])
	}
}

func TestStaffOccupancyDoesNotMerge(t *testing.T) {
	// Пересекающиеся интервалы остаются раздельными: потребителю важно знать,
	// какая именно запись конфликтует.
	appts := []domain.Appointment{
		appt(1, monday, 600, 60, domain.AppointmentStatusConfirmed),
		appt(2, monday, 630, 60, domain.AppointmentStatusPending),
	}

	busy := StaffOccupancy(appts, nil, monday, 0)

	if len(busy) != 2 {
		t.Fatalf("интервалы не должны сливаться, получено %d", len(busy))
	}
}

func TestClientOccupancyNoLunch(t *testing.T) {
	appts := []domain.Appointment{
		appt(1, monday, 840, 30, domain.AppointmentStatusConfirmed),
	}

	busy := ClientOccupancy(appts, monday, 0)

	if len(busy) != 1 {
		t.Fatalf("ожидался 1 интервал, получено %d", len(busy))
	}
	for _, b := range busy {
		if b.Source == SourceLunch {
			t.Fatal("обеденный перерыв не применяется к занятости клиента")
		}
	}
}
