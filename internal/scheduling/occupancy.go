package scheduling

import (
	"sort"
	"time"

	"zapis/internal/domain"
)

const (
	SourceLunch       = "lunch"
	SourceAppointment = "appointment"

	ReasonLunch  = "обеденный перерыв"
	ReasonBooked = "время уже занято"
)

// BusyInterval — занятый отрезок дня с указанием источника. Интервалы
// намеренно не сливаются в объединения: потребителю важно, с чем именно
// пересекается кандидат — с обедом или с конкретной записью.
type BusyInterval struct {
	Interval
	Source        string
	Reason        string
	AppointmentID int64
	ServiceName   string
	StaffName     string
}

// StaffOccupancy собирает занятость специалиста на дату: перерыв на обед и
// записи в статусах pending/confirmed, кроме исключаемой (при переносе).
// Результат отсортирован по началу.
func StaffOccupancy(appts []domain.Appointment, lunch *Interval, date time.Time, excludeID int64) []BusyInterval {
	var busy []BusyInterval

	if lunch != nil {
		busy = append(busy, BusyInterval{
			Interval: *lunch,
			Source:   SourceLunch,
			Reason:   ReasonLunch,
		})
	}

	busy = append(busy, appointmentIntervals(appts, date, excludeID)...)

	sort.SliceStable(busy, func(i, j int) bool {
		return busy[i].Start < busy[j].Start
	})

	return busy
}

// ClientOccupancy собирает занятость клиента на дату по записям к любым
// специалистам. Обеденный перерыв к клиенту не относится.
func ClientOccupancy(appts []domain.Appointment, date time.Time, excludeID int64) []BusyInterval {
	busy := appointmentIntervals(appts, date, excludeID)

	sort.SliceStable(busy, func(i, j int) bool {
		return busy[i].Start < busy[j].Start
	})

	return busy
}

func appointmentIntervals(appts []domain.Appointment, date time.Time, excludeID int64) []BusyInterval {
	var busy []BusyInterval

	y, m, d := date.Date()
	for _, a := range appts {
		if !a.Status.Occupies() {
			continue
		}
		if excludeID != 0 && a.ID == excludeID {
			continue
		}
		ay, am, ad := a.Date.Date()
		if ay != y || am != m || ad != d {
			continue
		}
		busy = append(busy, BusyInterval{
			Interval:      Interval{Start: a.StartMinute, End: a.EndMinute()},
			Source:        SourceAppointment,
			Reason:        ReasonBooked,
			AppointmentID: a.ID,
			ServiceName:   a.ServiceName,
			StaffName:     a.StaffName,
		})
	}

	return busy
}
