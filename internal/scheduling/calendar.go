package scheduling

import (
	"time"

	"zapis/internal/domain"
)

// DayWindows — рабочее окно и перерыв специалиста на конкретную дату,
// развёрнутые из недельного шаблона.
type DayWindows struct {
	Working bool
	Work    *Interval
	Break   *Interval
}

// ResolveDay разворачивает недельный шаблон в окна на дату.
// Нерабочий день — валидный результат с Working=false, а не ошибка.
// Рабочий день без заданных часов — ошибка конфигурации.
func ResolveDay(cal domain.WorkCalendar, date time.Time) (DayWindows, error) {
	if !cal.WorksOn(date.Weekday()) {
		return DayWindows{}, nil
	}

	if cal.WorkStart == nil || cal.WorkEnd == nil {
		return DayWindows{}, domain.ErrScheduleNotConfigured
	}

	workStart, err := ToMinutes(*cal.WorkStart)
	if err != nil {
		return DayWindows{}, err
	}
	workEnd, err := ToMinutes(*cal.WorkEnd)
	if err != nil {
		return DayWindows{}, err
	}
	if workEnd <= workStart {
		return DayWindows{}, domain.ErrScheduleNotConfigured
	}

	windows := DayWindows{
		Working: true,
		Work:    &Interval{Start: workStart, End: workEnd},
	}

	// Перерыв присутствует только когда заданы обе границы.
	if cal.HasLunch() {
		lunchStart, err := ToMinutes(*cal.LunchStart)
		if err != nil {
			return DayWindows{}, err
		}
		lunchEnd, err := ToMinutes(*cal.LunchEnd)
		if err != nil {
			return DayWindows{}, err
		}
		if lunchEnd <= lunchStart || lunchStart < workStart || lunchEnd > workEnd {
			return DayWindows{}, domain.ErrScheduleNotConfigured
		}
		windows.Break = &Interval{Start: lunchStart, End: lunchEnd}
	}

	return windows, nil
}
