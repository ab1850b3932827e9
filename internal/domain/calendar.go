package domain

import (
	"time"
)

// WorkCalendar — недельный шаблон работы специалиста. Конкретные окна на дату
// разворачиваются из шаблона на лету, календарь по датам не материализуется.
type WorkCalendar struct {
	StaffID    int64     `json:"staff_id"`
	Weekdays   []int     `json:"weekdays"`
	WorkStart  *string   `json:"work_start"`
	WorkEnd    *string   `json:"work_end"`
	LunchStart *string   `json:"lunch_start"`
	LunchEnd   *string   `json:"lunch_end"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (c WorkCalendar) WorksOn(weekday time.Weekday) bool {
	for _, d := range c.Weekdays {
		if d == int(weekday) {
			return true
		}
	}
	return false
}

func (c WorkCalendar) HasLunch() bool {
	return c.LunchStart != nil && c.LunchEnd != nil
}

type UpsertWorkCalendarDTO struct {
	Weekdays   []int   `json:"weekdays" binding:"required"`
	WorkStart  string  `json:"work_start" binding:"required"`
	WorkEnd    string  `json:"work_end" binding:"required"`
	LunchStart *string `json:"lunch_start,omitempty"`
	LunchEnd   *string `json:"lunch_end,omitempty"`
}
