package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTimeFormat — время не в формате HH:MM либо вне диапазона суток.
	ErrInvalidTimeFormat = errors.New("неверный формат времени, ожидается HH:MM")

	// ErrInvalidDuration — неположительная длительность услуги.
	ErrInvalidDuration = errors.New("длительность должна быть положительной")

	// ErrScheduleNotConfigured — день отмечен рабочим, но рабочие часы не заданы.
	// Это ошибка конфигурации, а не «выходной» и не «всё свободно».
	ErrScheduleNotConfigured = errors.New("рабочие часы специалиста не настроены")

	ErrNotFound = errors.New("не найдено")
)

type ConflictKind string

const (
	ConflictStaff  ConflictKind = "staff_slot_unavailable"
	ConflictClient ConflictKind = "client_double_booked"
)

// ConflictError — ожидаемый отрицательный результат проверки бронирования,
// а не исключение: несёт достаточно деталей, чтобы показать клиенту, с чем
// именно пересекается запрошенное время.
type ConflictError struct {
	Kind          ConflictKind `json:"kind"`
	Reason        string       `json:"reason"`
	AppointmentID int64        `json:"appointment_id,omitempty"`
	ServiceName   string       `json:"service_name,omitempty"`
	StaffName     string       `json:"staff_name,omitempty"`
	Date          string       `json:"date"`
	StartTime     string       `json:"start_time"`
	EndTime       string       `json:"end_time"`
}

func (e *ConflictError) Error() string {
	switch e.Kind {
	case ConflictClient:
		return fmt.Sprintf("у клиента уже есть запись на %s %s-%s (%s, специалист %s)",
			e.Date, e.StartTime, e.EndTime, e.ServiceName, e.StaffName)
	default:
		return fmt.Sprintf("время %s %s-%s у специалиста занято: %s",
			e.Date, e.StartTime, e.EndTime, e.Reason)
	}
}

// IsConflict распаковывает ConflictError из цепочки ошибок.
func IsConflict(err error) (*ConflictError, bool) {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
