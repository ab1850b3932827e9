package domain

import (
	"time"
)

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "no_show"
)

// Occupies сообщает, занимает ли запись время специалиста и клиента.
// Завершённые и отменённые записи, а также неявки время не занимают.
func (s AppointmentStatus) Occupies() bool {
	return s == AppointmentStatusPending || s == AppointmentStatusConfirmed
}

type Appointment struct {
	ID              int64             `json:"id"`
	ClientID        int64             `json:"client_id"`
	StaffID         int64             `json:"staff_id"`
	ServiceID       int64             `json:"service_id"`
	Date            time.Time         `json:"date"`
	StartMinute     int               `json:"start_minute"`
	DurationMinutes int               `json:"duration_minutes"`
	Status          AppointmentStatus `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	ServiceName     string            `json:"service_name,omitempty"`
	StaffName       string            `json:"staff_name,omitempty"`
}

// EndMinute выводится из длительности услуги и нигде не хранится.
func (a Appointment) EndMinute() int {
	return a.StartMinute + a.DurationMinutes
}

type CreateAppointmentDTO struct {
	StaffID   int64  `json:"staff_id" binding:"required"`
	ServiceID int64  `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
}

type UpdateAppointmentDTO struct {
	StaffID   *int64             `json:"staff_id,omitempty"`
	ServiceID *int64             `json:"service_id,omitempty"`
	Date      *string            `json:"date,omitempty"`
	StartTime *string            `json:"start_time,omitempty"`
	Status    *AppointmentStatus `json:"status,omitempty" binding:"omitempty,oneof=pending confirmed completed cancelled no_show"`
}

type ValidateBookingDTO struct {
	StaffID              int64  `json:"staff_id" binding:"required"`
	ServiceID            int64  `json:"service_id" binding:"required"`
	Date                 string `json:"date" binding:"required"`
	StartTime            string `json:"start_time" binding:"required"`
	ExcludeAppointmentID int64  `json:"exclude_appointment_id,omitempty"`
}

type AppointmentFilter struct {
	ClientID  *int64             `json:"client_id"`
	StaffID   *int64             `json:"staff_id"`
	Status    *AppointmentStatus `json:"status"`
	StartDate *time.Time         `json:"start_date"`
	EndDate   *time.Time         `json:"end_date"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
}
