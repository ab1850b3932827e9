package domain

import (
	"time"
)

// ServiceDefinition — услуга из каталога. Длительность фиксируется в записи
// в момент её создания, изменение услуги не трогает существующие записи.
type ServiceDefinition struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"duration_minutes"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CreateServiceDTO struct {
	Name            string `json:"name" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required"`
}

type UpdateServiceDTO struct {
	Name            *string `json:"name,omitempty"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
	Active          *bool   `json:"active,omitempty"`
}
