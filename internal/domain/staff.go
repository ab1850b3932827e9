package domain

import (
	"time"
)

type UserRole string

const (
	UserRoleClient UserRole = "client"
	UserRoleStaff  UserRole = "staff"
	UserRoleAdmin  UserRole = "admin"
)

// Staff — минимальная проекция профиля сотрудника: ядру планирования нужны
// только идентификатор и отображаемое имя для сообщений о конфликтах.
type Staff struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateStaffDTO struct {
	UserID int64  `json:"user_id" binding:"required"`
	Name   string `json:"name" binding:"required"`
}

type UpdateStaffDTO struct {
	Name   *string `json:"name,omitempty"`
	Active *bool   `json:"active,omitempty"`
}
