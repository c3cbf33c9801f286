package model

import (
	"time"

	"github.com/google/uuid"
)

type StaffRole string

const (
	RoleAdmin   StaffRole = "admin"
	RoleOfficer StaffRole = "officer"
	RoleStaff   StaffRole = "staff"
)

func (r StaffRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleOfficer, RoleStaff:
		return true
	}
	return false
}

type StaffMember struct {
	ID             uuid.UUID  `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	FullName       string     `json:"full_name"`
	Role           StaffRole  `json:"role"`
	DepartmentID   *uuid.UUID `json:"department_id,omitempty"`
	DepartmentName *string    `json:"department_name,omitempty"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type CreateStaffInput struct {
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password_hash"`
	FullName     string     `json:"full_name"`
	Role         StaffRole  `json:"role"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty"`
}

// UpdateStaffInput is a partial update; nil fields are left untouched.
type UpdateStaffInput struct {
	ID           uuid.UUID  `json:"id"`
	Username     *string    `json:"username,omitempty"`
	Email        *string    `json:"email,omitempty"`
	FullName     *string    `json:"full_name,omitempty"`
	Role         *StaffRole `json:"role,omitempty"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty"`
	IsActive     *bool      `json:"is_active,omitempty"`
}

func (u UpdateStaffInput) Empty() bool {
	return u.Username == nil && u.Email == nil && u.FullName == nil &&
		u.Role == nil && u.DepartmentID == nil && u.IsActive == nil
}
