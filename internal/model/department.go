package model

import (
	"time"

	"github.com/google/uuid"
)

type Department struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	HeadUserID  *uuid.UUID `json:"head_user_id,omitempty"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// DepartmentSummary is the listing row: the department plus its head's
// contact details and live counters.
type DepartmentSummary struct {
	Department
	HeadName          *string `json:"head_name"`
	HeadEmail         *string `json:"head_email"`
	StaffCount        int64   `json:"staff_count"`
	ActiveIssuesCount int64   `json:"active_issues_count"`
}

type CreateDepartmentInput struct {
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	HeadUserID  *uuid.UUID `json:"head_user_id,omitempty"`
}
