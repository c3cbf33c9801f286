package model

import (
	"time"

	"github.com/google/uuid"
)

type IssueStatus string

const (
	StatusPending    IssueStatus = "pending"
	StatusInProgress IssueStatus = "in_progress"
	StatusResolved   IssueStatus = "resolved"
	StatusClosed     IssueStatus = "closed"
)

func (s IssueStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

type IssuePriority string

const (
	PriorityLow      IssuePriority = "low"
	PriorityMedium   IssuePriority = "medium"
	PriorityHigh     IssuePriority = "high"
	PriorityCritical IssuePriority = "critical"
)

func (p IssuePriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Issue is a citizen-reported civic problem as the dashboard lists it,
// joined with its category and department names.
type Issue struct {
	ID                   uuid.UUID     `json:"id"`
	IssueNumber          string        `json:"issue_number"`
	Title                string        `json:"title"`
	Description          *string       `json:"description,omitempty"`
	CategoryID           *uuid.UUID    `json:"category_id,omitempty"`
	CategoryName         *string       `json:"category_name,omitempty"`
	DepartmentID         *uuid.UUID    `json:"department_id,omitempty"`
	DepartmentName       *string       `json:"department_name,omitempty"`
	Status               IssueStatus   `json:"status"`
	Priority             IssuePriority `json:"priority"`
	CitizenName          *string       `json:"citizen_name,omitempty"`
	CitizenEmail         *string       `json:"citizen_email,omitempty"`
	Location             *string       `json:"location,omitempty"`
	Latitude             *float64      `json:"latitude,omitempty"`
	Longitude            *float64      `json:"longitude,omitempty"`
	ActualResolutionDate *time.Time    `json:"actual_resolution_date,omitempty"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}

// IssueUpdate carries the staff-mutable fields. Nil means "leave unchanged".
type IssueUpdate struct {
	ID           uuid.UUID      `json:"id"`
	Status       *IssueStatus   `json:"status,omitempty"`
	Priority     *IssuePriority `json:"priority,omitempty"`
	DepartmentID *uuid.UUID     `json:"department_id,omitempty"`
}

func (u IssueUpdate) Empty() bool {
	return u.Status == nil && u.Priority == nil && u.DepartmentID == nil
}
