package model

import (
	"time"

	"github.com/google/uuid"
)

// PublicReport is an externally sourced issue report pushed by the citizen
// intake system. Rows are keyed for upsert by UserReportID.
type PublicReport struct {
	ID                 uuid.UUID  `json:"id"`
	UserReportID       string     `json:"user_report_id"`
	Title              *string    `json:"title,omitempty"`
	Description        *string    `json:"description,omitempty"`
	Category           *string    `json:"category,omitempty"`
	Latitude           *float64   `json:"latitude,omitempty"`
	Longitude          *float64   `json:"longitude,omitempty"`
	ImageURL           *string    `json:"image_url,omitempty"`
	AudioURL           *string    `json:"audio_url,omitempty"`
	Status             string     `json:"status"`
	Priority           string     `json:"priority"`
	AssignedDepartment *string    `json:"assigned_department,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type SyncReportPayload struct {
	UserReportID string     `json:"user_report_id"`
	Title        *string    `json:"title,omitempty"`
	Description  *string    `json:"description,omitempty"`
	Category     *string    `json:"category,omitempty"`
	Latitude     *float64   `json:"latitude,omitempty"`
	Longitude    *float64   `json:"longitude,omitempty"`
	ImageURL     *string    `json:"image_url,omitempty"`
	AudioURL     *string    `json:"audio_url,omitempty"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}

const (
	SyncActionCreated = "created"
	SyncActionUpdated = "updated"
)

type SyncResult struct {
	Action string       `json:"action"`
	Report PublicReport `json:"report"`
}

// ReportStatus is the slim status view the external system polls for.
type ReportStatus struct {
	ID                 uuid.UUID `json:"id"`
	UserReportID       string    `json:"user_report_id"`
	Status             string    `json:"status"`
	Priority           string    `json:"priority"`
	AssignedDepartment *string   `json:"assigned_department,omitempty"`
	UpdatedAt          time.Time `json:"updated_at"`
}
