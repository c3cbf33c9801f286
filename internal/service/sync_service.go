package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"civicboard/internal/model"
	"civicboard/internal/repository"
)

type SyncService struct {
	reports *repository.ReportRepository
}

func NewSyncService(reports *repository.ReportRepository) *SyncService {
	return &SyncService{reports: reports}
}

// UpsertReport pushes an externally sourced report into public_reports,
// keyed on the caller-supplied user_report_id.
func (s *SyncService) UpsertReport(ctx context.Context, payload model.SyncReportPayload) (*model.SyncResult, error) {
	if payload.UserReportID == "" {
		return nil, validation("user_report_id is required")
	}
	return s.reports.Upsert(ctx, payload)
}

// GetReportStatus resolves the current status by external or internal id.
func (s *SyncService) GetReportStatus(ctx context.Context, id string) (*model.ReportStatus, error) {
	if id == "" {
		return nil, validation("report id is required")
	}

	status, err := s.reports.Status(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("report not found")
		}
		return nil, err
	}
	return status, nil
}
