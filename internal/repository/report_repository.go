package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"civicboard/internal/model"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

type upsertRow struct {
	model.PublicReport
	Inserted bool
}

// Upsert inserts or updates a public report keyed on user_report_id in one
// atomic statement; the unique constraint makes concurrent identical calls
// converge on a single row. xmax = 0 distinguishes a fresh insert from a
// conflict update.
func (r *ReportRepository) Upsert(ctx context.Context, payload model.SyncReportPayload) (*model.SyncResult, error) {
	var row upsertRow

	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO public_reports
			(user_report_id, title, description, category, latitude, longitude,
			 image_url, audio_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, COALESCE(?, NOW()))
		ON CONFLICT (user_report_id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			category = EXCLUDED.category,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			image_url = EXCLUDED.image_url,
			audio_url = EXCLUDED.audio_url,
			updated_at = NOW()
		RETURNING id, user_report_id, title, description, category, latitude, longitude,
			image_url, audio_url, status, priority, assigned_department,
			created_at, updated_at, (xmax = 0) AS inserted`,
		payload.UserReportID, payload.Title, payload.Description, payload.Category,
		payload.Latitude, payload.Longitude, payload.ImageURL, payload.AudioURL,
		payload.CreatedAt).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	action := model.SyncActionUpdated
	if row.Inserted {
		action = model.SyncActionCreated
	}

	return &model.SyncResult{Action: action, Report: row.PublicReport}, nil
}

// Status looks a report up by its external id, or by the internal UUID when
// the caller passed one.
func (r *ReportRepository) Status(ctx context.Context, id string) (*model.ReportStatus, error) {
	query := r.db.WithContext(ctx).
		Table("public_reports").
		Select("id, user_report_id, status, priority, assigned_department, updated_at")

	if internalID, err := uuid.Parse(id); err == nil {
		query = query.Where("user_report_id = ? OR id = ?", id, internalID)
	} else {
		query = query.Where("user_report_id = ?", id)
	}

	var status model.ReportStatus
	if err := query.Take(&status).Error; err != nil {
		return nil, err
	}

	return &status, nil
}
