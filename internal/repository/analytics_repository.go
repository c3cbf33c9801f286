package repository

import (
	"context"
	"database/sql"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"civicboard/internal/model"
)

// ReportWindow scopes the period-report queries to a trailing window and an
// optional department. Every sub-query goes through applyReportScope so the
// filter set cannot drift between them.
type ReportWindow struct {
	Range        model.DateRange
	DepartmentID *uuid.UUID
}

type AnalyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// HeadlineStats runs the single-pass dashboard counters over the trailing
// one-year window. "Resolved" counts only the current calendar month.
func (r *AnalyticsRepository) HeadlineStats(ctx context.Context) (model.DashboardStats, error) {
	var stats model.DashboardStats

	err := r.db.WithContext(ctx).
		Table("issues").
		Select(`
			COUNT(*) AS total_issues,
			COUNT(*) FILTER (WHERE status = 'pending') AS pending_issues,
			COUNT(*) FILTER (WHERE status = 'in_progress') AS in_progress_issues,
			COUNT(*) FILTER (WHERE status = 'resolved'
				AND DATE_TRUNC('month', updated_at) = DATE_TRUNC('month', CURRENT_DATE)) AS resolved_issues,
			COUNT(*) FILTER (WHERE priority = 'critical') AS critical_issues,
			COUNT(*) FILTER (WHERE priority = 'high') AS high_priority_issues`).
		Where("created_at >= CURRENT_DATE - INTERVAL '1 year'").
		Scan(&stats).Error
	if err != nil {
		return model.DashboardStats{}, err
	}

	return stats, nil
}

// DepartmentBreakdown returns one row per active department, including
// departments with no issues at all (counts come back as zero).
func (r *AnalyticsRepository) DepartmentBreakdown(ctx context.Context) ([]model.DepartmentBreakdown, error) {
	var rows []model.DepartmentBreakdown

	err := r.db.WithContext(ctx).
		Table("departments d").
		Select(`d.name AS department_name,
			COUNT(i.id) AS total_issues,
			COUNT(i.id) FILTER (WHERE i.status = 'pending') AS pending_issues,
			COUNT(i.id) FILTER (WHERE i.status = 'in_progress') AS in_progress_issues,
			COUNT(i.id) FILTER (WHERE i.status = 'resolved') AS resolved_issues`).
		Joins("LEFT JOIN issues i ON i.department_id = d.id").
		Where("d.is_active = ?", true).
		Group("d.id, d.name").
		Order("total_issues DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// CategoryBreakdown lists the top categories by issue volume with the mean
// resolution time in days, computed over resolved issues only.
func (r *AnalyticsRepository) CategoryBreakdown(ctx context.Context, limit int) ([]model.CategoryBreakdown, error) {
	type row struct {
		CategoryName      string
		TotalIssues       int64
		AvgResolutionDays sql.NullFloat64
	}
	var rows []row

	err := r.db.WithContext(ctx).
		Table("issue_categories ic").
		Select(`ic.name AS category_name,
			COUNT(i.id) AS total_issues,
			AVG(CASE
				WHEN i.status = 'resolved' AND i.actual_resolution_date IS NOT NULL
				THEN EXTRACT(EPOCH FROM (i.actual_resolution_date - i.created_at)) / 86400
			END) AS avg_resolution_days`).
		Joins("LEFT JOIN issues i ON i.category_id = ic.id").
		Where("ic.is_active = ?", true).
		Group("ic.id, ic.name").
		Order("total_issues DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]model.CategoryBreakdown, 0, len(rows))
	for _, row := range rows {
		result = append(result, model.CategoryBreakdown{
			CategoryName:      row.CategoryName,
			TotalIssues:       row.TotalIssues,
			AvgResolutionDays: clamp(row.AvgResolutionDays.Float64),
		})
	}

	return result, nil
}

// MonthlyVolumes buckets issue volume and resolutions by calendar month and
// keeps the newest `months` buckets, returned oldest first. The trailing
// window predicate alone would admit one extra partial bucket on most days,
// so the newest-first LIMIT does the actual capping.
func (r *AnalyticsRepository) MonthlyVolumes(ctx context.Context, months int) ([]model.MonthlyVolume, error) {
	var rows []model.MonthlyVolume

	err := r.db.WithContext(ctx).
		Table("issues").
		Select(`DATE_TRUNC('month', created_at) AS month,
			COUNT(*) AS total_issues,
			COUNT(*) FILTER (WHERE status = 'resolved') AS resolved_issues`).
		Where("created_at >= CURRENT_DATE - ? * INTERVAL '1 month'", months).
		Group("DATE_TRUNC('month', created_at)").
		Order("month DESC").
		Limit(months).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}

	return rows, nil
}

type overviewRow struct {
	TotalIssues       int64
	ResolvedIssues    int64
	PendingIssues     int64
	InProgressIssues  int64
	ClosedIssues      int64
	AvgResolutionDays sql.NullFloat64
}

// OverviewCounts returns per-status totals and the null-safe average
// resolution time for the scoped window.
func (r *AnalyticsRepository) OverviewCounts(ctx context.Context, window ReportWindow) (model.ReportOverview, error) {
	var row overviewRow

	query := r.db.WithContext(ctx).
		Table("issues i").
		Select(`
			COUNT(*) AS total_issues,
			COUNT(*) FILTER (WHERE i.status = 'resolved') AS resolved_issues,
			COUNT(*) FILTER (WHERE i.status = 'pending') AS pending_issues,
			COUNT(*) FILTER (WHERE i.status = 'in_progress') AS in_progress_issues,
			COUNT(*) FILTER (WHERE i.status = 'closed') AS closed_issues,
			AVG(CASE
				WHEN i.actual_resolution_date IS NOT NULL
				THEN EXTRACT(EPOCH FROM (i.actual_resolution_date - i.created_at)) / 86400
			END) AS avg_resolution_days`)

	query = applyReportScope(query, window)

	if err := query.Scan(&row).Error; err != nil {
		return model.ReportOverview{}, err
	}

	return model.ReportOverview{
		TotalIssues:       row.TotalIssues,
		ResolvedIssues:    row.ResolvedIssues,
		PendingIssues:     row.PendingIssues,
		InProgressIssues:  row.InProgressIssues,
		ClosedIssues:      row.ClosedIssues,
		AvgResolutionDays: clamp(row.AvgResolutionDays.Float64),
	}, nil
}

// StatusBreakdown computes the share of each status as a window-function
// percentage of the scoped total, one decimal place. An empty window yields
// an empty slice, never an error.
func (r *AnalyticsRepository) StatusBreakdown(ctx context.Context, window ReportWindow) ([]model.StatusSlice, error) {
	var rows []model.StatusSlice

	query := r.db.WithContext(ctx).
		Table("issues i").
		Select(`i.status,
			COUNT(*) AS count,
			ROUND((COUNT(*) * 100.0 / SUM(COUNT(*)) OVER ())::numeric, 1) AS percentage`).
		Group("i.status").
		Order("count DESC")

	query = applyReportScope(query, window)

	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

// PriorityBreakdown mirrors StatusBreakdown with the fixed severity ordering
// critical > high > medium > low.
func (r *AnalyticsRepository) PriorityBreakdown(ctx context.Context, window ReportWindow) ([]model.PrioritySlice, error) {
	var rows []model.PrioritySlice

	query := r.db.WithContext(ctx).
		Table("issues i").
		Select(`i.priority,
			COUNT(*) AS count,
			ROUND((COUNT(*) * 100.0 / SUM(COUNT(*)) OVER ())::numeric, 1) AS percentage`).
		Group("i.priority").
		Order(`CASE i.priority
			WHEN 'critical' THEN 1
			WHEN 'high' THEN 2
			WHEN 'medium' THEN 3
			WHEN 'low' THEN 4
		END`)

	query = applyReportScope(query, window)

	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

// DepartmentPerformance returns resolution percentages for departments with
// at least one issue in the window. The window lives in the join condition so
// departments keep their identity rows; HAVING drops the idle ones.
func (r *AnalyticsRepository) DepartmentPerformance(ctx context.Context, window ReportWindow) ([]model.DepartmentPerformance, error) {
	type row struct {
		Name       string
		Issues     int64
		Resolved   int64
		Percentage sql.NullFloat64
	}
	var rows []row

	query := r.db.WithContext(ctx).
		Table("departments d").
		Select(`d.name,
			COUNT(i.id) AS issues,
			COUNT(i.id) FILTER (WHERE i.status = 'resolved') AS resolved,
			ROUND((COUNT(i.id) FILTER (WHERE i.status = 'resolved') * 100.0 /
				NULLIF(COUNT(i.id), 0))::numeric, 1) AS percentage`).
		Joins("LEFT JOIN issues i ON i.department_id = d.id AND i.created_at >= ? AND i.created_at < ?",
			window.Range.Start, window.Range.End).
		Where("d.is_active = ?", true).
		Group("d.id, d.name").
		Having("COUNT(i.id) > 0").
		Order("percentage DESC, issues DESC")

	if window.DepartmentID != nil {
		query = query.Where("d.id = ?", *window.DepartmentID)
	}

	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]model.DepartmentPerformance, 0, len(rows))
	for _, row := range rows {
		result = append(result, model.DepartmentPerformance{
			Name:       row.Name,
			Issues:     row.Issues,
			Resolved:   row.Resolved,
			Percentage: clamp(row.Percentage.Float64),
		})
	}

	return result, nil
}

// MonthlyTrends buckets the window by calendar month with 3-letter month
// labels, oldest first.
func (r *AnalyticsRepository) MonthlyTrends(ctx context.Context, window ReportWindow) ([]model.MonthlyTrend, error) {
	var rows []model.MonthlyTrend

	query := r.db.WithContext(ctx).
		Table("issues i").
		Select(`TO_CHAR(DATE_TRUNC('month', i.created_at), 'Mon') AS month,
			COUNT(*) AS issues,
			COUNT(*) FILTER (WHERE i.status = 'resolved') AS resolved`).
		Group("DATE_TRUNC('month', i.created_at)").
		Order("DATE_TRUNC('month', i.created_at)")

	query = applyReportScope(query, window)

	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

// applyReportScope is the one place the period window and department filter
// are attached to a query. Windows are half-open [start, end).
func applyReportScope(query *gorm.DB, window ReportWindow) *gorm.DB {
	query = query.Where("i.created_at >= ? AND i.created_at < ?", window.Range.Start, window.Range.End)
	if window.DepartmentID != nil {
		query = query.Where("i.department_id = ?", *window.DepartmentID)
	}
	return query
}

func clamp(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}
