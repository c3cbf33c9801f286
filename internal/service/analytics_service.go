package service

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"civicboard/internal/model"
	"civicboard/internal/repository"
)

const (
	dashboardTrendMonths = 12
	reportTrendMonths    = 6
	topCategories        = 10
)

type AnalyticsService struct {
	analytics     *repository.AnalyticsRepository
	defaultPeriod int
	maxPeriod     int
}

func NewAnalyticsService(analytics *repository.AnalyticsRepository, defaultPeriodDays, maxPeriodDays int) *AnalyticsService {
	return &AnalyticsService{
		analytics:     analytics,
		defaultPeriod: defaultPeriodDays,
		maxPeriod:     maxPeriodDays,
	}
}

// GetDashboardSummary composes the dashboard payload: headline counters,
// per-department and per-category breakdowns, and the 12-month trend.
func (s *AnalyticsService) GetDashboardSummary(ctx context.Context) (*model.DashboardSummary, error) {
	stats, err := s.analytics.HeadlineStats(ctx)
	if err != nil {
		return nil, err
	}
	departments, err := s.analytics.DepartmentBreakdown(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.analytics.CategoryBreakdown(ctx, topCategories)
	if err != nil {
		return nil, err
	}
	trends, err := s.analytics.MonthlyVolumes(ctx, dashboardTrendMonths)
	if err != nil {
		return nil, err
	}

	return &model.DashboardSummary{
		DashboardStats:      stats,
		DepartmentBreakdown: departments,
		CategoryBreakdown:   categories,
		MonthlyTrends:       trends,
	}, nil
}

// GetPeriodReport builds the analytics report for a trailing window and an
// optional department. The department filter rides inside the one shared
// ReportWindow so every sub-query sees the same scope.
func (s *AnalyticsService) GetPeriodReport(ctx context.Context, periodDays int, departmentID *uuid.UUID) (*model.PeriodReport, error) {
	periodDays = s.normalizePeriod(periodDays)

	end := time.Now()
	start := end.AddDate(0, 0, -periodDays)
	window := repository.ReportWindow{
		Range:        model.DateRange{Start: start, End: end},
		DepartmentID: departmentID,
	}
	prevWindow := repository.ReportWindow{
		Range:        model.DateRange{Start: start.AddDate(0, 0, -periodDays), End: start},
		DepartmentID: departmentID,
	}

	overview, err := s.analytics.OverviewCounts(ctx, window)
	if err != nil {
		return nil, err
	}
	previous, err := s.analytics.OverviewCounts(ctx, prevWindow)
	if err != nil {
		return nil, err
	}

	overview.CustomerSatisfaction = PlaceholderSatisfaction(overview.ResolvedIssues, overview.TotalIssues)
	overview.Trends = model.ReportTrends{
		TotalIssues:       Trend(float64(overview.TotalIssues), float64(previous.TotalIssues)),
		ResolvedIssues:    Trend(float64(overview.ResolvedIssues), float64(previous.ResolvedIssues)),
		AvgResolutionTime: Trend(overview.AvgResolutionDays, previous.AvgResolutionDays),
		// Placeholder jitter, same caveat as PlaceholderSatisfaction.
		CustomerSatisfaction: rand.Float64()*10 - 5,
	}

	byStatus, err := s.analytics.StatusBreakdown(ctx, window)
	if err != nil {
		return nil, err
	}
	byPriority, err := s.analytics.PriorityBreakdown(ctx, window)
	if err != nil {
		return nil, err
	}
	departments, err := s.analytics.DepartmentPerformance(ctx, window)
	if err != nil {
		return nil, err
	}

	trendWindow := repository.ReportWindow{
		Range:        model.DateRange{Start: end.AddDate(0, -reportTrendMonths, 0), End: end},
		DepartmentID: departmentID,
	}
	monthly, err := s.analytics.MonthlyTrends(ctx, trendWindow)
	if err != nil {
		return nil, err
	}

	return &model.PeriodReport{
		Overview:              overview,
		IssuesByStatus:        emptyIfNil(byStatus),
		IssuesByPriority:      emptyIfNil(byPriority),
		DepartmentPerformance: emptyIfNil(departments),
		MonthlyTrends:         emptyIfNil(monthly),
		PeriodDays:            periodDays,
		DateRange:             window.Range,
	}, nil
}

// ExportReport simulates kicking off a downloadable export job. Nothing is
// rendered yet; the response carries a URL the download worker would serve.
func (s *AnalyticsService) ExportReport(req model.ExportRequest) (*model.ExportJob, error) {
	switch req.Format {
	case "csv", "pdf", "xlsx":
	default:
		return nil, validation("unsupported export format")
	}

	now := time.Now()
	return &model.ExportJob{
		Format:      req.Format,
		PeriodDays:  s.normalizePeriod(req.PeriodDays),
		Department:  req.Department,
		ReportType:  req.ReportType,
		GeneratedAt: now,
		DownloadURL: fmt.Sprintf("/api/reports/download/%d.%s", now.UnixMilli(), req.Format),
		ExpiresAt:   now.Add(24 * time.Hour),
	}, nil
}

func (s *AnalyticsService) normalizePeriod(periodDays int) int {
	if periodDays <= 0 {
		return s.defaultPeriod
	}
	if periodDays > s.maxPeriod {
		return s.maxPeriod
	}
	return periodDays
}

// PlaceholderSatisfaction synthesizes a satisfaction score from the
// resolution rate plus jitter, clamped to [60, 95] and rounded to one
// decimal. It is explicitly NOT a measured quantity; it stands in until a
// real survey source is wired up. Zero issues yields 0.
func PlaceholderSatisfaction(resolved, total int64) float64 {
	if total <= 0 {
		return 0
	}
	rate := float64(resolved) / float64(total) * 100
	score := math.Min(95, math.Max(60, rate+rand.Float64()*10))
	return math.Round(score*10) / 10
}

func emptyIfNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
