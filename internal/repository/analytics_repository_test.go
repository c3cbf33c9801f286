package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civicboard/internal/model"
)

func testWindow() ReportWindow {
	end := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	return ReportWindow{
		Range: model.DateRange{Start: end.AddDate(0, 0, -30), End: end},
	}
}

func TestHeadlineStats(t *testing.T) {
	gdb, mock := newTestDB(t)
	repo := NewAnalyticsRepository(gdb)

	mock.ExpectQuery(`FROM "issues" WHERE created_at >= CURRENT_DATE - INTERVAL '1 year'`).
		WillReturnRows(sqlmock.NewRows([]string{
			"total_issues", "pending_issues", "in_progress_issues",
			"resolved_issues", "critical_issues", "high_priority_issues",
		}).AddRow(int64(120), int64(30), int64(25), int64(40), int64(5), int64(12)))

	stats, err := repo.HeadlineStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(120), stats.TotalIssues)
	assert.Equal(t, int64(30), stats.PendingIssues)
	assert.Equal(t, int64(40), stats.ResolvedThisMonth)
	assert.Equal(t, int64(5), stats.CriticalIssues)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatusBreakdownEmptyWindow(t *testing.T) {
	gdb, mock := newTestDB(t)
	repo := NewAnalyticsRepository(gdb)

	mock.ExpectQuery(`FROM issues i`).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count", "percentage"}))

	rows, err := repo.StatusBreakdown(context.Background(), testWindow())
	require.NoError(t, err, "an empty window is not an error")
	assert.Empty(t, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatusBreakdownShares(t *testing.T) {
	gdb, mock := newTestDB(t)
	repo := NewAnalyticsRepository(gdb)

	window := testWindow()
	deptID := uuid.New()
	window.DepartmentID = &deptID

	mock.ExpectQuery(`FROM issues i`).
		WithArgs(window.Range.Start, window.Range.End, deptID).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count", "percentage"}).
			AddRow("pending", int64(6), 60.0).
			AddRow("resolved", int64(4), 40.0))

	rows, err := repo.StatusBreakdown(context.Background(), window)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	var total float64
	for _, row := range rows {
		total += row.Percentage
	}
	assert.InDelta(t, 100.0, total, 0.01)
	assert.Equal(t, model.IssueStatus("pending"), rows[0].Status)
	assert.Equal(t, int64(6), rows[0].Count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryBreakdownNullAverages(t *testing.T) {
	gdb, mock := newTestDB(t)
	repo := NewAnalyticsRepository(gdb)

	// Categories with nothing resolved come back with a NULL average, which
	// must surface as 0 rather than NaN.
	mock.ExpectQuery(`FROM issue_categories ic`).
		WillReturnRows(sqlmock.NewRows([]string{"category_name", "total_issues", "avg_resolution_days"}).
			AddRow("Potholes", int64(14), 3.5).
			AddRow("Graffiti", int64(2), nil))

	rows, err := repo.CategoryBreakdown(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.InDelta(t, 3.5, rows[0].AvgResolutionDays, 0.001)
	assert.Zero(t, rows[1].AvgResolutionDays)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentPerformanceClampsNullPercentage(t *testing.T) {
	gdb, mock := newTestDB(t)
	repo := NewAnalyticsRepository(gdb)

	mock.ExpectQuery(`FROM departments d`).
		WillReturnRows(sqlmock.NewRows([]string{"name", "issues", "resolved", "percentage"}).
			AddRow("Roads", int64(10), int64(8), 80.0).
			AddRow("Parks", int64(3), int64(0), nil))

	rows, err := repo.DepartmentPerformance(context.Background(), testWindow())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.InDelta(t, 80.0, rows[0].Percentage, 0.001)
	assert.Zero(t, rows[1].Percentage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMonthlyVolumesNewestBucketsOldestFirst(t *testing.T) {
	gdb, mock := newTestDB(t)
	repo := NewAnalyticsRepository(gdb)

	jul := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	aug := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	sep := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	// The query orders newest first and caps at the requested bucket count;
	// the caller still gets them oldest first.
	mock.ExpectQuery(`ORDER BY month DESC LIMIT \$2`).
		WithArgs(3, 3).
		WillReturnRows(sqlmock.NewRows([]string{"month", "total_issues", "resolved_issues"}).
			AddRow(sep, int64(20), int64(12)).
			AddRow(aug, int64(15), int64(11)).
			AddRow(jul, int64(12), int64(9)))

	rows, err := repo.MonthlyVolumes(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, jul, rows[0].Month)
	assert.Equal(t, aug, rows[1].Month)
	assert.Equal(t, sep, rows[2].Month)
	assert.Equal(t, int64(12), rows[2].ResolvedIssues)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMonthlyTrendsLabels(t *testing.T) {
	gdb, mock := newTestDB(t)
	repo := NewAnalyticsRepository(gdb)

	mock.ExpectQuery(`FROM issues i`).
		WillReturnRows(sqlmock.NewRows([]string{"month", "issues", "resolved"}).
			AddRow("Jul", int64(12), int64(9)).
			AddRow("Aug", int64(15), int64(11)))

	rows, err := repo.MonthlyTrends(context.Background(), testWindow())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Jul", rows[0].Month)
	assert.Equal(t, int64(11), rows[1].Resolved)
	assert.NoError(t, mock.ExpectationsWereMet())
}
