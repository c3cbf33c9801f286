package model

import "time"

type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DashboardStats is the single-pass headline counters over the trailing
// one-year window. ResolvedThisMonth covers the current calendar month only.
type DashboardStats struct {
	TotalIssues        int64 `json:"total_issues"`
	PendingIssues      int64 `json:"pending_issues"`
	InProgressIssues   int64 `json:"in_progress_issues"`
	ResolvedThisMonth  int64 `json:"resolved_issues" gorm:"column:resolved_issues"`
	CriticalIssues     int64 `json:"critical_issues"`
	HighPriorityIssues int64 `json:"high_priority_issues"`
}

type DepartmentBreakdown struct {
	DepartmentName   string `json:"department_name"`
	TotalIssues      int64  `json:"total_issues"`
	PendingIssues    int64  `json:"pending_issues"`
	InProgressIssues int64  `json:"in_progress_issues"`
	ResolvedIssues   int64  `json:"resolved_issues"`
}

type CategoryBreakdown struct {
	CategoryName      string  `json:"category_name"`
	TotalIssues       int64   `json:"total_issues"`
	AvgResolutionDays float64 `json:"avg_resolution_days"`
}

type MonthlyVolume struct {
	Month          time.Time `json:"month"`
	TotalIssues    int64     `json:"total_issues"`
	ResolvedIssues int64     `json:"resolved_issues"`
}

type DashboardSummary struct {
	DashboardStats
	DepartmentBreakdown []DepartmentBreakdown `json:"department_breakdown"`
	CategoryBreakdown   []CategoryBreakdown   `json:"category_breakdown"`
	MonthlyTrends       []MonthlyVolume       `json:"monthly_trends"`
}

type ReportTrends struct {
	TotalIssues          float64 `json:"totalIssues"`
	ResolvedIssues       float64 `json:"resolvedIssues"`
	AvgResolutionTime    float64 `json:"avgResolutionTime"`
	CustomerSatisfaction float64 `json:"customerSatisfaction"`
}

type ReportOverview struct {
	TotalIssues       int64   `json:"totalIssues"`
	ResolvedIssues    int64   `json:"resolvedIssues"`
	PendingIssues     int64   `json:"pendingIssues"`
	InProgressIssues  int64   `json:"inProgressIssues"`
	ClosedIssues      int64   `json:"closedIssues"`
	AvgResolutionDays float64 `json:"avgResolutionTime"`
	// CustomerSatisfaction is a placeholder derived from the resolution
	// rate, not a measured quantity. See service.PlaceholderSatisfaction.
	CustomerSatisfaction float64      `json:"customerSatisfaction"`
	Trends               ReportTrends `json:"trends"`
}

type StatusSlice struct {
	Status     IssueStatus `json:"status"`
	Count      int64       `json:"count"`
	Percentage float64     `json:"percentage"`
}

type PrioritySlice struct {
	Priority   IssuePriority `json:"priority"`
	Count      int64         `json:"count"`
	Percentage float64       `json:"percentage"`
}

type DepartmentPerformance struct {
	Name       string  `json:"name"`
	Issues     int64   `json:"issues"`
	Resolved   int64   `json:"resolved"`
	Percentage float64 `json:"percentage"`
}

type MonthlyTrend struct {
	Month    string `json:"month"`
	Issues   int64  `json:"issues"`
	Resolved int64  `json:"resolved"`
}

type PeriodReport struct {
	Overview              ReportOverview          `json:"overview"`
	IssuesByStatus        []StatusSlice           `json:"issuesByStatus"`
	IssuesByPriority      []PrioritySlice         `json:"issuesByPriority"`
	DepartmentPerformance []DepartmentPerformance `json:"departmentPerformance"`
	MonthlyTrends         []MonthlyTrend          `json:"monthlyTrends"`
	PeriodDays            int                     `json:"period"`
	DateRange             DateRange               `json:"dateRange"`
}

type ExportRequest struct {
	Format     string  `json:"format"`
	PeriodDays int     `json:"period"`
	Department *string `json:"department,omitempty"`
	ReportType string  `json:"reportType"`
}

type ExportJob struct {
	Format      string    `json:"format"`
	PeriodDays  int       `json:"period"`
	Department  *string   `json:"department,omitempty"`
	ReportType  string    `json:"reportType"`
	GeneratedAt time.Time `json:"generatedAt"`
	DownloadURL string    `json:"downloadUrl"`
	ExpiresAt   time.Time `json:"expiresAt"`
}
