package model

import (
	"strings"

	"github.com/google/uuid"
)

type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// SortSpec holds a column name and direction that have already been checked
// against an allow-list; its values are the only strings that may ever reach
// an ORDER BY clause.
type SortSpec struct {
	Column    string
	Direction SortDirection
}

func (s SortSpec) Clause() string {
	return s.Column + " " + string(s.Direction)
}

// IssueSortColumns maps caller-facing sort keys to real columns.
var IssueSortColumns = map[string]string{
	"created_at":   "i.created_at",
	"updated_at":   "i.updated_at",
	"priority":     "i.priority",
	"status":       "i.status",
	"issue_number": "i.issue_number",
	"title":        "i.title",
}

var StaffSortColumns = map[string]string{
	"created_at": "u.created_at",
	"updated_at": "u.updated_at",
	"username":   "u.username",
	"full_name":  "u.full_name",
	"role":       "u.role",
}

const defaultSortColumn = "created_at"

// ResolveSort validates a requested sort key and direction against the
// allow-list, falling back to created_at DESC for anything unrecognized.
func ResolveSort(allowed map[string]string, key, direction string) SortSpec {
	column, ok := allowed[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		column = allowed[defaultSortColumn]
	}

	dir := SortDesc
	if strings.EqualFold(strings.TrimSpace(direction), string(SortAsc)) {
		dir = SortAsc
	}

	return SortSpec{Column: column, Direction: dir}
}

type ActiveStatus string

const (
	FilterActive   ActiveStatus = "active"
	FilterInactive ActiveStatus = "inactive"
)

type StaffFilter struct {
	Search       string
	DepartmentID *uuid.UUID
	Role         StaffRole
	Status       ActiveStatus
}

type IssueFilter struct {
	Search       string
	Status       IssueStatus
	Priority     IssuePriority
	DepartmentID *uuid.UUID
}

// PageRequest is the normalized page request. Unbounded replaces the old
// "limit zero means everything" convention with an explicit flag.
type PageRequest struct {
	Limit     int
	Offset    int
	Page      int
	Unbounded bool
}

// Normalize fills defaults and converts a 1-based page number into an
// offset. A non-positive limit falls back to the endpoint default unless the
// request is explicitly unbounded.
func (p PageRequest) Normalize(defaultLimit int) PageRequest {
	if p.Limit <= 0 && !p.Unbounded {
		p.Limit = defaultLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Page > 0 && !p.Unbounded {
		p.Offset = (p.Page - 1) * p.Limit
	}
	return p
}

type OffsetPagination struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"hasMore"`
}

func NewOffsetPagination(total int64, page PageRequest, returned int) OffsetPagination {
	return OffsetPagination{
		Total:   total,
		Limit:   page.Limit,
		Offset:  page.Offset,
		HasMore: int64(page.Offset+returned) < total,
	}
}

type PagePagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

func NewPagePagination(total int64, page PageRequest) PagePagination {
	// An unbounded request returns every row, so it is always exactly one page.
	if page.Unbounded {
		return PagePagination{
			CurrentPage: 1,
			TotalPages:  1,
			TotalCount:  total,
		}
	}

	limit := maxInt(page.Limit, 1)
	current := page.Page
	if current <= 0 {
		current = page.Offset/limit + 1
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if totalPages < 1 {
		totalPages = 1
	}
	return PagePagination{
		CurrentPage: current,
		TotalPages:  totalPages,
		TotalCount:  total,
		HasNextPage: current < totalPages,
		HasPrevPage: current > 1,
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
