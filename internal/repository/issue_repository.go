package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"civicboard/internal/model"
)

type IssueRepository struct {
	db *gorm.DB
}

func NewIssueRepository(db *gorm.DB) *IssueRepository {
	return &IssueRepository{db: db}
}

const issueColumns = `i.id, i.issue_number, i.title, i.description,
	i.category_id, ic.name AS category_name,
	i.department_id, d.name AS department_name,
	i.status, i.priority, i.citizen_name, i.citizen_email,
	i.location, i.latitude, i.longitude,
	i.actual_resolution_date, i.created_at, i.updated_at`

// List returns one page of issues plus the total row count under the same
// predicates. Exactly two queries; both go through applyIssueFilter.
func (r *IssueRepository) List(ctx context.Context, filter model.IssueFilter, sort model.SortSpec, page model.PageRequest) ([]model.Issue, int64, error) {
	var total int64
	countQuery := r.db.WithContext(ctx).Table("issues i")
	countQuery = applyIssueFilter(countQuery, filter)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.Issue
	query := r.db.WithContext(ctx).
		Table("issues i").
		Select(issueColumns).
		Joins("LEFT JOIN issue_categories ic ON ic.id = i.category_id").
		Joins("LEFT JOIN departments d ON d.id = i.department_id").
		Order(sort.Clause()).
		Offset(page.Offset)
	query = applyIssueFilter(query, filter)
	if !page.Unbounded {
		query = query.Limit(page.Limit)
	}

	if err := query.Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

func (r *IssueRepository) Get(ctx context.Context, id uuid.UUID) (*model.Issue, error) {
	var issue model.Issue
	err := r.db.WithContext(ctx).
		Table("issues i").
		Select(issueColumns).
		Joins("LEFT JOIN issue_categories ic ON ic.id = i.category_id").
		Joins("LEFT JOIN departments d ON d.id = i.department_id").
		Where("i.id = ?", id).
		Take(&issue).Error
	if err != nil {
		return nil, err
	}
	return &issue, nil
}

// Update applies a partial mutation. Moving an issue to resolved
// stamps actual_resolution_date.
func (r *IssueRepository) Update(ctx context.Context, upd model.IssueUpdate) (*model.Issue, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if upd.Status != nil {
		updates["status"] = *upd.Status
		if *upd.Status == model.StatusResolved {
			updates["actual_resolution_date"] = time.Now()
		}
	}
	if upd.Priority != nil {
		updates["priority"] = *upd.Priority
	}
	if upd.DepartmentID != nil {
		updates["department_id"] = *upd.DepartmentID
	}

	result := r.db.WithContext(ctx).
		Table("issues").
		Where("id = ?", upd.ID).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return r.Get(ctx, upd.ID)
}

// applyIssueFilter is the single predicate builder shared by the page and
// count queries. Empty values add no constraint; search is a
// case-insensitive partial match over a fixed column set.
func applyIssueFilter(query *gorm.DB, filter model.IssueFilter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(`(
			LOWER(i.title) LIKE LOWER(?) OR
			LOWER(i.location) LIKE LOWER(?) OR
			LOWER(i.citizen_name) LIKE LOWER(?) OR
			LOWER(i.issue_number) LIKE LOWER(?)
		)`, pattern, pattern, pattern, pattern)
	}
	if filter.Status != "" {
		query = query.Where("i.status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("i.priority = ?", filter.Priority)
	}
	if filter.DepartmentID != nil {
		query = query.Where("i.department_id = ?", *filter.DepartmentID)
	}
	return query
}
