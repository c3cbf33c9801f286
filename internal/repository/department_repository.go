package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"civicboard/internal/model"
)

type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// List returns the active departments with head contact details, the active
// staff headcount, and the open (pending/in_progress) issue count. DISTINCT
// counts keep the two left joins from inflating each other.
func (r *DepartmentRepository) List(ctx context.Context) ([]model.DepartmentSummary, error) {
	var rows []model.DepartmentSummary

	err := r.db.WithContext(ctx).
		Table("departments d").
		Select(`d.id, d.name, d.description, d.head_user_id, d.is_active,
			d.created_at, d.updated_at,
			head.full_name AS head_name,
			head.email AS head_email,
			COUNT(DISTINCT staff.id) AS staff_count,
			COUNT(DISTINCT i.id) AS active_issues_count`).
		Joins("LEFT JOIN municipal_users head ON head.id = d.head_user_id").
		Joins("LEFT JOIN municipal_users staff ON staff.department_id = d.id AND staff.is_active = ?", true).
		Joins("LEFT JOIN issues i ON i.department_id = d.id AND i.status IN ?",
			[]model.IssueStatus{model.StatusPending, model.StatusInProgress}).
		Where("d.is_active = ?", true).
		Group("d.id, d.name, d.description, d.head_user_id, d.is_active, d.created_at, d.updated_at, head.full_name, head.email").
		Order("d.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// ExistsActiveName checks the department-name invariant: names are unique
// among active rows only.
func (r *DepartmentRepository) ExistsActiveName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("departments").
		Where("LOWER(name) = LOWER(?) AND is_active = ?", name, true).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *DepartmentRepository) Create(ctx context.Context, input model.CreateDepartmentInput) (*model.Department, error) {
	var dept model.Department
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO departments (name, description, head_user_id)
		VALUES (?, ?, ?)
		RETURNING id, name, description, head_user_id, is_active, created_at, updated_at`,
		input.Name, input.Description, input.HeadUserID).
		Scan(&dept).Error
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

// AssignHead moves the head user into the department they now lead.
func (r *DepartmentRepository) AssignHead(ctx context.Context, departmentID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Table("municipal_users").
		Where("id = ?", userID).
		Update("department_id", departmentID).Error
}
