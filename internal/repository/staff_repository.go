package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"civicboard/internal/model"
)

type StaffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

const staffColumns = `u.id, u.username, u.email, u.full_name, u.role,
	u.department_id, d.name AS department_name,
	u.is_active, u.created_at, u.updated_at`

// List returns a staff page plus the total count, both built from the same
// predicate function.
func (r *StaffRepository) List(ctx context.Context, filter model.StaffFilter, page model.PageRequest) ([]model.StaffMember, int64, error) {
	var total int64
	countQuery := r.db.WithContext(ctx).Table("municipal_users u")
	countQuery = applyStaffFilter(countQuery, filter)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.StaffMember
	query := r.db.WithContext(ctx).
		Table("municipal_users u").
		Select(staffColumns).
		Joins("LEFT JOIN departments d ON d.id = u.department_id").
		Order("u.created_at DESC").
		Offset(page.Offset)
	query = applyStaffFilter(query, filter)
	if !page.Unbounded {
		query = query.Limit(page.Limit)
	}

	if err := query.Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

func (r *StaffRepository) Get(ctx context.Context, id uuid.UUID) (*model.StaffMember, error) {
	var member model.StaffMember
	err := r.db.WithContext(ctx).
		Table("municipal_users u").
		Select(staffColumns).
		Joins("LEFT JOIN departments d ON d.id = u.department_id").
		Where("u.id = ?", id).
		Take(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// ExistsByUsernameOrEmail reports whether any row, active or not, already
// claims either credential.
func (r *StaffRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("municipal_users").
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *StaffRepository) Create(ctx context.Context, input model.CreateStaffInput) (*model.StaffMember, error) {
	var member model.StaffMember
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO municipal_users (username, email, password_hash, full_name, role, department_id)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id, username, email, full_name, role, department_id, is_active, created_at, updated_at`,
		input.Username, input.Email, input.PasswordHash, input.FullName, input.Role, input.DepartmentID).
		Scan(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// Update applies a partial update; nil input fields are skipped.
func (r *StaffRepository) Update(ctx context.Context, input model.UpdateStaffInput) (*model.StaffMember, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if input.Username != nil {
		updates["username"] = *input.Username
	}
	if input.Email != nil {
		updates["email"] = *input.Email
	}
	if input.FullName != nil {
		updates["full_name"] = *input.FullName
	}
	if input.Role != nil {
		updates["role"] = *input.Role
	}
	if input.DepartmentID != nil {
		updates["department_id"] = *input.DepartmentID
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}

	result := r.db.WithContext(ctx).
		Table("municipal_users").
		Where("id = ?", input.ID).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return r.Get(ctx, input.ID)
}

// Deactivate soft-deletes: the row stays, is_active flips to false.
func (r *StaffRepository) Deactivate(ctx context.Context, id uuid.UUID) (*model.StaffMember, error) {
	result := r.db.WithContext(ctx).
		Table("municipal_users").
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return r.Get(ctx, id)
}

func applyStaffFilter(query *gorm.DB, filter model.StaffFilter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(`(
			LOWER(u.full_name) LIKE LOWER(?) OR
			LOWER(u.email) LIKE LOWER(?) OR
			LOWER(u.username) LIKE LOWER(?)
		)`, pattern, pattern, pattern)
	}
	if filter.DepartmentID != nil {
		query = query.Where("u.department_id = ?", *filter.DepartmentID)
	}
	if filter.Role != "" {
		query = query.Where("u.role = ?", filter.Role)
	}
	switch filter.Status {
	case model.FilterActive:
		query = query.Where("u.is_active = ?", true)
	case model.FilterInactive:
		query = query.Where("u.is_active = ?", false)
	}
	return query
}
