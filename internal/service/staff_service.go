package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"civicboard/internal/model"
	"civicboard/internal/repository"
)

type StaffService struct {
	staff *repository.StaffRepository
}

func NewStaffService(staff *repository.StaffRepository) *StaffService {
	return &StaffService{staff: staff}
}

func (s *StaffService) List(ctx context.Context, filter model.StaffFilter, page model.PageRequest) ([]model.StaffMember, model.OffsetPagination, error) {
	rows, total, err := s.staff.List(ctx, filter, page)
	if err != nil {
		return nil, model.OffsetPagination{}, err
	}
	return rows, model.NewOffsetPagination(total, page, len(rows)), nil
}

func (s *StaffService) Create(ctx context.Context, input model.CreateStaffInput) (*model.StaffMember, error) {
	if input.Username == "" || input.Email == "" || input.PasswordHash == "" || input.FullName == "" || input.Role == "" {
		return nil, validation("missing required fields")
	}
	if !input.Role.Valid() {
		return nil, validation("invalid role")
	}

	exists, err := s.staff.ExistsByUsernameOrEmail(ctx, input.Username, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, conflict("username or email already exists")
	}

	member, err := s.staff.Create(ctx, input)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, conflict("username or email already exists")
		}
		return nil, err
	}
	return member, nil
}

func (s *StaffService) Update(ctx context.Context, input model.UpdateStaffInput) (*model.StaffMember, error) {
	if input.ID == uuid.Nil {
		return nil, validation("staff member id is required")
	}
	if input.Empty() {
		return nil, validation("no fields to update")
	}
	if input.Role != nil && !input.Role.Valid() {
		return nil, validation("invalid role")
	}

	member, err := s.staff.Update(ctx, input)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, notFound("staff member not found")
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, conflict("username or email already exists")
		}
		return nil, err
	}
	return member, nil
}

func (s *StaffService) Deactivate(ctx context.Context, id uuid.UUID) (*model.StaffMember, error) {
	if id == uuid.Nil {
		return nil, validation("staff member id is required")
	}

	member, err := s.staff.Deactivate(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("staff member not found")
		}
		return nil, err
	}
	return member, nil
}
