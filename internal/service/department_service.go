package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"civicboard/internal/model"
	"civicboard/internal/repository"
)

type DepartmentService struct {
	departments *repository.DepartmentRepository
}

func NewDepartmentService(departments *repository.DepartmentRepository) *DepartmentService {
	return &DepartmentService{departments: departments}
}

func (s *DepartmentService) List(ctx context.Context) ([]model.DepartmentSummary, error) {
	return s.departments.List(ctx)
}

func (s *DepartmentService) Create(ctx context.Context, input model.CreateDepartmentInput) (*model.Department, error) {
	if input.Name == "" {
		return nil, validation("department name is required")
	}

	exists, err := s.departments.ExistsActiveName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, conflict("department with this name already exists")
	}

	dept, err := s.departments.Create(ctx, input)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, conflict("department with this name already exists")
		}
		return nil, err
	}

	if input.HeadUserID != nil {
		if err := s.departments.AssignHead(ctx, dept.ID, *input.HeadUserID); err != nil {
			return nil, err
		}
	}

	return dept, nil
}
