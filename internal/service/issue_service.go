package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"civicboard/internal/model"
	"civicboard/internal/repository"
)

type IssueService struct {
	issues *repository.IssueRepository
}

func NewIssueService(issues *repository.IssueRepository) *IssueService {
	return &IssueService{issues: issues}
}

func (s *IssueService) List(ctx context.Context, filter model.IssueFilter, sort model.SortSpec, page model.PageRequest) ([]model.Issue, model.PagePagination, error) {
	rows, total, err := s.issues.List(ctx, filter, sort, page)
	if err != nil {
		return nil, model.PagePagination{}, err
	}
	return rows, model.NewPagePagination(total, page), nil
}

func (s *IssueService) Update(ctx context.Context, upd model.IssueUpdate) (*model.Issue, error) {
	if upd.ID == uuid.Nil {
		return nil, validation("issue id is required")
	}
	if upd.Empty() {
		return nil, validation("no fields to update")
	}
	if upd.Status != nil && !upd.Status.Valid() {
		return nil, validation("invalid status")
	}
	if upd.Priority != nil && !upd.Priority.Valid() {
		return nil, validation("invalid priority")
	}

	issue, err := s.issues.Update(ctx, upd)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("issue not found")
		}
		return nil, err
	}
	return issue, nil
}
