package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"civicboard/internal/model"
)

func TestIssueUpdateValidation(t *testing.T) {
	svc := NewIssueService(nil)

	badStatus := model.IssueStatus("archived")
	badPriority := model.IssuePriority("urgent")
	status := model.StatusResolved

	tests := []struct {
		name string
		upd  model.IssueUpdate
	}{
		{"missing id", model.IssueUpdate{Status: &status}},
		{"no fields", model.IssueUpdate{ID: uuid.New()}},
		{"unknown status", model.IssueUpdate{ID: uuid.New(), Status: &badStatus}},
		{"unknown priority", model.IssueUpdate{ID: uuid.New(), Priority: &badPriority}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(context.Background(), tt.upd)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}
