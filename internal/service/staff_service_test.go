package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"civicboard/internal/model"
)

func TestStaffCreateValidation(t *testing.T) {
	svc := NewStaffService(nil)

	tests := []struct {
		name  string
		input model.CreateStaffInput
	}{
		{"empty input", model.CreateStaffInput{}},
		{"missing email", model.CreateStaffInput{
			Username: "jsmith", PasswordHash: "x", FullName: "Jordan Smith", Role: model.RoleStaff,
		}},
		{"unknown role", model.CreateStaffInput{
			Username: "jsmith", Email: "j@example.org", PasswordHash: "x",
			FullName: "Jordan Smith", Role: "superuser",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.input)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestStaffUpdateValidation(t *testing.T) {
	svc := NewStaffService(nil)

	role := model.StaffRole("superuser")
	tests := []struct {
		name  string
		input model.UpdateStaffInput
	}{
		{"missing id", model.UpdateStaffInput{}},
		{"no fields", model.UpdateStaffInput{ID: uuid.New()}},
		{"unknown role", model.UpdateStaffInput{ID: uuid.New(), Role: &role}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(context.Background(), tt.input)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestStaffDeactivateRequiresID(t *testing.T) {
	svc := NewStaffService(nil)
	_, err := svc.Deactivate(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSyncUpsertRequiresExternalID(t *testing.T) {
	svc := NewSyncService(nil)
	_, err := svc.UpsertReport(context.Background(), model.SyncReportPayload{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSyncStatusRequiresID(t *testing.T) {
	svc := NewSyncService(nil)
	_, err := svc.GetReportStatus(context.Background(), "")
	assert.ErrorIs(t, err, ErrValidation)
}
