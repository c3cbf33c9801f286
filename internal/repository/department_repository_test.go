package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civicboard/internal/model"
)

var departmentSummaryColumns = []string{
	"id", "name", "description", "head_user_id", "is_active",
	"created_at", "updated_at", "head_name", "head_email",
	"staff_count", "active_issues_count",
}

func TestDepartmentList(t *testing.T) {
	gdb, mock := newTestDB(t)
	repo := NewDepartmentRepository(gdb)

	roadsID := uuid.New()
	parksID := uuid.New()
	headID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`FROM departments d LEFT JOIN municipal_users head`).
		WillReturnRows(sqlmock.NewRows(departmentSummaryColumns).
			AddRow(parksID.String(), "Parks", "Green spaces", nil, true, now, now,
				nil, nil, int64(0), int64(0)).
			AddRow(roadsID.String(), "Roads", "Road maintenance", headID.String(), true, now, now,
				"Jordan Smith", "jsmith@example.org", int64(4), int64(7)))

	rows, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// A department with no staff and no open issues still shows up with
	// zero counts and a nil head.
	assert.Equal(t, "Parks", rows[0].Name)
	assert.Nil(t, rows[0].HeadName)
	assert.Zero(t, rows[0].StaffCount)
	assert.Zero(t, rows[0].ActiveIssuesCount)

	assert.Equal(t, "Roads", rows[1].Name)
	require.NotNil(t, rows[1].HeadName)
	assert.Equal(t, "Jordan Smith", *rows[1].HeadName)
	assert.Equal(t, int64(4), rows[1].StaffCount)
	assert.Equal(t, int64(7), rows[1].ActiveIssuesCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentExistsActiveName(t *testing.T) {
	gdb, mock := newTestDB(t)
	repo := NewDepartmentRepository(gdb)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "departments" WHERE LOWER\(name\) = LOWER\(\$1\)`).
		WithArgs("roads", true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))

	exists, err := repo.ExistsActiveName(context.Background(), "roads")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestDepartmentCreate(t *testing.T) {
	gdb, mock := newTestDB(t)
	repo := NewDepartmentRepository(gdb)

	deptID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO departments`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "description", "head_user_id", "is_active", "created_at", "updated_at",
		}).AddRow(deptID.String(), "Sanitation", "Waste collection", nil, true, now, now))

	dept, err := repo.Create(context.Background(), model.CreateDepartmentInput{
		Name:        "Sanitation",
		Description: strPtr("Waste collection"),
	})
	require.NoError(t, err)
	assert.Equal(t, deptID, dept.ID)
	assert.True(t, dept.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func strPtr(s string) *string { return &s }
