package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	`CREATE TABLE IF NOT EXISTS departments (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		description TEXT,
		head_user_id UUID,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_departments_active_name
		ON departments (LOWER(name)) WHERE is_active;`,
	`CREATE TABLE IF NOT EXISTS municipal_users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		full_name TEXT NOT NULL,
		role TEXT NOT NULL CHECK (role IN ('admin', 'officer', 'staff')),
		department_id UUID REFERENCES departments(id),
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS issue_categories (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE
	);`,
	`CREATE TABLE IF NOT EXISTS issues (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		issue_number TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		category_id UUID REFERENCES issue_categories(id),
		department_id UUID REFERENCES departments(id),
		status TEXT NOT NULL DEFAULT 'pending'
			CHECK (status IN ('pending', 'in_progress', 'resolved', 'closed')),
		priority TEXT NOT NULL DEFAULT 'medium'
			CHECK (priority IN ('low', 'medium', 'high', 'critical')),
		citizen_name TEXT,
		citizen_email TEXT,
		location TEXT,
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		actual_resolution_date TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_issues_created_at ON issues (created_at);`,
	`CREATE INDEX IF NOT EXISTS idx_issues_department ON issues (department_id);`,
	`CREATE INDEX IF NOT EXISTS idx_issues_status ON issues (status);`,
	`CREATE TABLE IF NOT EXISTS public_reports (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_report_id TEXT NOT NULL UNIQUE,
		title TEXT,
		description TEXT,
		category TEXT,
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		image_url TEXT,
		audio_url TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		priority TEXT NOT NULL DEFAULT 'medium',
		assigned_department TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_public_reports_updated_at ON public_reports (updated_at);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
