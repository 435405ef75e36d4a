package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Schema lists the statements Migrate applies, in order. Every statement is
// idempotent so Migrate can run on each start.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS students (
		id TEXT PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		name TEXT NOT NULL,
		major TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS instructors (
		id TEXT PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		name TEXT NOT NULL,
		department TEXT NOT NULL,
		course_id TEXT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS courses (
		id TEXT PRIMARY KEY,
		course_name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS enrollments (
		id BIGSERIAL PRIMARY KEY,
		student_id TEXT NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		course_id TEXT NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
		grade TEXT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT enrollments_student_course_key UNIQUE (student_id, course_id)
	)`,
	`CREATE TABLE IF NOT EXISTS course_instructors (
		id BIGSERIAL PRIMARY KEY,
		course_id TEXT NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
		instructor_id TEXT NOT NULL REFERENCES instructors(id) ON DELETE CASCADE,
		assigned_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT course_instructors_course_instructor_key UNIQUE (course_id, instructor_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_enrollments_course ON enrollments (course_id, id)`,
	`CREATE INDEX IF NOT EXISTS idx_course_instructors_instructor ON course_instructors (instructor_id)`,
}

// Migrate creates the tables backing the student management system inside a
// single transaction.
func Migrate(ctx context.Context, db *sqlx.DB) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for i, stmt := range Schema {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}
	return nil
}
