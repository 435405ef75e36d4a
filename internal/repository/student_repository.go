package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/sms-api/internal/models"
	appErrors "github.com/noah-isme/sms-api/pkg/errors"
)

const studentColumns = "id, first_name, last_name, name, major"

// StudentRepository persists students in PostgreSQL.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs the repository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// List returns every student in registration order.
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	query := "SELECT " + studentColumns + " FROM students ORDER BY created_at, id"
	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, query); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	for i := range students {
		students[i].Normalize()
	}
	return students, nil
}

// FindByID returns the student with id.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	query := "SELECT " + studentColumns + " FROM students WHERE id = $1"
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, studentNotFound(id)
		}
		return nil, fmt.Errorf("find student: %w", err)
	}
	student.Normalize()
	return &student, nil
}

// Create inserts a new student.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	student.Normalize()
	const query = `INSERT INTO students (id, first_name, last_name, name, major)
        VALUES (:id, :first_name, :last_name, :name, :major)`
	if _, err := r.db.NamedExecContext(ctx, query, student); err != nil {
		if isUniqueViolation(err) {
			return appErrors.Clonef(appErrors.ErrAlreadyExists,
				"student with ID %s already exists in this management system", student.ID)
		}
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

// Update replaces the stored student as a whole.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	student.Normalize()
	const query = `UPDATE students SET first_name = :first_name, last_name = :last_name, name = :name,
        major = :major, updated_at = NOW() WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, student)
	if err != nil {
		return fmt.Errorf("update student: %w", err)
	}
	return affectedOne(res, studentNotFound(student.ID))
}

// Delete removes the student. Enrollments follow through ON DELETE CASCADE.
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM students WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	return affectedOne(res, studentNotFound(id))
}
