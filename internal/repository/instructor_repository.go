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

const instructorColumns = "id, first_name, last_name, name, department, course_id"

// InstructorRepository persists instructors in PostgreSQL.
type InstructorRepository struct {
	db *sqlx.DB
}

// NewInstructorRepository constructs the repository.
func NewInstructorRepository(db *sqlx.DB) *InstructorRepository {
	return &InstructorRepository{db: db}
}

// List returns every instructor in registration order.
func (r *InstructorRepository) List(ctx context.Context) ([]models.Instructor, error) {
	query := "SELECT " + instructorColumns + " FROM instructors ORDER BY created_at, id"
	var instructors []models.Instructor
	if err := r.db.SelectContext(ctx, &instructors, query); err != nil {
		return nil, fmt.Errorf("list instructors: %w", err)
	}
	for i := range instructors {
		instructors[i].Normalize()
	}
	return instructors, nil
}

// FindByID returns the instructor with id.
func (r *InstructorRepository) FindByID(ctx context.Context, id string) (*models.Instructor, error) {
	query := "SELECT " + instructorColumns + " FROM instructors WHERE id = $1"
	var instructor models.Instructor
	if err := r.db.GetContext(ctx, &instructor, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, instructorNotFound(id)
		}
		return nil, fmt.Errorf("find instructor: %w", err)
	}
	instructor.Normalize()
	return &instructor, nil
}

// Create inserts a new instructor.
func (r *InstructorRepository) Create(ctx context.Context, instructor *models.Instructor) error {
	instructor.Normalize()
	const query = `INSERT INTO instructors (id, first_name, last_name, name, department, course_id)
        VALUES (:id, :first_name, :last_name, :name, :department, :course_id)`
	if _, err := r.db.NamedExecContext(ctx, query, instructor); err != nil {
		if isUniqueViolation(err) {
			return appErrors.Clonef(appErrors.ErrAlreadyExists,
				"instructor with ID %s already exists in this management system", instructor.ID)
		}
		return fmt.Errorf("create instructor: %w", err)
	}
	return nil
}

// Update replaces the instructor's names and department. Rosters reference
// instructors by ID so every course sees the change. The course association
// is owned by CourseRepository.AssignInstructor.
func (r *InstructorRepository) Update(ctx context.Context, instructor *models.Instructor) error {
	instructor.Normalize()
	const query = `UPDATE instructors SET first_name = :first_name, last_name = :last_name, name = :name,
        department = :department, updated_at = NOW() WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, instructor)
	if err != nil {
		return fmt.Errorf("update instructor: %w", err)
	}
	return affectedOne(res, instructorNotFound(instructor.ID))
}

// Delete removes the instructor and, through ON DELETE CASCADE, every roster
// entry naming them.
func (r *InstructorRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM instructors WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete instructor: %w", err)
	}
	return affectedOne(res, instructorNotFound(id))
}
