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

type courseRow struct {
	ID         string `db:"id"`
	CourseName string `db:"course_name"`
}

type rosterInstructor struct {
	RosterCourseID string `db:"roster_course_id"`
	models.Instructor
}

const (
	rosterEnrollmentsQuery = `SELECT student_id, course_id, grade FROM enrollments`
	rosterInstructorsQuery = `SELECT ci.course_id AS roster_course_id, i.id, i.first_name, i.last_name, i.name,
        i.department, i.course_id
        FROM course_instructors ci JOIN instructors i ON i.id = ci.instructor_id`
)

// CourseRepository persists courses and their rosters in PostgreSQL.
// Enrollments live in the enrollments table and instructor assignments in
// course_instructors; both are ordered by insertion.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository constructs the repository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// List returns every course with its roster in registration order.
func (r *CourseRepository) List(ctx context.Context) ([]*models.Course, error) {
	var rows []courseRow
	if err := r.db.SelectContext(ctx, &rows, "SELECT id, course_name FROM courses ORDER BY created_at, id"); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	if len(rows) == 0 {
		return []*models.Course{}, nil
	}

	courses := make([]*models.Course, 0, len(rows))
	byID := make(map[string]*models.Course, len(rows))
	for _, row := range rows {
		course := row.toModel()
		courses = append(courses, course)
		byID[course.CourseID] = course
	}

	var enrollments []models.Enrollment
	if err := r.db.SelectContext(ctx, &enrollments, rosterEnrollmentsQuery+" ORDER BY id"); err != nil {
		return nil, fmt.Errorf("list course enrollments: %w", err)
	}
	for _, enrollment := range enrollments {
		if course, ok := byID[enrollment.CourseID]; ok {
			course.EnrolledStudents.Set(enrollment.StudentID, enrollment)
		}
	}

	var instructors []rosterInstructor
	if err := r.db.SelectContext(ctx, &instructors, rosterInstructorsQuery+" ORDER BY ci.id"); err != nil {
		return nil, fmt.Errorf("list course instructors: %w", err)
	}
	for _, entry := range instructors {
		if course, ok := byID[entry.RosterCourseID]; ok {
			entry.Instructor.Normalize()
			course.Instructors.Set(entry.Instructor.ID, entry.Instructor)
		}
	}
	return courses, nil
}

// FindByID returns the course with its roster.
func (r *CourseRepository) FindByID(ctx context.Context, id string) (*models.Course, error) {
	var row courseRow
	if err := r.db.GetContext(ctx, &row, "SELECT id, course_name FROM courses WHERE id = $1", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, courseNotFound(id)
		}
		return nil, fmt.Errorf("find course: %w", err)
	}
	course := row.toModel()

	var enrollments []models.Enrollment
	if err := r.db.SelectContext(ctx, &enrollments, rosterEnrollmentsQuery+" WHERE course_id = $1 ORDER BY id", id); err != nil {
		return nil, fmt.Errorf("find course enrollments: %w", err)
	}
	for _, enrollment := range enrollments {
		course.EnrolledStudents.Set(enrollment.StudentID, enrollment)
	}

	var instructors []rosterInstructor
	if err := r.db.SelectContext(ctx, &instructors, rosterInstructorsQuery+" WHERE ci.course_id = $1 ORDER BY ci.id", id); err != nil {
		return nil, fmt.Errorf("find course instructors: %w", err)
	}
	for _, entry := range instructors {
		entry.Instructor.Normalize()
		course.Instructors.Set(entry.Instructor.ID, entry.Instructor)
	}
	return course, nil
}

// Create inserts a new, empty course.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	const query = `INSERT INTO courses (id, course_name) VALUES ($1, $2)`
	if _, err := r.db.ExecContext(ctx, query, course.CourseID, course.CourseName); err != nil {
		if isUniqueViolation(err) {
			return appErrors.Clonef(appErrors.ErrAlreadyExists,
				"course with ID %s already exists in this management system", course.CourseID)
		}
		return fmt.Errorf("create course: %w", err)
	}
	course.Normalize()
	return nil
}

// Delete removes the course together with its roster rows. Instructors keep
// their course_id.
func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM courses WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	return affectedOne(res, courseNotFound(id))
}

// AssignInstructor adds the instructor to the course roster and moves their
// single course association to it.
func (r *CourseRepository) AssignInstructor(ctx context.Context, instructorID, courseID string) (*models.Instructor, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin assign instructor tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	instructor, err := lockInstructor(ctx, tx, instructorID)
	if err != nil {
		return nil, err
	}
	if err := ensureCourse(ctx, tx, courseID); err != nil {
		return nil, err
	}

	const insert = `INSERT INTO course_instructors (course_id, instructor_id) VALUES ($1, $2)`
	if _, err := tx.ExecContext(ctx, insert, courseID, instructorID); err != nil {
		if isUniqueViolation(err) {
			return nil, appErrors.Clonef(appErrors.ErrDuplicateInstructor,
				"instructor with ID %s is already an instructor for course %s", instructorID, courseID)
		}
		return nil, fmt.Errorf("assign instructor: %w", err)
	}
	const release = `DELETE FROM course_instructors WHERE instructor_id = $1 AND course_id <> $2`
	if _, err := tx.ExecContext(ctx, release, instructorID, courseID); err != nil {
		return nil, fmt.Errorf("release previous course: %w", err)
	}
	const associate = `UPDATE instructors SET course_id = $2, updated_at = NOW() WHERE id = $1`
	if _, err := tx.ExecContext(ctx, associate, instructorID, courseID); err != nil {
		return nil, fmt.Errorf("associate instructor course: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit assign instructor tx: %w", err)
	}

	instructor.SetCourse(courseID)
	return instructor, nil
}

// UnassignInstructor removes the instructor from the course roster and clears
// the association when it points at that course.
func (r *CourseRepository) UnassignInstructor(ctx context.Context, instructorID, courseID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin unassign instructor tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := lockInstructor(ctx, tx, instructorID); err != nil {
		return err
	}
	if err := ensureCourse(ctx, tx, courseID); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM course_instructors WHERE course_id = $1 AND instructor_id = $2`, courseID, instructorID)
	if err != nil {
		return fmt.Errorf("unassign instructor: %w", err)
	}
	notAssigned := appErrors.Clonef(appErrors.ErrInstructorNotAssigned,
		"instructor with ID %s is not an instructor for course %s", instructorID, courseID)
	if err := affectedOne(res, notAssigned); err != nil {
		return err
	}
	const detach = `UPDATE instructors SET course_id = NULL, updated_at = NOW() WHERE id = $1 AND course_id = $2`
	if _, err := tx.ExecContext(ctx, detach, instructorID, courseID); err != nil {
		return fmt.Errorf("clear instructor course: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit unassign instructor tx: %w", err)
	}
	return nil
}

func lockInstructor(ctx context.Context, tx *sqlx.Tx, id string) (*models.Instructor, error) {
	query := "SELECT " + instructorColumns + " FROM instructors WHERE id = $1 FOR UPDATE"
	var instructor models.Instructor
	if err := tx.GetContext(ctx, &instructor, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, instructorNotFound(id)
		}
		return nil, fmt.Errorf("load instructor: %w", err)
	}
	instructor.Normalize()
	return &instructor, nil
}

func ensureCourse(ctx context.Context, tx *sqlx.Tx, id string) error {
	var exists int
	if err := tx.GetContext(ctx, &exists, "SELECT 1 FROM courses WHERE id = $1", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return courseNotFound(id)
		}
		return fmt.Errorf("load course: %w", err)
	}
	return nil
}

func ensureStudent(ctx context.Context, tx *sqlx.Tx, id string) error {
	var exists int
	if err := tx.GetContext(ctx, &exists, "SELECT 1 FROM students WHERE id = $1", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return studentNotFound(id)
		}
		return fmt.Errorf("load student: %w", err)
	}
	return nil
}

func (row courseRow) toModel() *models.Course {
	return models.NewCourse(models.CourseNameID{CourseID: row.ID, CourseName: row.CourseName})
}
