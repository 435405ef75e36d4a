package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/sms-api/internal/models"
	appErrors "github.com/noah-isme/sms-api/pkg/errors"
)

// EnrollmentRepository persists enrollments in PostgreSQL. Every mutation runs
// in a transaction that first confirms the student and course exist, so the
// not-found kinds match the in-memory registry.
type EnrollmentRepository struct {
	db *sqlx.DB
}

// NewEnrollmentRepository constructs the repository.
func NewEnrollmentRepository(db *sqlx.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// List returns enrollments matching filter in enrollment order.
func (r *EnrollmentRepository) List(ctx context.Context, filter models.EnrollmentFilter) ([]models.Enrollment, error) {
	var conditions []string
	var args []interface{}
	if filter.StudentID != "" {
		args = append(args, filter.StudentID)
		conditions = append(conditions, fmt.Sprintf("student_id = $%d", len(args)))
	}
	if filter.CourseID != "" {
		args = append(args, filter.CourseID)
		conditions = append(conditions, fmt.Sprintf("course_id = $%d", len(args)))
	}
	query := "SELECT student_id, course_id, grade FROM enrollments"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"

	enrollments := []models.Enrollment{}
	if err := r.db.SelectContext(ctx, &enrollments, query, args...); err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	return enrollments, nil
}

// ListByCourse returns the roster of courseID.
func (r *EnrollmentRepository) ListByCourse(ctx context.Context, courseID string) ([]models.Enrollment, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin course enrollments tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := ensureCourse(ctx, tx, courseID); err != nil {
		return nil, err
	}
	enrollments := []models.Enrollment{}
	const query = `SELECT student_id, course_id, grade FROM enrollments WHERE course_id = $1 ORDER BY id`
	if err := tx.SelectContext(ctx, &enrollments, query, courseID); err != nil {
		return nil, fmt.Errorf("list course enrollments: %w", err)
	}
	return enrollments, tx.Commit()
}

// ListByStudent returns the student's enrollments in course order.
func (r *EnrollmentRepository) ListByStudent(ctx context.Context, studentID string) ([]models.Enrollment, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin student enrollments tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := ensureStudent(ctx, tx, studentID); err != nil {
		return nil, err
	}
	enrollments := []models.Enrollment{}
	const query = `SELECT e.student_id, e.course_id, e.grade FROM enrollments e
        JOIN courses c ON c.id = e.course_id
        WHERE e.student_id = $1 ORDER BY c.created_at, c.id`
	if err := tx.SelectContext(ctx, &enrollments, query, studentID); err != nil {
		return nil, fmt.Errorf("list student enrollments: %w", err)
	}
	return enrollments, tx.Commit()
}

// Enroll creates an ungraded enrollment.
func (r *EnrollmentRepository) Enroll(ctx context.Context, studentID, courseID string) (*models.Enrollment, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin enroll tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := ensureStudent(ctx, tx, studentID); err != nil {
		if errors.Is(err, appErrors.ErrNotFound) {
			return nil, appErrors.Clonef(appErrors.ErrNotFound,
				"student with ID %s does not exist and can not be enrolled", studentID)
		}
		return nil, err
	}
	if err := ensureCourse(ctx, tx, courseID); err != nil {
		return nil, err
	}

	enrollment := models.NewEnrollment(studentID, courseID)
	const query = `INSERT INTO enrollments (student_id, course_id, grade) VALUES ($1, $2, $3)`
	if _, err := tx.ExecContext(ctx, query, enrollment.StudentID, enrollment.CourseID, enrollment.Grade); err != nil {
		switch {
		case isUniqueViolation(err):
			return nil, appErrors.Clonef(appErrors.ErrDuplicateEnrollment,
				"student with ID %s is already enrolled in course %s", studentID, courseID)
		case isForeignKeyViolation(err):
			return nil, appErrors.Wrap(err, appErrors.ErrNotFound.Code, appErrors.ErrNotFound.Status,
				"student or course was removed while enrolling")
		}
		return nil, fmt.Errorf("enroll student: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit enroll tx: %w", err)
	}
	return &enrollment, nil
}

// Grade replaces the grade of an existing enrollment.
func (r *EnrollmentRepository) Grade(ctx context.Context, studentID, courseID string, grade models.Grade) (*models.Enrollment, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin grade tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := ensurePair(ctx, tx, studentID, courseID); err != nil {
		return nil, err
	}
	const query = `UPDATE enrollments SET grade = $3, updated_at = NOW() WHERE student_id = $1 AND course_id = $2`
	res, err := tx.ExecContext(ctx, query, studentID, courseID, grade)
	if err != nil {
		return nil, fmt.Errorf("grade student: %w", err)
	}
	notEnrolled := appErrors.Clonef(appErrors.ErrNotEnrolled,
		"student with ID %s is not enrolled in course %s; grade was not assigned", studentID, courseID)
	if err := affectedOne(res, notEnrolled); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit grade tx: %w", err)
	}
	return &models.Enrollment{StudentID: studentID, CourseID: courseID, Grade: grade}, nil
}

// Withdraw deletes the enrollment.
func (r *EnrollmentRepository) Withdraw(ctx context.Context, studentID, courseID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin withdraw tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := ensurePair(ctx, tx, studentID, courseID); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM enrollments WHERE student_id = $1 AND course_id = $2`, studentID, courseID)
	if err != nil {
		return fmt.Errorf("withdraw student: %w", err)
	}
	notEnrolled := appErrors.Clonef(appErrors.ErrNotEnrolled,
		"student with ID %s is not enrolled in course %s", studentID, courseID)
	if err := affectedOne(res, notEnrolled); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit withdraw tx: %w", err)
	}
	return nil
}

func ensurePair(ctx context.Context, tx *sqlx.Tx, studentID, courseID string) error {
	if err := ensureStudent(ctx, tx, studentID); err != nil {
		return err
	}
	return ensureCourse(ctx, tx, courseID)
}
