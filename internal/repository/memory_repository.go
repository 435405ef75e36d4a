package repository

import (
	"context"

	"github.com/noah-isme/sms-api/internal/models"
	"github.com/noah-isme/sms-api/internal/registry"
)

// The memory repositories expose a shared registry.Synchronized through the
// same method sets as the PostgreSQL repositories. Contexts are accepted for
// interface parity only; registry operations never block on I/O.

// MemoryStudentRepository serves students from the in-memory registry.
type MemoryStudentRepository struct {
	reg *registry.Synchronized
}

// NewMemoryStudentRepository constructs the repository.
func NewMemoryStudentRepository(reg *registry.Synchronized) *MemoryStudentRepository {
	return &MemoryStudentRepository{reg: reg}
}

func (r *MemoryStudentRepository) List(_ context.Context) ([]models.Student, error) {
	return r.reg.Students(), nil
}

func (r *MemoryStudentRepository) FindByID(_ context.Context, id string) (*models.Student, error) {
	student, ok := r.reg.FindStudent(id)
	if !ok {
		return nil, studentNotFound(id)
	}
	return &student, nil
}

func (r *MemoryStudentRepository) Create(_ context.Context, student *models.Student) error {
	student.Normalize()
	return r.reg.AddStudent(*student)
}

func (r *MemoryStudentRepository) Update(_ context.Context, student *models.Student) error {
	student.Normalize()
	return r.reg.UpdateStudent(*student)
}

func (r *MemoryStudentRepository) Delete(_ context.Context, id string) error {
	return r.reg.RemoveStudent(id)
}

// MemoryInstructorRepository serves instructors from the in-memory registry.
type MemoryInstructorRepository struct {
	reg *registry.Synchronized
}

// NewMemoryInstructorRepository constructs the repository.
func NewMemoryInstructorRepository(reg *registry.Synchronized) *MemoryInstructorRepository {
	return &MemoryInstructorRepository{reg: reg}
}

func (r *MemoryInstructorRepository) List(_ context.Context) ([]models.Instructor, error) {
	return r.reg.Instructors(), nil
}

func (r *MemoryInstructorRepository) FindByID(_ context.Context, id string) (*models.Instructor, error) {
	instructor, ok := r.reg.FindInstructor(id)
	if !ok {
		return nil, instructorNotFound(id)
	}
	return &instructor, nil
}

func (r *MemoryInstructorRepository) Create(_ context.Context, instructor *models.Instructor) error {
	instructor.Normalize()
	return r.reg.AddInstructor(*instructor)
}

func (r *MemoryInstructorRepository) Update(_ context.Context, instructor *models.Instructor) error {
	instructor.Normalize()
	return r.reg.UpdateInstructor(*instructor)
}

func (r *MemoryInstructorRepository) Delete(_ context.Context, id string) error {
	return r.reg.RemoveInstructor(id)
}

// MemoryCourseRepository serves courses and rosters from the in-memory registry.
type MemoryCourseRepository struct {
	reg *registry.Synchronized
}

// NewMemoryCourseRepository constructs the repository.
func NewMemoryCourseRepository(reg *registry.Synchronized) *MemoryCourseRepository {
	return &MemoryCourseRepository{reg: reg}
}

func (r *MemoryCourseRepository) List(_ context.Context) ([]*models.Course, error) {
	return r.reg.Courses(), nil
}

func (r *MemoryCourseRepository) FindByID(_ context.Context, id string) (*models.Course, error) {
	course, ok := r.reg.FindCourse(id)
	if !ok {
		return nil, courseNotFound(id)
	}
	return course, nil
}

func (r *MemoryCourseRepository) Create(_ context.Context, course *models.Course) error {
	course.Normalize()
	return r.reg.AddCourse(course)
}

func (r *MemoryCourseRepository) Delete(_ context.Context, id string) error {
	return r.reg.RemoveCourse(id)
}

func (r *MemoryCourseRepository) AssignInstructor(_ context.Context, instructorID, courseID string) (*models.Instructor, error) {
	instructor, err := r.reg.AssignInstructor(instructorID, courseID)
	if err != nil {
		return nil, err
	}
	return &instructor, nil
}

func (r *MemoryCourseRepository) UnassignInstructor(_ context.Context, instructorID, courseID string) error {
	return r.reg.UnassignInstructor(instructorID, courseID)
}

// MemoryEnrollmentRepository serves enrollments from the in-memory registry.
type MemoryEnrollmentRepository struct {
	reg *registry.Synchronized
}

// NewMemoryEnrollmentRepository constructs the repository.
func NewMemoryEnrollmentRepository(reg *registry.Synchronized) *MemoryEnrollmentRepository {
	return &MemoryEnrollmentRepository{reg: reg}
}

// List walks the course rosters in course order, then enrollment order.
func (r *MemoryEnrollmentRepository) List(_ context.Context, filter models.EnrollmentFilter) ([]models.Enrollment, error) {
	enrollments := []models.Enrollment{}
	for _, course := range r.reg.Courses() {
		if filter.CourseID != "" && course.CourseID != filter.CourseID {
			continue
		}
		for _, enrollment := range course.Enrollments() {
			if filter.StudentID != "" && enrollment.StudentID != filter.StudentID {
				continue
			}
			enrollments = append(enrollments, enrollment)
		}
	}
	return enrollments, nil
}

func (r *MemoryEnrollmentRepository) ListByCourse(_ context.Context, courseID string) ([]models.Enrollment, error) {
	roster, err := r.reg.FindCourseEnrollments(courseID)
	if err != nil {
		return nil, err
	}
	return roster.Values(), nil
}

func (r *MemoryEnrollmentRepository) ListByStudent(_ context.Context, studentID string) ([]models.Enrollment, error) {
	grouped, err := r.reg.FindStudentEnrollments(studentID)
	if err != nil {
		return nil, err
	}
	return grouped[studentID], nil
}

func (r *MemoryEnrollmentRepository) Enroll(_ context.Context, studentID, courseID string) (*models.Enrollment, error) {
	enrollment, err := r.reg.EnrollStudent(studentID, courseID)
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *MemoryEnrollmentRepository) Grade(_ context.Context, studentID, courseID string, grade models.Grade) (*models.Enrollment, error) {
	enrollment, err := r.reg.GradeStudent(studentID, courseID, grade)
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *MemoryEnrollmentRepository) Withdraw(_ context.Context, studentID, courseID string) error {
	return r.reg.WithdrawStudent(studentID, courseID)
}
