package registry

import (
	"sync"

	"github.com/noah-isme/sms-api/internal/models"
	"github.com/noah-isme/sms-api/pkg/collection"
)

// Synchronized guards a Registry with a single lock per operation. Courses and
// instructors handed in or out are cloned so callers never share state with
// the registry outside the lock.
type Synchronized struct {
	mu  sync.RWMutex
	reg *Registry
}

// NewSynchronized wraps reg; a nil reg starts empty.
func NewSynchronized(reg *Registry) *Synchronized {
	if reg == nil {
		reg = New()
	}
	return &Synchronized{reg: reg}
}

// AddStudent registers a new student.
func (s *Synchronized) AddStudent(student models.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.AddStudent(student)
}

// UpdateStudent replaces an existing student.
func (s *Synchronized) UpdateStudent(student models.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.UpdateStudent(student)
}

// RemoveStudent deletes a student and their enrollments.
func (s *Synchronized) RemoveStudent(studentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.RemoveStudent(studentID)
}

// FindStudent looks a student up by ID.
func (s *Synchronized) FindStudent(studentID string) (models.Student, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.FindStudent(studentID)
}

// Students returns all students in registration order.
func (s *Synchronized) Students() []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.Students()
}

// AddInstructor registers a copy of instructor.
func (s *Synchronized) AddInstructor(instructor models.Instructor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.AddInstructor(instructor.Clone())
}

// UpdateInstructor replaces an existing instructor and their roster entries.
func (s *Synchronized) UpdateInstructor(instructor models.Instructor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.UpdateInstructor(instructor.Clone())
}

// RemoveInstructor deletes an instructor from the registry and every roster.
func (s *Synchronized) RemoveInstructor(instructorID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.RemoveInstructor(instructorID)
}

// FindInstructor returns a copy of the instructor with the given ID.
func (s *Synchronized) FindInstructor(instructorID string) (models.Instructor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	instructor, ok := s.reg.FindInstructor(instructorID)
	if !ok {
		return models.Instructor{}, false
	}
	return instructor.Clone(), true
}

// Instructors returns copies of all instructors in registration order.
func (s *Synchronized) Instructors() []models.Instructor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	instructors := s.reg.Instructors()
	for i := range instructors {
		instructors[i] = instructors[i].Clone()
	}
	return instructors
}

// AddCourse registers a copy of course.
func (s *Synchronized) AddCourse(course *models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.AddCourse(course.Clone())
}

// UpdateCourse replaces an existing course with a copy of course.
func (s *Synchronized) UpdateCourse(course *models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.UpdateCourse(course.Clone())
}

// RemoveCourse deletes a course together with its roster.
func (s *Synchronized) RemoveCourse(courseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.RemoveCourse(courseID)
}

// FindCourse returns a copy of the course with the given ID.
func (s *Synchronized) FindCourse(courseID string) (*models.Course, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	course, ok := s.reg.FindCourse(courseID)
	if !ok {
		return nil, false
	}
	return course.Clone(), true
}

// Courses returns copies of all courses in registration order.
func (s *Synchronized) Courses() []*models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	courses := s.reg.Courses()
	out := make([]*models.Course, 0, len(courses))
	for _, course := range courses {
		out = append(out, course.Clone())
	}
	return out
}

// EnrollStudent creates an ungraded enrollment.
func (s *Synchronized) EnrollStudent(studentID, courseID string) (models.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.EnrollStudent(studentID, courseID)
}

// GradeStudent sets the grade of an existing enrollment.
func (s *Synchronized) GradeStudent(studentID, courseID string, grade models.Grade) (models.Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.GradeStudent(studentID, courseID, grade)
}

// WithdrawStudent removes an enrollment.
func (s *Synchronized) WithdrawStudent(studentID, courseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.WithdrawStudent(studentID, courseID)
}

// AssignInstructor adds the instructor to the course roster and returns a copy.
func (s *Synchronized) AssignInstructor(instructorID, courseID string) (models.Instructor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	instructor, err := s.reg.AssignInstructor(instructorID, courseID)
	if err != nil {
		return models.Instructor{}, err
	}
	return instructor.Clone(), nil
}

// UnassignInstructor removes the instructor from the course roster.
func (s *Synchronized) UnassignInstructor(instructorID, courseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.UnassignInstructor(instructorID, courseID)
}

// FindCourseEnrollments returns a copy of the course roster.
func (s *Synchronized) FindCourseEnrollments(courseID string) (*collection.OrderedMap[models.Enrollment], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	enrollments, err := s.reg.FindCourseEnrollments(courseID)
	if err != nil {
		return nil, err
	}
	return enrollments.Clone(), nil
}

// FindCourseEnrolledStudents lists the IDs of students enrolled in the course.
func (s *Synchronized) FindCourseEnrolledStudents(courseID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.FindCourseEnrolledStudents(courseID)
}

// FindStudentEnrollments groups the student's enrollments under their ID.
func (s *Synchronized) FindStudentEnrollments(studentID string) (map[string][]models.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.FindStudentEnrollments(studentID)
}

// FindEnrolledStudentCourses lists the IDs of courses the student is enrolled in.
func (s *Synchronized) FindEnrolledStudentCourses(studentID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.FindEnrolledStudentCourses(studentID)
}
