// Package registry implements the in-memory student management system: the
// student, instructor and course mappings and the cross-entity operations that
// keep course rosters consistent with them.
//
// Registry is not safe for concurrent use; wrap it with Synchronized when it is
// shared between goroutines.
package registry

import (
	"github.com/noah-isme/sms-api/internal/models"
	"github.com/noah-isme/sms-api/pkg/collection"
	appErrors "github.com/noah-isme/sms-api/pkg/errors"
)

// Registry owns the top-level student, instructor and course mappings.
type Registry struct {
	students    *collection.OrderedMap[models.Student]
	instructors *collection.OrderedMap[models.Instructor]
	courses     *collection.OrderedMap[*models.Course]
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		students:    collection.NewOrderedMap[models.Student](),
		instructors: collection.NewOrderedMap[models.Instructor](),
		courses:     collection.NewOrderedMap[*models.Course](),
	}
}

// AddStudent registers a new student.
func (r *Registry) AddStudent(student models.Student) error {
	if r.students.Has(student.ID) {
		return appErrors.Clonef(appErrors.ErrAlreadyExists,
			"student with ID %s already exists in this management system", student.ID)
	}
	r.students.Set(student.ID, student)
	return nil
}

// UpdateStudent replaces an existing student.
func (r *Registry) UpdateStudent(student models.Student) error {
	if !r.students.Has(student.ID) {
		return studentNotFound(student.ID)
	}
	r.students.Set(student.ID, student)
	return nil
}

// RemoveStudent deletes a student and their enrollment in every course.
func (r *Registry) RemoveStudent(studentID string) error {
	if !r.students.Delete(studentID) {
		return studentNotFound(studentID)
	}
	r.courses.Range(func(_ string, course *models.Course) bool {
		if _, enrolled := course.FindEnrolledStudent(studentID); enrolled {
			_ = course.RemoveStudent(studentID)
			r.courses.Set(course.CourseID, course)
		}
		return true
	})
	return nil
}

// FindStudent looks a student up by ID.
func (r *Registry) FindStudent(studentID string) (models.Student, bool) {
	return r.students.Get(studentID)
}

// Students returns all students in registration order.
func (r *Registry) Students() []models.Student {
	return r.students.Values()
}

// AddInstructor registers a new instructor.
func (r *Registry) AddInstructor(instructor models.Instructor) error {
	if r.instructors.Has(instructor.ID) {
		return appErrors.Clonef(appErrors.ErrAlreadyExists,
			"instructor with ID %s already exists in this management system", instructor.ID)
	}
	r.instructors.Set(instructor.ID, instructor)
	return nil
}

// UpdateInstructor replaces an existing instructor, including the copy held in
// every course roster that lists them.
func (r *Registry) UpdateInstructor(instructor models.Instructor) error {
	if !r.instructors.Has(instructor.ID) {
		return instructorNotFound(instructor.ID)
	}
	r.instructors.Set(instructor.ID, instructor)
	r.courses.Range(func(_ string, course *models.Course) bool {
		if _, assigned := course.FindInstructor(instructor.ID); assigned {
			_ = course.UpdateInstructor(instructor.Clone())
			r.courses.Set(course.CourseID, course)
		}
		return true
	})
	return nil
}

// RemoveInstructor deletes an instructor and removes them from every roster.
func (r *Registry) RemoveInstructor(instructorID string) error {
	if !r.instructors.Delete(instructorID) {
		return instructorNotFound(instructorID)
	}
	r.courses.Range(func(_ string, course *models.Course) bool {
		if _, assigned := course.FindInstructor(instructorID); assigned {
			_ = course.RemoveInstructor(instructorID)
			r.courses.Set(course.CourseID, course)
		}
		return true
	})
	return nil
}

// FindInstructor looks an instructor up by ID.
func (r *Registry) FindInstructor(instructorID string) (models.Instructor, bool) {
	return r.instructors.Get(instructorID)
}

// Instructors returns all instructors in registration order.
func (r *Registry) Instructors() []models.Instructor {
	return r.instructors.Values()
}

// AddCourse registers a new course.
func (r *Registry) AddCourse(course *models.Course) error {
	if r.courses.Has(course.CourseID) {
		return appErrors.Clonef(appErrors.ErrAlreadyExists,
			"course with ID %s already exists in this management system", course.CourseID)
	}
	course.Normalize()
	r.courses.Set(course.CourseID, course)
	return nil
}

// UpdateCourse replaces an existing course.
func (r *Registry) UpdateCourse(course *models.Course) error {
	if !r.courses.Has(course.CourseID) {
		return courseNotFound(course.CourseID)
	}
	course.Normalize()
	r.courses.Set(course.CourseID, course)
	return nil
}

// RemoveCourse deletes a course. Its roster goes with it; nothing else is
// touched, so enrollments copied out earlier keep the old course ID.
func (r *Registry) RemoveCourse(courseID string) error {
	if !r.courses.Delete(courseID) {
		return courseNotFound(courseID)
	}
	return nil
}

// FindCourse looks a course up by ID.
func (r *Registry) FindCourse(courseID string) (*models.Course, bool) {
	return r.courses.Get(courseID)
}

// Courses returns all courses in registration order.
func (r *Registry) Courses() []*models.Course {
	return r.courses.Values()
}

// EnrollStudent creates an ungraded enrollment of the student in the course.
func (r *Registry) EnrollStudent(studentID, courseID string) (models.Enrollment, error) {
	if _, ok := r.FindStudent(studentID); !ok {
		return models.Enrollment{}, appErrors.Clonef(appErrors.ErrNotFound,
			"student with ID %s does not exist and can not be enrolled", studentID)
	}
	course, ok := r.FindCourse(courseID)
	if !ok {
		return models.Enrollment{}, appErrors.Clonef(appErrors.ErrNotFound,
			"course with ID %s does not exist; student with ID %s was not enrolled", courseID, studentID)
	}

	enrollment := models.NewEnrollment(studentID, courseID)
	if err := course.AddStudent(enrollment); err != nil {
		return models.Enrollment{}, err
	}
	if err := r.UpdateCourse(course); err != nil {
		return models.Enrollment{}, err
	}
	return enrollment, nil
}

// GradeStudent assigns grade to the student's enrollment in the course.
func (r *Registry) GradeStudent(studentID, courseID string, grade models.Grade) (models.Enrollment, error) {
	course, err := r.lookupEnrollmentPair(studentID, courseID)
	if err != nil {
		return models.Enrollment{}, err
	}

	enrollment, ok := course.FindEnrolledStudent(studentID)
	if !ok {
		return models.Enrollment{}, appErrors.Clonef(appErrors.ErrNotEnrolled,
			"student with ID %s is not enrolled in course %s; grade was not assigned", studentID, courseID)
	}
	enrollment.AssignGrade(grade)
	if err := course.UpdateStudent(enrollment); err != nil {
		return models.Enrollment{}, err
	}
	if err := r.UpdateCourse(course); err != nil {
		return models.Enrollment{}, err
	}
	return enrollment, nil
}

// WithdrawStudent removes the student's enrollment from the course.
func (r *Registry) WithdrawStudent(studentID, courseID string) error {
	course, err := r.lookupEnrollmentPair(studentID, courseID)
	if err != nil {
		return err
	}
	if err := course.RemoveStudent(studentID); err != nil {
		return err
	}
	return r.UpdateCourse(course)
}

// AssignInstructor adds the instructor to the course roster. An instructor
// teaches at most one course, so a previous assignment is released first.
func (r *Registry) AssignInstructor(instructorID, courseID string) (models.Instructor, error) {
	instructor, ok := r.FindInstructor(instructorID)
	if !ok {
		return models.Instructor{}, instructorNotFound(instructorID)
	}
	course, ok := r.FindCourse(courseID)
	if !ok {
		return models.Instructor{}, courseNotFound(courseID)
	}
	if _, assigned := course.FindInstructor(instructorID); assigned {
		return models.Instructor{}, appErrors.Clonef(appErrors.ErrDuplicateInstructor,
			"instructor with ID %s is already an instructor for course %s", instructorID, courseID)
	}

	if previous, ok := r.FindCourse(instructor.AssignedCourse()); ok {
		_ = previous.RemoveInstructor(instructorID)
	}
	instructor.SetCourse(courseID)
	if err := course.AddInstructor(instructor.Clone()); err != nil {
		return models.Instructor{}, err
	}
	r.instructors.Set(instructor.ID, instructor)
	return instructor, nil
}

// UnassignInstructor removes the instructor from the course roster and clears
// the instructor's course association.
func (r *Registry) UnassignInstructor(instructorID, courseID string) error {
	instructor, ok := r.FindInstructor(instructorID)
	if !ok {
		return instructorNotFound(instructorID)
	}
	course, ok := r.FindCourse(courseID)
	if !ok {
		return courseNotFound(courseID)
	}
	if err := course.RemoveInstructor(instructorID); err != nil {
		return err
	}
	if instructor.AssignedCourse() == courseID {
		instructor.SetCourse("")
		r.instructors.Set(instructor.ID, instructor)
	}
	return nil
}

// FindCourseEnrollments returns the course roster keyed by student ID.
func (r *Registry) FindCourseEnrollments(courseID string) (*collection.OrderedMap[models.Enrollment], error) {
	course, ok := r.FindCourse(courseID)
	if !ok {
		return nil, courseNotFound(courseID)
	}
	return course.EnrolledStudents, nil
}

// FindCourseEnrolledStudents returns the IDs of students enrolled in the
// course, in enrollment order.
func (r *Registry) FindCourseEnrolledStudents(courseID string) ([]string, error) {
	enrollments, err := r.FindCourseEnrollments(courseID)
	if err != nil {
		return nil, err
	}
	return enrollments.Keys(), nil
}

// FindStudentEnrollments collects the student's enrollments across all
// courses, grouped under the student ID.
func (r *Registry) FindStudentEnrollments(studentID string) (map[string][]models.Enrollment, error) {
	if _, ok := r.FindStudent(studentID); !ok {
		return nil, studentNotFound(studentID)
	}
	enrollments := make([]models.Enrollment, 0)
	r.courses.Range(func(_ string, course *models.Course) bool {
		if enrollment, ok := course.FindEnrolledStudent(studentID); ok {
			enrollments = append(enrollments, enrollment)
		}
		return true
	})
	return map[string][]models.Enrollment{studentID: enrollments}, nil
}

// FindEnrolledStudentCourses returns the IDs of courses the student is
// enrolled in, in course order.
func (r *Registry) FindEnrolledStudentCourses(studentID string) ([]string, error) {
	grouped, err := r.FindStudentEnrollments(studentID)
	if err != nil {
		return nil, err
	}
	enrollments := grouped[studentID]
	courseIDs := make([]string, 0, len(enrollments))
	for _, enrollment := range enrollments {
		courseIDs = append(courseIDs, enrollment.CourseID)
	}
	return courseIDs, nil
}

func (r *Registry) lookupEnrollmentPair(studentID, courseID string) (*models.Course, error) {
	if _, ok := r.FindStudent(studentID); !ok {
		return nil, studentNotFound(studentID)
	}
	course, ok := r.FindCourse(courseID)
	if !ok {
		return nil, courseNotFound(courseID)
	}
	return course, nil
}

func studentNotFound(id string) error {
	return appErrors.Clonef(appErrors.ErrNotFound, "student with ID %s does not exist", id)
}

func instructorNotFound(id string) error {
	return appErrors.Clonef(appErrors.ErrNotFound, "instructor with ID %s does not exist", id)
}

func courseNotFound(id string) error {
	return appErrors.Clonef(appErrors.ErrNotFound, "course with ID %s does not exist", id)
}
