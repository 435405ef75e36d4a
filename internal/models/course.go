package models

import (
	"fmt"

	"github.com/noah-isme/sms-api/pkg/collection"
	appErrors "github.com/noah-isme/sms-api/pkg/errors"
)

// Course is a catalog course together with its roster: enrollments keyed by
// student ID and instructors keyed by instructor ID, both in insertion order.
type Course struct {
	CourseID         string                             `db:"id" json:"course_id"`
	CourseName       string                             `db:"course_name" json:"course_name"`
	EnrolledStudents *collection.OrderedMap[Enrollment] `db:"-" json:"enrolled_students"`
	Instructors      *collection.OrderedMap[Instructor] `db:"-" json:"instructors"`
}

// NewCourse builds an empty course from a catalog entry.
func NewCourse(entry CourseNameID) *Course {
	return &Course{
		CourseID:         entry.CourseID,
		CourseName:       entry.CourseName,
		EnrolledStudents: collection.NewOrderedMap[Enrollment](),
		Instructors:      collection.NewOrderedMap[Instructor](),
	}
}

// NewCourseFromCatalog resolves keyOrID against the catalog.
func NewCourseFromCatalog(keyOrID string) (*Course, error) {
	entry, ok := LookupCourse(keyOrID)
	if !ok {
		return nil, appErrors.Clonef(appErrors.ErrValidation, "course %q is not in the catalog", keyOrID)
	}
	return NewCourse(entry), nil
}

// Normalize makes sure the roster maps are allocated.
func (c *Course) Normalize() {
	if c.EnrolledStudents == nil {
		c.EnrolledStudents = collection.NewOrderedMap[Enrollment]()
	}
	if c.Instructors == nil {
		c.Instructors = collection.NewOrderedMap[Instructor]()
	}
}

// Clone returns a deep copy so callers cannot mutate the original roster.
func (c *Course) Clone() *Course {
	if c == nil {
		return nil
	}
	out := &Course{
		CourseID:         c.CourseID,
		CourseName:       c.CourseName,
		EnrolledStudents: c.EnrolledStudents.Clone(),
		Instructors:      collection.NewOrderedMap[Instructor](),
	}
	c.Instructors.Range(func(id string, instructor Instructor) bool {
		out.Instructors.Set(id, instructor.Clone())
		return true
	})
	return out
}

// AddStudent inserts a new enrollment keyed by its student ID.
func (c *Course) AddStudent(enrollment Enrollment) error {
	c.Normalize()
	if c.EnrolledStudents.Has(enrollment.StudentID) {
		return appErrors.Clonef(appErrors.ErrDuplicateEnrollment,
			"student with ID %s is already enrolled in course %s", enrollment.StudentID, c.CourseID)
	}
	c.EnrolledStudents.Set(enrollment.StudentID, enrollment)
	return nil
}

// UpdateStudent replaces an existing enrollment as a whole.
func (c *Course) UpdateStudent(enrollment Enrollment) error {
	c.Normalize()
	if !c.EnrolledStudents.Has(enrollment.StudentID) {
		return c.notEnrolled(enrollment.StudentID)
	}
	c.EnrolledStudents.Set(enrollment.StudentID, enrollment)
	return nil
}

// RemoveStudent drops the enrollment for studentID.
func (c *Course) RemoveStudent(studentID string) error {
	if !c.EnrolledStudents.Delete(studentID) {
		return c.notEnrolled(studentID)
	}
	return nil
}

// FindEnrolledStudent returns the enrollment for studentID, if any.
func (c *Course) FindEnrolledStudent(studentID string) (Enrollment, bool) {
	return c.EnrolledStudents.Get(studentID)
}

// Enrollments returns the roster enrollments in enrollment order.
func (c *Course) Enrollments() []Enrollment {
	return c.EnrolledStudents.Values()
}

// EnrolledStudentIDs returns the enrolled student IDs in enrollment order.
func (c *Course) EnrolledStudentIDs() []string {
	return c.EnrolledStudents.Keys()
}

// AddInstructor inserts a new instructor keyed by ID.
func (c *Course) AddInstructor(instructor Instructor) error {
	c.Normalize()
	if c.Instructors.Has(instructor.ID) {
		return appErrors.Clonef(appErrors.ErrDuplicateInstructor,
			"instructor with ID %s is already an instructor for course %s", instructor.ID, c.CourseID)
	}
	c.Instructors.Set(instructor.ID, instructor)
	return nil
}

// UpdateInstructor replaces an existing instructor as a whole.
func (c *Course) UpdateInstructor(instructor Instructor) error {
	c.Normalize()
	if !c.Instructors.Has(instructor.ID) {
		return c.instructorNotAssigned(instructor.ID)
	}
	c.Instructors.Set(instructor.ID, instructor)
	return nil
}

// RemoveInstructor drops the instructor with instructorID.
func (c *Course) RemoveInstructor(instructorID string) error {
	if !c.Instructors.Delete(instructorID) {
		return c.instructorNotAssigned(instructorID)
	}
	return nil
}

// FindInstructor returns the instructor with instructorID, if assigned.
func (c *Course) FindInstructor(instructorID string) (Instructor, bool) {
	return c.Instructors.Get(instructorID)
}

// InstructorList returns the assigned instructors in assignment order.
func (c *Course) InstructorList() []Instructor {
	return c.Instructors.Values()
}

func (c *Course) notEnrolled(studentID string) error {
	return appErrors.Clonef(appErrors.ErrNotEnrolled,
		"student with ID %s is not enrolled in course %s", studentID, c.CourseID)
}

func (c *Course) instructorNotAssigned(instructorID string) error {
	return appErrors.Clonef(appErrors.ErrInstructorNotAssigned,
		"instructor with ID %s is not an instructor for course %s", instructorID, c.CourseID)
}

func (c *Course) String() string {
	return fmt.Sprintf("Course(course_name: %s, course_id: %s, enrolled_students: %v, total_students_enrolled: %d, instructors: %v, total_instructors: %d)",
		c.CourseName, c.CourseID, c.EnrolledStudentIDs(), c.EnrolledStudents.Len(), c.Instructors.Keys(), c.Instructors.Len())
}
