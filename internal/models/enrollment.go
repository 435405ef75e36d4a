package models

import "fmt"

// Enrollment associates one student with one course and carries the grade.
// Referential integrity is enforced by the registry, not here.
type Enrollment struct {
	StudentID string `db:"student_id" json:"student_id"`
	CourseID  string `db:"course_id" json:"course_id"`
	Grade     Grade  `db:"grade" json:"grade"`
}

// NewEnrollment creates an ungraded enrollment.
func NewEnrollment(studentID, courseID string) Enrollment {
	return Enrollment{StudentID: studentID, CourseID: courseID, Grade: GradeNone}
}

// AssignGrade sets the grade for the enrollment.
func (e *Enrollment) AssignGrade(grade Grade) {
	e.Grade = grade
}

func (e Enrollment) String() string {
	return fmt.Sprintf("Enrollment(student id: %s, course: %s, grade: %s)", e.StudentID, e.CourseID, e.Grade)
}

// EnrollmentFilter narrows enrollment listings.
type EnrollmentFilter struct {
	StudentID string
	CourseID  string
}
