package dto

import "github.com/noah-isme/sms-api/internal/models"

// CreateCourseRequest opens a course from the catalog. Course accepts either
// the catalog key ("INTRO_TO_PROGRAMMING") or the course ID ("CS101").
type CreateCourseRequest struct {
	Course string `json:"course" validate:"required,catalog_course"`
}

// AssignInstructorRequest adds an instructor to a course roster.
type AssignInstructorRequest struct {
	InstructorID string `json:"instructor_id" validate:"required"`
}

// EnrollmentRequest identifies a single enrollment.
type EnrollmentRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	CourseID  string `json:"course_id" validate:"required"`
}

// GradeRequest assigns a grade to an existing enrollment.
type GradeRequest struct {
	StudentID string       `json:"student_id" validate:"required"`
	CourseID  string       `json:"course_id" validate:"required"`
	Grade     models.Grade `json:"grade" validate:"required,grade"`
}

// EnrollmentQuery mirrors the supported listing filters. Bounds match the
// identifier limits accepted on create.
type EnrollmentQuery struct {
	StudentID string `form:"student_id" binding:"omitempty,max=64,printascii"`
	CourseID  string `form:"course_id" binding:"omitempty,max=64,printascii"`
}

// Filter converts the query into a repository filter.
func (q EnrollmentQuery) Filter() models.EnrollmentFilter {
	return models.EnrollmentFilter{StudentID: q.StudentID, CourseID: q.CourseID}
}

// Catalog lists every closed enumeration the API accepts.
type Catalog struct {
	Courses     []models.CourseNameID `json:"courses"`
	Majors      []models.Major        `json:"majors"`
	Departments []models.Department   `json:"departments"`
	Grades      []models.Grade        `json:"grades"`
}
