package dto

import "github.com/noah-isme/sms-api/internal/models"

// CreateStudentRequest payload for registering a student. ID is optional;
// an STU-prefixed identifier is generated when it is omitted.
type CreateStudentRequest struct {
	ID        string       `json:"id" validate:"omitempty,max=64,printascii"`
	FirstName string       `json:"first_name" validate:"required,max=100"`
	LastName  string       `json:"last_name" validate:"required,max=100"`
	Major     models.Major `json:"major" validate:"required,major"`
}

// UpdateStudentRequest replaces every mutable student field.
type UpdateStudentRequest struct {
	FirstName string       `json:"first_name" validate:"required,max=100"`
	LastName  string       `json:"last_name" validate:"required,max=100"`
	Major     models.Major `json:"major" validate:"required,major"`
}

// CreateInstructorRequest payload for registering an instructor.
type CreateInstructorRequest struct {
	ID         string            `json:"id" validate:"omitempty,max=64,printascii"`
	FirstName  string            `json:"first_name" validate:"required,max=100"`
	LastName   string            `json:"last_name" validate:"required,max=100"`
	Department models.Department `json:"department" validate:"required,department"`
}

// UpdateInstructorRequest replaces the instructor's names and department.
// The course association is managed through course assignment.
type UpdateInstructorRequest struct {
	FirstName  string            `json:"first_name" validate:"required,max=100"`
	LastName   string            `json:"last_name" validate:"required,max=100"`
	Department models.Department `json:"department" validate:"required,department"`
}
