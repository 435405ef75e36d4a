package models

import "fmt"

// Instructor represents a member of teaching staff. CourseID holds the single
// optional course association.
type Instructor struct {
	Person
	Department Department `db:"department" json:"department"`
	CourseID   *string    `db:"course_id" json:"course_id"`
}

// NewInstructor builds an instructor, generating an INS-prefixed ID when id is empty.
func NewInstructor(id, firstName, lastName string, department Department) Instructor {
	return Instructor{
		Person:     NewPerson(id, firstName, lastName, PrefixInstructor),
		Department: department,
	}
}

// Normalize re-derives the name and assigns a missing ID.
func (i *Instructor) Normalize() {
	i.Person.Normalize(PrefixInstructor)
}

// AssignedCourse returns the associated course ID or an empty string.
func (i Instructor) AssignedCourse() string {
	if i.CourseID == nil {
		return ""
	}
	return *i.CourseID
}

// SetCourse associates the instructor with courseID; an empty value clears it.
func (i *Instructor) SetCourse(courseID string) {
	if courseID == "" {
		i.CourseID = nil
		return
	}
	id := courseID
	i.CourseID = &id
}

// Clone returns a copy that does not share the course association.
func (i Instructor) Clone() Instructor {
	if i.CourseID != nil {
		i.SetCourse(*i.CourseID)
	}
	return i
}

func (i Instructor) String() string {
	return fmt.Sprintf("Instructor(name: %s, id: %s, department: %s)", i.Name, i.ID, i.Department)
}
