package models

import "fmt"

// Student represents a learner registered in the institution.
type Student struct {
	Person
	Major Major `db:"major" json:"major"`
}

// NewStudent builds a student, generating an STU-prefixed ID when id is empty.
func NewStudent(id, firstName, lastName string, major Major) Student {
	return Student{
		Person: NewPerson(id, firstName, lastName, PrefixStudent),
		Major:  major,
	}
}

// Normalize re-derives the name and assigns a missing ID.
func (s *Student) Normalize() {
	s.Person.Normalize(PrefixStudent)
}

func (s Student) String() string {
	return fmt.Sprintf("Student(name: %s, id: %s, major: %s)", s.Name, s.ID, s.Major)
}
