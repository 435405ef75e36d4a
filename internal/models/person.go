package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Identifier prefixes for synthesized person IDs.
const (
	PrefixPerson     = "PER"
	PrefixStudent    = "STU"
	PrefixInstructor = "INS"
)

const shortIDLength = 8

// AssignID returns id unchanged when supplied, otherwise a new "<prefix>-<8 hex>"
// identifier. Collisions are not checked here; registries reject duplicates on add.
func AssignID(id, prefix string) string {
	if id != "" {
		return id
	}
	if prefix == "" {
		prefix = PrefixPerson
	}
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString()[:shortIDLength])
}

// FullName joins name parts with a single space.
func FullName(firstName, lastName string) string {
	return firstName + " " + lastName
}

// Person holds the identity and display name shared by students and instructors.
type Person struct {
	ID        string `db:"id" json:"id"`
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
	Name      string `db:"name" json:"name"`
}

// NewPerson builds a person with a derived name and an assigned ID.
func NewPerson(id, firstName, lastName, prefix string) Person {
	p := Person{ID: id, FirstName: firstName, LastName: lastName}
	p.Normalize(prefix)
	return p
}

// Normalize re-derives Name and fills ID when it is still empty. An ID that is
// already set is never replaced.
func (p *Person) Normalize(prefix string) {
	p.Name = FullName(p.FirstName, p.LastName)
	p.ID = AssignID(p.ID, prefix)
}

// SetFirstName updates the first name and the derived name.
func (p *Person) SetFirstName(firstName string) {
	p.FirstName = firstName
	p.Name = FullName(p.FirstName, p.LastName)
}

// SetLastName updates the last name and the derived name.
func (p *Person) SetLastName(lastName string) {
	p.LastName = lastName
	p.Name = FullName(p.FirstName, p.LastName)
}

// SetNames updates both name parts and the derived name.
func (p *Person) SetNames(firstName, lastName string) {
	p.FirstName = firstName
	p.LastName = lastName
	p.Name = FullName(p.FirstName, p.LastName)
}

func (p Person) String() string {
	return fmt.Sprintf("Person(name: %s, id: %s)", p.Name, p.ID)
}
