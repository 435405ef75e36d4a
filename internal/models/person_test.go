package models

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var generatedID = regexp.MustCompile(`^(STU|INS|PER)-[0-9a-f]{8}$`)

func TestAssignIDKeepsSuppliedID(t *testing.T) {
	assert.Equal(t, "custom-42", AssignID("custom-42", PrefixStudent))
}

func TestAssignIDGeneratesPrefixedHex(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 500; i++ {
		id := AssignID("", PrefixStudent)
		assert.Regexp(t, `^STU-[0-9a-f]{8}$`, id)
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
	assert.Regexp(t, `^PER-[0-9a-f]{8}$`, AssignID("", ""))
}

func TestNewStudentDerivesNameAndID(t *testing.T) {
	s := NewStudent("", "Ada", "Lovelace", MajorComputerScience)

	assert.Equal(t, "Ada Lovelace", s.Name)
	assert.Regexp(t, generatedID, s.ID)
	assert.Contains(t, s.ID, "STU-")
	assert.Equal(t, "Student(name: Ada Lovelace, id: "+s.ID+", major: Computer Science)", s.String())
}

func TestNewInstructorUsesINSPrefix(t *testing.T) {
	i := NewInstructor("", "Guido", "Rossum", DepartmentComputerScience)

	assert.Regexp(t, `^INS-[0-9a-f]{8}$`, i.ID)
	assert.Equal(t, "Guido Rossum", i.Name)
	assert.Nil(t, i.CourseID)
	assert.Equal(t, "", i.AssignedCourse())
}

func TestNameFollowsNameParts(t *testing.T) {
	s := NewStudent("STU-1", "Ada", "Byron", MajorMathematics)
	id := s.ID

	s.SetLastName("Lovelace")
	assert.Equal(t, "Ada Lovelace", s.Name)

	s.SetFirstName("Augusta")
	assert.Equal(t, "Augusta Lovelace", s.Name)

	s.SetNames("Grace", "Hopper")
	assert.Equal(t, "Grace Hopper", s.Name)
	assert.Equal(t, id, s.ID)
}

func TestNormalizeNeverReplacesID(t *testing.T) {
	s := Student{Person: Person{FirstName: "Alan", LastName: "Turing", Name: "stale"}, Major: MajorMathematics}
	s.Normalize()
	first := s.ID
	s.Normalize()

	assert.Equal(t, first, s.ID)
	assert.Equal(t, "Alan Turing", s.Name)
}

func TestInstructorSetCourse(t *testing.T) {
	i := NewInstructor("INS-1", "Barbara", "Liskov", DepartmentComputerScience)
	i.SetCourse("CS101")
	assert.Equal(t, "CS101", i.AssignedCourse())

	i.SetCourse("")
	assert.Nil(t, i.CourseID)
}
