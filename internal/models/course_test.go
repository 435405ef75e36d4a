package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/sms-api/pkg/errors"
)

func TestLookupCourse(t *testing.T) {
	entry, ok := LookupCourse("cs101")
	require.True(t, ok)
	assert.Equal(t, IntroToProgramming, entry)

	entry, ok = LookupCourse("DATA_STRUCTURES")
	require.True(t, ok)
	assert.Equal(t, "CS102", entry.CourseID)

	_, ok = LookupCourse("CS999")
	assert.False(t, ok)
	assert.Len(t, CourseCatalog(), 22)
}

func TestNewCourseFromCatalog(t *testing.T) {
	course, err := NewCourseFromCatalog("CS101")
	require.NoError(t, err)
	assert.Equal(t, "CS101", course.CourseID)
	assert.Equal(t, "Introduction to Programming", course.CourseName)

	_, err = NewCourseFromCatalog("nope")
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestCourseStudentRoster(t *testing.T) {
	course := NewCourse(IntroToProgramming)

	require.NoError(t, course.AddStudent(NewEnrollment("STU-1", "CS101")))
	require.NoError(t, course.AddStudent(NewEnrollment("STU-2", "CS101")))

	err := course.AddStudent(NewEnrollment("STU-1", "CS101"))
	assert.True(t, errors.Is(err, appErrors.ErrDuplicateEnrollment))

	graded := NewEnrollment("STU-2", "CS101")
	graded.AssignGrade(GradeB)
	require.NoError(t, course.UpdateStudent(graded))
	found, ok := course.FindEnrolledStudent("STU-2")
	require.True(t, ok)
	assert.Equal(t, GradeB, found.Grade)

	err = course.UpdateStudent(NewEnrollment("STU-9", "CS101"))
	assert.True(t, errors.Is(err, appErrors.ErrNotEnrolled))

	assert.Equal(t, []string{"STU-1", "STU-2"}, course.EnrolledStudentIDs())

	require.NoError(t, course.RemoveStudent("STU-1"))
	err = course.RemoveStudent("STU-1")
	assert.True(t, errors.Is(err, appErrors.ErrNotEnrolled))

	_, ok = course.FindEnrolledStudent("STU-1")
	assert.False(t, ok)
}

func TestCourseInstructorRoster(t *testing.T) {
	course := NewCourse(Algorithms)
	instructor := NewInstructor("INS-1", "Donald", "Knuth", DepartmentComputerScience)

	require.NoError(t, course.AddInstructor(instructor))
	err := course.AddInstructor(instructor)
	assert.True(t, errors.Is(err, appErrors.ErrDuplicateInstructor))
	assert.False(t, errors.Is(err, appErrors.ErrInstructorNotAssigned))

	instructor.SetNames("Don", "Knuth")
	require.NoError(t, course.UpdateInstructor(instructor))
	found, ok := course.FindInstructor("INS-1")
	require.True(t, ok)
	assert.Equal(t, "Don Knuth", found.Name)

	err = course.UpdateInstructor(NewInstructor("INS-2", "Edsger", "Dijkstra", DepartmentComputerScience))
	assert.True(t, errors.Is(err, appErrors.ErrInstructorNotAssigned))

	require.NoError(t, course.RemoveInstructor("INS-1"))
	err = course.RemoveInstructor("INS-1")
	assert.True(t, errors.Is(err, appErrors.ErrInstructorNotAssigned))
}

func TestCourseCloneIsDeep(t *testing.T) {
	course := NewCourse(Calculus)
	require.NoError(t, course.AddStudent(NewEnrollment("STU-1", "MATH102")))

	clone := course.Clone()
	require.NoError(t, clone.AddStudent(NewEnrollment("STU-2", "MATH102")))
	e, _ := clone.FindEnrolledStudent("STU-1")
	e.AssignGrade(GradeA)
	require.NoError(t, clone.UpdateStudent(e))

	assert.Equal(t, 1, course.EnrolledStudents.Len())
	original, _ := course.FindEnrolledStudent("STU-1")
	assert.Equal(t, GradeNone, original.Grade)
}

func TestCourseJSONKeepsRosterOrder(t *testing.T) {
	course := NewCourse(IntroToProgramming)
	require.NoError(t, course.AddStudent(NewEnrollment("STU-b", "CS101")))
	require.NoError(t, course.AddStudent(NewEnrollment("STU-a", "CS101")))

	raw, err := json.Marshal(course)
	require.NoError(t, err)

	var decoded Course
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, []string{"STU-b", "STU-a"}, decoded.EnrolledStudentIDs())
	assert.Equal(t, "Introduction to Programming", decoded.CourseName)
}
