package registry

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sms-api/internal/models"
	appErrors "github.com/noah-isme/sms-api/pkg/errors"
)

func TestSynchronizedReturnsCopies(t *testing.T) {
	reg := NewSynchronized(nil)
	ada := models.NewStudent("", "Ada", "Lovelace", models.MajorComputerScience)
	require.NoError(t, reg.AddStudent(ada))
	require.NoError(t, reg.AddCourse(models.NewCourse(models.IntroToProgramming)))
	_, err := reg.EnrollStudent(ada.ID, "CS101")
	require.NoError(t, err)

	course, ok := reg.FindCourse("CS101")
	require.True(t, ok)
	require.NoError(t, course.RemoveStudent(ada.ID))

	students, err := reg.FindCourseEnrolledStudents("CS101")
	require.NoError(t, err)
	assert.Equal(t, []string{ada.ID}, students, "mutating a returned course must not touch the registry")

	enrollments, err := reg.FindCourseEnrollments("CS101")
	require.NoError(t, err)
	enrollments.Delete(ada.ID)
	students, err = reg.FindCourseEnrolledStudents("CS101")
	require.NoError(t, err)
	assert.Len(t, students, 1)
}

func TestSynchronizedInstructorsDoNotShareCourseAssociation(t *testing.T) {
	reg := NewSynchronized(nil)
	guido := models.NewInstructor("INS-1", "Guido", "Rossum", models.DepartmentComputerScience)
	require.NoError(t, reg.AddInstructor(guido))
	require.NoError(t, reg.AddCourse(models.NewCourse(models.IntroToProgramming)))

	assigned, err := reg.AssignInstructor("INS-1", "CS101")
	require.NoError(t, err)
	*assigned.CourseID = "CS900"

	found, ok := reg.FindInstructor("INS-1")
	require.True(t, ok)
	assert.Equal(t, "CS101", found.AssignedCourse())
	*found.CourseID = "CS901"

	all := reg.Instructors()
	require.Len(t, all, 1)
	*all[0].CourseID = "CS902"

	stored, _ := reg.FindInstructor("INS-1")
	assert.Equal(t, "CS101", stored.AssignedCourse())
	course, _ := reg.FindCourse("CS101")
	rostered, ok := course.FindInstructor("INS-1")
	require.True(t, ok)
	assert.Equal(t, "CS101", rostered.AssignedCourse())
}

func TestSynchronizedAddInstructorStoresCopy(t *testing.T) {
	reg := NewSynchronized(nil)
	guido := models.NewInstructor("INS-1", "Guido", "Rossum", models.DepartmentComputerScience)
	guido.SetCourse("CS101")
	require.NoError(t, reg.AddInstructor(guido))

	*guido.CourseID = "CS900"
	stored, _ := reg.FindInstructor("INS-1")
	assert.Equal(t, "CS101", stored.AssignedCourse())
}

func TestSynchronizedUpdateCourseStoresCopy(t *testing.T) {
	reg := NewSynchronized(New())
	course := models.NewCourse(models.Calculus)
	require.NoError(t, reg.AddCourse(course))

	require.NoError(t, course.AddStudent(models.NewEnrollment("STU-x", course.CourseID)))
	stored, _ := reg.FindCourse(course.CourseID)
	assert.Equal(t, 0, stored.EnrolledStudents.Len())

	require.NoError(t, reg.UpdateCourse(course))
	stored, _ = reg.FindCourse(course.CourseID)
	assert.Equal(t, 1, stored.EnrolledStudents.Len())
}

func TestSynchronizedConcurrentEnrollment(t *testing.T) {
	reg := NewSynchronized(nil)
	require.NoError(t, reg.AddCourse(models.NewCourse(models.DataStructures)))

	const n = 50
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		s := models.NewStudent("", "Student", "Concurrent", models.MajorPhysics)
		require.NoError(t, reg.AddStudent(s))
		ids[i] = s.ID
	}

	var wg sync.WaitGroup
	errs := make(chan error, n*2)
	for _, id := range ids {
		for k := 0; k < 2; k++ {
			wg.Add(1)
			go func(studentID string) {
				defer wg.Done()
				if _, err := reg.EnrollStudent(studentID, "CS102"); err != nil {
					errs <- err
				}
			}(id)
		}
	}
	wg.Wait()
	close(errs)

	duplicates := 0
	for err := range errs {
		require.True(t, errors.Is(err, appErrors.ErrDuplicateEnrollment))
		duplicates++
	}
	assert.Equal(t, n, duplicates)

	students, err := reg.FindCourseEnrolledStudents("CS102")
	require.NoError(t, err)
	assert.Len(t, students, n)
}

func TestSynchronizedInstructorOperations(t *testing.T) {
	reg := NewSynchronized(nil)
	require.NoError(t, reg.AddCourse(models.NewCourse(models.MusicTheory)))
	ins := models.NewInstructor("", "Clara", "Schumann", models.DepartmentMusic)
	require.NoError(t, reg.AddInstructor(ins))

	assigned, err := reg.AssignInstructor(ins.ID, "MUSIC101")
	require.NoError(t, err)
	assert.Equal(t, "MUSIC101", assigned.AssignedCourse())

	assigned.SetLastName("Wieck")
	require.NoError(t, reg.UpdateInstructor(assigned))
	course, _ := reg.FindCourse("MUSIC101")
	inRoster, ok := course.FindInstructor(ins.ID)
	require.True(t, ok)
	assert.Equal(t, "Clara Wieck", inRoster.Name)

	require.NoError(t, reg.UnassignInstructor(ins.ID, "MUSIC101"))
	require.NoError(t, reg.RemoveInstructor(ins.ID))
	assert.Empty(t, reg.Instructors())
	assert.Len(t, reg.Courses(), 1)
	require.NoError(t, reg.RemoveCourse("MUSIC101"))
}
