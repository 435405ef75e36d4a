package registry

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sms-api/internal/models"
	appErrors "github.com/noah-isme/sms-api/pkg/errors"
)

func seededRegistry(t *testing.T) (*Registry, models.Student, models.Student, *models.Course, *models.Course) {
	t.Helper()
	reg := New()
	ada := models.NewStudent("", "Ada", "Lovelace", models.MajorComputerScience)
	alan := models.NewStudent("", "Alan", "Turing", models.MajorMathematics)
	cs101 := models.NewCourse(models.IntroToProgramming)
	math101 := models.NewCourse(models.LinearAlgebra)

	require.NoError(t, reg.AddStudent(ada))
	require.NoError(t, reg.AddStudent(alan))
	require.NoError(t, reg.AddCourse(cs101))
	require.NoError(t, reg.AddCourse(math101))
	return reg, ada, alan, cs101, math101
}

func TestAddAndFindStudent(t *testing.T) {
	reg := New()
	student := models.NewStudent("", "Grace", "Hopper", models.MajorMathematics)

	require.NoError(t, reg.AddStudent(student))
	found, ok := reg.FindStudent(student.ID)
	require.True(t, ok)
	assert.Equal(t, student, found)

	err := reg.AddStudent(student)
	assert.True(t, errors.Is(err, appErrors.ErrAlreadyExists))
	assert.Len(t, reg.Students(), 1)
}

func TestUpdateStudent(t *testing.T) {
	reg, ada, _, _, _ := seededRegistry(t)

	ada.SetLastName("King")
	ada.Major = models.MajorMathematics
	require.NoError(t, reg.UpdateStudent(ada))
	found, _ := reg.FindStudent(ada.ID)
	assert.Equal(t, "Ada King", found.Name)
	assert.Equal(t, models.MajorMathematics, found.Major)

	err := reg.UpdateStudent(models.NewStudent("STU-missing", "No", "Body", models.MajorLaw))
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}

func TestRemoveStudent(t *testing.T) {
	reg, ada, _, _, _ := seededRegistry(t)

	require.NoError(t, reg.RemoveStudent(ada.ID))
	_, ok := reg.FindStudent(ada.ID)
	assert.False(t, ok)

	err := reg.RemoveStudent(ada.ID)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}

func TestRemoveStudentCascadesEnrollments(t *testing.T) {
	reg, ada, alan, cs101, math101 := seededRegistry(t)
	for _, courseID := range []string{cs101.CourseID, math101.CourseID} {
		_, err := reg.EnrollStudent(ada.ID, courseID)
		require.NoError(t, err)
		_, err = reg.EnrollStudent(alan.ID, courseID)
		require.NoError(t, err)
	}

	require.NoError(t, reg.RemoveStudent(ada.ID))

	for _, courseID := range []string{cs101.CourseID, math101.CourseID} {
		students, err := reg.FindCourseEnrolledStudents(courseID)
		require.NoError(t, err)
		assert.Equal(t, []string{alan.ID}, students)
	}
	courses, err := reg.FindEnrolledStudentCourses(alan.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{cs101.CourseID, math101.CourseID}, courses)
}

func TestEnrollStudent(t *testing.T) {
	reg, ada, _, cs101, _ := seededRegistry(t)

	enrollment, err := reg.EnrollStudent(ada.ID, cs101.CourseID)
	require.NoError(t, err)
	assert.Equal(t, models.GradeNone, enrollment.Grade)
	assert.Equal(t, cs101.CourseID, enrollment.CourseID)

	_, err = reg.EnrollStudent(ada.ID, cs101.CourseID)
	assert.True(t, errors.Is(err, appErrors.ErrDuplicateEnrollment))

	_, err = reg.EnrollStudent("STU-missing", cs101.CourseID)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))

	_, err = reg.EnrollStudent(ada.ID, "CS999")
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}

func TestGradeStudent(t *testing.T) {
	reg, ada, alan, cs101, _ := seededRegistry(t)

	_, err := reg.GradeStudent(ada.ID, cs101.CourseID, models.GradeA)
	assert.True(t, errors.Is(err, appErrors.ErrNotEnrolled))

	_, err = reg.EnrollStudent(ada.ID, cs101.CourseID)
	require.NoError(t, err)
	_, err = reg.EnrollStudent(alan.ID, cs101.CourseID)
	require.NoError(t, err)

	graded, err := reg.GradeStudent(ada.ID, cs101.CourseID, models.GradeBMinus)
	require.NoError(t, err)
	assert.Equal(t, models.GradeBMinus, graded.Grade)

	enrollments, err := reg.FindCourseEnrollments(cs101.CourseID)
	require.NoError(t, err)
	adaEnrollment, _ := enrollments.Get(ada.ID)
	alanEnrollment, _ := enrollments.Get(alan.ID)
	assert.Equal(t, models.GradeBMinus, adaEnrollment.Grade)
	assert.Equal(t, models.GradeNone, alanEnrollment.Grade)

	_, err = reg.GradeStudent("STU-missing", cs101.CourseID, models.GradeA)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
	_, err = reg.GradeStudent(ada.ID, "CS999", models.GradeA)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}

func TestWithdrawStudent(t *testing.T) {
	reg, ada, _, cs101, _ := seededRegistry(t)
	_, err := reg.EnrollStudent(ada.ID, cs101.CourseID)
	require.NoError(t, err)

	require.NoError(t, reg.WithdrawStudent(ada.ID, cs101.CourseID))
	err = reg.WithdrawStudent(ada.ID, cs101.CourseID)
	assert.True(t, errors.Is(err, appErrors.ErrNotEnrolled))

	courses, err := reg.FindEnrolledStudentCourses(ada.ID)
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestFindStudentEnrollmentsGroupsByStudent(t *testing.T) {
	reg, ada, _, cs101, math101 := seededRegistry(t)
	_, err := reg.EnrollStudent(ada.ID, math101.CourseID)
	require.NoError(t, err)
	_, err = reg.EnrollStudent(ada.ID, cs101.CourseID)
	require.NoError(t, err)

	grouped, err := reg.FindStudentEnrollments(ada.ID)
	require.NoError(t, err)
	require.Len(t, grouped, 1)
	require.Len(t, grouped[ada.ID], 2)
	assert.Equal(t, cs101.CourseID, grouped[ada.ID][0].CourseID, "course registration order")

	_, err = reg.FindStudentEnrollments("STU-missing")
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
	_, err = reg.FindEnrolledStudentCourses("STU-missing")
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
	_, err = reg.FindCourseEnrollments("CS999")
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
	_, err = reg.FindCourseEnrolledStudents("CS999")
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}

func TestCourseCRUD(t *testing.T) {
	reg := New()
	course := models.NewCourse(models.Algorithms)

	require.NoError(t, reg.AddCourse(course))
	err := reg.AddCourse(models.NewCourse(models.Algorithms))
	assert.True(t, errors.Is(err, appErrors.ErrAlreadyExists))

	replacement := models.NewCourse(models.Algorithms)
	require.NoError(t, reg.UpdateCourse(replacement))
	found, ok := reg.FindCourse(models.Algorithms.CourseID)
	require.True(t, ok)
	assert.Same(t, replacement, found)

	err = reg.UpdateCourse(models.NewCourse(models.Anatomy))
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))

	require.NoError(t, reg.RemoveCourse(models.Algorithms.CourseID))
	err = reg.RemoveCourse(models.Algorithms.CourseID)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
	assert.Empty(t, reg.Courses())
}

func TestRemoveCourseDoesNotCascade(t *testing.T) {
	reg, ada, _, cs101, _ := seededRegistry(t)
	enrollment, err := reg.EnrollStudent(ada.ID, cs101.CourseID)
	require.NoError(t, err)

	require.NoError(t, reg.RemoveCourse(cs101.CourseID))

	_, ok := reg.FindStudent(ada.ID)
	assert.True(t, ok)
	assert.Equal(t, cs101.CourseID, enrollment.CourseID)
	courses, err := reg.FindEnrolledStudentCourses(ada.ID)
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestInstructorLifecycle(t *testing.T) {
	reg, _, _, cs101, math101 := seededRegistry(t)
	guido := models.NewInstructor("", "Guido", "Rossum", models.DepartmentComputerScience)

	require.NoError(t, reg.AddInstructor(guido))
	err := reg.AddInstructor(guido)
	assert.True(t, errors.Is(err, appErrors.ErrAlreadyExists))

	assigned, err := reg.AssignInstructor(guido.ID, cs101.CourseID)
	require.NoError(t, err)
	assert.Equal(t, cs101.CourseID, assigned.AssignedCourse())

	_, err = reg.AssignInstructor(guido.ID, cs101.CourseID)
	assert.True(t, errors.Is(err, appErrors.ErrDuplicateInstructor))

	assigned.SetNames("Guido", "van Rossum")
	require.NoError(t, reg.UpdateInstructor(assigned))
	inRoster, ok := cs101.FindInstructor(guido.ID)
	require.True(t, ok)
	assert.Equal(t, "Guido van Rossum", inRoster.Name)

	_, err = reg.AssignInstructor(guido.ID, math101.CourseID)
	require.NoError(t, err)
	_, stillOnOld := cs101.FindInstructor(guido.ID)
	assert.False(t, stillOnOld)
	_, onNew := math101.FindInstructor(guido.ID)
	assert.True(t, onNew)

	require.NoError(t, reg.RemoveInstructor(guido.ID))
	_, onNew = math101.FindInstructor(guido.ID)
	assert.False(t, onNew)

	err = reg.RemoveInstructor(guido.ID)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
	err = reg.UpdateInstructor(guido)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}

func TestUnassignInstructor(t *testing.T) {
	reg, _, _, cs101, math101 := seededRegistry(t)
	barbara := models.NewInstructor("INS-1", "Barbara", "Liskov", models.DepartmentComputerScience)
	require.NoError(t, reg.AddInstructor(barbara))
	_, err := reg.AssignInstructor(barbara.ID, cs101.CourseID)
	require.NoError(t, err)

	err = reg.UnassignInstructor(barbara.ID, math101.CourseID)
	assert.True(t, errors.Is(err, appErrors.ErrInstructorNotAssigned))

	require.NoError(t, reg.UnassignInstructor(barbara.ID, cs101.CourseID))
	found, _ := reg.FindInstructor(barbara.ID)
	assert.Nil(t, found.CourseID)

	err = reg.UnassignInstructor("INS-missing", cs101.CourseID)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
	err = reg.UnassignInstructor(barbara.ID, "CS999")
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}

func TestIndexesStayConsistent(t *testing.T) {
	reg := New()
	students := make([]models.Student, 0, 6)
	for i := 0; i < 6; i++ {
		s := models.NewStudent("", fmt.Sprintf("First%d", i), "Last", models.MajorPhysics)
		require.NoError(t, reg.AddStudent(s))
		students = append(students, s)
	}
	catalog := models.CourseCatalog()[:4]
	for _, entry := range catalog {
		require.NoError(t, reg.AddCourse(models.NewCourse(entry)))
	}

	for i, s := range students {
		for j, entry := range catalog {
			if (i+j)%2 == 0 {
				_, err := reg.EnrollStudent(s.ID, entry.CourseID)
				require.NoError(t, err)
			}
		}
	}
	require.NoError(t, reg.WithdrawStudent(students[0].ID, catalog[0].CourseID))
	require.NoError(t, reg.RemoveStudent(students[3].ID))

	for _, s := range students {
		byStudent, err := reg.FindEnrolledStudentCourses(s.ID)
		if s.ID == students[3].ID {
			assert.True(t, errors.Is(err, appErrors.ErrNotFound))
			continue
		}
		require.NoError(t, err)

		var byCourse []string
		for _, entry := range catalog {
			ids, err := reg.FindCourseEnrolledStudents(entry.CourseID)
			require.NoError(t, err)
			for _, id := range ids {
				if id == s.ID {
					byCourse = append(byCourse, entry.CourseID)
				}
			}
		}
		assert.ElementsMatch(t, byCourse, byStudent, "student %s", s.ID)
	}
}

func TestEndToEndScenario(t *testing.T) {
	reg := New()
	ada := models.NewStudent("", "Ada", "Lovelace", models.MajorComputerScience)
	require.NoError(t, reg.AddStudent(ada))
	require.NoError(t, reg.AddCourse(models.NewCourse(models.IntroToProgramming)))

	_, err := reg.EnrollStudent(ada.ID, "CS101")
	require.NoError(t, err)
	_, err = reg.GradeStudent(ada.ID, "CS101", models.GradeAPlus)
	require.NoError(t, err)

	students, err := reg.FindCourseEnrolledStudents("CS101")
	require.NoError(t, err)
	assert.Equal(t, []string{ada.ID}, students)

	courses, err := reg.FindEnrolledStudentCourses(ada.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"CS101"}, courses)
}
