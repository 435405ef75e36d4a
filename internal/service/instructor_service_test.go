package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sms-api/internal/dto"
	"github.com/noah-isme/sms-api/internal/models"
	appErrors "github.com/noah-isme/sms-api/pkg/errors"
)

func addGuido(t *testing.T, f fixture) *models.Instructor {
	t.Helper()
	instructor, err := f.instructors.Create(context.Background(), dto.CreateInstructorRequest{
		FirstName:  "Guido",
		LastName:   "Rossum",
		Department: models.DepartmentComputerScience,
	})
	require.NoError(t, err)
	return instructor
}

func TestInstructorServiceCreate(t *testing.T) {
	f := newFixture(t)
	guido := addGuido(t, f)

	assert.Regexp(t, `^INS-[0-9a-f]{8}$`, guido.ID)
	assert.Nil(t, guido.CourseID)

	_, err := f.instructors.Create(context.Background(), dto.CreateInstructorRequest{FirstName: "Guido", LastName: "Rossum"})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestInstructorServiceUpdateKeepsCourseAndRefreshesRoster(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	guido := addGuido(t, f)
	f.openCourse(t, "CS101")
	_, err := f.courses.AssignInstructor(ctx, "CS101", dto.AssignInstructorRequest{InstructorID: guido.ID})
	require.NoError(t, err)

	// warm the course cache so the update has to invalidate it
	_, _, err = f.courses.List(ctx)
	require.NoError(t, err)

	updated, err := f.instructors.Update(ctx, guido.ID, dto.UpdateInstructorRequest{
		FirstName:  "Guido",
		LastName:   "van Rossum",
		Department: models.DepartmentMathematics,
	})
	require.NoError(t, err)
	assert.Equal(t, "CS101", updated.AssignedCourse())
	assert.Equal(t, "Guido van Rossum", updated.Name)

	courses, hit, err := f.courses.List(ctx)
	require.NoError(t, err)
	assert.False(t, hit)
	rostered, ok := courses[0].FindInstructor(guido.ID)
	require.True(t, ok)
	assert.Equal(t, models.DepartmentMathematics, rostered.Department)
}

func TestInstructorServiceDeleteCascadesRosters(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	guido := addGuido(t, f)
	f.openCourse(t, "CS101")
	_, err := f.courses.AssignInstructor(ctx, "CS101", dto.AssignInstructorRequest{InstructorID: guido.ID})
	require.NoError(t, err)

	removed, err := f.instructors.Delete(ctx, guido.ID)
	require.NoError(t, err)
	assert.Equal(t, guido.ID, removed.ID)

	course, err := f.courses.Get(ctx, "CS101")
	require.NoError(t, err)
	assert.Equal(t, 0, course.Instructors.Len())

	_, err = f.instructors.Get(ctx, guido.ID)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}
