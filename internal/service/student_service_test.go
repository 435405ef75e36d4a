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

func TestStudentServiceListIsCachedUntilWrite(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ada := f.addAda(t)

	students, hit, err := f.students.List(ctx)
	require.NoError(t, err)
	assert.False(t, hit)
	require.Len(t, students, 1)
	assert.Equal(t, ada.ID, students[0].ID)

	_, hit, err = f.students.List(ctx)
	require.NoError(t, err)
	assert.True(t, hit)

	_, err = f.students.Create(ctx, dto.CreateStudentRequest{ID: "STU-turing", FirstName: "Alan", LastName: "Turing", Major: models.MajorMathematics})
	require.NoError(t, err)

	students, hit, err = f.students.List(ctx)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Len(t, students, 2)
}

func TestStudentServiceCreate(t *testing.T) {
	f := newFixture(t)
	ada := f.addAda(t)

	assert.Regexp(t, `^STU-[0-9a-f]{8}$`, ada.ID)
	assert.Equal(t, "Ada Lovelace", ada.Name)
	assert.Equal(t, uint64(1), f.metrics.Snapshot().Mutations)
}

func TestStudentServiceCreateValidation(t *testing.T) {
	f := newFixture(t)
	_, err := f.students.Create(context.Background(), dto.CreateStudentRequest{FirstName: "Ada", LastName: "Lovelace", Major: "Alchemy"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestStudentServiceCreateDuplicateID(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	req := dto.CreateStudentRequest{ID: "STU-1", FirstName: "Ada", LastName: "Lovelace", Major: models.MajorComputerScience}
	_, err := f.students.Create(ctx, req)
	require.NoError(t, err)

	_, err = f.students.Create(ctx, req)
	assert.True(t, errors.Is(err, appErrors.ErrAlreadyExists))
}

func TestStudentServiceUpdate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ada := f.addAda(t)

	updated, err := f.students.Update(ctx, ada.ID, dto.UpdateStudentRequest{FirstName: "Augusta", LastName: "King", Major: models.MajorMathematics})
	require.NoError(t, err)
	assert.Equal(t, ada.ID, updated.ID)
	assert.Equal(t, "Augusta King", updated.Name)

	stored, err := f.students.Get(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MajorMathematics, stored.Major)

	_, err = f.students.Update(ctx, "STU-missing", dto.UpdateStudentRequest{FirstName: "A", LastName: "B", Major: models.MajorMathematics})
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}

func TestStudentServiceDeleteCascadesEnrollments(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ada := f.addAda(t)
	f.openCourse(t, "CS101")
	_, err := f.enrollments.Enroll(ctx, dto.EnrollmentRequest{StudentID: ada.ID, CourseID: "CS101"})
	require.NoError(t, err)

	removed, err := f.students.Delete(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, ada.ID, removed.ID)

	students, err := f.enrollments.CourseStudents(ctx, "CS101")
	require.NoError(t, err)
	assert.Empty(t, students)

	_, err = f.students.Delete(ctx, ada.ID)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}

func TestStudentServiceWrapsStoreFailures(t *testing.T) {
	svc := NewStudentService(failingStudentRepo{}, nil, nil, nil, nil)

	_, _, err := svc.List(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrInternal))
	assert.True(t, errors.Is(err, errStoreDown))

	_, err = svc.Get(context.Background(), "STU-1")
	assert.True(t, errors.Is(err, appErrors.ErrInternal))
}
