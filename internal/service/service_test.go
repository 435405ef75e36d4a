package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sms-api/internal/dto"
	"github.com/noah-isme/sms-api/internal/models"
	"github.com/noah-isme/sms-api/internal/registry"
	"github.com/noah-isme/sms-api/internal/repository"
)

type fixture struct {
	students    *StudentService
	instructors *InstructorService
	courses     *CourseService
	enrollments *EnrollmentService
	catalog     *CatalogService
	transcripts *TranscriptService
	metrics     *MetricsService
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	reg := registry.NewSynchronized(nil)
	metrics := NewMetricsService()
	cacheSvc := NewCacheService(repository.NewMemoryCacheRepository(), metrics, time.Minute, nil)
	validate := dto.NewValidator()

	studentRepo := repository.NewMemoryStudentRepository(reg)
	enrollmentRepo := repository.NewMemoryEnrollmentRepository(reg)
	return fixture{
		students:    NewStudentService(studentRepo, cacheSvc, metrics, validate, nil),
		instructors: NewInstructorService(repository.NewMemoryInstructorRepository(reg), cacheSvc, metrics, validate, nil),
		courses:     NewCourseService(repository.NewMemoryCourseRepository(reg), cacheSvc, metrics, validate, nil),
		enrollments: NewEnrollmentService(enrollmentRepo, cacheSvc, metrics, validate, nil),
		catalog:     NewCatalogService(cacheSvc, 0),
		transcripts: NewTranscriptService(studentRepo, enrollmentRepo, "Test University", nil),
		metrics:     metrics,
	}
}

func (f fixture) addAda(t *testing.T) *models.Student {
	t.Helper()
	student, err := f.students.Create(context.Background(), dto.CreateStudentRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Major:     models.MajorComputerScience,
	})
	require.NoError(t, err)
	return student
}

func (f fixture) openCourse(t *testing.T, course string) *models.Course {
	t.Helper()
	created, err := f.courses.Create(context.Background(), dto.CreateCourseRequest{Course: course})
	require.NoError(t, err)
	return created
}

var errStoreDown = errors.New("connection refused")

type failingStudentRepo struct{}

func (failingStudentRepo) List(context.Context) ([]models.Student, error) { return nil, errStoreDown }
func (failingStudentRepo) FindByID(context.Context, string) (*models.Student, error) {
	return nil, errStoreDown
}
func (failingStudentRepo) Create(context.Context, *models.Student) error { return errStoreDown }
func (failingStudentRepo) Update(context.Context, *models.Student) error { return errStoreDown }
func (failingStudentRepo) Delete(context.Context, string) error          { return errStoreDown }
