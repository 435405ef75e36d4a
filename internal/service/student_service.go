package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/sms-api/internal/dto"
	"github.com/noah-isme/sms-api/internal/models"
	"github.com/noah-isme/sms-api/pkg/cache"
)

// StudentRepository persists students.
type StudentRepository interface {
	List(ctx context.Context) ([]models.Student, error)
	FindByID(ctx context.Context, id string) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id string) error
}

// StudentService handles student use-cases.
type StudentService struct {
	repo      StudentRepository
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo StudentRepository, cacheSvc *CacheService, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = dto.NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, cache: cacheSvc, metrics: metrics, validator: validate, logger: logger}
}

// List returns every student in registration order. The boolean reports
// whether the result came from cache.
func (s *StudentService) List(ctx context.Context) ([]models.Student, bool, error) {
	students, hit, err := remember(ctx, s.cache, cache.Key(cache.NamespaceStudents, "list"), 0, func() ([]models.Student, error) {
		return s.repo.List(ctx)
	})
	if err != nil {
		return nil, false, storeError(err, "failed to list students")
	}
	return students, hit, nil
}

// Get returns a single student.
func (s *StudentService) Get(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "failed to load student")
	}
	return student, nil
}

// Create registers a new student, generating an ID when none is supplied.
func (s *StudentService) Create(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, error) {
	if err := validate(s.validator, req, "invalid student payload"); err != nil {
		return nil, err
	}
	student := models.NewStudent(req.ID, req.FirstName, req.LastName, req.Major)
	if err := s.repo.Create(ctx, &student); err != nil {
		return nil, storeError(err, "failed to create student")
	}
	s.cache.Invalidate(ctx, cache.NamespaceStudents)
	s.metrics.RecordMutation(entityStudent, ActionCreate)
	s.logger.Info("student created", zap.String("student_id", student.ID))
	return &student, nil
}

// Update replaces the student's names and major.
func (s *StudentService) Update(ctx context.Context, id string, req dto.UpdateStudentRequest) (*models.Student, error) {
	if err := validate(s.validator, req, "invalid student payload"); err != nil {
		return nil, err
	}
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "failed to load student")
	}
	student.SetNames(req.FirstName, req.LastName)
	student.Major = req.Major
	if err := s.repo.Update(ctx, student); err != nil {
		return nil, storeError(err, "failed to update student")
	}
	s.cache.Invalidate(ctx, cache.NamespaceStudents)
	s.metrics.RecordMutation(entityStudent, ActionUpdate)
	return student, nil
}

// Delete removes the student together with every enrollment they hold and
// returns the removed record.
func (s *StudentService) Delete(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "failed to load student")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, storeError(err, "failed to delete student")
	}
	s.cache.Invalidate(ctx, cache.NamespaceStudents, cache.NamespaceCourses, cache.NamespaceEnrollments)
	s.metrics.RecordMutation(entityStudent, ActionDelete)
	s.logger.Info("student removed", zap.String("student_id", id))
	return student, nil
}
