package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/sms-api/internal/dto"
	"github.com/noah-isme/sms-api/internal/models"
	"github.com/noah-isme/sms-api/pkg/cache"
)

// InstructorRepository persists instructors.
type InstructorRepository interface {
	List(ctx context.Context) ([]models.Instructor, error)
	FindByID(ctx context.Context, id string) (*models.Instructor, error)
	Create(ctx context.Context, instructor *models.Instructor) error
	Update(ctx context.Context, instructor *models.Instructor) error
	Delete(ctx context.Context, id string) error
}

// InstructorService handles instructor use-cases. Course rosters embed
// instructor records, so every write also invalidates cached courses.
type InstructorService struct {
	repo      InstructorRepository
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewInstructorService constructs the instructor service.
func NewInstructorService(repo InstructorRepository, cacheSvc *CacheService, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *InstructorService {
	if validate == nil {
		validate = dto.NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InstructorService{repo: repo, cache: cacheSvc, metrics: metrics, validator: validate, logger: logger}
}

// List returns every instructor in registration order.
func (s *InstructorService) List(ctx context.Context) ([]models.Instructor, bool, error) {
	instructors, hit, err := remember(ctx, s.cache, cache.Key(cache.NamespaceInstructors, "list"), 0, func() ([]models.Instructor, error) {
		return s.repo.List(ctx)
	})
	if err != nil {
		return nil, false, storeError(err, "failed to list instructors")
	}
	return instructors, hit, nil
}

// Get returns a single instructor.
func (s *InstructorService) Get(ctx context.Context, id string) (*models.Instructor, error) {
	instructor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "failed to load instructor")
	}
	return instructor, nil
}

// Create registers a new instructor with no course association.
func (s *InstructorService) Create(ctx context.Context, req dto.CreateInstructorRequest) (*models.Instructor, error) {
	if err := validate(s.validator, req, "invalid instructor payload"); err != nil {
		return nil, err
	}
	instructor := models.NewInstructor(req.ID, req.FirstName, req.LastName, req.Department)
	if err := s.repo.Create(ctx, &instructor); err != nil {
		return nil, storeError(err, "failed to create instructor")
	}
	s.cache.Invalidate(ctx, cache.NamespaceInstructors)
	s.metrics.RecordMutation(entityInstructor, ActionCreate)
	s.logger.Info("instructor created", zap.String("instructor_id", instructor.ID))
	return &instructor, nil
}

// Update replaces the instructor's names and department, keeping the course
// association untouched.
func (s *InstructorService) Update(ctx context.Context, id string, req dto.UpdateInstructorRequest) (*models.Instructor, error) {
	if err := validate(s.validator, req, "invalid instructor payload"); err != nil {
		return nil, err
	}
	instructor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "failed to load instructor")
	}
	instructor.SetNames(req.FirstName, req.LastName)
	instructor.Department = req.Department
	if err := s.repo.Update(ctx, instructor); err != nil {
		return nil, storeError(err, "failed to update instructor")
	}
	s.cache.Invalidate(ctx, cache.NamespaceInstructors, cache.NamespaceCourses)
	s.metrics.RecordMutation(entityInstructor, ActionUpdate)
	return instructor, nil
}

// Delete removes the instructor from the registry and from every course
// roster, returning the removed record.
func (s *InstructorService) Delete(ctx context.Context, id string) (*models.Instructor, error) {
	instructor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "failed to load instructor")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, storeError(err, "failed to delete instructor")
	}
	s.cache.Invalidate(ctx, cache.NamespaceInstructors, cache.NamespaceCourses)
	s.metrics.RecordMutation(entityInstructor, ActionDelete)
	s.logger.Info("instructor removed", zap.String("instructor_id", id))
	return instructor, nil
}
