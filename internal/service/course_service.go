package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/sms-api/internal/dto"
	"github.com/noah-isme/sms-api/internal/models"
	"github.com/noah-isme/sms-api/pkg/cache"
)

// CourseRepository persists courses together with their instructor rosters.
type CourseRepository interface {
	List(ctx context.Context) ([]*models.Course, error)
	FindByID(ctx context.Context, id string) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id string) error
	AssignInstructor(ctx context.Context, instructorID, courseID string) (*models.Instructor, error)
	UnassignInstructor(ctx context.Context, instructorID, courseID string) error
}

// CourseService opens catalog courses and manages their instructor rosters.
type CourseService struct {
	repo      CourseRepository
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService constructs the course service.
func NewCourseService(repo CourseRepository, cacheSvc *CacheService, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = dto.NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{repo: repo, cache: cacheSvc, metrics: metrics, validator: validate, logger: logger}
}

// List returns every course with its roster, in registration order.
func (s *CourseService) List(ctx context.Context) ([]*models.Course, bool, error) {
	courses, hit, err := remember(ctx, s.cache, cache.Key(cache.NamespaceCourses, "list"), 0, func() ([]*models.Course, error) {
		return s.repo.List(ctx)
	})
	if err != nil {
		return nil, false, storeError(err, "failed to list courses")
	}
	for _, course := range courses {
		course.Normalize()
	}
	return courses, hit, nil
}

// Get returns a single course with its roster.
func (s *CourseService) Get(ctx context.Context, id string) (*models.Course, error) {
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "failed to load course")
	}
	return course, nil
}

// Create opens the catalog course named by key or course ID.
func (s *CourseService) Create(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error) {
	if err := validate(s.validator, req, "invalid course payload"); err != nil {
		return nil, err
	}
	course, err := models.NewCourseFromCatalog(req.Course)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, course); err != nil {
		return nil, storeError(err, "failed to create course")
	}
	s.cache.Invalidate(ctx, cache.NamespaceCourses)
	s.metrics.RecordMutation(entityCourse, ActionCreate)
	s.logger.Info("course opened", zap.String("course_id", course.CourseID))
	return course, nil
}

// Delete removes the course and returns it as it was. Instructors keep their
// course association.
func (s *CourseService) Delete(ctx context.Context, id string) (*models.Course, error) {
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "failed to load course")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, storeError(err, "failed to delete course")
	}
	s.cache.Invalidate(ctx, cache.NamespaceCourses, cache.NamespaceEnrollments)
	s.metrics.RecordMutation(entityCourse, ActionDelete)
	s.logger.Info("course removed", zap.String("course_id", id))
	return course, nil
}

// AssignInstructor adds the instructor to the course roster, moving them off
// any course they previously taught.
func (s *CourseService) AssignInstructor(ctx context.Context, courseID string, req dto.AssignInstructorRequest) (*models.Instructor, error) {
	if err := validate(s.validator, req, "invalid instructor assignment"); err != nil {
		return nil, err
	}
	instructor, err := s.repo.AssignInstructor(ctx, req.InstructorID, courseID)
	if err != nil {
		return nil, storeError(err, "failed to assign instructor")
	}
	s.cache.Invalidate(ctx, cache.NamespaceCourses, cache.NamespaceInstructors)
	s.metrics.RecordMutation(entityCourse, ActionAssign)
	return instructor, nil
}

// UnassignInstructor removes the instructor from the course roster.
func (s *CourseService) UnassignInstructor(ctx context.Context, courseID, instructorID string) error {
	if err := s.repo.UnassignInstructor(ctx, instructorID, courseID); err != nil {
		return storeError(err, "failed to unassign instructor")
	}
	s.cache.Invalidate(ctx, cache.NamespaceCourses, cache.NamespaceInstructors)
	s.metrics.RecordMutation(entityCourse, ActionUnassign)
	return nil
}
