package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/sms-api/internal/dto"
	"github.com/noah-isme/sms-api/internal/models"
	"github.com/noah-isme/sms-api/pkg/cache"
)

// EnrollmentRepository persists enrollments and grades.
type EnrollmentRepository interface {
	List(ctx context.Context, filter models.EnrollmentFilter) ([]models.Enrollment, error)
	ListByCourse(ctx context.Context, courseID string) ([]models.Enrollment, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.Enrollment, error)
	Enroll(ctx context.Context, studentID, courseID string) (*models.Enrollment, error)
	Grade(ctx context.Context, studentID, courseID string, grade models.Grade) (*models.Enrollment, error)
	Withdraw(ctx context.Context, studentID, courseID string) error
}

// EnrollmentService manages enrollments and the by-course and by-student
// lookups over them.
type EnrollmentService struct {
	repo      EnrollmentRepository
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEnrollmentService constructs the enrollment service.
func NewEnrollmentService(repo EnrollmentRepository, cacheSvc *CacheService, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *EnrollmentService {
	if validate == nil {
		validate = dto.NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{repo: repo, cache: cacheSvc, metrics: metrics, validator: validate, logger: logger}
}

// List returns enrollments matching the filter in course order.
func (s *EnrollmentService) List(ctx context.Context, filter models.EnrollmentFilter) ([]models.Enrollment, bool, error) {
	key := cache.Key(cache.NamespaceEnrollments, "list", filter.StudentID, filter.CourseID)
	enrollments, hit, err := remember(ctx, s.cache, key, 0, func() ([]models.Enrollment, error) {
		return s.repo.List(ctx, filter)
	})
	if err != nil {
		return nil, false, storeError(err, "failed to list enrollments")
	}
	return enrollments, hit, nil
}

// Enroll creates an ungraded enrollment.
func (s *EnrollmentService) Enroll(ctx context.Context, req dto.EnrollmentRequest) (*models.Enrollment, error) {
	if err := validate(s.validator, req, "invalid enrollment payload"); err != nil {
		return nil, err
	}
	enrollment, err := s.repo.Enroll(ctx, req.StudentID, req.CourseID)
	if err != nil {
		return nil, storeError(err, "failed to enroll student")
	}
	s.invalidate(ctx)
	s.metrics.RecordMutation(entityEnrollment, ActionEnroll)
	s.logger.Info("student enrolled", zap.String("student_id", req.StudentID), zap.String("course_id", req.CourseID))
	return enrollment, nil
}

// Grade assigns a grade to an existing enrollment.
func (s *EnrollmentService) Grade(ctx context.Context, req dto.GradeRequest) (*models.Enrollment, error) {
	if err := validate(s.validator, req, "invalid grade payload"); err != nil {
		return nil, err
	}
	enrollment, err := s.repo.Grade(ctx, req.StudentID, req.CourseID, req.Grade)
	if err != nil {
		return nil, storeError(err, "failed to grade student")
	}
	s.invalidate(ctx)
	s.metrics.RecordMutation(entityEnrollment, ActionGrade)
	return enrollment, nil
}

// Withdraw removes an enrollment and returns it as it was.
func (s *EnrollmentService) Withdraw(ctx context.Context, req dto.EnrollmentRequest) (*models.Enrollment, error) {
	if err := validate(s.validator, req, "invalid enrollment payload"); err != nil {
		return nil, err
	}
	current, err := s.repo.List(ctx, models.EnrollmentFilter{StudentID: req.StudentID, CourseID: req.CourseID})
	if err != nil {
		return nil, storeError(err, "failed to load enrollment")
	}
	if err := s.repo.Withdraw(ctx, req.StudentID, req.CourseID); err != nil {
		return nil, storeError(err, "failed to withdraw student")
	}
	s.invalidate(ctx)
	s.metrics.RecordMutation(entityEnrollment, ActionWithdraw)
	s.logger.Info("student withdrawn", zap.String("student_id", req.StudentID), zap.String("course_id", req.CourseID))

	withdrawn := models.NewEnrollment(req.StudentID, req.CourseID)
	if len(current) > 0 {
		withdrawn = current[0]
	}
	return &withdrawn, nil
}

// CourseEnrollments returns the course roster in enrollment order.
func (s *EnrollmentService) CourseEnrollments(ctx context.Context, courseID string) ([]models.Enrollment, error) {
	enrollments, err := s.repo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, storeError(err, "failed to load course enrollments")
	}
	return enrollments, nil
}

// CourseStudents returns the IDs of students enrolled in the course.
func (s *EnrollmentService) CourseStudents(ctx context.Context, courseID string) ([]string, error) {
	enrollments, err := s.CourseEnrollments(ctx, courseID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(enrollments))
	for _, enrollment := range enrollments {
		ids = append(ids, enrollment.StudentID)
	}
	return ids, nil
}

// StudentEnrollments collects the student's enrollments across every course,
// grouped under the student ID.
func (s *EnrollmentService) StudentEnrollments(ctx context.Context, studentID string) (map[string][]models.Enrollment, error) {
	enrollments, err := s.repo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, storeError(err, "failed to load student enrollments")
	}
	if enrollments == nil {
		enrollments = []models.Enrollment{}
	}
	return map[string][]models.Enrollment{studentID: enrollments}, nil
}

// StudentCourses returns the IDs of the courses the student is enrolled in.
func (s *EnrollmentService) StudentCourses(ctx context.Context, studentID string) ([]string, error) {
	grouped, err := s.StudentEnrollments(ctx, studentID)
	if err != nil {
		return nil, err
	}
	courseIDs := make([]string, 0, len(grouped[studentID]))
	for _, enrollment := range grouped[studentID] {
		courseIDs = append(courseIDs, enrollment.CourseID)
	}
	return courseIDs, nil
}

func (s *EnrollmentService) invalidate(ctx context.Context) {
	s.cache.Invalidate(ctx, cache.NamespaceEnrollments, cache.NamespaceCourses)
}
