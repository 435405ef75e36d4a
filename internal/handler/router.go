package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/sms-api/internal/service"
)

// Services bundles the use-cases served over HTTP.
type Services struct {
	Students    *service.StudentService
	Instructors *service.InstructorService
	Courses     *service.CourseService
	Enrollments *service.EnrollmentService
	Catalog     *service.CatalogService
	Transcripts *service.TranscriptService
	Metrics     *service.MetricsService
}

// Router owns every handler and knows where each one is mounted.
type Router struct {
	students    *StudentHandler
	instructors *InstructorHandler
	courses     *CourseHandler
	enrollments *EnrollmentHandler
	catalog     *CatalogHandler
	system      *MetricsHandler
}

// NewRouter builds the handlers. dependents feed the readiness probe.
func NewRouter(svc Services, dependents map[string]Pinger, logger *zap.Logger) *Router {
	return &Router{
		students:    NewStudentHandler(svc.Students, svc.Enrollments, svc.Transcripts),
		instructors: NewInstructorHandler(svc.Instructors),
		courses:     NewCourseHandler(svc.Courses, svc.Enrollments),
		enrollments: NewEnrollmentHandler(svc.Enrollments),
		catalog:     NewCatalogHandler(svc.Catalog),
		system:      NewMetricsHandler(svc.Metrics, dependents, logger),
	}
}

// Register mounts the probes at the root and the API under prefix.
func (r *Router) Register(engine *gin.Engine, prefix string) {
	engine.GET("/health", r.system.Health)
	engine.GET("/ready", r.system.Ready)
	engine.GET("/metrics", r.system.Prometheus)

	api := engine.Group(prefix)
	api.GET("", r.catalog.Status)
	api.GET("/", r.catalog.Status)

	catalog := api.Group("/catalog")
	catalog.GET("/courses", r.catalog.Courses)
	catalog.GET("/majors", r.catalog.Majors)
	catalog.GET("/departments", r.catalog.Departments)
	catalog.GET("/grades", r.catalog.Grades)

	students := api.Group("/students")
	students.GET("", r.students.List)
	students.POST("", r.students.Create)
	students.GET("/:id", r.students.Get)
	students.PUT("/:id", r.students.Update)
	students.DELETE("/:id", r.students.Delete)
	students.GET("/:id/enrollments", r.students.Enrollments)
	students.GET("/:id/courses", r.students.Courses)
	students.GET("/:id/transcript", r.students.Transcript)

	instructors := api.Group("/instructors")
	instructors.GET("", r.instructors.List)
	instructors.POST("", r.instructors.Create)
	instructors.GET("/:id", r.instructors.Get)
	instructors.PUT("/:id", r.instructors.Update)
	instructors.DELETE("/:id", r.instructors.Delete)

	courses := api.Group("/courses")
	courses.GET("", r.courses.List)
	courses.POST("", r.courses.Create)
	courses.GET("/:id", r.courses.Get)
	courses.DELETE("/:id", r.courses.Delete)
	courses.GET("/:id/enrollments", r.courses.Enrollments)
	courses.GET("/:id/students", r.courses.Students)
	courses.POST("/:id/instructors", r.courses.AssignInstructor)
	courses.DELETE("/:id/instructors/:instructorId", r.courses.UnassignInstructor)

	enrollments := api.Group("/enrollments")
	enrollments.GET("", r.enrollments.List)
	enrollments.POST("", r.enrollments.Enroll)
	enrollments.DELETE("", r.enrollments.Withdraw)
	enrollments.PUT("/grade", r.enrollments.Grade)
}
