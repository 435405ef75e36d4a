package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sms-api/internal/dto"
	"github.com/noah-isme/sms-api/internal/service"
	"github.com/noah-isme/sms-api/pkg/response"
)

// CourseHandler exposes course and roster endpoints.
type CourseHandler struct {
	courses     *service.CourseService
	enrollments *service.EnrollmentService
}

// NewCourseHandler constructs CourseHandler.
func NewCourseHandler(courses *service.CourseService, enrollments *service.EnrollmentService) *CourseHandler {
	return &CourseHandler{courses: courses, enrollments: enrollments}
}

// List godoc
// @Summary List courses
// @Description Courses with their rosters, keyed by course ID.
// @Tags Courses
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	courses, hit, err := h.courses.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	respondCached(c, keyed(courses, courseKey), hit)
}

// Get godoc
// @Summary Get course
// @Tags Courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /courses/{id} [get]
func (h *CourseHandler) Get(c *gin.Context) {
	course, err := h.courses.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, course)
}

// Create godoc
// @Summary Open course
// @Description Opens a catalog course by key (INTRO_TO_PROGRAMMING) or ID (CS101).
// @Tags Courses
// @Accept json
// @Produce json
// @Param payload body dto.CreateCourseRequest true "Catalog course"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.ErrorEnvelope
// @Router /courses [post]
func (h *CourseHandler) Create(c *gin.Context) {
	var req dto.CreateCourseRequest
	if !bindJSON(c, &req) {
		return
	}
	course, err := h.courses.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, course)
}

// Delete godoc
// @Summary Remove course
// @Tags Courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /courses/{id} [delete]
func (h *CourseHandler) Delete(c *gin.Context) {
	course, err := h.courses.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, course)
}

// Enrollments godoc
// @Summary Course enrollments
// @Description The course roster keyed by student ID.
// @Tags Courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /courses/{id}/enrollments [get]
func (h *CourseHandler) Enrollments(c *gin.Context) {
	enrollments, err := h.enrollments.CourseEnrollments(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, keyed(enrollments, rosterKey))
}

// Students godoc
// @Summary Course students
// @Description IDs of the students enrolled in the course, in enrollment order.
// @Tags Courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /courses/{id}/students [get]
func (h *CourseHandler) Students(c *gin.Context) {
	students, err := h.enrollments.CourseStudents(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, students)
}

// AssignInstructor godoc
// @Summary Assign instructor
// @Description Adds the instructor to the roster, moving them off a previous course.
// @Tags Courses
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param payload body dto.AssignInstructorRequest true "Instructor"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorEnvelope
// @Failure 409 {object} response.ErrorEnvelope
// @Router /courses/{id}/instructors [post]
func (h *CourseHandler) AssignInstructor(c *gin.Context) {
	var req dto.AssignInstructorRequest
	if !bindJSON(c, &req) {
		return
	}
	instructor, err := h.courses.AssignInstructor(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, instructor)
}

// UnassignInstructor godoc
// @Summary Unassign instructor
// @Tags Courses
// @Produce json
// @Param id path string true "Course ID"
// @Param instructorId path string true "Instructor ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /courses/{id}/instructors/{instructorId} [delete]
func (h *CourseHandler) UnassignInstructor(c *gin.Context) {
	ctx := c.Request.Context()
	courseID, instructorID := c.Param("id"), c.Param("instructorId")
	if err := h.courses.UnassignInstructor(ctx, courseID, instructorID); err != nil {
		response.Error(c, err)
		return
	}
	course, err := h.courses.Get(ctx, courseID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, course)
}
