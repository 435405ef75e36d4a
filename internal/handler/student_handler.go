package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sms-api/internal/dto"
	"github.com/noah-isme/sms-api/internal/service"
	"github.com/noah-isme/sms-api/pkg/response"
)

// StudentHandler exposes student endpoints.
type StudentHandler struct {
	students    *service.StudentService
	enrollments *service.EnrollmentService
	transcripts *service.TranscriptService
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(students *service.StudentService, enrollments *service.EnrollmentService, transcripts *service.TranscriptService) *StudentHandler {
	return &StudentHandler{students: students, enrollments: enrollments, transcripts: transcripts}
}

// List godoc
// @Summary List students
// @Description Students keyed by ID in registration order; null when there are none.
// @Tags Students
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	students, hit, err := h.students.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	respondCached(c, keyed(students, studentKey), hit)
}

// Get godoc
// @Summary Get student
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /students/{id} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	student, err := h.students.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, student)
}

// Create godoc
// @Summary Add student
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body dto.CreateStudentRequest true "Student payload"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.ErrorEnvelope
// @Router /students [post]
func (h *StudentHandler) Create(c *gin.Context) {
	var req dto.CreateStudentRequest
	if !bindJSON(c, &req) {
		return
	}
	student, err := h.students.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, student)
}

// Update godoc
// @Summary Update student
// @Tags Students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param payload body dto.UpdateStudentRequest true "Student payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /students/{id} [put]
func (h *StudentHandler) Update(c *gin.Context) {
	var req dto.UpdateStudentRequest
	if !bindJSON(c, &req) {
		return
	}
	student, err := h.students.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, student)
}

// Delete godoc
// @Summary Remove student
// @Description Removes the student and every enrollment they hold.
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /students/{id} [delete]
func (h *StudentHandler) Delete(c *gin.Context) {
	student, err := h.students.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, student)
}

// Enrollments godoc
// @Summary Student enrollments
// @Description Every enrollment of the student grouped under the student ID.
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /students/{id}/enrollments [get]
func (h *StudentHandler) Enrollments(c *gin.Context) {
	grouped, err := h.enrollments.StudentEnrollments(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, grouped)
}

// Courses godoc
// @Summary Student courses
// @Description IDs of the courses the student is enrolled in.
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /students/{id}/courses [get]
func (h *StudentHandler) Courses(c *gin.Context) {
	courses, err := h.enrollments.StudentCourses(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, courses)
}

// Transcript godoc
// @Summary Export transcript
// @Tags Students
// @Produce text/csv
// @Produce application/pdf
// @Param id path string true "Student ID"
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /students/{id}/transcript [get]
func (h *StudentHandler) Transcript(c *gin.Context) {
	transcript, err := h.transcripts.Render(c.Request.Context(), c.Param("id"), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.File(c, transcript.Filename, transcript.ContentType, transcript.Data)
}
