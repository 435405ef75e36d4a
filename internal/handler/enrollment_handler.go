package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sms-api/internal/dto"
	"github.com/noah-isme/sms-api/internal/service"
	"github.com/noah-isme/sms-api/pkg/response"
)

// EnrollmentHandler exposes enrollment endpoints.
type EnrollmentHandler struct {
	enrollments *service.EnrollmentService
}

// NewEnrollmentHandler constructs EnrollmentHandler.
func NewEnrollmentHandler(enrollments *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollments: enrollments}
}

// List godoc
// @Summary List enrollments
// @Description Enrollments keyed by "student_id:course_id".
// @Tags Enrollments
// @Produce json
// @Param student_id query string false "Filter by student"
// @Param course_id query string false "Filter by course"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.ErrorEnvelope
// @Router /enrollments [get]
func (h *EnrollmentHandler) List(c *gin.Context) {
	var query dto.EnrollmentQuery
	if !bindQuery(c, &query) {
		return
	}
	enrollments, hit, err := h.enrollments.List(c.Request.Context(), query.Filter())
	if err != nil {
		response.Error(c, err)
		return
	}
	respondCached(c, keyed(enrollments, enrollmentKey), hit)
}

// Enroll godoc
// @Summary Enroll student
// @Tags Enrollments
// @Accept json
// @Produce json
// @Param payload body dto.EnrollmentRequest true "Enrollment"
// @Success 201 {object} response.Envelope
// @Failure 404 {object} response.ErrorEnvelope
// @Failure 409 {object} response.ErrorEnvelope
// @Router /enrollments [post]
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	var req dto.EnrollmentRequest
	if !bindJSON(c, &req) {
		return
	}
	enrollment, err := h.enrollments.Enroll(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, enrollment)
}

// Withdraw godoc
// @Summary Withdraw student
// @Tags Enrollments
// @Accept json
// @Produce json
// @Param payload body dto.EnrollmentRequest true "Enrollment"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /enrollments [delete]
func (h *EnrollmentHandler) Withdraw(c *gin.Context) {
	var req dto.EnrollmentRequest
	if !bindJSON(c, &req) {
		return
	}
	enrollment, err := h.enrollments.Withdraw(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, enrollment)
}

// Grade godoc
// @Summary Grade student
// @Tags Enrollments
// @Accept json
// @Produce json
// @Param payload body dto.GradeRequest true "Grade"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /enrollments/grade [put]
func (h *EnrollmentHandler) Grade(c *gin.Context) {
	var req dto.GradeRequest
	if !bindJSON(c, &req) {
		return
	}
	enrollment, err := h.enrollments.Grade(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, enrollment)
}
