package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sms-api/internal/dto"
	"github.com/noah-isme/sms-api/internal/service"
	"github.com/noah-isme/sms-api/pkg/response"
)

// InstructorHandler exposes instructor endpoints.
type InstructorHandler struct {
	instructors *service.InstructorService
}

// NewInstructorHandler constructs InstructorHandler.
func NewInstructorHandler(instructors *service.InstructorService) *InstructorHandler {
	return &InstructorHandler{instructors: instructors}
}

// List godoc
// @Summary List instructors
// @Tags Instructors
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /instructors [get]
func (h *InstructorHandler) List(c *gin.Context) {
	instructors, hit, err := h.instructors.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	respondCached(c, keyed(instructors, instructorKey), hit)
}

// Get godoc
// @Summary Get instructor
// @Tags Instructors
// @Produce json
// @Param id path string true "Instructor ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /instructors/{id} [get]
func (h *InstructorHandler) Get(c *gin.Context) {
	instructor, err := h.instructors.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, instructor)
}

// Create godoc
// @Summary Add instructor
// @Tags Instructors
// @Accept json
// @Produce json
// @Param payload body dto.CreateInstructorRequest true "Instructor payload"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.ErrorEnvelope
// @Router /instructors [post]
func (h *InstructorHandler) Create(c *gin.Context) {
	var req dto.CreateInstructorRequest
	if !bindJSON(c, &req) {
		return
	}
	instructor, err := h.instructors.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, instructor)
}

// Update godoc
// @Summary Update instructor
// @Description Also refreshes the instructor in every course roster.
// @Tags Instructors
// @Accept json
// @Produce json
// @Param id path string true "Instructor ID"
// @Param payload body dto.UpdateInstructorRequest true "Instructor payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /instructors/{id} [put]
func (h *InstructorHandler) Update(c *gin.Context) {
	var req dto.UpdateInstructorRequest
	if !bindJSON(c, &req) {
		return
	}
	instructor, err := h.instructors.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, instructor)
}

// Delete godoc
// @Summary Remove instructor
// @Description Also removes the instructor from every course roster.
// @Tags Instructors
// @Produce json
// @Param id path string true "Instructor ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorEnvelope
// @Router /instructors/{id} [delete]
func (h *InstructorHandler) Delete(c *gin.Context) {
	instructor, err := h.instructors.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, instructor)
}
