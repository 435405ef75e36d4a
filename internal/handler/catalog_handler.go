package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sms-api/internal/dto"
	"github.com/noah-isme/sms-api/internal/service"
	"github.com/noah-isme/sms-api/pkg/response"
)

// StatusMessage is returned by the API root.
const StatusMessage = "API is online..."

// CatalogHandler serves the API root and the closed enumerations.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Status godoc
// @Summary Status check
// @Tags Home
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *CatalogHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"Status": StatusMessage})
}

// Courses godoc
// @Summary Course catalog
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /catalog/courses [get]
func (h *CatalogHandler) Courses(c *gin.Context) {
	h.serve(c, func(catalog dto.Catalog) interface{} { return catalog.Courses })
}

// Majors godoc
// @Summary Majors
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /catalog/majors [get]
func (h *CatalogHandler) Majors(c *gin.Context) {
	h.serve(c, func(catalog dto.Catalog) interface{} { return catalog.Majors })
}

// Departments godoc
// @Summary Departments
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /catalog/departments [get]
func (h *CatalogHandler) Departments(c *gin.Context) {
	h.serve(c, func(catalog dto.Catalog) interface{} { return catalog.Departments })
}

// Grades godoc
// @Summary Grades
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /catalog/grades [get]
func (h *CatalogHandler) Grades(c *gin.Context) {
	h.serve(c, func(catalog dto.Catalog) interface{} { return catalog.Grades })
}

func (h *CatalogHandler) serve(c *gin.Context, pick func(dto.Catalog) interface{}) {
	catalog, hit, err := h.catalog.Catalog(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	respondCached(c, pick(catalog), hit)
}
