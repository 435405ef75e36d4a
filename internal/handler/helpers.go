package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sms-api/internal/middleware"
	"github.com/noah-isme/sms-api/internal/models"
	"github.com/noah-isme/sms-api/pkg/collection"
	appErrors "github.com/noah-isme/sms-api/pkg/errors"
	"github.com/noah-isme/sms-api/pkg/response"
)

// keyed indexes items by key in their original order. Empty collections are
// returned as a plain nil so the envelope renders a null result.
func keyed[V any](items []V, key func(V) string) interface{} {
	if len(items) == 0 {
		return nil
	}
	out := collection.NewOrderedMap[V]()
	for _, item := range items {
		out.Set(key(item), item)
	}
	return out
}

func studentKey(s models.Student) string       { return s.ID }
func instructorKey(i models.Instructor) string { return i.ID }
func courseKey(c *models.Course) string        { return c.CourseID }
func rosterKey(e models.Enrollment) string     { return e.StudentID }
func enrollmentKey(e models.Enrollment) string { return e.StudentID + ":" + e.CourseID }

// bindJSON decodes the request body, rendering a validation failure on error.
func bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return false
	}
	return true
}

// bindQuery decodes query parameters, rendering a validation failure on error.
func bindQuery(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindQuery(dest); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid query"))
		return false
	}
	return true
}

func respondCached(c *gin.Context, result interface{}, hit bool) {
	middleware.SetCacheHit(c, hit)
	response.JSON(c, http.StatusOK, result, middleware.ExtractMeta(c))
}
