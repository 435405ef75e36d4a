package dto

import (
	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/sms-api/internal/models"
)

// NewValidator returns a validator that understands the closed enumerations
// used by request payloads: major, department, grade and catalog_course.
func NewValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("major", func(fl validator.FieldLevel) bool {
		return models.Major(fl.Field().String()).Valid()
	})
	_ = validate.RegisterValidation("department", func(fl validator.FieldLevel) bool {
		return models.Department(fl.Field().String()).Valid()
	})
	_ = validate.RegisterValidation("grade", func(fl validator.FieldLevel) bool {
		return models.Grade(fl.Field().String()).Valid()
	})
	_ = validate.RegisterValidation("catalog_course", func(fl validator.FieldLevel) bool {
		_, ok := models.LookupCourse(fl.Field().String())
		return ok
	})
	return validate
}
