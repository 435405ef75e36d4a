package service

import (
	"errors"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/noah-isme/sms-api/pkg/errors"
)

// Entities reported to the mutation counter.
const (
	entityStudent    = "student"
	entityInstructor = "instructor"
	entityCourse     = "course"
	entityEnrollment = "enrollment"
)

// storeError keeps typed domain errors and wraps anything else as internal.
func storeError(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *appErrors.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}

func validate(v *validator.Validate, req interface{}, message string) error {
	if err := v.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message)
	}
	return nil
}
