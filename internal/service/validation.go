package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "ramenmap/internal/errors"
)

var validate = newValidator()

// newValidator reports fields by their json name.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct turns the first failed rule into a 400.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate: %w", err)
	}
	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return apperrors.ErrBadRequest(fe.Field() + " is required")
	case "email":
		return apperrors.ErrBadRequest(fe.Field() + " must be a valid email address")
	case "min":
		return apperrors.ErrBadRequest(fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param()))
	case "gte", "lte":
		return apperrors.ErrBadRequest(fe.Field() + " out of range")
	default:
		return apperrors.ErrBadRequest(fe.Field() + " is invalid")
	}
}
