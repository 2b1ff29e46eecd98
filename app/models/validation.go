package models

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	must(v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return ValidCategory(fl.Field().String())
	}))
	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// ValidCategory reports whether c is one of the storable categories.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// FieldErrors maps offending field names to human-readable messages. It is
// returned by Validate so callers can surface each message next to its
// input.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// fieldErrors converts validator output into a FieldErrors map.
func fieldErrors(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	out := FieldErrors{}
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			out[field] = field + " is required"
		case "min":
			out[field] = fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		case "max":
			out[field] = fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		case "category":
			out[field] = "category must be one of: " + strings.Join(Categories, ", ")
		default:
			out[field] = field + " is invalid"
		}
	}
	return out
}
