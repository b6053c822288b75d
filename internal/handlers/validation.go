package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// bindingErrorMessage turns a gin binding error into a client-facing message.
// Validation failures are reported per field instead of dumping the raw
// validator error string.
func bindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fieldErrorMessage(fe))
	}
	return strings.Join(parts, "; ")
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("field '%s' is required", fe.Field())
	case "min":
		return fmt.Sprintf("field '%s' must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("field '%s' must be at most %s", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("field '%s' must be a valid email address", fe.Field())
	case "datetime":
		return fmt.Sprintf("field '%s' must be a date in YYYY-MM-DD format", fe.Field())
	case "oneof":
		return fmt.Sprintf("field '%s' must be one of [%s]", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("field '%s' failed validation '%s'", fe.Field(), fe.Tag())
	}
}
