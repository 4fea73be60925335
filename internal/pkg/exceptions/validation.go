package exceptions

import (
	"doccare-service/internal/pkg/constvars"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

func formatValidationError(fieldErr validator.FieldError) string {
	tag := fieldErr.Tag()
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		customMessage = "is invalid"
	}
	if constvars.TagsWithParams[tag] {
		if tag == "oneof" {
			customMessage = strings.Replace(customMessage, "%s", strings.Join(strings.Fields(fieldErr.Param()), ", "), 1)
		} else {
			customMessage = strings.Replace(customMessage, "%s", fieldErr.Param(), 1)
		}
	}
	return customMessage
}

// fieldPath drops the root struct name so "CreateScheduleRequest.StartDate"
// becomes "startDate" once the json tag name func is registered.
func fieldPath(fieldErr validator.FieldError) string {
	namespace := fieldErr.Namespace()
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return fieldErr.Field()
}

func FormatAllValidationErrors(err error) map[string]string {
	fields := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fields
	}
	for _, fieldErr := range validationErrors {
		fields[fieldPath(fieldErr)] = formatValidationError(fieldErr)
	}
	return fields
}

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientValidationFailed
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		firstErr := validationErrors[0]
		return fieldPath(firstErr) + " " + formatValidationError(firstErr)
	}
	return constvars.ErrDevInvalidInput
}
