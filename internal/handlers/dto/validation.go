package dto

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ExtractValidationErrors converte erros do validator em erros de campo
// para a resposta RFC 7807. Erros de outra natureza (JSON malformado etc.)
// produzem um único erro genérico de corpo.
func ExtractValidationErrors(err error) []ValidationError {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []ValidationError{
			{Field: "body", Message: err.Error()},
		}
	}

	result := make([]ValidationError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		result = append(result, ValidationError{
			Field:   fieldErr.Field(),
			Message: validationMessage(fieldErr),
			Tag:     fieldErr.Tag(),
			Value:   fmt.Sprintf("%v", fieldErr.Value()),
		})
	}
	return result
}

func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fieldErr.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fieldErr.Param())
	default:
		return fmt.Sprintf("failed validation on %s", fieldErr.Tag())
	}
}
