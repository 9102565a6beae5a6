package utils

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"zelo/internal/shared/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report field names as they appear on the wire.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateStruct runs the validate tags of a request struct and folds the
// failures into a single validation error with per-field details.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return errors.NewValidationError("pedido inválido")
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		messages = append(messages, fieldErrorMessage(fieldError))
	}

	return errors.NewValidationError("pedido inválido", strings.Join(messages, "; "))
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s é obrigatório", field)
	case "email":
		return fmt.Sprintf("%s deve ser um email válido", field)
	case "min":
		return fmt.Sprintf("%s deve ter pelo menos %s caracteres", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s deve ter no máximo %s caracteres", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s deve ser um de: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s é inválido", field)
	}
}
