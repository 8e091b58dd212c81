// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"strings"

	domainerrors "legalsite/internal/domain/errors"
	"legalsite/internal/errors"

	"github.com/go-playground/validator/v10"
)

// EchoValidator validates bound request structs
type EchoValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports field names by their json or form tag.
func New() *EchoValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return tagName(field.Tag.Get("json"), field.Tag.Get("form"), field.Name)
	})

	return &EchoValidator{validate: v}
}

// Validate implements echo.Validator. Failures are returned as a
// ValidationError keyed by field name.
func (v *EchoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return errors.WithStack(err)
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fe.Field()] = message(fe)
	}

	return errors.WithStack(domainerrors.NewValidationError(fields))
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}

func tagName(tags ...string) string {
	for _, tag := range tags {
		name, _, _ := strings.Cut(tag, ",")
		if name != "" && name != "-" {
			return name
		}
	}

	return ""
}
