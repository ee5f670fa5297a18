// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"slices"
	"strings"

	"columbus/internal/domain/entity"
	domainerrors "columbus/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator validates bound request DTOs and reports the offending fields
// by their wire names.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator with the planner's custom rules registered.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(wireName)

	// Registration only fails for an empty tag or a nil function.
	_ = validate.RegisterValidation("travel_style", func(fl validator.FieldLevel) bool {
		return entity.TravelStyle(strings.ToLower(fl.Field().String())).IsValid()
	})

	return &Validator{validate: validate}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.Wrap(err, "failed to validate request")
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		if !slices.Contains(fields, fieldErr.Field()) {
			fields = append(fields, fieldErr.Field())
		}
	}

	return domainerrors.NewValidationError("invalid or missing fields", fields...)
}

// wireName prefers the json name and falls back to the query parameter name.
func wireName(field reflect.StructField) string {
	for _, tag := range []string{"json", "query"} {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		switch name {
		case "-":
			return ""
		case "":
			continue
		default:
			return name
		}
	}

	return field.Name
}
