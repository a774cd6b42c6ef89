package validator

import (
	"errors"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/korea-weather-service/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate runs struct-tag validation. Failures come back as a 400
// application error carrying the offending fields.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make(map[string]interface{}, len(verrs))
		for _, fe := range verrs {
			details[fe.Field()] = fe.Tag()
		}
		return apperrors.ErrInvalidRequest.WithDetails(details)
	}
	return err
}

// GetValidator exposes the shared instance for custom configuration.
func GetValidator() *validator.Validate {
	return validate
}
