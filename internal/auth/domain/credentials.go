package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	MaxCredentialLength = 100

	visibleASCIITag = "visibleascii"
)

type Credentials struct {
	Username string `validate:"required,max=100,visibleascii"`
	Password string `validate:"required,max=100,visibleascii"`
}

var credentialsValidator = newCredentialsValidator()

func newCredentialsValidator() *validator.Validate {
	validate := validator.New()

	// registration only fails on an empty tag or a nil func
	_ = validate.RegisterValidation(visibleASCIITag, func(fl validator.FieldLevel) bool {
		for _, r := range fl.Field().String() {
			if r < '!' || r > '~' {
				return false
			}
		}

		return true
	})

	return validate
}

// Validate reports the first broken rule as InvalidCredentialsError.
func (c Credentials) Validate() error {
	err := credentialsValidator.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return fmt.Errorf("failed to validate credentials: %w", err)
	}

	fieldErr := validationErrors[0]
	field := strings.ToLower(fieldErr.Field())

	switch fieldErr.Tag() {
	case "required":
		return &InvalidCredentialsError{Msg: field + " is required"}
	case "max":
		return &InvalidCredentialsError{Msg: fmt.Sprintf("%s must not exceed %d characters", field, MaxCredentialLength)}
	default:
		return &InvalidCredentialsError{Msg: field + " must contain only visible ASCII characters"}
	}
}
