// Package validator adapts go-playground/validator to Echo's Validator
// interface and registers the project's custom rules.
package validator

import (
	"strings"

	domainerrors "storefront/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// Validator wraps a configured validator instance for Echo.
type Validator struct {
	validate *validator.Validate
}

// New builds the validator with the custom field rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Rule registration cannot fail for a valid tag name.
	_ = v.RegisterValidation("phone10", validPhone10)
	_ = v.RegisterValidation("pincode", validPincode)

	return &Validator{validate: v}
}

// Validate checks the bound request struct and converts the first
// violation into a typed invalid-input error for the error middleware.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	ok := false
	if fieldErrs, ok = err.(validator.ValidationErrors); !ok || len(fieldErrs) == 0 {
		return domainerrors.ErrInvalidInput
	}

	return domainerrors.ErrInvalidInput.WithMessage(describe(fieldErrs[0]))
}

// describe renders one violation as a user-facing message. Only the
// first violation reaches the response.
func describe(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return field + " must be at least " + fe.Param()
	case "max":
		return field + " must be at most " + fe.Param()
	case "len":
		return field + " must be exactly " + fe.Param() + " characters"
	case "gt":
		return field + " must be greater than " + fe.Param()
	case "gte":
		return field + " must be at least " + fe.Param()
	case "oneof":
		return field + " must be one of: " + fe.Param()
	case "uuid":
		return field + " must be a valid UUID"
	case "phone10":
		return field + " must be a 10-digit phone number"
	case "pincode":
		return field + " must be a 6-digit pincode"
	default:
		return field + " is invalid"
	}
}

// validPhone10 accepts numbers that reduce to exactly ten ASCII digits
// once separators and a country prefix punctuation are stripped.
func validPhone10(fl validator.FieldLevel) bool {
	return len(digitsOf(fl.Field().String())) == 10
}

// validPincode accepts exactly six ASCII digits.
func validPincode(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != 6 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// digitsOf keeps only ASCII digits. Digit runes from other scripts are
// dropped like any other separator, so they can never pad a number up
// to the required length.
func digitsOf(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}

	return b.String()
}
