package http

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	loandomain "loanbook-backend/internal/domain/loan"
	paydomain "loanbook-backend/internal/domain/payment"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

// public ids look like L001 / U003 / P014
var reRefID = regexp.MustCompile(`^[A-Z][0-9]{3}$`)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	_ = v.RegisterValidation("refid", func(fl validator.FieldLevel) bool {
		return reRefID.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("loanstatus", func(fl validator.FieldLevel) bool {
		return loandomain.Status(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("paystatus", func(fl validator.FieldLevel) bool {
		return paydomain.Status(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("risklevel", func(fl validator.FieldLevel) bool {
		return loandomain.RiskLevel(fl.Field().String()).Valid()
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "refid":
			out = append(out, FieldError{Field: field, Message: "must be an uppercase letter followed by 3 digits"})
		case "loanstatus":
			out = append(out, FieldError{Field: field, Message: "must be a valid loan status"})
		case "paystatus":
			out = append(out, FieldError{Field: field, Message: "must be a valid payment status"})
		case "risklevel":
			out = append(out, FieldError{Field: field, Message: "must be one of low/medium/high"})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
