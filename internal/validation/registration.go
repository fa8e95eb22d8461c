// Package validation checks and normalises form input before it reaches a service.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"eventregistration/internal/domain"
)

// Limits for registration fields.
const (
	NameMinLen      = 2
	NameMaxLen      = 100
	PhoneDigits     = 10
	AfterNoteMaxLen = 500
)

// registrationForm mirrors the HTML form; the form tag names the field in FieldErrors.
type registrationForm struct {
	Name      string `form:"name" validate:"required,min=2,max=100"`
	Email     string `form:"email" validate:"required,email"`
	Phone     string `form:"phone" validate:"required,len=10,number"`
	Year      string `form:"year" validate:"required"`
	Branch    string `form:"branch" validate:"required"`
	AfterNote string `form:"after_note" validate:"max=500"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateRegistration trims every field, lowercases the email and checks the result.
// It returns the normalised fields, or the per-field messages when any rule fails.
func ValidateRegistration(in domain.RegistrationInput) (*domain.RegistrationFields, domain.FieldErrors) {
	form := registrationForm{
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:     strings.TrimSpace(in.Phone),
		Year:      strings.TrimSpace(in.Year),
		Branch:    strings.TrimSpace(in.Branch),
		AfterNote: strings.TrimSpace(in.AfterNote),
	}

	if err := validate.Struct(form); err != nil {
		fieldErrs := domain.FieldErrors{}
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			fieldErrs.Add("form", "Invalid submission.")
			return nil, fieldErrs
		}
		for _, fe := range verrs {
			fieldErrs.Add(fe.Field(), message(fe))
		}
		return nil, fieldErrs
	}

	return &domain.RegistrationFields{
		Name:      form.Name,
		Email:     form.Email,
		Phone:     form.Phone,
		Year:      form.Year,
		Branch:    form.Branch,
		AfterNote: form.AfterNote,
	}, nil
}

func message(fe validator.FieldError) string {
	switch fe.Field() {
	case "name":
		if fe.Tag() == "required" {
			return "Name is required."
		}
		return "Name must be between 2 and 100 characters long."
	case "email":
		if fe.Tag() == "required" {
			return "Email is required."
		}
		return "Invalid email address."
	case "phone":
		if fe.Tag() == "required" {
			return "Phone is required."
		}
		return "Phone must be 10 digits"
	case "year":
		return "Year is required."
	case "branch":
		return "Branch is required."
	case "after_note":
		return "Additional notes must be at most 500 characters long."
	}
	return "Invalid value."
}
