package handler

import (
	"strings"

	"github.com/go-playground/validator"
)

// formValidator checks the struct tags on the form types below. It is
// invoked directly rather than through echo's Validator hook because a
// failed form is not a 400: it re-renders with HTTP 200 and field-level
// messages, so the handlers need the per-field errors, not an HTTPError.
var formValidator = validator.New()

// LoginForm carries the submitted login fields plus field-keyed validation
// errors for re-rendering. The "form" key holds a form-level message such as
// the generic invalid-credentials notice.
type LoginForm struct {
	Email    string            `validate:"required,email"`
	Password string            `validate:"required"`
	Errors   map[string]string `validate:"-"`
}

// RegisterForm carries the submitted registration fields plus field-keyed
// validation errors. The confirmation field must match Password exactly.
type RegisterForm struct {
	Email           string            `validate:"required,email"`
	Password        string            `validate:"required,min=6"`
	ConfirmPassword string            `validate:"required,eqfield=Password"`
	Errors          map[string]string `validate:"-"`
}

// Validate normalizes the email, then runs the tag rules. It returns true
// when the form is clean; otherwise Errors holds one message per failing
// field for the template to display.
func (f *LoginForm) Validate() bool {
	f.Email = normalizeEmail(f.Email)
	f.Errors = collectErrors(formValidator.Struct(f))
	return len(f.Errors) == 0
}

// Validate checks email syntax, password length and confirmation match.
// Nothing is persisted while any field fails; the handler re-renders the
// form with these messages instead.
func (f *RegisterForm) Validate() bool {
	f.Email = normalizeEmail(f.Email)
	f.Errors = collectErrors(formValidator.Struct(f))
	return len(f.Errors) == 0
}

// normalizeEmail lowercases and trims the address the same way the user
// repository does, so validation and storage agree on the value.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// collectErrors translates validator.ValidationErrors into the field-keyed,
// user-facing messages the templates render. The validator stops at the
// first failing tag per field, so each field maps to at most one message.
func collectErrors(err error) map[string]string {
	errs := map[string]string{}
	if err == nil {
		return errs
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Non-validation faults (e.g. a nil form) surface as a form-level
		// message rather than being swallowed.
		errs["form"] = "Invalid form submission"
		return errs
	}
	for _, fe := range fieldErrs {
		name, msg := fieldMessage(fe)
		if _, seen := errs[name]; !seen {
			errs[name] = msg
		}
	}
	return errs
}

// fieldMessage maps a single field error to its form key and message. The
// wording matches the registration and login pages' historical copy.
func fieldMessage(fe validator.FieldError) (string, string) {
	switch fe.Field() {
	case "Email":
		if fe.Tag() == "required" {
			return "email", "Email is required"
		}
		return "email", "Invalid email address"
	case "Password":
		if fe.Tag() == "min" {
			return "password", "Password must be at least 6 characters long"
		}
		return "password", "Password is required"
	case "ConfirmPassword":
		if fe.Tag() == "eqfield" {
			return "confirm_password", "Passwords must match"
		}
		return "confirm_password", "Password confirmation is required"
	}
	return strings.ToLower(fe.Field()), "Invalid value"
}
