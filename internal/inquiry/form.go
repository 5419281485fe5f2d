package inquiry

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/gcloudgt/contacto/internal/catalog"
	"github.com/go-playground/validator/v10"
)

// SuccessMessage is shown once a submission has been accepted.
const SuccessMessage = "¡Mensaje enviado! Te contactaremos pronto."

// FormData is the set of values collected by the wizard. Empty strings mean
// unset.
type FormData struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,html_email"`
	ProjectType string `json:"projectType" validate:"required,project_type"`
	Budget      string `json:"budget" validate:"required,budget"`
	Message     string `json:"message" validate:"required"`
}

// IsZero reports whether every field is empty.
func (f FormData) IsZero() bool {
	return f == FormData{}
}

// trimmed returns a copy with surrounding whitespace removed from free-text
// fields.
func (f FormData) trimmed() FormData {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Message = strings.TrimSpace(f.Message)
	return f
}

// fieldLabels maps json field names to the labels shown to the user.
var fieldLabels = map[string]string{
	"name":        "nombre",
	"email":       "email",
	"projectType": "tipo de proyecto",
	"budget":      "presupuesto",
	"message":     "mensaje",
}

// ValidationError lists the fields that blocked a submission.
type ValidationError struct {
	Missing []string // labels of empty required fields, in form order
	Invalid []string // labels of fields with a malformed value
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "completa: "+strings.Join(e.Missing, ", "))
	}
	for _, f := range e.Invalid {
		parts = append(parts, f+" inválido")
	}
	return strings.Join(parts, "; ")
}

// IsValidationError reports whether err is (or wraps) a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

var validate = newValidator()

// htmlEmail is the valid e-mail address production of the HTML living
// standard, the check an <input type="email"> applies. Unlike validator's
// email rule it accepts dotless domains such as a@localhost.
var htmlEmail = regexp.MustCompile(
	"^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?" +
		"(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		return name
	})
	_ = v.RegisterValidation("html_email", func(fl validator.FieldLevel) bool {
		return htmlEmail.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("project_type", func(fl validator.FieldLevel) bool {
		_, ok := catalog.ProjectType(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("budget", func(fl validator.FieldLevel) bool {
		_, ok := catalog.Budget(fl.Field().String())
		return ok
	})
	return v
}

// Validate checks that every required field is present, that the email is
// well formed, and that the selections are catalog identifiers. Free-text
// fields are trimmed before checking, so whitespace-only counts as empty.
func Validate(data FormData) error {
	err := validate.Struct(data.trimmed())
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating form: %w", err)
	}

	ve := &ValidationError{}
	for _, fe := range fieldErrs {
		label := fieldLabels[fe.Field()]
		if fe.Tag() == "required" {
			ve.Missing = append(ve.Missing, label)
		} else {
			ve.Invalid = append(ve.Invalid, label)
		}
	}
	return ve
}
