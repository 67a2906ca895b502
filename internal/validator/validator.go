package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ValidationError carries a field -> message map for the client.
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	var msgs []string
	for field, msg := range e.Errors {
		msgs = append(msgs, fmt.Sprintf("field '%s': %s", field, msg))
	}
	return "Validation failed: " + strings.Join(msgs, "; ")
}

// Validator wraps go-playground/validator with json tag names and the
// domain rules from rules.go.
type Validator struct {
	validate *validator.Validate
}

// New wraps the engine gin binds with, so the custom tags below are known to
// ShouldBind and an unknown tag cannot panic inside the binder. The DTO rules
// live in `binding` tags.
func New() *Validator {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		v = validator.New()
		v.SetTagName("binding")
	}

	// Report field names as they appear in the DTO json tags, not the
	// Go struct field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomRules(v)

	return &Validator{validate: v}
}

func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	customErrors := make(map[string]string)
	for _, fe := range validationErrors {
		customErrors[fe.Field()] = v.getErrorMessage(fe)
	}

	return &ValidationError{Errors: customErrors}
}

// TranslateBindingError converts a validation failure surfaced by gin's
// binder into the field -> message map. Reports false for bind errors that
// are not validation failures (malformed JSON, type mismatches).
func (v *Validator) TranslateBindingError(err error) (*ValidationError, bool) {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil, false
	}

	customErrors := make(map[string]string)
	for _, fe := range validationErrors {
		customErrors[fe.Field()] = v.getErrorMessage(fe)
	}
	return &ValidationError{Errors: customErrors}, true
}

func (v *Validator) getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "uuid":
		return "Must be a valid UUID"
	case "min":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return fmt.Sprintf("Must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return fmt.Sprintf("Must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.Replace(fe.Param(), " ", ", ", -1))
	case "datetime":
		return fmt.Sprintf("Must be a date in format %s", fe.Param())
	case "is-role":
		return "Must be a known role"
	case "is-employment-type":
		return "Must be a known employment type"
	case "is-loan-type":
		return "Must be a known loan type"
	case "is-consent-type":
		return "Must be a known consent type"
	case "is-applicant-type":
		return "Must be a known applicant type"
	default:
		return fmt.Sprintf("Invalid value (failed on '%s' tag)", fe.Tag())
	}
}
