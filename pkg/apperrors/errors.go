package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError is the application error carried from services up to the HTTP boundary.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Domain   string      `json:"domain"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s:%s] %s (%v)", e.Domain, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Domain, e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New builds a fresh AppError.
func New(code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Wrap attaches an underlying error to a new AppError.
func Wrap(err error, code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

// MarshalJSON keeps the wrapped error and HTTP code out of the response body.
func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Domain  string      `json:"domain"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Domain:  e.Domain,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is wraps the standard errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As wraps the standard errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// InternalError wraps an unexpected system failure.
func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)
}

// ValidationError builds a validation failure with field-level details.
func ValidationError(details interface{}) *AppError {
	return New(CodeValidationFailed, "validation", "Validation failed", http.StatusBadRequest).WithDetails(details)
}

// NewUnauthorizedError builds a 401 for a missing or unusable credential.
func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, "auth", message, http.StatusUnauthorized)
}

// NewForbiddenError builds a 403 for an authenticated but insufficient principal.
func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, "auth", message, http.StatusForbidden)
}

// NewBadRequestError builds a 400 for a malformed request.
func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, "request", message, http.StatusBadRequest)
}
