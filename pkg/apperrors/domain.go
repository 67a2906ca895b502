package apperrors

import (
	"net/http"
)

// Factories for wrapping repository errors.

// ErrNotFound converts a repository "record not found" into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a uniqueness violation into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict is the generic 409 factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation is the factory for operations a role or state forbids logically.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// Predefined errors for common static failures.

// ErrEmailAlreadyExists is returned on registration with a taken email.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

// ErrInvalidCredentials covers both unknown email and wrong password on login.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidToken covers invalid or expired verification/reset tokens.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrTokenExpired is returned for a bearer token past its expiry.
var ErrTokenExpired = New(
	CodeTokenExpired,
	"auth",
	"Token expired",
	http.StatusUnauthorized,
)

// ErrUnknownRole is returned at registration with a role that was never seeded.
var ErrUnknownRole = New(
	CodeInvalidOperation,
	"auth",
	"Unknown role",
	http.StatusBadRequest,
)

// ErrWeakPassword rejects passwords below the minimum length.
var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 8 characters required.",
	http.StatusBadRequest,
)

// ErrAccessDenied is returned when the ownership gate denies an operation.
var ErrAccessDenied = New(
	CodeForbidden,
	"access",
	"Access denied",
	http.StatusForbidden,
)

// ErrPersonalDetailsExist enforces the one-record-per-owner invariant.
var ErrPersonalDetailsExist = New(
	CodeAlreadyExists,
	"personal_details",
	"Personal details already exist for this user",
	http.StatusConflict,
)
