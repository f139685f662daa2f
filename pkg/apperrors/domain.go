package apperrors

import (
	"net/http"
)

// Factories for common domain errors. Repository sentinel errors are
// wrapped here so handlers only ever deal with *AppError.

// ErrNotFound wraps a missing-resource error. A resource owned by another
// tenant is reported through the same factory so the two cases are
// indistinguishable to the caller.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidCredentials is returned on login failure without revealing
// whether the account exists.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid username or password",
	http.StatusUnauthorized,
)

// ErrInsufficientPermissions is returned when a non-admin hits an admin route.
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// ErrProtectedAccount is returned on attempts to delete a super-admin account.
var ErrProtectedAccount = New(
	CodeForbidden,
	"business_logic",
	"Cannot delete a super admin account",
	http.StatusForbidden,
)
