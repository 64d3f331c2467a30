package apperrors

import (
	"net/http"
)

/*
Predefined errors and factories for the job-board domain.
*/

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound etc.) into
// an AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- Auth ---

// ErrInvalidCredentials is returned for both an unknown email and a wrong
// password, so callers cannot enumerate registered emails.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrEmailAlreadyExists - duplicate registration email. The API contract maps
// this conflict to 400.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"User already exists",
	http.StatusBadRequest,
)

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"auth",
	"Invalid user role",
	http.StatusBadRequest,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 6 characters required.",
	http.StatusBadRequest,
)

// --- Jobs ---

var ErrJobNotFound = New(
	CodeNotFound,
	"job",
	"Job not found",
	http.StatusNotFound,
)

// ErrNotJobOwner - the requester is an employer but does not own the job.
var ErrNotJobOwner = New(
	CodeForbidden,
	"job",
	"You do not own this job",
	http.StatusForbidden,
)

// --- Applications ---

var ErrApplicationNotFound = New(
	CodeNotFound,
	"application",
	"Application not found",
	http.StatusNotFound,
)

var ErrInvalidApplicationStatus = New(
	CodeValidationFailed,
	"application",
	"Invalid status",
	http.StatusBadRequest,
)

// ErrApplicationFinalized - accepted and rejected are terminal; no transition
// leads away from them.
var ErrApplicationFinalized = New(
	CodeInvalidStatus,
	"application",
	"Application has already been finalized",
	http.StatusBadRequest,
)

var ErrApplicationAlreadyExists = New(
	CodeConflict,
	"application",
	"You have already applied to this job",
	http.StatusBadRequest,
)

var ErrResumeRequired = New(
	CodeValidationFailed,
	"application",
	"Resume file is required",
	http.StatusBadRequest,
)

// --- Profile ---

var ErrProfileNotFound = New(
	CodeNotFound,
	"profile",
	"Profile not found",
	http.StatusNotFound,
)
