package apperrors

import (
	"net/http"
)

/*
Predefined domain errors. Conflicts are returned as 400 here, not 409:
the API contract fixes duplicate email/application/bookmark/interview
at HTTP 400 with a machine-readable code.
*/

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound) into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrInvalidState - the requested transition is not allowed from the current status.
func ErrInvalidState(domain, message string) *AppError {
	return New(CodeInvalidState, domain, message, http.StatusBadRequest)
}

// --- Auth ---

var ErrEmailAlreadyExists = New(
	CodeEmailExists,
	"auth",
	"Email already exists",
	http.StatusBadRequest,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInactiveAccount = New(
	CodeInactiveAccount,
	"auth",
	"Account is not active",
	http.StatusForbidden,
)

var ErrTokenExpired = New(
	CodeTokenExpired,
	"auth",
	"Token has expired",
	http.StatusUnauthorized,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password must be at least 6 characters and contain letters and digits",
	http.StatusBadRequest,
)

// --- Jobs ---

var ErrJobNotFound = New(
	CodeJobNotFound,
	"job",
	"Job posting not found",
	http.StatusNotFound,
)

var ErrInvalidDeadline = New(
	CodeInvalidDeadline,
	"job",
	"Deadline must be in the future",
	http.StatusBadRequest,
)

// --- Applications ---

var ErrAlreadyApplied = New(
	CodeAlreadyApplied,
	"application",
	"An application for this job already exists",
	http.StatusBadRequest,
)

var ErrApplicationNotFound = New(
	CodeNotFound,
	"application",
	"Application not found",
	http.StatusNotFound,
)

// --- Bookmarks ---

var ErrBookmarkNotFound = New(
	CodeNotFound,
	"bookmark",
	"Bookmark not found",
	http.StatusNotFound,
)

// --- Interviews ---

var ErrInvalidInterviewDate = New(
	CodeInvalidDate,
	"interview",
	"Interview date must be in the future",
	http.StatusBadRequest,
)

var ErrDuplicateInterview = New(
	CodeDuplicateInterview,
	"interview",
	"An interview for this job already exists",
	http.StatusBadRequest,
)

var ErrInterviewNotFound = New(
	CodeNotFound,
	"interview",
	"Interview not found",
	http.StatusNotFound,
)

// --- Companies ---

var ErrCompanyNotFound = New(
	CodeCompanyNotFound,
	"company",
	"Company not found",
	http.StatusNotFound,
)

var ErrCompanyAlreadyExists = New(
	CodeCompanyExists,
	"company",
	"Company with this name or registration number already exists",
	http.StatusBadRequest,
)

// --- Skills ---

var ErrSkillAlreadyExists = New(
	CodeSkillExists,
	"skill",
	"Skill with this name already exists",
	http.StatusBadRequest,
)

var ErrSkillNotFound = New(
	CodeNotFound,
	"skill",
	"Skill not found",
	http.StatusNotFound,
)
