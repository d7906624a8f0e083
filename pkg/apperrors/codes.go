package apperrors

// ErrorCode is the machine-readable code returned in the error envelope.
type ErrorCode string

const (
	// System errors
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"

	// Generic business errors
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeValidationFailed ErrorCode = "VALIDATION_ERROR"
	CodeInvalidState     ErrorCode = "INVALID_STATE"

	// Auth
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"
	CodeInactiveAccount    ErrorCode = "INACTIVE_ACCOUNT"
	CodeEmailExists        ErrorCode = "EMAIL_EXISTS"

	// Jobs
	CodeJobNotFound     ErrorCode = "JOB_NOT_FOUND"
	CodeInvalidDeadline ErrorCode = "INVALID_DEADLINE"

	// Applications
	CodeAlreadyApplied ErrorCode = "ALREADY_APPLIED"

	// Interviews
	CodeInvalidDate        ErrorCode = "INVALID_DATE"
	CodeDuplicateInterview ErrorCode = "DUPLICATE_INTERVIEW"

	// Companies / skills
	CodeCompanyNotFound ErrorCode = "COMPANY_NOT_FOUND"
	CodeCompanyExists   ErrorCode = "COMPANY_EXISTS"
	CodeSkillExists     ErrorCode = "SKILL_EXISTS"
)
