package errors

import (
	"net/http"

	"pindrop/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types.
//
// The user-facing messages deliberately distinguish three situations:
// "you already hold this reward" (benign), "this pin is no longer available"
// (terminal), and "the transaction failed, try again" (retryable).
var (
	// Collection-related errors
	ErrNotCollectible = NewBaseError(
		http.StatusGone,
		"NOT_COLLECTIBLE",
		"This pin is no longer available",
		"",
	)

	ErrAlreadyCollected = NewBaseError(
		http.StatusConflict,
		"ALREADY_COLLECTED",
		"You have already collected this pin",
		"",
	)

	ErrLimitExceeded = NewBaseError(
		http.StatusGone,
		"LIMIT_EXCEEDED",
		"This pin has reached its collection limit",
		"",
	)

	// Claim-related errors
	ErrNotConsumed = NewBaseError(
		http.StatusNotFound,
		"NOT_CONSUMED",
		"You have not collected this pin yet",
		"",
	)

	ErrAlreadyClaimed = NewBaseError(
		http.StatusConflict,
		"ALREADY_CLAIMED",
		"You already hold this reward",
		"",
	)

	ErrRewardUnresolvable = NewBaseError(
		http.StatusUnprocessableEntity,
		"REWARD_UNRESOLVABLE",
		"This pin has no claimable reward attached",
		"",
	)

	ErrClaimOfferExpired = NewBaseError(
		http.StatusGone,
		"CLAIM_OFFER_EXPIRED",
		"The claim offer expired, request a new one",
		"",
	)

	// Signing/submission protocol errors
	ErrSigningRejected = NewBaseError(
		http.StatusBadRequest,
		"SIGNING_REJECTED",
		"The wallet declined to sign the transaction",
		"",
	)

	ErrSubmissionFailed = NewBaseError(
		http.StatusBadGateway,
		"SUBMISSION_FAILED",
		"The transaction failed, please try again",
		"",
	)

	ErrNotConfirmed = NewBaseError(
		http.StatusPreconditionFailed,
		"NOT_CONFIRMED",
		"No confirmed ledger settlement exists for this claim",
		"",
	)

	// Pin store errors
	ErrPinNotFound = NewBaseError(
		http.StatusNotFound,
		"PIN_NOT_FOUND",
		"Pin not found",
		"",
	)

	ErrGroupNotFound = NewBaseError(
		http.StatusNotFound,
		"GROUP_NOT_FOUND",
		"Location group not found",
		"",
	)

	ErrGroupOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"GROUP_OWNERSHIP_VIOLATION",
		"You do not own this location group",
		"",
	)

	ErrTooManyPins = NewBaseError(
		http.StatusBadRequest,
		"TOO_MANY_PINS",
		"Too many pins for one location group",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrViewportTooLarge = NewBaseError(
		http.StatusBadRequest,
		"VIEWPORT_TOO_LARGE",
		"Requested viewport is too large",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
