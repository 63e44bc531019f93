// Package errors provides the structured error type shared by the store,
// the access layer and the local bridge. Every failure that leaves a service
// is an *AppError so callers can branch on Code without string matching.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Internal != nil {
		return e.Message + ": " + e.Internal.Error()
	}
	return e.Message
}

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is matches any AppError carrying the same code, so a wrapped sentinel
// still satisfies errors.Is(err, ErrStorage).
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Store errors.
var (
	ErrStoreUnavailable = &AppError{Code: "STORE_UNAVAILABLE", Message: "Local data store could not be opened", StatusCode: http.StatusServiceUnavailable}
	ErrStorage          = &AppError{Code: "STORAGE_ERROR", Message: "Data store operation failed", StatusCode: http.StatusInternalServerError}
	ErrSeedFailed       = &AppError{Code: "SEED_FAILED", Message: "Default data could not be created", StatusCode: http.StatusInternalServerError}
	ErrImportFailed     = &AppError{Code: "IMPORT_FAILED", Message: "Import stopped before all collections were restored", StatusCode: http.StatusUnprocessableEntity}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
	ErrForbidden      = &AppError{Code: "FORBIDDEN", Message: "The bridge only accepts local connections", StatusCode: http.StatusForbidden}
)

// Profile errors.
var (
	ErrProfileNotFound = &AppError{Code: "PROFILE_NOT_FOUND", Message: "Profile has not been created yet", StatusCode: http.StatusNotFound}
)

// Transaction errors.
var (
	ErrInvalidTransactionType = &AppError{Code: "INVALID_TRANSACTION_TYPE", Message: "Unsupported transaction type", StatusCode: http.StatusBadRequest}
)

// Goal errors.
var (
	ErrInvalidGoalCategory = &AppError{Code: "INVALID_GOAL_CATEGORY", Message: "Unsupported goal category", StatusCode: http.StatusBadRequest}
)

// Portfolio errors.
var (
	ErrDuplicateItemKey = &AppError{Code: "DUPLICATE_ITEM_KEY", Message: "A portfolio item with this key already exists", StatusCode: http.StatusConflict}
)
