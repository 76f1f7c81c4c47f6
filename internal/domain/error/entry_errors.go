package error

import "errors"

// Daily entry domain errors.
var (
	// ErrEntryNotFound is returned when no entry exists for the requested date.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrInvalidDateKey is returned when a date key is not a valid YYYY-MM-DD date.
	ErrInvalidDateKey = errors.New("invalid date_key format, expected YYYY-MM-DD")

	// ErrInvalidFinalBalance is returned when the final balance is negative or too large.
	ErrInvalidFinalBalance = errors.New("final balance out of range")

	// ErrInvalidTag is returned when a tag is blank or too long.
	ErrInvalidTag = errors.New("tags must be non-empty and at most 50 characters")
)

// EntryErrorCode defines error codes for daily entry errors.
// Format: ENT-XXYYYY where XX is category and YYYY is specific error.
type EntryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDateKey      EntryErrorCode = "ENT-010001"
	ErrCodeInvalidFinalBalance EntryErrorCode = "ENT-010002"
	ErrCodeInvalidTag          EntryErrorCode = "ENT-010003"
	ErrCodeMissingEntryFields  EntryErrorCode = "ENT-010004"

	// Lookup errors (02XXXX)
	ErrCodeEntryNotFound EntryErrorCode = "ENT-020001"
)

// EntryError represents a daily entry error with code and message.
type EntryError struct {
	Code    EntryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EntryError) Unwrap() error {
	return e.Err
}

// NewEntryError creates a new EntryError with the given code and message.
func NewEntryError(code EntryErrorCode, message string, err error) *EntryError {
	return &EntryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
