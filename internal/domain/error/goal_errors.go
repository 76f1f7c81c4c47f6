package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the dashboard.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidGoalType is returned when the goal type is not daily, weekly or monthly.
	ErrInvalidGoalType = errors.New("goal type must be: daily, weekly, or monthly")

	// ErrInvalidGoalAmount is returned when the amount is below one cent or too large.
	ErrInvalidGoalAmount = errors.New("goal amount out of range")

	// ErrInvalidAppliesTo is returned when applies_to does not match the goal type's format.
	ErrInvalidAppliesTo = errors.New("applies_to does not match the goal type format")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidGoalType   GoalErrorCode = "GOL-010001"
	ErrCodeInvalidGoalAmount GoalErrorCode = "GOL-010002"
	ErrCodeInvalidAppliesTo  GoalErrorCode = "GOL-010003"
	ErrCodeMissingGoalFields GoalErrorCode = "GOL-010004"
	ErrCodeInvalidGoalID     GoalErrorCode = "GOL-010005"

	// Lookup errors (02XXXX)
	ErrCodeGoalNotFound GoalErrorCode = "GOL-020001"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
