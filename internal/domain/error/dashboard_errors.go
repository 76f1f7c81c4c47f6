package error

import "errors"

// Dashboard domain errors. Settings and initial balance errors live here as well since
// both are scoped to a single dashboard.
var (
	// ErrDashboardNotFound is returned when a dashboard does not exist.
	ErrDashboardNotFound = errors.New("dashboard not found")

	// ErrDashboardAccessDenied is returned when the dashboard belongs to another user.
	ErrDashboardAccessDenied = errors.New("access to this dashboard is forbidden")

	// ErrDashboardNameRequired is returned when the name is empty after trimming.
	ErrDashboardNameRequired = errors.New("dashboard name is required")

	// ErrDashboardNameTooLong is returned when the name exceeds 100 characters.
	ErrDashboardNameTooLong = errors.New("dashboard name is too long (max 100 characters)")

	// ErrDashboardNameExists is returned when the user already has a dashboard with that name.
	ErrDashboardNameExists = errors.New("a dashboard with this name already exists")

	// ErrInitialBalanceNotFound is returned when no initial balance was set for the dashboard.
	ErrInitialBalanceNotFound = errors.New("initial balance not set for this dashboard")

	// ErrInvalidBalance is returned when a balance is negative or too large.
	ErrInvalidBalance = errors.New("balance out of range")

	// ErrInvalidCurrency is returned when the currency is not supported.
	ErrInvalidCurrency = errors.New("currency must be one of: BRL, USD, EUR")

	// ErrInvalidNotificationTime is returned when the notification time is not HH:MM.
	ErrInvalidNotificationTime = errors.New("notification time must be in HH:MM format")
)

// DashboardErrorCode defines error codes for dashboard errors.
// Format: DSB-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeDashboardNameRequired   DashboardErrorCode = "DSB-010001"
	ErrCodeDashboardNameTooLong    DashboardErrorCode = "DSB-010002"
	ErrCodeInvalidBalance          DashboardErrorCode = "DSB-010003"
	ErrCodeInvalidCurrency         DashboardErrorCode = "DSB-010004"
	ErrCodeInvalidNotificationTime DashboardErrorCode = "DSB-010005"
	ErrCodeInvalidDashboardID      DashboardErrorCode = "DSB-010006"

	// Lookup errors (02XXXX)
	ErrCodeDashboardNotFound      DashboardErrorCode = "DSB-020001"
	ErrCodeInitialBalanceNotFound DashboardErrorCode = "DSB-020002"

	// Conflict and access errors (03XXXX)
	ErrCodeDashboardNameExists   DashboardErrorCode = "DSB-030001"
	ErrCodeDashboardAccessDenied DashboardErrorCode = "DSB-030002"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
