package error

import "errors"

// Tracker view errors raised while building calendars, summaries, reports and exports.
var (
	// ErrInvalidMonth is returned when a month parameter is not YYYY-MM.
	ErrInvalidMonth = errors.New("invalid month, expected YYYY-MM")

	// ErrInvalidDay is returned when a day parameter is not YYYY-MM-DD.
	ErrInvalidDay = errors.New("invalid date, expected YYYY-MM-DD")

	// ErrInvalidPeriodType is returned when a summary period type is not weekly or monthly.
	ErrInvalidPeriodType = errors.New("period type must be: weekly or monthly")

	// ErrInvalidPeriodID is returned when applies_to does not match the period type.
	ErrInvalidPeriodID = errors.New("invalid period identifier for the period type")

	// ErrInvalidReportRange is returned when the report range is unknown.
	ErrInvalidReportRange = errors.New("range must be: thisMonth, last30days, last90days, thisYear, allTime, or custom")

	// ErrInvalidCustomRange is returned when a custom range is missing bounds or is inverted.
	ErrInvalidCustomRange = errors.New("custom range requires start and end with start <= end")

	// ErrInvalidExportFormat is returned when the export format is not csv or json.
	ErrInvalidExportFormat = errors.New("format must be: csv or json")
)

// TrackerErrorCode defines error codes for tracker view errors.
// Format: TRK-XXYYYY where XX is category and YYYY is specific error.
type TrackerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMonth        TrackerErrorCode = "TRK-010001"
	ErrCodeInvalidDay          TrackerErrorCode = "TRK-010002"
	ErrCodeInvalidPeriodType   TrackerErrorCode = "TRK-010003"
	ErrCodeInvalidPeriodID     TrackerErrorCode = "TRK-010004"
	ErrCodeInvalidReportRange  TrackerErrorCode = "TRK-010005"
	ErrCodeInvalidCustomRange  TrackerErrorCode = "TRK-010006"
	ErrCodeInvalidExportFormat TrackerErrorCode = "TRK-010007"
)

// TrackerError represents a tracker view error with code and message.
type TrackerError struct {
	Code    TrackerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TrackerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TrackerError) Unwrap() error {
	return e.Err
}

// NewTrackerError creates a new TrackerError with the given code and message.
func NewTrackerError(code TrackerErrorCode, message string, err error) *TrackerError {
	return &TrackerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
