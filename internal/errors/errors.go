package apperrors

import (
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
const (
	ExitSuccess          = 0 // Indicates successful execution.
	ExitErrorGeneric     = 1 // Indicates a generic error.
	ExitErrorInput       = 2 // Indicates the release could not be read or decoded.
	ExitErrorDataQuality = 3 // Indicates the release data cannot be compared (e.g. currency mismatch).
	ExitErrorConfig      = 4 // Indicates a configuration error.
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// InputError reports that the release input could not be opened, read or
// decoded.
type InputError struct {
	// Source names the input (a file path, or "stdin").
	Source string
	// Cause is the underlying read or decode error.
	Cause error
}

// Error returns a message naming the source and the cause.
func (e InputError) Error() string {
	return fmt.Sprintf("reading release from %s: %v", e.Source, e.Cause)
}

// Unwrap returns the underlying cause.
func (e InputError) Unwrap() error { return e.Cause }

// DataQualityError wraps an indicator error caused by inconsistent release
// data. The caller decides whether to skip, log or abort.
type DataQualityError struct {
	// Indicator is the ID of the indicator that rejected the data.
	Indicator string
	// Cause is the indicator error.
	Cause error
}

// Error returns the message of the underlying cause.
func (e DataQualityError) Error() string { return e.Cause.Error() }

// Unwrap returns the underlying cause.
func (e DataQualityError) Unwrap() error { return e.Cause }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// It returns nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var (
		configErr  ConfigError
		inputErr   InputError
		qualityErr DataQualityError
	)
	switch {
	case errors.As(err, &configErr):
		return ExitErrorConfig
	case errors.As(err, &inputErr):
		return ExitErrorInput
	case errors.As(err, &qualityErr):
		return ExitErrorDataQuality
	default:
		return ExitErrorGeneric
	}
}
