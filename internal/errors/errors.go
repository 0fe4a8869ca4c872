package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Process exit codes returned by the arithmos command.
const (
	ExitSuccess       = 0   // Evaluation completed.
	ExitErrorGeneric  = 1   // Unclassified failure.
	ExitErrorTimeout  = 2   // The --timeout deadline expired.
	ExitErrorMismatch = 3   // Two verify backends disagreed on a result.
	ExitErrorConfig   = 4   // Invalid flags, environment or config file.
	ExitErrorOverflow = 5   // A fixed-width result did not fit its type.
	ExitErrorCanceled = 130 // Interrupted by SIGINT or SIGTERM.
)

// ConfigError reports an invalid flag, environment variable or config file
// entry. The command cannot start until it is fixed.
type ConfigError struct {
	Message string
}

func (e ConfigError) Error() string { return e.Message }

// NewConfigError returns a ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A ConfigError carrying the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// CalculationError wraps a failure raised while an operation was running,
// such as a division by zero or a zero modulus.
type CalculationError struct {
	// Operation is the registry name of the failing operation, if known.
	Operation string
	Cause     error
}

// Error returns the cause's message, prefixed by the operation name when
// one is set.
func (e CalculationError) Error() string {
	if e.Operation == "" {
		return e.Cause.Error()
	}
	return e.Operation + ": " + e.Cause.Error()
}

// Unwrap returns the underlying cause.
func (e CalculationError) Unwrap() error { return e.Cause }

// TimeoutError reports that an operation did not finish before its deadline.
type TimeoutError struct {
	Operation string
	Limit     time.Duration
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// ValidationError reports a malformed operand. Field names the argument
// (for example "a" or "exponent") and Message says what is wrong with it.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// OverflowError reports that a fixed-width operation produced a result
// that cannot be represented in its type. Arbitrary-precision operations
// never return it.
type OverflowError struct {
	Operation string
}

func (e OverflowError) Error() string {
	return fmt.Sprintf("%s: result overflows 64 bits", e.Operation)
}

// MemoryError reports that the estimated size of a result exceeds the
// configured limit, so the operation was refused before allocating.
type MemoryError struct {
	Operation string
	// Requested and Limit are byte counts.
	Requested uint64
	Limit     uint64
}

func (e MemoryError) Error() string {
	return fmt.Sprintf("%s: result needs about %d bytes, limit is %d", e.Operation, e.Requested, e.Limit)
}

// WrapError annotates err with a formatted message using %w, so errors.Is
// and errors.As still see the original.
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// IsContextError reports whether err is a context cancellation or an
// expired deadline.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCode maps err to the process exit status.
//
// Parameters:
//   - err: The error returned by a command, possibly wrapped.
//
// Returns:
//   - int: ExitSuccess for nil, ExitErrorConfig for usage and operand
//     errors, ExitErrorTimeout, ExitErrorCanceled, ExitErrorOverflow, or
//     ExitErrorGeneric for anything else.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var (
		cfgErr      ConfigError
		timeoutErr  TimeoutError
		overflowErr OverflowError
		validErr    ValidationError
	)
	switch {
	case errors.As(err, &cfgErr), errors.As(err, &validErr):
		return ExitErrorConfig
	case errors.As(err, &timeoutErr), errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case errors.As(err, &overflowErr):
		return ExitErrorOverflow
	default:
		return ExitErrorGeneric
	}
}
