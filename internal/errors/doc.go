// Package apperrors defines the error types shared by the arithmos front
// ends and the exit codes they map to.
//
// Library packages (bigint, numeric, rational) return their own sentinels;
// the operations layer wraps those in the types below so the command can
// choose an exit status with ExitCode. Every wrapping type implements
// Unwrap, so errors.Is and errors.As see the original cause.
package apperrors
