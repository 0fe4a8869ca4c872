// Package logging provides the structured logging interface used by the
// arithmos front ends. It hides the zerolog backend behind a small Logger
// interface and offers a standard-library adapter for plain line output.
package logging
