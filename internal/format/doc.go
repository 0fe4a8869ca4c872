// Package format holds presentation helpers shared by the CLI and the
// REPL: durations, digit grouping and progress bars with an ETA.
package format
