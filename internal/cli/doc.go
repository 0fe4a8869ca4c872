// Package cli renders arithmos results, verify reports and errors for a
// terminal or a pipe, and runs the line-oriented REPL used when standard
// input is not a terminal.
//
// Naming follows three patterns:
//
//   - Display* functions write formatted output to an [io.Writer].
//   - Format* functions return a string and perform no I/O.
//   - Print* functions write informational headers.
package cli
