// Package tui is the interactive arithmos REPL: a bubbletea program with a
// scrolling transcript, an input line with history recall, and a status
// header showing heap usage and the last evaluation time.
package tui
