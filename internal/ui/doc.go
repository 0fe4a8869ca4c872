// Package ui holds the color themes shared by the command-line output and
// the interactive REPL. ANSI codes serve plain writers; lipgloss colors
// serve the bubbletea views.
package ui
