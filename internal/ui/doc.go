// Package ui provides theme and color support for the application's user interface.
// It defines color schemes, ANSI escape code helpers and lipgloss badges used
// to render indicator outcomes consistently in the CLI.
package ui
