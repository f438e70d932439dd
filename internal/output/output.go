// Package output provides terminal output utilities for drillbur-setup.
//
// Step lines use ASCII/ANSI coloring gated on TTY detection; the final
// install summary is rendered as a bordered box. Spinners are safe to use
// from the goroutine that created them.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ANSI color codes for step status display.
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorGray   = "\033[90m"
)

// IsColorEnabled returns true if ANSI color codes should be emitted.
// It checks that os.Stdout is a TTY and that the NO_COLOR env var is not set.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// colorize wraps text in the given ANSI color code if color is enabled,
// otherwise returns the plain text.
func colorize(color, text string) string {
	if IsColorEnabled() {
		return color + text + colorReset
	}
	return text
}

// writerIsTTY returns true if the given writer exposes an Fd() method
// (e.g. *os.File) and that fd is a terminal. Falls back to false for
// plain io.Writer values such as *bytes.Buffer.
func writerIsTTY(w io.Writer) bool {
	type fder interface {
		Fd() uintptr
	}
	if f, ok := w.(fder); ok {
		return isatty.IsTerminal(f.Fd())
	}
	return false
}

// StatusSymbol returns the glyph for a step status ("ok", "warn", "fail"),
// colorized when the terminal supports it.
func StatusSymbol(status string) string {
	switch status {
	case "ok":
		return colorize(colorGreen, "✓")
	case "warn":
		return colorize(colorYellow, "⚠")
	case "fail":
		return colorize(colorRed, "✗")
	default:
		return colorize(colorGray, "•")
	}
}

// StepLine formats one installer step result for display.
func StepLine(status, step, message string) string {
	if message == "" {
		return fmt.Sprintf("%s %s", StatusSymbol(status), step)
	}
	return fmt.Sprintf("%s %s: %s", StatusSymbol(status), step, message)
}

// Dim renders de-emphasized text (hints, paths).
func Dim(text string) string {
	return colorize(colorGray, text)
}
