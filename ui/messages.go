package ui

import (
	"fmt"
	"io"
)

// Success prints a green "✅" outcome line.
func Success(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, SuccessStyle.Render("✅ "+fmt.Sprintf(format, args...)))
}

// Failure prints a red "❌" outcome line.
func Failure(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, ErrorStyle.Render("❌ "+fmt.Sprintf(format, args...)))
}

// Warning prints a "⚠️" line for skipped entries.
func Warning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, WarnStyle.Render("⚠️  "+fmt.Sprintf(format, args...)))
}

// Info prints an informational line.
func Info(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, InfoStyle.Render(fmt.Sprintf(format, args...)))
}

// Processing announces a long-running step.
func Processing(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, ProcessingStyle.Render(fmt.Sprintf(format, args...)))
}

// Header prints the application banner.
func Header(w io.Writer, title string) {
	fmt.Fprintln(w, HeaderStyle.Render(title))
}
