package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"strings"
)

// ANSI color codes for terminal output.
const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorCyan  = "\033[36m"
	colorWhite = "\033[37m"
	colorGray  = "\033[90m"
	colorBold  = "\033[1m"
)

type palette bool

func (p palette) wrap(code, text string) string {
	if !p {
		return text
	}
	return code + text + colorReset
}

func (p palette) red(s string) string   { return p.wrap(colorRed, s) }
func (p palette) cyan(s string) string  { return p.wrap(colorCyan, s) }
func (p palette) white(s string) string { return p.wrap(colorWhite, s) }
func (p palette) gray(s string) string  { return p.wrap(colorGray, s) }
func (p palette) bold(s string) string  { return p.wrap(colorBold, s) }

// Format returns the error formatted for a terminal. ANSI colors are used
// when color is true.
func (e *Error) Format(color bool) string {
	p := palette(color)
	var b strings.Builder

	b.WriteString("\n")
	if e.Code != "" {
		b.WriteString(p.red(p.bold("ERROR ")))
		b.WriteString(p.white(p.bold(e.Code + ": ")))
	} else {
		b.WriteString(p.red(p.bold("ERROR: ")))
	}
	b.WriteString(p.white(e.Message))
	b.WriteString("\n\n")

	if e.File != "" {
		b.WriteString("  ")
		b.WriteString(p.cyan(e.File))
		b.WriteString("\n\n")
	}

	if e.Detail != "" {
		for _, line := range wrapText(e.Detail, 70) {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if e.Wrapped != nil {
		b.WriteString("  ")
		b.WriteString(p.gray("Cause: "))
		b.WriteString(e.Wrapped.Error())
		b.WriteString("\n\n")
	}

	if e.Suggestion != "" {
		b.WriteString("  ")
		b.WriteString(p.cyan("Hint: "))
		b.WriteString(e.Suggestion)
		b.WriteString("\n\n")
	}

	return b.String()
}

// FormatCompact returns a single-line form suitable for logs.
func (e *Error) FormatCompact() string {
	var b strings.Builder
	if e.File != "" {
		b.WriteString(e.File)
		b.WriteString(": ")
	}
	b.WriteString(e.Error())
	return b.String()
}

// MarshalJSON encodes the error for machine-readable output.
func (e *Error) MarshalJSON() ([]byte, error) {
	out := struct {
		Code       string   `json:"code,omitempty"`
		Category   Category `json:"category"`
		Message    string   `json:"message"`
		Detail     string   `json:"detail,omitempty"`
		File       string   `json:"file,omitempty"`
		Suggestion string   `json:"suggestion,omitempty"`
		Cause      string   `json:"cause,omitempty"`
	}{
		Code:       e.Code,
		Category:   e.Category,
		Message:    e.Message,
		Detail:     e.Detail,
		File:       e.File,
		Suggestion: e.Suggestion,
	}
	if e.Wrapped != nil {
		out.Cause = e.Wrapped.Error()
	}
	return json.Marshal(out)
}

// wrapText wraps text to the specified width.
func wrapText(text string, width int) []string {
	if text == "" {
		return nil
	}
	if len(text) <= width {
		return []string{text}
	}

	var lines []string
	var current strings.Builder
	for _, word := range strings.Fields(text) {
		if current.Len() > 0 && current.Len()+len(word)+1 > width {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}

// Print writes err to w, using Format for *Error values.
func Print(w io.Writer, err error, color bool) {
	var e *Error
	if stderrors.As(err, &e) {
		fmt.Fprint(w, e.Format(color))
		return
	}
	p := palette(color)
	fmt.Fprintf(w, "\n%s %s\n\n", p.red(p.bold("ERROR:")), err.Error())
}
