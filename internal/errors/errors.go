// Package errors provides error formatting utilities for the EScript front
// end. It formats errors with source context and a visual caret pointing at
// the error location.
package errors

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-escript/internal/lexer"
)

// SourceError represents a single front-end error with position and context.
type SourceError struct {
	Message string
	Source  string
	File    string
	Pos     lexer.Position
}

// NewSourceError creates a new positioned error.
func NewSourceError(pos lexer.Position, message, source, file string) *SourceError {
	return &SourceError{
		Pos:     pos,
		Message: message,
		Source:  source,
		File:    file,
	}
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	return e.Format(false)
}

// Format formats the error message with source context.
// If color is true, ANSI color codes are used for terminal output.
func (e *SourceError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		sb.WriteString(fmt.Sprintf("Error in %s:%d:%d\n", e.File, e.Pos.Line+1, e.Pos.Column+1))
	} else {
		sb.WriteString(fmt.Sprintf("Error at line %d:%d\n", e.Pos.Line+1, e.Pos.Column+1))
	}

	if ptr := Pointer(e.Source, e.Pos); ptr != "" {
		if color {
			line, caret, _ := strings.Cut(ptr, "\n")
			sb.WriteString(line + "\n")
			sb.WriteString("\033[1;31m" + caret + "\033[0m\n")
		} else {
			sb.WriteString(ptr + "\n")
		}
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

// Pointer renders the two-line source pointer for a position: the offending
// source line followed by a caret row beneath the offending column. Returns
// "" when the position's line cannot be found in the source.
func Pointer(source string, pos lexer.Position) string {
	line := sourceLine(source, pos.Line)
	if line == "" {
		return ""
	}
	col := pos.Column
	if col > len(line) {
		col = len(line)
	}
	return line + "\n" + strings.Repeat(" ", col) + "^"
}

// sourceLine extracts the given 0-indexed line from the source.
func sourceLine(source string, line int) string {
	lines := strings.Split(source, "\n")
	if line < 0 || line >= len(lines) {
		return ""
	}
	return strings.TrimRight(lines[line], "\r")
}
