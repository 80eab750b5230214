// Package werrors formats the two error kinds the language surfaces to
// an embedder: LexerError (ill-formed source text) and RuntimeError
// (failures during AST evaluation). Both carry a source position and
// format with a caret pointing at the offending column, in the style
// of the teacher's compiler-error formatter.
package werrors

import (
	"fmt"
	"strings"

	"github.com/wisplang/wisp/internal/token"
)

// SourceError is the shared shape behind LexerError and RuntimeError:
// a message anchored to a position, optionally rendered against the
// original source text for a pretty, caret-annotated report.
type SourceError struct {
	Message string
	Pos     token.Position
	Source  string
	File    string
}

func (e *SourceError) Error() string { return e.Format(false) }

// Format renders the error with a file:line:col header, the offending
// source line, and a caret under the column. With color set, the caret
// and message are wrapped in ANSI bold/red.
func (e *SourceError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "%s:%d:%d: ", e.File, e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "line %d:%d: ", e.Pos.Line, e.Pos.Column)
	}
	sb.WriteString(e.Message)

	if line := e.sourceLine(e.Pos.Line); line != "" {
		sb.WriteString("\n")
		prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(prefix)+max0(e.Pos.Column-1)))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
	}
	return sb.String()
}

func (e *SourceError) sourceLine(n int) string {
	if e.Source == "" || n < 1 {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if n > len(lines) {
		return ""
	}
	return lines[n-1]
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// LexerError reports ill-formed source text: bad indent size,
// unterminated string, unrecognized escape, unexpected end-of-line
// inside a string literal, or a solitary '!'. It is fatal to lexing.
type LexerError struct {
	SourceError
}

// NewLexerError builds a LexerError at pos with message.
func NewLexerError(pos token.Position, message string) *LexerError {
	return &LexerError{SourceError{Message: message, Pos: pos}}
}

// RuntimeError reports a failure during AST evaluation: unknown
// variable, missing method of required arity, type mismatch, or
// division by zero. It is fatal to the current execution.
type RuntimeError struct {
	SourceError
}

// NewRuntimeError builds a RuntimeError at pos with message.
func NewRuntimeError(pos token.Position, message string) *RuntimeError {
	return &RuntimeError{SourceError{Message: message, Pos: pos}}
}

// NewRuntimeErrorf is the fmt.Sprintf-shaped convenience form used
// throughout the evaluator.
func NewRuntimeErrorf(pos token.Position, format string, args ...any) *RuntimeError {
	return NewRuntimeError(pos, fmt.Sprintf(format, args...))
}
