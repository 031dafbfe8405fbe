// Package errors formats fplc's structured error kinds, grounded on the
// teacher's internal/errors CompilerError: a source-position-carrying
// error with a single-line rendering (for TRY/CATCH, per spec.md §7) and
// an optional caret-pointer rendering (for CLI/debug use).
package errors

import (
	"fmt"
	"strings"

	"github.com/cwbudde/fplc/internal/lexer"
)

// Kind is one of the nine error kinds named in spec.md §7.
type Kind string

const (
	LexError        Kind = "LexError"
	ParseError      Kind = "ParseError"
	NameError       Kind = "NameError"
	TypeError       Kind = "TypeError"
	ArityError      Kind = "ArityError"
	IndexError      Kind = "IndexError"
	ArithmeticError Kind = "ArithmeticError"
	DomainError     Kind = "DomainError"
	ImportError     Kind = "ImportError"
)

// ScriptError is a structured, positioned interpreter error. It is the
// error type returned by the parser and evaluator (the lexer reports its
// own lexer.LexError), and it is what TRY/CATCH converts to a bound
// String (spec.md §7).
type ScriptError struct {
	Kind    Kind
	Message string
	Pos     lexer.Position
	HasPos  bool
}

// New creates a ScriptError with no position information (used when none
// is available, e.g. some parse-time checks).
func New(kind Kind, format string, args ...any) *ScriptError {
	return &ScriptError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewAt creates a ScriptError carrying a source position.
func NewAt(kind Kind, pos lexer.Position, format string, args ...any) *ScriptError {
	return &ScriptError{Kind: kind, Message: fmt.Sprintf(format, args...), Pos: pos, HasPos: true}
}

// Error implements the error interface with a single-line
// `kind: message (line:col)` rendering. TRY/CATCH does not bind this
// text; it binds CatchMessage.
func (e *ScriptError) Error() string {
	if e.HasPos {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Pos)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// CatchMessage is the text bound to the CATCH(name) variable: the error
// message alone, without the kind prefix, so that substring-matching
// tests like `"Division by zero"` (spec.md §8) see exactly that text.
func (e *ScriptError) CatchMessage() string {
	return e.Message
}

// FormatWithSource renders a caret-pointer view of the error against the
// original source text, in the style of the teacher's
// internal/errors.CompilerError.Format — used by the CLI for uncaught
// errors, never by TRY/CATCH.
func FormatWithSource(e *ScriptError, source, file string) string {
	var sb strings.Builder
	if file != "" {
		fmt.Fprintf(&sb, "%s in %s:%d:%d\n", e.Kind, file, e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "%s at line %d:%d\n", e.Kind, e.Pos.Line, e.Pos.Column)
	}

	lines := strings.Split(source, "\n")
	if e.HasPos && e.Pos.Line >= 1 && e.Pos.Line <= len(lines) {
		line := lines[e.Pos.Line-1]
		prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(prefix)+e.Pos.Column-1))
		sb.WriteString("^\n")
	}
	sb.WriteString(e.Message)
	return sb.String()
}
