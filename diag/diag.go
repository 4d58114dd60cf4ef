// Package diag provides the shared diagnostics facility used by every stage
// of the LIFT front end.
//
// The lexer, parser and checker all append to one [Collection] so that a
// single compilation pass over a source unit yields every problem in the
// unit, sorted by source position. No stage stops at its first error: the
// lexer resynchronises after a bad character, the parser skips to the next
// statement boundary, and the checker substitutes the error type and keeps
// going. Diagnostics, not panics, cross stage boundaries.
package diag

import (
	"fmt"
	"sort"

	"github.com/liftlang/lift/ast"
)

// Severity indicates whether a diagnostic is an error or a warning.
// Warnings never cause checking to be considered failed.
type Severity int

const (
	Error Severity = iota
	Warning
)

// String returns "error" or "warning".
func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}

// Code classifies a diagnostic by the rule that produced it. Codes are part
// of the stable contract with reporting tools; messages are not.
type Code string

const (
	// Lexer.
	InvalidChar          Code = "InvalidChar"
	UnterminatedString   Code = "UnterminatedString"
	UnterminatedComment  Code = "UnterminatedComment"

	// Parser.
	UnexpectedToken    Code = "UnexpectedToken"
	MalformedLiteral   Code = "MalformedLiteral"
	ReservedWord       Code = "ReservedWord"
	MisplacedWildcard  Code = "MisplacedWildcard"

	// Checker.
	UndefinedReference     Code = "UndefinedReference"
	DuplicateDefinition    Code = "DuplicateDefinition"
	TypeMismatch           Code = "TypeMismatch"
	ImmutableAssignment    Code = "ImmutableAssignment"
	InvalidAssignTarget    Code = "InvalidAssignTarget"
	ArityMismatch          Code = "ArityMismatch"
	NotCallable            Code = "NotCallable"
	MissingField           Code = "MissingField"
	DuplicateField         Code = "DuplicateField"
	UnknownField           Code = "UnknownField"
	MatchArmTypeMismatch   Code = "MatchArmTypeMismatch"
	NonExhaustiveMatch     Code = "NonExhaustiveMatch"
	NotIterable            Code = "NotIterable"
	ReturnOutsideFunction  Code = "ReturnOutsideFunction"
)

// Diagnostic is a single message produced by the front end. The field shape
// is the stable contract consumed by reporting and editor tooling.
type Diagnostic struct {
	Code     Code
	Severity Severity
	Message  string
	Span     ast.Span
	Unit     string // name of the source unit the diagnostic belongs to
}

// String renders the diagnostic in the conventional unit:line:col form.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s",
		d.Unit, d.Span.Start.Line, d.Span.Start.Col, d.Severity, d.Message)
}

// Collection accumulates diagnostics for one source unit. A Collection is
// created once per pipeline run and handed to each stage in turn; it is not
// safe for concurrent use, matching the single-threaded pipeline.
type Collection struct {
	unit  string
	diags []Diagnostic
}

// NewCollection creates an empty Collection for the named source unit.
func NewCollection(unit string) *Collection {
	return &Collection{unit: unit}
}

// Errorf appends an error diagnostic with a formatted message.
func (c *Collection) Errorf(code Code, span ast.Span, format string, args ...any) {
	c.diags = append(c.diags, Diagnostic{
		Code:     code,
		Severity: Error,
		Message:  fmt.Sprintf(format, args...),
		Span:     span,
		Unit:     c.unit,
	})
}

// Warnf appends a warning diagnostic with a formatted message.
func (c *Collection) Warnf(code Code, span ast.Span, format string, args ...any) {
	c.diags = append(c.diags, Diagnostic{
		Code:     code,
		Severity: Warning,
		Message:  fmt.Sprintf(format, args...),
		Span:     span,
		Unit:     c.unit,
	})
}

// HasErrors reports whether any collected diagnostic has Error severity.
func (c *Collection) HasErrors() bool {
	for _, d := range c.diags {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Len returns the number of collected diagnostics, warnings included.
func (c *Collection) Len() int { return len(c.diags) }

// Diagnostics returns the collected diagnostics sorted by source position
// (byte offset, then severity so errors precede warnings at one position).
// The sort is stable, so diagnostics at the same position and severity stay
// in the order the stages reported them.
func (c *Collection) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(c.diags))
	copy(out, c.diags)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Span.Start.Offset != out[j].Span.Start.Offset {
			return out[i].Span.Start.Offset < out[j].Span.Start.Offset
		}
		return out[i].Severity < out[j].Severity
	})
	return out
}
