// Package diag defines the positioned diagnostics reported by the Vira
// scanner and parser.
//
// A Diagnostic wraps one of the sentinel errors declared by the lexer or
// parser packages, so callers can classify it with errors.Is:
//
//	_, diags := parser.Parse(src)
//	for _, d := range diags {
//		if errors.Is(d, parser.ErrMissingArrow) {
//			...
//		}
//	}
package diag

import (
	"fmt"
	"strings"
)

// Severity tells which phase of the front end produced a diagnostic.
type Severity uint8

// List of severities
const (
	SeverityLexical Severity = iota + 1
	SeveritySyntax
)

var severityNames = map[Severity]string{
	SeverityLexical: "lexical error",
	SeveritySyntax:  "syntax error",
}

func (s Severity) String() string {
	if v, ok := severityNames[s]; ok {
		return v
	}
	return "error"
}

// Diagnostic is an error attached to a position in the source.
type Diagnostic struct {
	Line     int
	Column   int
	Message  string
	Severity Severity

	// Err is the sentinel that classifies the diagnostic.
	Err error
}

// New creates a diagnostic.
func New(sev Severity, err error, line, col int, message string) *Diagnostic {
	return &Diagnostic{
		Line:     line,
		Column:   col,
		Message:  message,
		Severity: sev,
		Err:      err,
	}
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%d:%d: %v: %s", d.Line, d.Column, d.Severity, d.Message)
}

// Unwrap returns the sentinel error.
func (d *Diagnostic) Unwrap() error {
	return d.Err
}

// List is an ordered list of diagnostics.
type List []*Diagnostic

// Add appends a diagnostic to the list.
func (l *List) Add(d *Diagnostic) {
	*l = append(*l, d)
}

// Len returns the number of diagnostics.
func (l List) Len() int {
	return len(l)
}

func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	lines := make([]string, 0, len(l))
	for _, d := range l {
		lines = append(lines, d.Error())
	}
	return fmt.Sprintf("%d errors:\n%s", len(l), strings.Join(lines, "\n"))
}

// Unwrap exposes the diagnostics to errors.Is and errors.As.
func (l List) Unwrap() []error {
	errs := make([]error, 0, len(l))
	for _, d := range l {
		errs = append(errs, d)
	}
	return errs
}

// Err returns nil for an empty list and the list itself otherwise.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}
