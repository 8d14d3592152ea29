package lexer

import "fmt"

// DiagnosticCode classifies recovered scanning conditions.
type DiagnosticCode int

const (
	// UnrecognizedSpan marks input that matched no eligible rule at its
	// position. The span was skipped and scanning continued.
	UnrecognizedSpan DiagnosticCode = iota

	// UnterminatedRegion marks a scene argument list or template still open
	// when its enclosing boundary was reached.
	UnterminatedRegion
)

func (c DiagnosticCode) String() string {
	switch c {
	case UnrecognizedSpan:
		return "unrecognized-span"
	case UnterminatedRegion:
		return "unterminated-region"
	default:
		return fmt.Sprintf("DiagnosticCode(%d)", int(c))
	}
}

// Diagnostic reports a recovered scanning condition. Diagnostics are
// advisory: the token stream is always produced in full, and in-progress
// script text is expected to produce them.
type Diagnostic struct {
	Code    DiagnosticCode `json:"code"`
	Span    Span           `json:"span"`
	Message string         `json:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: %s: %s", d.Span.Start.Line, d.Span.Start.Column, d.Code, d.Message)
}
