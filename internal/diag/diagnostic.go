package diag

import (
	"cscan/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

// IsError reports whether d stops a fail-fast scan.
func (d Diagnostic) IsError() bool { return d.Severity >= SevError }
