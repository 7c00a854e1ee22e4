package diag

import "cscan/internal/source"

// New builds a diagnostic without notes.
func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{Severity: sev, Code: code, Primary: primary, Message: msg}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

// ForFile anchors a diagnostic to a whole stream (line 0), as I/O failures
// and per-file timings are.
func ForFile(sev Severity, code Code, file source.FileID, msg string) Diagnostic {
	return New(sev, code, source.Span{File: file}, msg)
}

// WithNote appends a note; the receiver is copied, so chained calls on a
// shared value do not alias.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	notes := make([]Note, len(d.Notes), len(d.Notes)+1)
	copy(notes, d.Notes)
	d.Notes = append(notes, Note{Span: sp, Msg: msg})
	return d
}
