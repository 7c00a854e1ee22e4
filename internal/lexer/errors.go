package lexer

import (
	"fmt"

	"cscan/internal/diag"
	"cscan/internal/source"
)

// Error is the first error-level diagnostic of a scan, returned by Lexer.Err.
type Error struct {
	Code diag.Code
	Span source.Span
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: line %d: %s", e.Code.ID(), e.Span.Line, e.Msg)
}

// Line returns the line the offending lexeme starts on.
func (e *Error) Line() uint32 { return e.Span.Line }

// errLex reports a diagnostic at sp. Errors are remembered for Err and stop
// a fail-fast scan.
func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	diag.ReportError(lx.opts.Reporter, code, sp, msg).Emit()
	if lx.err == nil {
		lx.err = &Error{Code: code, Span: sp, Msg: msg}
	}
	lx.errors++
}

func (lx *Lexer) warnLex(code diag.Code, sp source.Span, msg string) {
	diag.ReportWarning(lx.opts.Reporter, code, sp, msg).Emit()
}
