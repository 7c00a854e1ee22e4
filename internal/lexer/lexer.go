package lexer

import (
	"fmt"
	"io"
	"iter"

	"cscan/internal/diag"
	"cscan/internal/source"
	"cscan/internal/token"
)

// Lexer turns a byte stream into tokens, one per Next call. A Lexer owns its
// cursor and is not safe for concurrent use.
type Lexer struct {
	cursor *Cursor
	opts   Options
	syms   *source.Interner

	done   bool   // после EOF, `end` или фатальной ошибки отдаём только EOF
	err    *Error // первая ошибка
	errors int
	count  int
}

// New creates a lexer reading from r.
func New(r io.Reader, opts Options) *Lexer {
	opts = opts.withDefaults()
	c := NewCursor(r, opts.File)
	c.SetCaptureLimit(opts.MaxTokenLen)
	return &Lexer{
		cursor: c,
		opts:   opts,
		syms:   opts.Interner,
	}
}

// Next возвращает следующий токен. После EOF всегда возвращает EOF.
// Malformed lexemes are reported and never returned.
func (lx *Lexer) Next() token.Token {
	for {
		if lx.done {
			return lx.eofToken()
		}

		lx.skipWhitespace()
		if lx.readFailed() || lx.cursor.EOF() {
			lx.done = true
			continue
		}

		tok, ok := lx.scanToken()
		if ok && lx.cursor.Overflow() {
			lx.errLex(diag.LexTokenTooLong, tok.Span,
				fmt.Sprintf("token exceeds %d bytes", lx.opts.MaxTokenLen))
			ok = false
		}
		lx.cursor.StopCapture()
		if lx.readFailed() {
			lx.done = true
			continue
		}
		if ok {
			lx.count++
			if tok.Kind == token.KwEnd {
				lx.done = true
			}
			return tok
		}
		if !lx.opts.KeepGoing {
			lx.done = true
			continue
		}
		lx.skipToWhitespace()
	}
}

// All yields tokens lazily until EOF (the EOF token itself is not yielded).
// The sequence shares the lexer's state and cannot be restarted.
func (lx *Lexer) All() iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for {
			tok := lx.Next()
			if tok.Kind == token.EOF || !yield(tok) {
				return
			}
		}
	}
}

// Err returns the first error of the scan as *Error, or nil.
func (lx *Lexer) Err() error {
	if lx.err == nil {
		return nil
	}
	return lx.err
}

// Symbols returns the interner identifiers were stored in.
func (lx *Lexer) Symbols() *source.Interner { return lx.syms }

// Line returns the current line of the underlying cursor.
func (lx *Lexer) Line() uint32 { return lx.cursor.Line() }

// Stats reports how many tokens were produced and how many errors were hit.
func (lx *Lexer) Stats() (tokens, errors int) { return lx.count, lx.errors }

// HadBOM reports whether the stream started with a UTF-8 BOM.
func (lx *Lexer) HadBOM() bool { return lx.cursor.HadBOM() }

// scanToken dispatches on the first significant byte.
func (lx *Lexer) scanToken() (token.Token, bool) {
	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch):
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '"':
		return lx.scanQuoted('"', token.StringLit, diag.LexUnterminatedString, "string")
	case ch == '\'':
		return lx.scanQuoted('\'', token.CharLit, diag.LexUnterminatedChar, "character")
	case isOperatorStart(ch):
		return lx.scanOperatorOrPunct()
	default:
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		lx.errLex(diag.LexUnknownChar, lx.cursor.SpanFrom(start), "unknown character "+describeByte(ch))
		return token.Token{}, false
	}
}

// readFailed reports a pending read error once and stops the scan.
func (lx *Lexer) readFailed() bool {
	err := lx.cursor.Err()
	if err == nil {
		return false
	}
	if lx.err == nil || lx.err.Code != diag.IOReadError {
		sp := lx.emptySpan()
		lx.errLex(diag.IOReadError, sp, fmt.Sprintf("read error: %v", err))
	}
	return true
}

func (lx *Lexer) eofToken() token.Token {
	return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
}

func (lx *Lexer) emptySpan() source.Span {
	off := lx.cursor.Off()
	return source.Span{File: lx.opts.File, Start: off, End: off, Line: lx.cursor.Line()}
}
