package lexer

import (
	"errors"
	"fmt"

	"cscan/internal/diag"
	"cscan/internal/source"
	"cscan/internal/token"
)

// scanIdentOrKeyword сканирует [_A-Za-z][_A-Za-z0-9]*.
// Кандидаты до 8 байт упаковываются в слово и сверяются с таблицей
// ключевых слов диалекта; остальное интернируется как Ident.
func (lx *Lexer) scanIdentOrKeyword() (token.Token, bool) {
	start := lx.cursor.Mark()
	n := 0
	for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
		n++
	}
	sp := lx.cursor.SpanFrom(start)
	if lx.cursor.Overflow() {
		// длину проверит Next
		return token.Token{Kind: token.Ident, Span: sp}, true
	}
	lex := lx.cursor.Captured()

	if w, ok := token.PackWord(lex); ok {
		if k, ok := token.LookupWord(lx.opts.Dialect, w); ok {
			return token.Token{Kind: k, Span: sp, Text: string(lex)}, true
		}
	}

	if n > lx.opts.MaxSymbolLen {
		msg := fmt.Sprintf("identifier is %d bytes long, truncated to %d", n, lx.opts.MaxSymbolLen)
		if lx.opts.StrictSymbols {
			lx.errLex(diag.LexSymbolTruncated, sp, msg)
			return token.Token{}, false
		}
		lx.warnLex(diag.LexSymbolTruncated, sp, msg)
		lex = lex[:lx.opts.MaxSymbolLen]
	}

	id, err := lx.syms.Intern(lex)
	if err != nil {
		if errors.Is(err, source.ErrArenaFull) {
			lx.errLex(diag.LexSymbolArenaFull, sp,
				fmt.Sprintf("symbol arena full (%d bytes) while storing %q", lx.syms.Cap(), lex))
		} else {
			lx.errLex(diag.LexSymbolArenaFull, sp, err.Error())
		}
		return token.Token{}, false
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: string(lex), Sym: id}, true
}
