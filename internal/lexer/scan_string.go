package lexer

import (
	"cscan/internal/diag"
	"cscan/internal/token"
)

// scanQuoted распознаёт границы "..." и '...'. Содержимое не
// интерпретируется: '\' просто пропускает следующий байт. Перевод строки
// или EOF до закрывающей кавычки — ошибка.
func (lx *Lexer) scanQuoted(quote byte, kind token.Kind, code diag.Code, what string) (token.Token, bool) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // открывающая кавычка
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch b {
		case quote:
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: kind, Span: sp, Text: string(lx.cursor.Captured())}, true
		case '\\':
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
		case '\n':
			lx.errLex(code, lx.cursor.SpanFrom(start), "newline in "+what+" literal")
			return token.Token{}, false
		default:
			lx.cursor.Bump()
		}
	}
	lx.errLex(code, lx.cursor.SpanFrom(start), "unterminated "+what+" literal")
	return token.Token{}, false
}
