package lexer

import (
	"cscan/internal/diag"
	"cscan/internal/token"
)

// Жадность: сначала 3-символьные, затем 2-символьные, затем 1-символьные.
// `<>` — не-равно только в расширенном диалекте; в классическом это `<` и `>`.
func (lx *Lexer) scanOperatorOrPunct() (token.Token, bool) {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) (token.Token, bool) {
		return token.Token{
			Kind: k,
			Span: lx.cursor.SpanFrom(start),
			Text: string(lx.cursor.Captured()),
		}, true
	}

	switch {
	case lx.try3('<', '<', '='):
		return emit(token.ShlAssign)
	case lx.try3('>', '>', '='):
		return emit(token.ShrAssign)
	case lx.try3('.', '.', '.'):
		return emit(token.DotDotDot)
	case lx.try2('.', '.'):
		return emit(token.DotDot)
	case lx.try2('<', '<'):
		return emit(token.Shl)
	case lx.try2('>', '>'):
		return emit(token.Shr)
	case lx.opts.Dialect.HasDiamondNotEqual() && lx.try2('<', '>'):
		return emit(token.BangEq)
	case lx.try2('-', '>'):
		return emit(token.Arrow)
	case lx.try2('+', '+'):
		return emit(token.PlusPlus)
	case lx.try2('-', '-'):
		return emit(token.MinusMinus)
	case lx.try2(':', '='):
		return emit(token.ColonAssign)
	}

	// X и X= для остальных
	ch := lx.cursor.Bump()
	if plain, assign, ok := compoundPair(ch); ok {
		if lx.cursor.Eat('=') {
			return emit(assign)
		}
		return emit(plain)
	}
	switch ch {
	case '^':
		return emit(token.Caret)
	case '.':
		return emit(token.Dot)
	case ':':
		return emit(token.Colon)
	case ';':
		return emit(token.Semicolon)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	}
	// isOperatorStart не пропускает сюда другие байты
	lx.errLex(diag.LexUnknownChar, lx.cursor.SpanFrom(start), "unknown character "+describeByte(ch))
	return token.Token{}, false
}

// compoundPair maps a byte that may be followed by '=' to its plain and
// assigning kinds.
func compoundPair(ch byte) (plain, assign token.Kind, ok bool) {
	switch ch {
	case '+':
		return token.Plus, token.PlusAssign, true
	case '-':
		return token.Minus, token.MinusAssign, true
	case '*':
		return token.Star, token.StarAssign, true
	case '/':
		return token.Slash, token.SlashAssign, true
	case '%':
		return token.Percent, token.PercentAssign, true
	case '&':
		return token.Amp, token.AmpAssign, true
	case '|':
		return token.Pipe, token.PipeAssign, true
	case '~':
		return token.Tilde, token.TildeAssign, true
	case '?':
		return token.Question, token.QuestionAssign, true
	case '!':
		return token.Bang, token.BangEq, true
	case '=':
		return token.Assign, token.EqEq, true
	case '<':
		return token.Lt, token.LtEq, true
	case '>':
		return token.Gt, token.GtEq, true
	}
	return token.Invalid, token.Invalid, false
}
