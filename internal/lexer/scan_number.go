package lexer

import (
	"fmt"
	"math"

	"cscan/internal/diag"
	"cscan/internal/token"
)

// Поддержка: 42, 1_000, 0x1A/0h1A, 0o17/0q17, 0b101, 0d42, 3.14, 1.5e-2,
// 0x1.8p1, 0b1.1p3. Дробная часть в базе литерала; экспонента `e` (степень
// 10) для десятичных и `p` (степень 2) для остальных. Любая неверная форма
// фатальна: токен не выдаётся.
func (lx *Lexer) scanNumber() (token.Token, bool) {
	start := lx.cursor.Mark()
	fail := func(code diag.Code, format string, args ...any) (token.Token, bool) {
		lx.errLex(code, lx.cursor.SpanFrom(start), fmt.Sprintf(format, args...))
		return token.Token{}, false
	}

	acc := newNumAcc(10)

	// ведущий 0 и база?
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' && isLetter(b1) {
		lx.cursor.Bump()
		lx.cursor.Bump()
		base, known := prefixBase(b1)
		if !known {
			return fail(diag.LexBadPrefix, "invalid literal prefix '0%c'", b1)
		}
		acc = newNumAcc(base)
		n, ok := lx.scanDigits(&acc, false, start)
		if !ok {
			return token.Token{}, false
		}
		if n == 0 {
			return fail(diag.LexBadNumber, "no digits after prefix '0%c'", b1)
		}
	} else if _, ok := lx.scanDigits(&acc, false, start); !ok {
		return token.Token{}, false
	}

	// дробная часть
	if lx.cursor.Peek() == '.' {
		_, b1, ok := lx.cursor.Peek2()
		d, isDigit := digitVal(b1)
		switch {
		case !ok || b1 == '.':
			// `1..5` — диапазон, точка не часть числа
		case isDigit && d < acc.base:
			lx.cursor.Bump() // '.'
			acc.isFloat = true
			if _, ok := lx.scanDigits(&acc, true, start); !ok {
				return token.Token{}, false
			}
		case isDec(b1):
			lx.cursor.Bump()
			lx.cursor.Bump()
			return fail(diag.LexInvalidDigit, "invalid digit %s in %s fraction", describeByte(b1), acc.baseName())
		case isIdentStartByte(b1):
			lx.cursor.Bump()
			lx.cursor.Bump()
			return fail(diag.LexBadNumber, "unexpected %s after '.' in number", describeByte(b1))
		}
	}

	// экспонента
	if acc.isExpMarker(lx.cursor.Peek()) {
		marker := lx.cursor.Bump()
		acc.isFloat = true
		if s := lx.cursor.Peek(); s == '+' || s == '-' {
			lx.cursor.Bump()
			acc.expNeg = s == '-'
		}
		if !isDec(lx.cursor.Peek()) {
			if b := lx.cursor.Peek(); isIdentContinueByte(b) {
				lx.cursor.Bump()
			}
			return fail(diag.LexBadExponent, "exponent '%c' has no digits", marker)
		}
		for {
			b := lx.cursor.Peek()
			if isDec(b) {
				lx.cursor.Bump()
				acc.pushExp(uint64(b - '0'))
				continue
			}
			if b == '_' {
				lx.cursor.Bump()
				continue
			}
			break
		}
		if b := lx.cursor.Peek(); isLetter(b) {
			lx.cursor.Bump()
			return fail(diag.LexBadExponent, "unexpected %s in exponent", describeByte(b))
		}
	}

	// `1.2.3`
	if acc.isFloat && lx.cursor.Peek() == '.' {
		if _, b1, ok := lx.cursor.Peek2(); ok && isDec(b1) {
			lx.cursor.Bump()
			return fail(diag.LexBadNumber, "malformed number: unexpected second '.'")
		}
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.cursor.Captured())
	if !acc.isFloat {
		if acc.lost {
			return fail(diag.LexNumberOverflow, "integer literal %s overflows 64 bits", text)
		}
		return token.Token{Kind: token.IntLit, Span: sp, Text: text, Int: acc.mant}, true
	}
	f := acc.float()
	if math.IsInf(f, 0) {
		return fail(diag.LexNumberOverflow, "float literal %s is out of range", text)
	}
	return token.Token{Kind: token.FloatLit, Span: sp, Text: text, Float: f}, true
}

// scanDigits consumes digits of acc.base and '_' separators. A decimal digit
// or letter outside the alphabet (other than the exponent marker) is fatal.
func (lx *Lexer) scanDigits(acc *numAcc, frac bool, start Mark) (int, bool) {
	n := 0
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '_' {
			lx.cursor.Bump()
			continue
		}
		if d, ok := digitVal(b); ok && d < acc.base {
			lx.cursor.Bump()
			acc.push(d, frac)
			n++
			continue
		}
		if acc.isExpMarker(b) {
			break
		}
		if isDec(b) || isLetter(b) {
			lx.cursor.Bump()
			lx.errLex(diag.LexInvalidDigit, lx.cursor.SpanFrom(start),
				fmt.Sprintf("invalid digit %s in %s literal", describeByte(b), acc.baseName()))
			return n, false
		}
		break
	}
	return n, true
}

// prefixBase maps the letter after a leading '0' to a base.
func prefixBase(b byte) (uint64, bool) {
	switch b {
	case 'x', 'X', 'h', 'H':
		return 16, true
	case 'o', 'O', 'q', 'Q':
		return 8, true
	case 'b', 'B':
		return 2, true
	case 'd', 'D':
		return 10, true
	}
	return 0, false
}
