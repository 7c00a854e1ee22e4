package testkit

import (
	"fmt"

	"cscan/internal/source"
	"cscan/internal/token"
)

// CheckTokenInvariants runs a minimal set of invariants on a finished token
// stream of one file:
// 1) every span points at file, has Start <= End and does not overlap the
// previous token
// 2) line numbers never decrease and start at 1
// 3) only the last token is EOF; every other token is non-empty
// 4) payloads match kinds: identifiers are interned, keywords and
// operators carry no symbol
func CheckTokenInvariants(tokens []token.Token, file source.FileID) error {
	if len(tokens) == 0 {
		return fmt.Errorf("empty stream: EOF missing")
	}
	var prevEnd, prevLine uint32
	for i, tok := range tokens {
		sp := tok.Span
		if sp.File != file {
			return fmt.Errorf("token %d (%s): file %d, want %d", i, tok.Kind, sp.File, file)
		}
		if sp.Start > sp.End {
			return fmt.Errorf("token %d (%s): inverted span %v", i, tok.Kind, sp)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("token %d (%s): span %v overlaps previous end %d", i, tok.Kind, sp, prevEnd)
		}
		if sp.Line < max(prevLine, 1) {
			return fmt.Errorf("token %d (%s): line %d after line %d", i, tok.Kind, sp.Line, prevLine)
		}
		prevEnd, prevLine = sp.End, sp.Line

		last := i == len(tokens)-1
		if tok.Kind == token.EOF {
			if !last {
				return fmt.Errorf("token %d: EOF before the end of the stream", i)
			}
			continue
		}
		if last {
			return fmt.Errorf("stream ends with %s, not EOF", tok.Kind)
		}
		if sp.Empty() {
			return fmt.Errorf("token %d (%s): empty span", i, tok.Kind)
		}
		switch {
		case tok.Kind == token.Ident:
			if tok.Sym == source.NoSymbol {
				return fmt.Errorf("token %d: identifier %q without symbol", i, tok.Text)
			}
		case tok.Kind == token.Invalid:
			return fmt.Errorf("token %d: invalid token emitted", i)
		case tok.Sym != source.NoSymbol:
			return fmt.Errorf("token %d (%s): unexpected symbol %d", i, tok.Kind, tok.Sym)
		}
	}
	return nil
}
