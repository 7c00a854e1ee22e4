package token

import (
	"cscan/internal/source"
)

// Token represents a single source token with its location and payload.
type Token struct {
	Kind  Kind
	Span  source.Span
	Text  string
	Sym   source.SymbolID // Ident only
	Int   uint64          // IntLit only
	Float float64         // FloatLit only
}

// IsLiteral reports whether the token is a numeric, string or char literal.
func (t Token) IsLiteral() bool { return t.Kind.IsLiteral() }

// IsOperator reports whether the token is an operator.
func (t Token) IsOperator() bool { return t.Kind.IsOperator() }

// IsPunct reports whether the token is punctuation.
func (t Token) IsPunct() bool { return t.Kind.IsPunct() }

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool { return t.Kind.IsOperator() || t.Kind.IsPunct() }

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsEOF reports whether the token terminates the stream.
func (t Token) IsEOF() bool { return t.Kind == EOF }

// Prec returns the precedence class of an operator token.
func (t Token) Prec() Prec { return PrecOf(t.Kind) }
