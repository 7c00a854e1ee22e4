package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token. The lexer never hands it out.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	kwBegin
	KwAnd      // and
	KwBreak    // break
	KwCase     // case
	KwClass    // class
	KwConst    // const
	KwContinue // continue
	KwDo       // do
	KwElse     // else
	KwEnum     // enum
	KwFalse    // false
	KwFor      // for
	KwFunc     // func
	KwIf       // if
	KwInf      // inf
	KwLet      // let
	KwNan      // nan
	KwNew      // new
	KwNot      // not
	KwOr       // or
	KwReturn   // return
	KwStatic   // static
	KwStruct   // struct
	KwSwitch   // switch
	KwTrue     // true
	KwUnion    // union
	KwVirtual  // virtual
	KwVolatile // volatile
	KwWhile    // while
	KwEnd      // end (classic end-of-program marker)
	KwInclude  // include
	KwGlobal   // global
	KwInline   // inline
	KwObject   // object
	KwOf       // of
	KwPacket   // packet
	KwWhere    // where
	KwXor      // xor
	kwEnd

	litBegin
	// IntLit is an integer literal; Token.Int holds its value.
	IntLit
	// FloatLit is a floating point literal; Token.Float holds its value.
	FloatLit
	// StringLit is a double-quoted literal; Token.Text holds the raw lexeme.
	StringLit
	// CharLit is a single-quoted literal; Token.Text holds the raw lexeme.
	CharLit
	litEnd

	opBegin
	Plus           // +
	PlusPlus       // ++
	PlusAssign     // +=
	Minus          // -
	MinusMinus     // --
	MinusAssign    // -=
	Arrow          // ->
	Star           // *
	StarAssign     // *=
	Slash          // /
	SlashAssign    // /=
	Percent        // %
	PercentAssign  // %=
	Amp            // &
	AmpAssign      // &=
	Pipe           // |
	PipeAssign     // |=
	Tilde          // ~ (xor)
	TildeAssign    // ~=
	Caret          // ^ (address-of)
	Bang           // !
	BangEq         // != or <> (extended dialect)
	Assign         // =
	EqEq           // ==
	Lt             // <
	LtEq           // <=
	Shl            // <<
	ShlAssign      // <<=
	Gt             // >
	GtEq           // >=
	Shr            // >>
	ShrAssign      // >>=
	Dot            // .
	DotDot         // ..
	DotDotDot      // ...
	Colon          // :
	ColonAssign    // :=
	Question       // ?
	QuestionAssign // ?=
	opEnd

	punctBegin
	Semicolon // ;
	LParen    // (
	RParen    // )
	punctEnd
)

var kindNames = [...]string{
	Invalid: "Invalid",
	EOF:     "EOF",
	Ident:   "Ident",

	KwAnd:      "KwAnd",
	KwBreak:    "KwBreak",
	KwCase:     "KwCase",
	KwClass:    "KwClass",
	KwConst:    "KwConst",
	KwContinue: "KwContinue",
	KwDo:       "KwDo",
	KwElse:     "KwElse",
	KwEnum:     "KwEnum",
	KwFalse:    "KwFalse",
	KwFor:      "KwFor",
	KwFunc:     "KwFunc",
	KwIf:       "KwIf",
	KwInf:      "KwInf",
	KwLet:      "KwLet",
	KwNan:      "KwNan",
	KwNew:      "KwNew",
	KwNot:      "KwNot",
	KwOr:       "KwOr",
	KwReturn:   "KwReturn",
	KwStatic:   "KwStatic",
	KwStruct:   "KwStruct",
	KwSwitch:   "KwSwitch",
	KwTrue:     "KwTrue",
	KwUnion:    "KwUnion",
	KwVirtual:  "KwVirtual",
	KwVolatile: "KwVolatile",
	KwWhile:    "KwWhile",
	KwEnd:      "KwEnd",
	KwInclude:  "KwInclude",
	KwGlobal:   "KwGlobal",
	KwInline:   "KwInline",
	KwObject:   "KwObject",
	KwOf:       "KwOf",
	KwPacket:   "KwPacket",
	KwWhere:    "KwWhere",
	KwXor:      "KwXor",

	IntLit:    "IntLit",
	FloatLit:  "FloatLit",
	StringLit: "StringLit",
	CharLit:   "CharLit",

	Plus:           "Plus",
	PlusPlus:       "PlusPlus",
	PlusAssign:     "PlusAssign",
	Minus:          "Minus",
	MinusMinus:     "MinusMinus",
	MinusAssign:    "MinusAssign",
	Arrow:          "Arrow",
	Star:           "Star",
	StarAssign:     "StarAssign",
	Slash:          "Slash",
	SlashAssign:    "SlashAssign",
	Percent:        "Percent",
	PercentAssign:  "PercentAssign",
	Amp:            "Amp",
	AmpAssign:      "AmpAssign",
	Pipe:           "Pipe",
	PipeAssign:     "PipeAssign",
	Tilde:          "Tilde",
	TildeAssign:    "TildeAssign",
	Caret:          "Caret",
	Bang:           "Bang",
	BangEq:         "BangEq",
	Assign:         "Assign",
	EqEq:           "EqEq",
	Lt:             "Lt",
	LtEq:           "LtEq",
	Shl:            "Shl",
	ShlAssign:      "ShlAssign",
	Gt:             "Gt",
	GtEq:           "GtEq",
	Shr:            "Shr",
	ShrAssign:      "ShrAssign",
	Dot:            "Dot",
	DotDot:         "DotDot",
	DotDotDot:      "DotDotDot",
	Colon:          "Colon",
	ColonAssign:    "ColonAssign",
	Question:       "Question",
	QuestionAssign: "QuestionAssign",

	Semicolon: "Semicolon",
	LParen:    "LParen",
	RParen:    "RParen",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsKeyword reports whether k is a reserved word of any dialect.
func (k Kind) IsKeyword() bool { return k > kwBegin && k < kwEnd }

// IsLiteral reports whether k is a numeric, string or char literal.
func (k Kind) IsLiteral() bool { return k > litBegin && k < litEnd }

// IsOperator reports whether k is an operator.
func (k Kind) IsOperator() bool { return k > opBegin && k < opEnd }

// IsPunct reports whether k is punctuation (`;`, `(`, `)`).
func (k Kind) IsPunct() bool { return k > punctBegin && k < punctEnd }
