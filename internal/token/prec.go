package token

// Prec is the binding class of an operator, ordered loosest to tightest.
type Prec uint8

const (
	PrecNone Prec = iota
	PrecAssign
	PrecCompare
	PrecRange
	PrecBitOr
	PrecBitXor
	PrecBitAnd
	PrecShift
	PrecAdditive
	PrecMultiplicative
	PrecPrefix
)

var precNames = [...]string{
	PrecNone:           "none",
	PrecAssign:         "assign",
	PrecCompare:        "compare",
	PrecRange:          "range",
	PrecBitOr:          "bitor",
	PrecBitXor:         "bitxor",
	PrecBitAnd:         "bitand",
	PrecShift:          "shift",
	PrecAdditive:       "additive",
	PrecMultiplicative: "multiplicative",
	PrecPrefix:         "prefix",
}

func (p Prec) String() string {
	if int(p) < len(precNames) {
		return precNames[p]
	}
	return "prec(?)"
}

// PrecOf returns the precedence class of k. Non-operators, `->`, `.` and
// `:` are PrecNone.
func PrecOf(k Kind) Prec {
	switch k {
	case Assign, PlusAssign, MinusAssign, StarAssign, SlashAssign, PercentAssign,
		AmpAssign, PipeAssign, TildeAssign, ShlAssign, ShrAssign, ColonAssign, QuestionAssign:
		return PrecAssign
	case EqEq, BangEq, Lt, LtEq, Gt, GtEq:
		return PrecCompare
	case DotDot, DotDotDot:
		return PrecRange
	case Pipe:
		return PrecBitOr
	case Tilde:
		return PrecBitXor
	case Amp:
		return PrecBitAnd
	case Shl, Shr:
		return PrecShift
	case Plus, Minus:
		return PrecAdditive
	case Star, Slash, Percent:
		return PrecMultiplicative
	case Question, Bang, Caret, PlusPlus, MinusMinus:
		return PrecPrefix
	default:
		return PrecNone
	}
}
