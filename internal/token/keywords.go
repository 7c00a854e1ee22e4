package token

import (
	"encoding/binary"

	"cscan/internal/dialect"
)

// MaxKeywordLen is the longest keyword spelling; longer candidates are
// always identifiers.
const MaxKeywordLen = 8

var commonKeywords = map[string]Kind{
	"and":      KwAnd,
	"break":    KwBreak,
	"case":     KwCase,
	"class":    KwClass,
	"const":    KwConst,
	"continue": KwContinue,
	"do":       KwDo,
	"else":     KwElse,
	"enum":     KwEnum,
	"false":    KwFalse,
	"for":      KwFor,
	"func":     KwFunc,
	"if":       KwIf,
	"inf":      KwInf,
	"let":      KwLet,
	"nan":      KwNan,
	"new":      KwNew,
	"not":      KwNot,
	"or":       KwOr,
	"return":   KwReturn,
	"static":   KwStatic,
	"struct":   KwStruct,
	"switch":   KwSwitch,
	"true":     KwTrue,
	"union":    KwUnion,
	"virtual":  KwVirtual,
	"volatile": KwVolatile,
	"while":    KwWhile,
}

var classicKeywords = map[string]Kind{
	"end":     KwEnd,
	"include": KwInclude,
}

var extendedKeywords = map[string]Kind{
	"global": KwGlobal,
	"inline": KwInline,
	"object": KwObject,
	"of":     KwOf,
	"packet": KwPacket,
	"where":  KwWhere,
	"xor":    KwXor,
}

// packed word -> kind, по одной таблице на диалект
var (
	classicWords  = buildWords(commonKeywords, classicKeywords)
	extendedWords = buildWords(commonKeywords, extendedKeywords)
)

func buildWords(sets ...map[string]Kind) map[uint64]Kind {
	out := make(map[uint64]Kind)
	for _, set := range sets {
		for s, k := range set {
			w, ok := PackWord([]byte(s))
			if !ok {
				panic("keyword " + s + " is longer than 8 bytes")
			}
			out[w] = k
		}
	}
	return out
}

// PackWord packs b into a little-endian uint64, zero-extended. It returns
// false for empty input or input longer than MaxKeywordLen.
func PackWord(b []byte) (uint64, bool) {
	if len(b) == 0 || len(b) > MaxKeywordLen {
		return 0, false
	}
	var buf [8]byte
	copy(buf[:], b)
	return binary.LittleEndian.Uint64(buf[:]), true
}

// LookupWord classifies a packed word under the given dialect.
func LookupWord(d dialect.Kind, w uint64) (Kind, bool) {
	var k Kind
	var ok bool
	switch d.Normalize() {
	case dialect.Extended:
		k, ok = extendedWords[w]
	default:
		k, ok = classicWords[w]
	}
	return k, ok
}

// LookupKeyword возвращает тип и bool если это ключевое слово диалекта.
// Ключевые слова регистрозависимые.
func LookupKeyword(d dialect.Kind, ident string) (Kind, bool) {
	w, ok := PackWord([]byte(ident))
	if !ok {
		return Ident, false
	}
	return LookupWord(d, w)
}

// Keywords returns the keyword spellings of a dialect.
func Keywords(d dialect.Kind) []string {
	out := make([]string, 0, len(commonKeywords)+len(extendedKeywords))
	for s := range commonKeywords {
		out = append(out, s)
	}
	extra := classicKeywords
	if d.Normalize() == dialect.Extended {
		extra = extendedKeywords
	}
	for s := range extra {
		out = append(out, s)
	}
	return out
}
