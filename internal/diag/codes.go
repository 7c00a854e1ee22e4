package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexUnterminatedChar   Code = 1003
	LexBadNumber          Code = 1004
	LexTokenTooLong       Code = 1005
	LexInvalidDigit       Code = 1006
	LexBadExponent        Code = 1007
	LexBadPrefix          Code = 1008
	LexNumberOverflow     Code = 1009
	LexSymbolTruncated    Code = 1010
	LexSymbolArenaFull    Code = 1011

	// I/O
	IOLoadFileError Code = 4001
	IOReadError     Code = 4002

	// Наблюдаемость
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:           "Unknown error",
		LexInfo:               "Lexical information",
		LexUnknownChar:        "Unknown character",
		LexUnterminatedString: "Unterminated string literal",
		LexUnterminatedChar:   "Unterminated character literal",
		LexBadNumber:          "Malformed number literal",
		LexTokenTooLong:       "Token too long",
		LexInvalidDigit:       "Invalid digit for base",
		LexBadExponent:        "Malformed exponent",
		LexBadPrefix:          "Invalid literal prefix",
		LexNumberOverflow:     "Number literal overflows 64 bits",
		LexSymbolTruncated:    "Symbol truncated",
		LexSymbolArenaFull:    "Symbol arena full",
		IOLoadFileError:       "I/O load file error",
		IOReadError:           "I/O read error",
		ObsInfo:               "Observability information",
		ObsTimings:            "Pipeline timings",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
