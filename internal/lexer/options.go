package lexer

import (
	"cscan/internal/diag"
	"cscan/internal/dialect"
	"cscan/internal/source"
)

const (
	// DefaultMaxSymbolLen is the longest identifier kept verbatim.
	DefaultMaxSymbolLen = 32
	// DefaultMaxTokenLen bounds the length of any single lexeme.
	DefaultMaxTokenLen = 64 * 1024
)

type Options struct {
	Reporter diag.Reporter // может быть nil — диагностики теряются, Err() всё равно работает
	Dialect  dialect.Kind
	File     source.FileID
	// Interner receives identifiers. A fresh one is created when nil.
	Interner *source.Interner

	MaxSymbolLen  int // 0 → DefaultMaxSymbolLen
	MaxTokenLen   int // 0 → DefaultMaxTokenLen
	StrictSymbols bool
	// KeepGoing skips to the next whitespace after an error instead of
	// stopping the scan.
	KeepGoing bool
}

func (o Options) withDefaults() Options {
	o.Dialect = o.Dialect.Normalize()
	if o.MaxSymbolLen <= 0 {
		o.MaxSymbolLen = DefaultMaxSymbolLen
	}
	if o.MaxTokenLen <= 0 {
		o.MaxTokenLen = DefaultMaxTokenLen
	}
	if o.Interner == nil {
		o.Interner = source.NewInterner()
	}
	return o
}
