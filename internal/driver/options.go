package driver

import (
	"cscan/internal/config"
	"cscan/internal/lexer"
	"cscan/internal/observ"
	"cscan/internal/source"
)

// Options configures a driver run. Reporter, Interner and File of Lexer
// are ignored: every scan gets its own.
type Options struct {
	Lexer          lexer.Options
	ArenaSize      int
	MaxDiagnostics int
	// Extensions selects files for TokenizeDir, with the leading dot.
	Extensions []string
	// Cache, when non-nil, stores TokenizeDir results by content digest.
	Cache *DiskCache
	// Timer receives per-scan phases and token/byte counters.
	Timer *observ.Timer
	// Timings appends an OBS6001 diagnostic with the scan duration.
	Timings bool
}

// OptionsFromConfig maps cscan.toml settings onto driver options.
func OptionsFromConfig(cfg *config.Config, maxDiagnostics int) Options {
	return Options{
		Lexer:          cfg.LexerOptions(),
		ArenaSize:      cfg.Scan.ArenaSize,
		MaxDiagnostics: maxDiagnostics,
		Extensions:     append([]string(nil), cfg.Files.Extensions...),
	}
}

func (o Options) bagSize() int {
	if o.MaxDiagnostics <= 0 {
		return 100
	}
	return o.MaxDiagnostics
}

func (o Options) arenaSize() int {
	if o.ArenaSize <= 0 {
		return source.DefaultArenaSize
	}
	return o.ArenaSize
}
