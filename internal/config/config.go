// Package config loads cscan.toml, the optional per-project scanner settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"cscan/internal/dialect"
	"cscan/internal/lexer"
	"cscan/internal/source"
)

// FileName is the name searched for by Discover.
const FileName = "cscan.toml"

// Config mirrors cscan.toml. Zero fields mean "use the default".
type Config struct {
	// Path is the file the values came from; empty for pure defaults.
	Path string `toml:"-"`

	Scan  ScanConfig  `toml:"scan"`
	Files FilesConfig `toml:"files"`
	Cache CacheConfig `toml:"cache"`
}

type ScanConfig struct {
	Dialect       string `toml:"dialect"`
	MaxSymbolLen  int    `toml:"max_symbol_len"`
	ArenaSize     int    `toml:"arena_size"`
	MaxTokenLen   int    `toml:"max_token_len"`
	StrictSymbols bool   `toml:"strict_symbols"`
	KeepGoing     bool   `toml:"keep_going"`
}

type FilesConfig struct {
	// Extensions selects the files scanned by tokenize-dir.
	Extensions []string `toml:"extensions"`
}

// CacheConfig controls the on-disk token cache of tokenize-dir.
type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"` // пусто → $XDG_CACHE_HOME/cscan
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Scan: ScanConfig{
			Dialect:      dialect.Default.String(),
			MaxSymbolLen: lexer.DefaultMaxSymbolLen,
			ArenaSize:    source.DefaultArenaSize,
			MaxTokenLen:  lexer.DefaultMaxTokenLen,
		},
		Files: FilesConfig{Extensions: []string{".ci"}},
	}
}

// Discover walks from startDir up to the filesystem root looking for
// cscan.toml.
func Discover(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads explicit (when non-empty) or the discovered cscan.toml on top
// of Default. A missing explicit file is an error; no file found by
// discovery is not.
func Load(explicit, startDir string) (Config, error) {
	path := explicit
	if path == "" {
		found, ok, err := Discover(startDir)
		if err != nil {
			return Config{}, err
		}
		if !ok {
			return Default(), nil
		}
		path = found
	}
	return LoadFile(path)
}

// LoadFile decodes one file on top of Default and validates the result.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and normalizes extensions to a leading dot.
func (c *Config) Validate() error {
	if _, err := dialect.Parse(c.Scan.Dialect); err != nil {
		return fmt.Errorf("[scan].dialect: %w", err)
	}
	if c.Scan.MaxSymbolLen < 1 {
		return fmt.Errorf("[scan].max_symbol_len must be positive, got %d", c.Scan.MaxSymbolLen)
	}
	if c.Scan.ArenaSize < 2*source.SymbolStride {
		return fmt.Errorf("[scan].arena_size must be at least %d, got %d", 2*source.SymbolStride, c.Scan.ArenaSize)
	}
	if c.Scan.MaxTokenLen < 1 {
		return fmt.Errorf("[scan].max_token_len must be positive, got %d", c.Scan.MaxTokenLen)
	}
	if len(c.Files.Extensions) == 0 {
		return errors.New("[files].extensions must not be empty")
	}
	for i, ext := range c.Files.Extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" || ext == "." {
			return fmt.Errorf("[files].extensions: empty extension at index %d", i)
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Files.Extensions[i] = ext
	}
	return nil
}

// DialectKind returns the parsed dialect. Validate has already rejected
// bad values, so errors fall back to the default.
func (c *Config) DialectKind() dialect.Kind {
	k, err := dialect.Parse(c.Scan.Dialect)
	if err != nil {
		return dialect.Default
	}
	return k
}

// LexerOptions builds lexer options without a reporter or interner; those
// belong to one scan and are set by the driver.
func (c *Config) LexerOptions() lexer.Options {
	return lexer.Options{
		Dialect:       c.DialectKind(),
		MaxSymbolLen:  c.Scan.MaxSymbolLen,
		MaxTokenLen:   c.Scan.MaxTokenLen,
		StrictSymbols: c.Scan.StrictSymbols,
		KeepGoing:     c.Scan.KeepGoing,
	}
}
