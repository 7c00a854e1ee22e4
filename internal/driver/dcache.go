package driver

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"cscan/internal/diag"
	"cscan/internal/lexer"
	"cscan/internal/source"
	"cscan/internal/token"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит результаты сканирования файлов по Digest на диске.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is the msgpack record of one scanned file. Spans are stored
// without their FileID; Get rebinds them to the caller's file.
type DiskPayload struct {
	Schema  uint16
	Tokens  []token.Token
	Diags   []diag.Diagnostic
	Dropped int
	Symbols []string // в порядке интернирования, handle восстанавливаются повторным Intern
	Count   int
	Bytes   int64

	HasErr  bool
	ErrCode diag.Code
	ErrSpan source.Span
	ErrMsg  string
}

// OpenDiskCache initializes a cache under dir, or under
// $XDG_CACHE_HOME/<app> (~/.cache/<app>) when dir is empty.
func OpenDiskCache(app, dir string) (*DiskCache, error) {
	if dir == "" {
		base := os.Getenv("XDG_CACHE_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			base = filepath.Join(home, ".cache")
		}
		dir = filepath.Join(base, app)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := key.String()
	// Для удобства чтения/очистки — подкаталог "tokens/<2 hex>".
	return filepath.Join(c.dir, "tokens", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	payload.Schema = diskCacheSchemaVersion
	if err = msgpack.NewEncoder(f).Encode(payload); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads a payload. A missing entry or an entry written by another
// schema version is a miss, not an error.
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() { _ = f.Close() }()
	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return out.Schema == diskCacheSchemaVersion, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// переименуем каталог и удалим
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return os.MkdirAll(c.dir, 0o755)
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

// resultToPayload snapshots a finished scan.
func resultToPayload(res *Result) *DiskPayload {
	p := &DiskPayload{
		Tokens:  res.Tokens,
		Dropped: res.Bag.Dropped(),
		Count:   res.Count,
		Bytes:   res.Bytes,
	}
	for _, d := range res.Bag.Items() {
		if d.Code != diag.ObsTimings {
			p.Diags = append(p.Diags, d)
		}
	}
	if res.Symbols != nil {
		p.Symbols = res.Symbols.Snapshot()
	}
	var lexErr *lexer.Error
	if errors.As(res.Err, &lexErr) {
		p.HasErr = true
		p.ErrCode = lexErr.Code
		p.ErrSpan = lexErr.Span
		p.ErrMsg = lexErr.Msg
	}
	return p
}

// payloadToResult rebuilds a Result bound to file id of fs. ok is false
// when the symbol table cannot be rebuilt with the current arena size.
func payloadToResult(p *DiskPayload, fs *source.FileSet, id source.FileID, opts Options) (*Result, bool) {
	syms := source.NewInternerSize(opts.arenaSize())
	for _, s := range p.Symbols {
		if _, err := syms.InternString(s); err != nil {
			return nil, false
		}
	}
	bag := diag.NewBag(opts.bagSize())
	for _, d := range p.Diags {
		d.Primary.File = id
		for i := range d.Notes {
			d.Notes[i].Span.File = id
		}
		bag.Add(d)
	}
	bag.AddDropped(p.Dropped)
	tokens := p.Tokens
	for i := range tokens {
		tokens[i].Span.File = id
	}
	res := &Result{
		FileSet: fs,
		File:    fs.Get(id),
		Tokens:  tokens,
		Bag:     bag,
		Symbols: syms,
		Count:   p.Count,
		Bytes:   p.Bytes,
		Cached:  true,
	}
	if p.HasErr {
		sp := p.ErrSpan
		sp.File = id
		res.Err = &lexer.Error{Code: p.ErrCode, Span: sp, Msg: p.ErrMsg}
	}
	return res, true
}
