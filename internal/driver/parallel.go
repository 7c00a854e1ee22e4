package driver

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"cscan/internal/source"
	"cscan/internal/token"
	"cscan/internal/trace"
)

// Status is the per-file state reported by TokenizeDir.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusQueued:
		return "queued"
	case StatusWorking:
		return "scanning"
	case StatusDone:
		return "done"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Event is a progress notification of TokenizeDir. File is empty for
// events about the whole run.
type Event struct {
	File   string
	Status Status
	Tokens int
	Cached bool
}

// EventSink receives progress events. It is called from worker goroutines
// and must be safe for concurrent use.
type EventSink func(Event)

// ListSourceFiles возвращает отсортированный список файлов с одним из
// расширений exts в директории dir (рекурсивно).
func ListSourceFiles(dir string, exts []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if hasExtension(path, exts) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

func hasExtension(path string, exts []string) bool {
	ext := filepath.Ext(path)
	for _, want := range exts {
		if ext == want {
			return true
		}
	}
	return false
}

// TokenizeDir токенизирует все исходники в директории параллельно.
// Results follow the sorted file order; per-file failures stay inside
// their Result, only cancellation or a walk error is returned.
func TokenizeDir(ctx context.Context, dir string, opts Options, jobs int, sink EventSink) (*source.FileSet, []*Result, error) {
	exts := opts.Extensions
	if len(exts) == 0 {
		exts = []string{".ci"}
	}
	files, err := ListSourceFiles(dir, exts)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// FileSet не потокобезопасен: регистрируем всё до запуска воркеров.
	ids := make([]source.FileID, len(files))
	for i, path := range files {
		ids[i] = fileSet.Add(path, 0)
		emit(sink, Event{File: path, Status: StatusQueued})
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	tracer := trace.FromContext(ctx)
	dirSpan := trace.Begin(tracer, trace.ScopePass, "tokenize-dir", trace.CurrentSpan(ctx)).
		WithCount("files", len(files))
	ctx = trace.WithSpan(ctx, dirSpan)

	// Индексы уникальны для каждой горутины, мьютекс не нужен.
	results := make([]*Result, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			emit(sink, Event{File: path, Status: StatusWorking})
			fileSpan := trace.Begin(tracer, trace.ScopeFile, path, dirSpan.ID())
			res, err := tokenizeOne(trace.WithSpan(gctx, fileSpan), fileSet, ids[i], path, opts)
			if err != nil {
				fileSpan.End("canceled")
				return err
			}
			results[i] = res
			status := StatusDone
			if res.Failed() {
				status = StatusError
			}
			fileSpan.WithCount("tokens", res.Count).End(status.String())
			emit(sink, Event{File: path, Status: status, Tokens: res.Count, Cached: res.Cached})
			return nil
		})
	}

	err = g.Wait()
	dirSpan.End("")
	return fileSet, results, err
}

func emit(sink EventSink, ev Event) {
	if sink != nil {
		sink(ev)
	}
}

// tokenizeOne scans one registered file, going through the disk cache when
// one is configured. Open and read failures become IO diagnostics.
func tokenizeOne(ctx context.Context, fileSet *source.FileSet, id source.FileID, path string, opts Options) (*Result, error) {
	// #nosec G304 -- path comes from walking the requested directory
	f, err := os.Open(path)
	if err != nil {
		return loadFailure(fileSet, id, opts, err), nil
	}
	defer func() { _ = f.Close() }()

	var key Digest
	if opts.Cache != nil {
		key, err = cacheKey(f, opts)
		if err != nil {
			return loadFailure(fileSet, id, opts, err), nil
		}
		var payload DiskPayload
		if ok, err := opts.Cache.Get(key, &payload); err == nil && ok {
			if res, ok := payloadToResult(&payload, fileSet, id, opts); ok {
				opts.Timer.Add("cache_hits", 1)
				return res, nil
			}
		}
	}

	var tokens []token.Token
	res, err := scanStream(ctx, f, fileSet, id, opts, func(tok token.Token) error {
		tokens = append(tokens, tok)
		return nil
	})
	if err != nil {
		return nil, err
	}
	res.Tokens = tokens

	if opts.Cache != nil {
		if err := opts.Cache.Put(key, resultToPayload(res)); err != nil {
			trace.Point(trace.FromContext(ctx), trace.ScopeFile, "cache-put", err.Error(), trace.CurrentSpan(ctx))
		}
	}
	return res, nil
}

// cacheKey hashes the whole file and rewinds it for scanning.
func cacheKey(f *os.File, opts Options) (Digest, error) {
	key, err := contentDigest(f, opts.fingerprint())
	if err != nil {
		return Digest{}, fmt.Errorf("hash %s: %w", f.Name(), err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return Digest{}, fmt.Errorf("rewind %s: %w", f.Name(), err)
	}
	return key, nil
}
