package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"cscan/internal/diag"
	"cscan/internal/lexer"
	"cscan/internal/source"
	"cscan/internal/token"
	"cscan/internal/trace"
)

// ctxCheckEvery is how many tokens pass between cancellation checks.
const ctxCheckEvery = 1024

// Result describes one scanned input.
type Result struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token // только Tokenize; Scan отдаёт токены в visit
	Bag     *diag.Bag
	Symbols *source.Interner
	// Err is the first lexical error (*lexer.Error), nil for a clean scan.
	Err error
	// Count is the number of tokens produced, EOF excluded.
	Count int
	// Bytes is the number of bytes read from the input.
	Bytes int64
	// Cached is set when TokenizeDir served the result from the disk cache.
	Cached bool
}

// Failed reports whether the scan hit a lexical or I/O error.
func (r *Result) Failed() bool {
	return r.Err != nil || r.Bag.HasErrors()
}

// IsStdinPath reports whether path names standard input.
func IsStdinPath(path string) bool {
	return path == "" || path == "-"
}

// Tokenize scans the file at path ("" or "-" for stdin) and collects the
// tokens, EOF included. An open failure is returned as error and also
// recorded as IO4001 in the result bag.
func Tokenize(ctx context.Context, path string, opts Options) (*Result, error) {
	var tokens []token.Token
	res, err := ScanPath(ctx, path, opts, func(tok token.Token) error {
		tokens = append(tokens, tok)
		return nil
	})
	if res != nil {
		res.Tokens = tokens
	}
	return res, err
}

// ScanPath is Scan over a file path or stdin.
func ScanPath(ctx context.Context, path string, opts Options, visit func(token.Token) error) (*Result, error) {
	fs := source.NewFileSet()
	if IsStdinPath(path) {
		return scanStream(ctx, os.Stdin, fs, fs.AddStdin(), opts, visit)
	}
	r, id, err := fs.Open(path)
	if err != nil {
		id = fs.Add(path, 0)
		return loadFailure(fs, id, opts, err), fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = r.Close() }()
	return scanStream(ctx, r, fs, id, opts, visit)
}

// Scan streams tokens of r to visit, EOF included. name is the display
// path; "" or "-" marks stdin. A visit error stops the scan and is returned.
func Scan(ctx context.Context, r io.Reader, name string, opts Options, visit func(token.Token) error) (*Result, error) {
	fs := source.NewFileSet()
	var id source.FileID
	if IsStdinPath(name) {
		id = fs.AddStdin()
	} else {
		id = fs.AddVirtual(name)
	}
	return scanStream(ctx, r, fs, id, opts, visit)
}

func loadFailure(fs *source.FileSet, id source.FileID, opts Options, err error) *Result {
	bag := diag.NewBag(opts.bagSize())
	bag.Add(diag.ForFile(diag.SevError, diag.IOLoadFileError, id, "failed to load file: "+err.Error()))
	return &Result{FileSet: fs, File: fs.Get(id), Bag: bag, Err: err}
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

func scanStream(ctx context.Context, r io.Reader, fs *source.FileSet, id source.FileID, opts Options, visit func(token.Token) error) (*Result, error) {
	file := fs.Get(id)
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopePass, "scan", trace.CurrentSpan(ctx)).
		WithExtra("file", file.Path)
	phase := opts.Timer.Begin("scan " + file.Path)
	started := time.Now()

	bag := diag.NewBag(opts.bagSize())
	lopts := opts.Lexer
	lopts.Reporter = (&lexer.ReporterAdapter{Bag: bag}).Reporter()
	lopts.Interner = source.NewInternerSize(opts.arenaSize())
	lopts.File = id

	in := &countingReader{r: r}
	lx := lexer.New(in, lopts)
	res := &Result{FileSet: fs, File: file, Bag: bag, Symbols: lx.Symbols()}

	var visitErr error
	for n := 0; ; n++ {
		if n%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				visitErr = err
				break
			}
		}
		tok := lx.Next()
		if tok.Kind != token.EOF {
			trace.Point(tracer, trace.ScopeToken, tok.Kind.String(), tok.Text, span.ID())
		}
		if visit != nil {
			if err := visit(tok); err != nil {
				visitErr = err
				break
			}
		}
		if tok.Kind == token.EOF {
			break
		}
	}

	res.Count, _ = lx.Stats()
	res.Bytes = in.n
	if err := lx.Err(); err != nil {
		res.Err = err
	}
	if lx.HadBOM() {
		file.Flags |= source.FileHadBOM
	}

	note := fmt.Sprintf("%d tokens", res.Count)
	opts.Timer.End(phase, note)
	opts.Timer.Add("files", 1)
	opts.Timer.Add("tokens", int64(res.Count))
	opts.Timer.Add("bytes", res.Bytes)
	if opts.Timings {
		appendTimingDiagnostic(bag, id, timingPayload{Kind: "scan", Path: file.Path, TotalMS: durationMS(time.Since(started))})
	}
	span.WithCount("tokens", res.Count).WithCount("diagnostics", bag.Len()).End(resultDetail(res))

	if visitErr != nil {
		if errors.Is(visitErr, context.Canceled) || errors.Is(visitErr, context.DeadlineExceeded) {
			return res, visitErr
		}
		return res, fmt.Errorf("%s: %w", file.Path, visitErr)
	}
	return res, nil
}

func resultDetail(res *Result) string {
	if res.Err != nil {
		return "error"
	}
	return "ok"
}

func durationMS(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
