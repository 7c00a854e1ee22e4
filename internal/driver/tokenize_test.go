package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cscan/internal/diag"
	"cscan/internal/dialect"
	"cscan/internal/lexer"
	"cscan/internal/observ"
	"cscan/internal/testkit"
	"cscan/internal/token"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestTokenizeFile(t *testing.T) {
	path := writeSource(t, t.TempDir(), "main.ci", "let n = 0b101;\nn += 1.5\n")
	timer := observ.NewTimer()
	res, err := Tokenize(context.Background(), path, Options{Timer: timer, Timings: true})
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	want := []token.Kind{token.KwLet, token.Ident, token.Assign, token.IntLit, token.Semicolon,
		token.Ident, token.PlusAssign, token.FloatLit, token.EOF}
	got := kinds(res.Tokens)
	if len(got) != len(want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
	if res.Tokens[3].Int != 5 || res.Tokens[7].Float != 1.5 || res.Tokens[5].Span.Line != 2 {
		t.Fatalf("payloads: %+v %+v", res.Tokens[3], res.Tokens[7])
	}
	if res.Tokens[1].Sym != res.Tokens[5].Sym || res.Symbols.Len() != 1 {
		t.Fatalf("identifier n interned twice")
	}
	if res.Failed() || res.Count != 8 || res.Bytes != 24 {
		t.Fatalf("failed=%v count=%d bytes=%d", res.Failed(), res.Count, res.Bytes)
	}
	if res.Bag.Len() != 1 || res.Bag.Items()[0].Code != diag.ObsTimings {
		t.Fatalf("expected a single timing diagnostic, got %+v", res.Bag.Items())
	}
	if timer.Counter("tokens") != 8 || timer.Counter("files") != 1 {
		t.Fatalf("timer counters: %s", timer.Summary())
	}
}

func TestTokenizeTestdataFixtures(t *testing.T) {
	root := filepath.Join("..", "..", "testdata")
	tests := []struct {
		file string
		d    dialect.Kind
	}{
		{"classic/numbers.ci", dialect.Classic},
		{"extended/packet.ci", dialect.Extended},
		{"extended/packet.ci", dialect.Classic},
	}
	for _, tt := range tests {
		t.Run(tt.d.String()+"/"+tt.file, func(t *testing.T) {
			res, err := Tokenize(context.Background(), filepath.Join(root, tt.file),
				Options{Lexer: lexer.Options{Dialect: tt.d}})
			if err != nil {
				t.Fatalf("Tokenize: %v", err)
			}
			if res.Failed() {
				t.Fatalf("fixture must scan cleanly: %v %+v", res.Err, res.Bag.Items())
			}
			if err := testkit.CheckTokenInvariants(res.Tokens, res.File.ID); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestTokenizeMissingFile(t *testing.T) {
	res, err := Tokenize(context.Background(), filepath.Join(t.TempDir(), "nope.ci"), Options{})
	if err == nil {
		t.Fatal("expected an open error")
	}
	if res == nil || !res.Failed() {
		t.Fatalf("result must carry the failure: %+v", res)
	}
	d, ok := res.Bag.FirstError()
	if !ok || d.Code != diag.IOLoadFileError {
		t.Fatalf("first error = %+v", d)
	}
}

func TestScanReaderFailFast(t *testing.T) {
	var seen []token.Kind
	res, err := Scan(context.Background(), strings.NewReader("x = 0o79 + y"), "mem.ci",
		Options{Lexer: lexer.Options{Dialect: dialect.Classic}},
		func(tok token.Token) error {
			seen = append(seen, tok.Kind)
			return nil
		})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	var lexErr *lexer.Error
	if !errors.As(res.Err, &lexErr) || lexErr.Code != diag.LexInvalidDigit {
		t.Fatalf("Err = %v", res.Err)
	}
	// x, =, затем EOF: ошибочный литерал не выдаётся
	if len(seen) != 3 || seen[2] != token.EOF {
		t.Fatalf("seen = %v", seen)
	}
	if res.File.Path != "mem.ci" {
		t.Fatalf("path = %q", res.File.Path)
	}
}

func TestScanStopsOnVisitError(t *testing.T) {
	stop := errors.New("enough")
	n := 0
	_, err := Scan(context.Background(), strings.NewReader("a b c d"), "-", Options{}, func(token.Token) error {
		n++
		if n == 2 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) || n != 2 {
		t.Fatalf("err = %v after %d tokens", err, n)
	}
	if !strings.HasPrefix(err.Error(), "<stdin>: ") {
		t.Fatalf("error lacks the display path: %v", err)
	}
}

func TestScanCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Scan(ctx, strings.NewReader("a"), "x.ci", Options{}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
}
