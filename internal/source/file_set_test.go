package source

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetOpenStreamsContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.ci")
	if err := os.WriteFile(path, []byte("let x := 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSetWithBase(dir)
	rc, id, err := fs.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "let x := 1\n" {
		t.Errorf("content = %q", data)
	}
	if got := fs.PathOf(id, "relative"); got != "main.ci" {
		t.Errorf("relative path = %q", got)
	}
	if got, ok := fs.GetLatest(path); !ok || got != id {
		t.Errorf("GetLatest = %d, %v", got, ok)
	}
}

func TestFileSetOpenMissing(t *testing.T) {
	fs := NewFileSet()
	if _, _, err := fs.Open(filepath.Join(t.TempDir(), "nope.ci")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if fs.Len() != 0 {
		t.Errorf("failed open must not register a file")
	}
}

func TestFileSetOpenDirectory(t *testing.T) {
	fs := NewFileSet()
	if _, _, err := fs.Open(t.TempDir()); err == nil {
		t.Fatal("expected error when opening a directory")
	}
}

func TestFileSetStdin(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddStdin()
	f := fs.Get(id)
	if !f.IsStdin() {
		t.Fatal("stdin flag missing")
	}
	for _, mode := range []string{"absolute", "relative", "basename", "auto"} {
		if got := fs.PathOf(id, mode); got != StdinName {
			t.Errorf("PathOf(%s) = %q", mode, got)
		}
	}
	if fs.Get(FileID(42)) != nil {
		t.Error("Get must return nil for unknown ids")
	}
	if fs.PathOf(FileID(42), "auto") != "?" {
		t.Error("unknown id must render as ?")
	}
}
