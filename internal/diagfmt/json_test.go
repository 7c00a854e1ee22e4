package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"cscan/internal/diag"
	"cscan/internal/source"
)

func TestJSONDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("/work/src/test.ci")

	bag := diag.NewBag(2)
	bag.Add(diag.NewError(diag.LexUnterminatedString, source.Span{File: fileID, Start: 8, End: 20, Line: 2},
		"unterminated string literal").
		WithNote(source.Span{File: fileID, Start: 8, End: 9, Line: 2}, "string starts here"))
	bag.Add(diag.New(diag.SevWarning, diag.LexSymbolTruncated, source.Span{File: fileID, Start: 30, End: 70, Line: 3},
		"identifier truncated"))
	bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{File: fileID, Line: 4}, "dropped by the limit"))

	tests := []struct {
		name      string
		opts      JSONOpts
		count     int
		dropped   int
		withNotes bool
	}{
		{"all", JSONOpts{PathMode: PathModeBasename, IncludeNotes: true}, 2, 1, true},
		{"no notes", JSONOpts{PathMode: PathModeBasename}, 2, 1, false},
		{"max", JSONOpts{PathMode: PathModeBasename, Max: 1}, 1, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := JSON(&buf, bag, fs, tt.opts); err != nil {
				t.Fatalf("JSON() error: %v", err)
			}
			var out DiagnosticsOutput
			if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
				t.Fatalf("invalid JSON output: %v\n%s", err, buf.String())
			}
			if out.Count != tt.count || out.Dropped != tt.dropped {
				t.Fatalf("count=%d dropped=%d, want %d/%d", out.Count, out.Dropped, tt.count, tt.dropped)
			}
			first := out.Diagnostics[0]
			if first.Severity != "ERROR" || first.Code != "LEX1002" {
				t.Errorf("first = %+v", first)
			}
			if first.Location.File != "test.ci" || first.Location.Line != 2 || first.Location.StartByte != 8 || first.Location.EndByte != 20 {
				t.Errorf("location = %+v", first.Location)
			}
			if got := len(first.Notes) > 0; got != tt.withNotes {
				t.Errorf("notes present = %v, want %v", got, tt.withNotes)
			}
		})
	}
}

func TestJSONNilBag(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, nil, nil, JSONOpts{}); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"diagnostics": []`)) {
		t.Fatalf("got %s", buf.String())
	}
}
