package diag

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"cscan/internal/source"
)

type shortLine struct {
	sev  Severity
	code string
	path string
	line uint32
	off  uint32
	msg  string
	note bool
}

// FormatShort renders diagnostics one per line as
// "<severity> <code> <path>:<line> <message>", sorted by path, line and
// offset. Notes follow their diagnostic when includeNotes is set.
// Paths are rendered relative to the FileSet base directory.
func FormatShort(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if len(diags) == 0 {
		return ""
	}
	lines := make([]shortLine, 0, len(diags))
	for _, d := range diags {
		lines = append(lines, shortLine{
			sev:  d.Severity,
			code: d.Code.ID(),
			path: displayPath(fs, d.Primary.File),
			line: d.Primary.Line,
			off:  d.Primary.Start,
			msg:  sanitizeMessage(d.Message),
		})
		if !includeNotes {
			continue
		}
		for _, n := range d.Notes {
			lines = append(lines, shortLine{
				code: d.Code.ID(),
				path: displayPath(fs, n.Span.File),
				line: n.Span.Line,
				off:  n.Span.Start,
				msg:  sanitizeMessage(n.Msg),
				note: true,
			})
		}
	}

	sort.SliceStable(lines, func(i, j int) bool {
		li, lj := lines[i], lines[j]
		if li.path != lj.path {
			return li.path < lj.path
		}
		if li.line != lj.line {
			return li.line < lj.line
		}
		return li.off < lj.off
	})

	var b strings.Builder
	for i, l := range lines {
		label := l.sev.Label()
		if l.note {
			label = "note"
		}
		fmt.Fprintf(&b, "%s %s %s:%d %s", label, l.code, l.path, l.line, l.msg)
		if i < len(lines)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func displayPath(fs *source.FileSet, id source.FileID) string {
	if fs == nil {
		return "?"
	}
	return filepath.ToSlash(strings.TrimPrefix(fs.PathOf(id, "relative"), "./"))
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
