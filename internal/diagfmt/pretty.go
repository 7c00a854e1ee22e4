package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"cscan/internal/diag"
	"cscan/internal/source"
)

type palette struct {
	err, warn, info, note, code, path *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:  color.New(color.FgRed, color.Bold),
		warn: color.New(color.FgYellow, color.Bold),
		info: color.New(color.FgCyan),
		note: color.New(color.FgBlue),
		code: color.New(color.Bold),
		path: color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.note, p.code, p.path} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>: <sev>[<CODE>]: <Message>
// затем Notes в том же формате. Исходный текст не хранится, поэтому
// контекста строки нет.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	if bag == nil {
		return nil
	}
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		if _, err := fmt.Fprintf(w, "%s: %s[%s]: %s\n",
			p.path.Sprint(location(fs, d.Primary, opts.PathMode)),
			p.severity(d.Severity).Sprint(d.Severity.Label()),
			p.code.Sprint(d.Code.ID()),
			d.Message,
		); err != nil {
			return err
		}
		if !opts.ShowNotes && d.Code != diag.ObsTimings {
			continue
		}
		for _, n := range d.Notes {
			if _, err := fmt.Fprintf(w, "  %s: %s: %s\n",
				p.note.Sprint("note"),
				p.path.Sprint(location(fs, n.Span, opts.PathMode)),
				n.Msg,
			); err != nil {
				return err
			}
		}
	}
	if dropped := bag.Dropped(); dropped > 0 {
		if _, err := fmt.Fprintf(w, "%s: %d more diagnostics not shown (limit %d)\n",
			p.note.Sprint("note"), dropped, bag.Cap()); err != nil {
			return err
		}
	}
	return nil
}

// location renders "path:line"; line 0 (I/O errors) prints the path only.
func location(fs *source.FileSet, sp source.Span, mode PathMode) string {
	path := "?"
	if fs != nil {
		path = fs.PathOf(sp.File, mode.String())
	}
	if sp.Line == 0 {
		return path
	}
	return fmt.Sprintf("%s:%d", path, sp.Line)
}
