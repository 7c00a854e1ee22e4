package lexer

import (
	"bufio"
	"errors"
	"io"

	"fortio.org/safecast"

	"cscan/internal/source"
)

// ErrStreamTooLarge is recorded when the input exceeds the uint32 offset range.
var ErrStreamTooLarge = errors.New("input stream exceeds 4 GiB")

const cursorBufSize = 4096

var utf8BOM = [3]byte{0xEF, 0xBB, 0xBF}

// Cursor — потоковый источник байтов с lookahead до трёх байтов.
// Байты читаются ровно один раз; возврата назад нет.
type Cursor struct {
	File source.FileID

	r      *bufio.Reader
	off    uint32
	line   uint32
	err    error // первая ошибка чтения, кроме io.EOF
	eof    bool
	hadBOM bool

	// захват текста текущего токена
	capturing bool
	rec       []byte
	recLimit  int
	overflow  bool
}

// NewCursor wraps r. A leading UTF-8 BOM is skipped; its bytes still count
// towards offsets.
func NewCursor(r io.Reader, file source.FileID) *Cursor {
	br, ok := r.(*bufio.Reader)
	if !ok || br.Size() < cursorBufSize {
		br = bufio.NewReaderSize(r, cursorBufSize)
	}
	c := &Cursor{File: file, r: br, line: 1, recLimit: DefaultMaxTokenLen}
	if b, err := br.Peek(len(utf8BOM)); err == nil && [3]byte(b) == utf8BOM {
		_, _ = br.Discard(len(utf8BOM))
		c.off = uint32(len(utf8BOM))
		c.hadBOM = true
	}
	return c
}

// SetCaptureLimit bounds the bytes kept for one token's text.
func (c *Cursor) SetCaptureLimit(n int) {
	if n > 0 {
		c.recLimit = n
	}
}

func (c *Cursor) peek(n int) []byte {
	if c.eof {
		return nil
	}
	b, err := c.r.Peek(n)
	if err != nil {
		if !errors.Is(err, io.EOF) && c.err == nil {
			c.err = err
		}
		if len(b) == 0 {
			c.eof = true
		}
	}
	return b
}

// EOF reports whether the stream is exhausted (or failed).
func (c *Cursor) EOF() bool {
	return len(c.peek(1)) == 0
}

// Peek возвращает текущий байт или 0 на EOF.
func (c *Cursor) Peek() byte {
	b := c.peek(1)
	if len(b) == 0 {
		return 0
	}
	return b[0]
}

// Peek2 возвращает текущий и следующий байт; ok=false если их меньше двух.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	b := c.peek(2)
	if len(b) < 2 {
		return 0, 0, false
	}
	return b[0], b[1], true
}

// Peek3 возвращает три байта вперёд; ok=false если их меньше трёх.
func (c *Cursor) Peek3() (b0, b1, b2 byte, ok bool) {
	b := c.peek(3)
	if len(b) < 3 {
		return 0, 0, 0, false
	}
	return b[0], b[1], b[2], true
}

// Bump consumes one byte and returns it; 0 at EOF. A consumed '\n'
// advances the line counter.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	next, err := safecast.Conv[uint32](int64(c.off) + 1)
	if err != nil {
		c.err = ErrStreamTooLarge
		c.eof = true
		return 0
	}
	b, err := c.r.ReadByte()
	if err != nil {
		c.eof = true
		return 0
	}
	c.off = next
	if b == '\n' {
		c.line++
	}
	if c.capturing {
		if len(c.rec) < c.recLimit {
			c.rec = append(c.rec, b)
		} else {
			c.overflow = true
		}
	}
	return b
}

// Eat consumes the next byte if it equals b.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.Peek() == b {
		c.Bump()
		return true
	}
	return false
}

// Off returns the number of bytes consumed so far.
func (c *Cursor) Off() uint32 { return c.off }

// Line returns the 1-based line of the next byte.
func (c *Cursor) Line() uint32 { return c.line }

// Err returns the first read error other than io.EOF.
func (c *Cursor) Err() error { return c.err }

// HadBOM reports whether a leading BOM was skipped.
func (c *Cursor) HadBOM() bool { return c.hadBOM }

// Mark это метка начала токена; ставит захват текста.
type Mark struct {
	off  uint32
	line uint32
}

// Mark starts capturing a token at the current position.
func (c *Cursor) Mark() Mark {
	c.capturing = true
	c.rec = c.rec[:0]
	c.overflow = false
	return Mark{off: c.off, line: c.line}
}

// SpanFrom получает Span для фрагмента, начиная с метки.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.File, Start: m.off, End: c.off, Line: m.line}
}

// Captured returns the bytes consumed since the last Mark, up to the capture
// limit. The slice is reused by the next Mark.
func (c *Cursor) Captured() []byte { return c.rec }

// Overflow reports whether the current token exceeded the capture limit.
func (c *Cursor) Overflow() bool { return c.overflow }

// StopCapture ends text capture until the next Mark.
func (c *Cursor) StopCapture() { c.capturing = false }
