package source

import (
	"fmt"
)

// Span is a half-open byte range inside one file plus the 1-based line the
// range starts on. Columns are not tracked.
type Span struct {
	File  FileID
	Start uint32 // в байтах включительно
	End   uint32 // в байтах не включительно
	Line  uint32
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d:%d-%d", s.File, s.Line, s.Start, s.End)
}

// Cover returns the smallest span containing both s and other. Spans from
// different files are not merged.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
		s.Line = other.Line
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}
