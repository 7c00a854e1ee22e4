package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32 // просто ID источника
	// FileFlags encodes metadata about a source file.
	FileFlags uint8 // метаданные
)

const (
	// FileVirtual indicates the file was added from memory (tests, generated input).
	FileVirtual FileFlags = 1 << iota
	// FileStdin marks the standard input stream.
	FileStdin
	// FileHadBOM is set by the lexer when a leading UTF-8 BOM was skipped.
	FileHadBOM
)

// StdinName is the display path used for standard input.
const StdinName = "<stdin>"

// File captures metadata for a single source stream. Content is never
// retained: the lexer pulls bytes from the stream once.
type File struct {
	ID    FileID
	Path  string
	Flags FileFlags
}

// IsStdin reports whether the file is the process standard input.
func (f *File) IsStdin() bool {
	return f != nil && f.Flags&FileStdin != 0
}
